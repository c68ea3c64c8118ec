package domain

import "time"

// StudentProfile describes who is sitting in front of the tutor.
type StudentProfile struct {
	Name        string
	Role        Role
	Level       SchoolLevel
	Preferences []Preference
}

// HasPreference reports whether the profile includes the given format preference.
func (p StudentProfile) HasPreference(pref Preference) bool {
	for _, v := range p.Preferences {
		if v == pref {
			return true
		}
	}
	return false
}

// Grade is a single recorded score (0-100) for a subject.
type Grade struct {
	ID        string
	Student   string
	Subject   Subject
	Score     float64
	CreatedAt time.Time
}

// StudentProgress tracks per-subject activity for the profile view.
type StudentProgress struct {
	Student           string
	Subject           Subject
	QuestionsAnswered int
	LastActive        time.Time
}
