package domain

import "time"

// Feedback is what the student thought of a session or an exam correction.
// Rating is nil when the student skipped it or entered something out of range.
type Feedback struct {
	ID             string
	Student        string
	Liked          bool
	Comment        string
	Rating         *int // 1-5 when present
	ConversationID string
	CreatedAt      time.Time
}

// Recommendation is a study-content suggestion fetched after a resolved turn.
type Recommendation struct {
	ID     string
	Title  string
	URL    string
	Format Preference
}
