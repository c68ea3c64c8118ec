package domain

import "fmt"

// Subject is one of the three school subjects Layza tutors.
type Subject string

const (
	SubjectPortuguese Subject = "portuguese"
	SubjectMath       Subject = "math"
	SubjectScience    Subject = "science"
)

// AllSubjects lists subjects in classifier priority order.
var AllSubjects = []Subject{SubjectPortuguese, SubjectMath, SubjectScience}

// ValidSubjects is the canonical set of accepted subject strings.
var ValidSubjects = map[string]bool{
	"portuguese": true, "math": true, "science": true,
}

// ParseSubject converts a raw string into a Subject.
func ParseSubject(s string) (Subject, error) {
	if !ValidSubjects[s] {
		return "", fmt.Errorf("unknown subject %q (use: portuguese, math, science)", s)
	}
	return Subject(s), nil
}

// DisplayName returns the Portuguese name shown to students.
func (s Subject) DisplayName() string {
	switch s {
	case SubjectPortuguese:
		return "português"
	case SubjectMath:
		return "matemática"
	case SubjectScience:
		return "ciências"
	}
	return string(s)
}
