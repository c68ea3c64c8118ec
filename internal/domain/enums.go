package domain

type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// CanCorrectExams reports whether the role may run exam correction.
func (r Role) CanCorrectExams() bool {
	return r == RoleStudent || r == RoleAdmin
}

// Preference is a learning-format preference attached to a student profile.
type Preference string

const (
	PrefVisual   Preference = "visual"
	PrefAuditory Preference = "auditory"
	PrefReading  Preference = "reading"
)

// ValidPreferences is the canonical set of accepted preference strings.
var ValidPreferences = map[string]bool{
	"visual": true, "auditory": true, "reading": true,
}

// SchoolLevel is the student's school level, interpolated into prompts.
type SchoolLevel string

const (
	LevelFundamental SchoolLevel = "ensino fundamental"
	LevelMedio       SchoolLevel = "ensino médio"
)
