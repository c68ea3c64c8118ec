package tutor

// State is the tutoring dialogue state. The machine moves
//
//	Idle → SubjectConfirmed → AwaitingFollowUp → Resolved
//	                              ↓ (confusion marker)
//	              ClarifyingSimple | ClarifyingTechnical → Resolved
//
// and from Resolved loops back to AwaitingFollowUp (same topic), to Idle
// (new topic), or terminates at Ended. SubjectConfirmed only exists inside
// a single Ask call; it is observable through the state history but never
// between calls.
type State string

const (
	StateIdle               State = "idle"
	StateSubjectConfirmed   State = "subject_confirmed"
	StateAwaitingFollowUp   State = "awaiting_follow_up"
	StateResolved           State = "resolved"
	StateClarifyingSimple   State = "clarifying_simple"
	StateClarifyingTechnic  State = "clarifying_technical"
	StateEnded              State = "ended"
)

// clarifying reports whether the state is one of the clarification branches.
func (s State) clarifying() bool {
	return s == StateClarifyingSimple || s == StateClarifyingTechnic
}
