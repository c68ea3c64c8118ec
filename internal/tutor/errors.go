package tutor

import "errors"

var (
	// ErrEmptyQuestion indicates the student submitted blank input.
	ErrEmptyQuestion = errors.New("question is empty")

	// ErrWrongSubject indicates the question classified as a different
	// subject than the session's. The session stays where it was; the
	// caller may retry with another question.
	ErrWrongSubject = errors.New("question belongs to another subject")

	// ErrAnswerTooShort indicates the follow-up answer had fewer than
	// three characters after trimming.
	ErrAnswerTooShort = errors.New("answer too short, write a bit more")

	// ErrBadState indicates the operation is not valid in the session's
	// current state.
	ErrBadState = errors.New("operation not valid in current session state")

	// ErrSessionEnded indicates the session is terminal.
	ErrSessionEnded = errors.New("session has ended")

	// ErrNotAllowed indicates the profile's role may not run the operation.
	ErrNotAllowed = errors.New("role not allowed to run exam correction")

	// ErrExamFormat indicates the exam text was missing the question or
	// the answer line.
	ErrExamFormat = errors.New("exam text needs the question and your answer, one per line")
)
