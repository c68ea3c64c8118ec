package domain

import "time"

// Turn is one completed question/answer exchange within a tutoring session.
// Turns are append-only: created when the student submits a follow-up,
// never mutated afterwards.
type Turn struct {
	ID        string
	Student   string
	Subject   Subject
	Question  string
	Answer    string
	CreatedAt time.Time
}
