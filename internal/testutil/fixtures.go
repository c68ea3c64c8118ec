package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/layza-app/layza/internal/domain"
)

// Turn options
type TurnOption func(*domain.Turn)

func WithCreatedAt(at time.Time) TurnOption {
	return func(t *domain.Turn) {
		t.CreatedAt = at
	}
}

func WithAnswer(answer string) TurnOption {
	return func(t *domain.Turn) {
		t.Answer = answer
	}
}

func NewTestTurn(student string, subject domain.Subject, question string, opts ...TurnOption) *domain.Turn {
	t := &domain.Turn{
		ID:        uuid.New().String(),
		Student:   student,
		Subject:   subject,
		Question:  question,
		Answer:    "uma pergunta reflexiva",
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func NewTestGrade(student string, subject domain.Subject, score float64) *domain.Grade {
	return &domain.Grade{
		ID:        uuid.New().String(),
		Student:   student,
		Subject:   subject,
		Score:     score,
		CreatedAt: time.Now().UTC(),
	}
}

// Feedback options
type FeedbackOption func(*domain.Feedback)

func WithRating(r int) FeedbackOption {
	return func(f *domain.Feedback) {
		f.Rating = &r
	}
}

func WithComment(c string) FeedbackOption {
	return func(f *domain.Feedback) {
		f.Comment = c
	}
}

func NewTestFeedback(student string, liked bool, opts ...FeedbackOption) *domain.Feedback {
	f := &domain.Feedback{
		ID:        uuid.New().String(),
		Student:   student,
		Liked:     liked,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// NewTestProfile returns a student profile with sensible defaults.
func NewTestProfile(name string) domain.StudentProfile {
	return domain.StudentProfile{
		Name:        name,
		Role:        domain.RoleStudent,
		Level:       domain.LevelMedio,
		Preferences: []domain.Preference{domain.PrefVisual},
	}
}
