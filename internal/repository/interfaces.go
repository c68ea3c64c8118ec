package repository

import (
	"context"
	"time"

	"github.com/layza-app/layza/internal/domain"
)

// HistoryRepo persists completed tutoring turns. Turns are written in
// insertion order and read newest first.
type HistoryRepo interface {
	Append(ctx context.Context, t *domain.Turn) error
	Recent(ctx context.Context, student string, subject domain.Subject, limit int) ([]domain.Turn, error)
	ListByStudent(ctx context.Context, student string, limit int) ([]domain.Turn, error)
}

type GradeRepo interface {
	Add(ctx context.Context, g *domain.Grade) error
	ListByStudent(ctx context.Context, student string) ([]domain.Grade, error)
	Averages(ctx context.Context, student string) (map[domain.Subject]float64, error)
}

type FeedbackRepo interface {
	Add(ctx context.Context, f *domain.Feedback) error
	ListByStudent(ctx context.Context, student string) ([]domain.Feedback, error)
}

// ProgressRepo tracks per-subject activity counters for the profile view.
type ProgressRepo interface {
	Touch(ctx context.Context, student string, subject domain.Subject, at time.Time) error
	ListByStudent(ctx context.Context, student string) ([]domain.StudentProgress, error)
}
