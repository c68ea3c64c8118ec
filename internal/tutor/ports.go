package tutor

import (
	"context"
	"time"

	"github.com/layza-app/layza/internal/domain"
)

// HistoryStore is the slice of turn persistence the session needs.
type HistoryStore interface {
	Append(ctx context.Context, t *domain.Turn) error
	Recent(ctx context.Context, student string, subject domain.Subject, limit int) ([]domain.Turn, error)
}

// ProgressTracker records per-subject activity after each resolved turn.
type ProgressTracker interface {
	Touch(ctx context.Context, student string, subject domain.Subject, at time.Time) error
}

// FeedbackStore persists exam-correction ratings.
type FeedbackStore interface {
	Add(ctx context.Context, f *domain.Feedback) error
}

// Recommender fetches a content suggestion for a topic. A nil result with a
// nil error means nothing was found.
type Recommender interface {
	Recommend(ctx context.Context, topic string, format domain.Preference) (*domain.Recommendation, error)
}
