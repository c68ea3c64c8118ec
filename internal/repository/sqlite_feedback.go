package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/layza-app/layza/internal/db"
	"github.com/layza-app/layza/internal/domain"
)

// SQLiteFeedbackRepo implements FeedbackRepo using a SQLite database.
type SQLiteFeedbackRepo struct {
	db db.DBTX
}

// NewSQLiteFeedbackRepo creates a new SQLiteFeedbackRepo.
func NewSQLiteFeedbackRepo(dbtx db.DBTX) *SQLiteFeedbackRepo {
	return &SQLiteFeedbackRepo{db: dbtx}
}

func (r *SQLiteFeedbackRepo) Add(ctx context.Context, f *domain.Feedback) error {
	query := `INSERT INTO feedback (id, student, liked, comment, rating, conversation_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		f.ID,
		f.Student,
		boolToInt(f.Liked),
		f.Comment,
		nullableIntToValue(f.Rating),
		f.ConversationID,
		f.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting feedback: %w", err)
	}
	return nil
}

func (r *SQLiteFeedbackRepo) ListByStudent(ctx context.Context, student string) ([]domain.Feedback, error) {
	query := `SELECT id, student, liked, comment, rating, conversation_id, created_at
		FROM feedback WHERE student = ? ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, student)
	if err != nil {
		return nil, fmt.Errorf("listing feedback: %w", err)
	}
	defer rows.Close()

	var items []domain.Feedback
	for rows.Next() {
		var f domain.Feedback
		var liked int
		var rating sql.NullInt64
		var createdAt string
		if err := rows.Scan(&f.ID, &f.Student, &liked, &f.Comment, &rating, &f.ConversationID, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning feedback: %w", err)
		}
		f.Liked = liked != 0
		if rating.Valid {
			v := int(rating.Int64)
			f.Rating = &v
		}
		f.CreatedAt = parseTime(createdAt)
		items = append(items, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating feedback: %w", err)
	}
	return items, nil
}
