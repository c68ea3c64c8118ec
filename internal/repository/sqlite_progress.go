package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/layza-app/layza/internal/db"
	"github.com/layza-app/layza/internal/domain"
)

// SQLiteProgressRepo implements ProgressRepo using a SQLite database.
type SQLiteProgressRepo struct {
	db db.DBTX
}

// NewSQLiteProgressRepo creates a new SQLiteProgressRepo.
func NewSQLiteProgressRepo(dbtx db.DBTX) *SQLiteProgressRepo {
	return &SQLiteProgressRepo{db: dbtx}
}

// Touch increments the questions-answered counter for (student, subject)
// and bumps last-active, inserting the row on first activity.
func (r *SQLiteProgressRepo) Touch(ctx context.Context, student string, subject domain.Subject, at time.Time) error {
	query := `INSERT INTO progress (student, subject, questions_answered, last_active)
		VALUES (?, ?, 1, ?)
		ON CONFLICT (student, subject) DO UPDATE SET
			questions_answered = questions_answered + 1,
			last_active = excluded.last_active`
	_, err := r.db.ExecContext(ctx, query, student, string(subject), at.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("touching progress: %w", err)
	}
	return nil
}

func (r *SQLiteProgressRepo) ListByStudent(ctx context.Context, student string) ([]domain.StudentProgress, error) {
	query := `SELECT student, subject, questions_answered, last_active
		FROM progress WHERE student = ? ORDER BY subject`
	rows, err := r.db.QueryContext(ctx, query, student)
	if err != nil {
		return nil, fmt.Errorf("listing progress: %w", err)
	}
	defer rows.Close()

	var items []domain.StudentProgress
	for rows.Next() {
		var p domain.StudentProgress
		var subject, lastActive string
		if err := rows.Scan(&p.Student, &subject, &p.QuestionsAnswered, &lastActive); err != nil {
			return nil, fmt.Errorf("scanning progress: %w", err)
		}
		p.Subject = domain.Subject(subject)
		p.LastActive = parseTime(lastActive)
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating progress: %w", err)
	}
	return items, nil
}
