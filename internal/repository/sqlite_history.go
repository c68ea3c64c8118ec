package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/layza-app/layza/internal/db"
	"github.com/layza-app/layza/internal/domain"
)

// SQLiteHistoryRepo implements HistoryRepo using a SQLite database.
type SQLiteHistoryRepo struct {
	db db.DBTX
}

// NewSQLiteHistoryRepo creates a new SQLiteHistoryRepo.
func NewSQLiteHistoryRepo(dbtx db.DBTX) *SQLiteHistoryRepo {
	return &SQLiteHistoryRepo{db: dbtx}
}

func (r *SQLiteHistoryRepo) Append(ctx context.Context, t *domain.Turn) error {
	query := `INSERT INTO turns (id, student, subject, question, answer, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.Student,
		string(t.Subject),
		t.Question,
		t.Answer,
		t.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting turn: %w", err)
	}
	return nil
}

func (r *SQLiteHistoryRepo) Recent(ctx context.Context, student string, subject domain.Subject, limit int) ([]domain.Turn, error) {
	query := `SELECT id, student, subject, question, answer, created_at
		FROM turns
		WHERE student = ? AND subject = ?
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, student, string(subject), limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent turns: %w", err)
	}
	defer rows.Close()
	return scanTurns(rows)
}

func (r *SQLiteHistoryRepo) ListByStudent(ctx context.Context, student string, limit int) ([]domain.Turn, error) {
	query := `SELECT id, student, subject, question, answer, created_at
		FROM turns
		WHERE student = ?
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, student, limit)
	if err != nil {
		return nil, fmt.Errorf("listing turns by student: %w", err)
	}
	defer rows.Close()
	return scanTurns(rows)
}

func scanTurns(rows *sql.Rows) ([]domain.Turn, error) {
	var turns []domain.Turn
	for rows.Next() {
		var t domain.Turn
		var subject, createdAt string
		if err := rows.Scan(&t.ID, &t.Student, &subject, &t.Question, &t.Answer, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning turn: %w", err)
		}
		t.Subject = domain.Subject(subject)
		t.CreatedAt = parseTime(createdAt)
		turns = append(turns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating turns: %w", err)
	}
	return turns, nil
}
