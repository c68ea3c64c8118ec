package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/layza-app/layza/internal/db"
	"github.com/layza-app/layza/internal/domain"
)

// SQLiteGradeRepo implements GradeRepo using a SQLite database.
type SQLiteGradeRepo struct {
	db db.DBTX
}

// NewSQLiteGradeRepo creates a new SQLiteGradeRepo.
func NewSQLiteGradeRepo(dbtx db.DBTX) *SQLiteGradeRepo {
	return &SQLiteGradeRepo{db: dbtx}
}

func (r *SQLiteGradeRepo) Add(ctx context.Context, g *domain.Grade) error {
	query := `INSERT INTO grades (id, student, subject, score, created_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		g.ID,
		g.Student,
		string(g.Subject),
		g.Score,
		g.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting grade: %w", err)
	}
	return nil
}

func (r *SQLiteGradeRepo) ListByStudent(ctx context.Context, student string) ([]domain.Grade, error) {
	query := `SELECT id, student, subject, score, created_at
		FROM grades WHERE student = ? ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, student)
	if err != nil {
		return nil, fmt.Errorf("listing grades: %w", err)
	}
	defer rows.Close()

	var grades []domain.Grade
	for rows.Next() {
		var g domain.Grade
		var subject, createdAt string
		if err := rows.Scan(&g.ID, &g.Student, &subject, &g.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning grade: %w", err)
		}
		g.Subject = domain.Subject(subject)
		g.CreatedAt = parseTime(createdAt)
		grades = append(grades, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating grades: %w", err)
	}
	return grades, nil
}

func (r *SQLiteGradeRepo) Averages(ctx context.Context, student string) (map[domain.Subject]float64, error) {
	query := `SELECT subject, AVG(score) FROM grades WHERE student = ? GROUP BY subject`
	rows, err := r.db.QueryContext(ctx, query, student)
	if err != nil {
		return nil, fmt.Errorf("computing grade averages: %w", err)
	}
	defer rows.Close()

	averages := make(map[domain.Subject]float64)
	for rows.Next() {
		var subject string
		var avg float64
		if err := rows.Scan(&subject, &avg); err != nil {
			return nil, fmt.Errorf("scanning average: %w", err)
		}
		averages[domain.Subject(subject)] = avg
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating averages: %w", err)
	}
	return averages, nil
}
