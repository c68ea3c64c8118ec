package repository

import (
	"context"
	"testing"
	"time"

	"github.com/layza-app/layza/internal/domain"
	"github.com/layza-app/layza/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryRepo_AppendAndRecent(t *testing.T) {
	repo := NewSQLiteHistoryRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	for i, q := range []string{"o que é fração?", "como somo frações?", "e frações mistas?"} {
		turn := testutil.NewTestTurn("joão", domain.SubjectMath, q,
			testutil.WithCreatedAt(base.Add(time.Duration(i)*time.Minute)))
		require.NoError(t, repo.Append(ctx, turn))
	}

	turns, err := repo.Recent(ctx, "joão", domain.SubjectMath, 2)
	require.NoError(t, err)
	require.Len(t, turns, 2)
	// Newest first.
	assert.Equal(t, "e frações mistas?", turns[0].Question)
	assert.Equal(t, "como somo frações?", turns[1].Question)
	assert.Equal(t, domain.SubjectMath, turns[0].Subject)
}

func TestHistoryRepo_RecentFiltersBySubject(t *testing.T) {
	repo := NewSQLiteHistoryRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, testutil.NewTestTurn("ana", domain.SubjectMath, "equação?")))
	require.NoError(t, repo.Append(ctx, testutil.NewTestTurn("ana", domain.SubjectScience, "célula?")))
	require.NoError(t, repo.Append(ctx, testutil.NewTestTurn("bia", domain.SubjectMath, "fração?")))

	turns, err := repo.Recent(ctx, "ana", domain.SubjectMath, 10)
	require.NoError(t, err)
	require.Len(t, turns, 1)
	assert.Equal(t, "equação?", turns[0].Question)
}

func TestHistoryRepo_RecentEmpty(t *testing.T) {
	repo := NewSQLiteHistoryRepo(testutil.NewTestDB(t))

	turns, err := repo.Recent(context.Background(), "ninguém", domain.SubjectMath, 5)
	require.NoError(t, err)
	assert.Empty(t, turns)
}

func TestHistoryRepo_ListByStudentCrossesSubjects(t *testing.T) {
	repo := NewSQLiteHistoryRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Append(ctx, testutil.NewTestTurn("ana", domain.SubjectMath, "equação?",
		testutil.WithCreatedAt(base))))
	require.NoError(t, repo.Append(ctx, testutil.NewTestTurn("ana", domain.SubjectScience, "célula?",
		testutil.WithCreatedAt(base.Add(time.Minute)))))

	turns, err := repo.ListByStudent(ctx, "ana", 5)
	require.NoError(t, err)
	require.Len(t, turns, 2)
	assert.Equal(t, domain.SubjectScience, turns[0].Subject)
}
