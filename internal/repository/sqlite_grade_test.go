package repository

import (
	"context"
	"testing"

	"github.com/layza-app/layza/internal/domain"
	"github.com/layza-app/layza/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGradeRepo_AddAndAverages(t *testing.T) {
	repo := NewSQLiteGradeRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, testutil.NewTestGrade("joão", domain.SubjectMath, 80)))
	require.NoError(t, repo.Add(ctx, testutil.NewTestGrade("joão", domain.SubjectMath, 60)))
	require.NoError(t, repo.Add(ctx, testutil.NewTestGrade("joão", domain.SubjectScience, 90)))

	averages, err := repo.Averages(ctx, "joão")
	require.NoError(t, err)
	assert.InDelta(t, 70.0, averages[domain.SubjectMath], 0.001)
	assert.InDelta(t, 90.0, averages[domain.SubjectScience], 0.001)
	_, ok := averages[domain.SubjectPortuguese]
	assert.False(t, ok, "no grades means no average entry")
}

func TestGradeRepo_RejectsOutOfRangeScore(t *testing.T) {
	repo := NewSQLiteGradeRepo(testutil.NewTestDB(t))

	err := repo.Add(context.Background(), testutil.NewTestGrade("joão", domain.SubjectMath, 140))
	assert.Error(t, err)
}

func TestGradeRepo_ListByStudent(t *testing.T) {
	repo := NewSQLiteGradeRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, testutil.NewTestGrade("ana", domain.SubjectPortuguese, 75)))
	require.NoError(t, repo.Add(ctx, testutil.NewTestGrade("bia", domain.SubjectPortuguese, 85)))

	grades, err := repo.ListByStudent(ctx, "ana")
	require.NoError(t, err)
	require.Len(t, grades, 1)
	assert.Equal(t, 75.0, grades[0].Score)
}
