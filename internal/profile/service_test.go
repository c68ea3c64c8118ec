package profile

import (
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/layza-app/layza/internal/domain"
	"github.com/layza-app/layza/internal/repository"
	"github.com/layza-app/layza/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	database := testutil.NewTestDB(t)
	return NewService(Deps{
		Grades:   repository.NewSQLiteGradeRepo(database),
		History:  repository.NewSQLiteHistoryRepo(database),
		Feedback: repository.NewSQLiteFeedbackRepo(database),
		Progress: repository.NewSQLiteProgressRepo(database),
		Rand:     rand.New(rand.NewSource(1)),
		Now:      func() time.Time { return time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC) },
	})
}

func TestAddGrade_AndAverages(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.AddGrade(ctx, "joão", domain.SubjectMath, 70))
	require.NoError(t, svc.AddGrade(ctx, "joão", domain.SubjectMath, 90))
	require.NoError(t, svc.AddGrade(ctx, "joão", domain.SubjectScience, 55))

	view, err := svc.Profile(ctx, "joão")
	require.NoError(t, err)
	assert.InDelta(t, 80, view.Averages[domain.SubjectMath], 0.001)
	assert.InDelta(t, 55, view.Averages[domain.SubjectScience], 0.001)
	assert.NotContains(t, view.Averages, domain.SubjectPortuguese)
}

func TestAddGrade_ScoreRange(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.AddGrade(ctx, "joão", domain.SubjectMath, -1), ErrScoreRange)
	assert.ErrorIs(t, svc.AddGrade(ctx, "joão", domain.SubjectMath, 101), ErrScoreRange)
	assert.NoError(t, svc.AddGrade(ctx, "joão", domain.SubjectMath, 0))
	assert.NoError(t, svc.AddGrade(ctx, "joão", domain.SubjectMath, 100))
}

func TestStudyTip_ReasonMentionsAverage(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for _, subj := range domain.AllSubjects {
		require.NoError(t, svc.AddGrade(ctx, "joão", subj, 75))
	}

	tip, err := svc.StudyTip(ctx, "joão")
	require.NoError(t, err)
	assert.Contains(t, subjectTips[tip.Subject], tip.Text)
	assert.Contains(t, tip.Reason, tip.Subject.DisplayName())
	assert.Contains(t, tip.Reason, "sua média é 75.0")
}

func TestStudyTip_NoGradesYet(t *testing.T) {
	svc := newTestService(t)

	tip, err := svc.StudyTip(context.Background(), "joão")
	require.NoError(t, err)
	assert.Contains(t, tip.Reason, "ainda não tem nota")
}

func TestReport_LastFiveOldestFirst(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	for i, q := range []string{"q1", "q2", "q3", "q4", "q5", "q6", "q7"} {
		turn := testutil.NewTestTurn("joão", domain.SubjectMath, q,
			testutil.WithCreatedAt(base.Add(time.Duration(i)*time.Hour)))
		require.NoError(t, svc.deps.History.Append(ctx, turn))
	}

	report, err := svc.Report(ctx, "joão")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(report), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "Relatório do joão (15/03/2026):", lines[0])
	// The two oldest turns fall off; the rest read oldest to newest.
	assert.Contains(t, lines[1], "q3")
	assert.Contains(t, lines[5], "q7")
	assert.Contains(t, lines[1], "matemática")
	assert.Contains(t, lines[1], "[10/03]")
}

func TestReport_Empty(t *testing.T) {
	svc := newTestService(t)

	report, err := svc.Report(context.Background(), "joão")
	require.NoError(t, err)
	assert.Equal(t, "Nada aconteceu ainda.", report)
}

func TestQuiz_FiveQuestions(t *testing.T) {
	svc := newTestService(t)

	quiz := svc.Quiz(domain.SubjectScience)
	lines := strings.Split(quiz, "\n")
	require.Len(t, lines, 5)

	for _, q := range subjectQuestions[domain.SubjectScience] {
		assert.Contains(t, quiz, q)
	}
	assert.True(t, strings.HasPrefix(lines[3], "4. Tenta criar uma pergunta sua"))
	assert.True(t, strings.HasPrefix(lines[4], "5. O que você achou mais difícil"))
}

func TestSaveFeedback(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.SaveFeedback(ctx, "joão", true, "  gostei muito  "))

	saved, err := svc.deps.Feedback.ListByStudent(ctx, "joão")
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.True(t, saved[0].Liked)
	assert.Equal(t, "gostei muito", saved[0].Comment)
	assert.Nil(t, saved[0].Rating)
}
