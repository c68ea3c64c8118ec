// Package profile implements the study-support features around the
// dialogue: the grade book, study tips, activity reports, reflective
// quizzes and session feedback.
package profile

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/layza-app/layza/internal/domain"
	"github.com/layza-app/layza/internal/repository"
)

// ErrScoreRange is returned when a grade falls outside 0-100.
var ErrScoreRange = errors.New("score must be between 0 and 100")

// reportLimit caps how many history entries the activity report shows.
const reportLimit = 5

// Deps holds the collaborators a Service needs. Rand and Now default to
// the global random source and wall clock.
type Deps struct {
	Grades   repository.GradeRepo
	History  repository.HistoryRepo
	Feedback repository.FeedbackRepo
	Progress repository.ProgressRepo

	Rand *rand.Rand
	Now  func() time.Time
}

// Service answers the profile-related requests of the menu.
type Service struct {
	deps Deps
}

func NewService(deps Deps) *Service {
	if deps.Rand == nil {
		deps.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &Service{deps: deps}
}

// AddGrade records a score for a subject. Scores outside 0-100 are rejected.
func (s *Service) AddGrade(ctx context.Context, student string, subj domain.Subject, score float64) error {
	if score < 0 || score > 100 {
		return ErrScoreRange
	}
	return s.deps.Grades.Add(ctx, &domain.Grade{
		ID:        uuid.New().String(),
		Student:   student,
		Subject:   subj,
		Score:     score,
		CreatedAt: s.deps.Now().UTC(),
	})
}

// View is the profile summary shown in the menu: per-subject grade
// averages and activity counters.
type View struct {
	Student  string
	Averages map[domain.Subject]float64
	Progress []domain.StudentProgress
}

// Profile assembles the student's profile view.
func (s *Service) Profile(ctx context.Context, student string) (*View, error) {
	averages, err := s.deps.Grades.Averages(ctx, student)
	if err != nil {
		return nil, fmt.Errorf("loading grade averages: %w", err)
	}
	progress, err := s.deps.Progress.ListByStudent(ctx, student)
	if err != nil {
		return nil, fmt.Errorf("loading progress: %w", err)
	}
	return &View{Student: student, Averages: averages, Progress: progress}, nil
}

// Tip is a study suggestion with the reasoning behind the subject pick.
type Tip struct {
	Subject domain.Subject
	Text    string
	Reason  string
}

// StudyTip picks a subject weighted by affinity, explains the pick and
// returns one of the subject's ready-made tips. The reason mentions the
// student's grade average when one exists.
func (s *Service) StudyTip(ctx context.Context, student string) (*Tip, error) {
	averages, err := s.deps.Grades.Averages(ctx, student)
	if err != nil {
		return nil, fmt.Errorf("loading grade averages: %w", err)
	}

	subj := s.pickWeighted()
	reason := fmt.Sprintf("Escolhi %s porque você parece gostar (%.1f)", subj.DisplayName(), subjectAffinity[subj])
	if avg, ok := averages[subj]; ok {
		reason += fmt.Sprintf(" e sua média é %.1f.", avg)
	} else {
		reason += " e ainda não tem nota."
	}

	tips := subjectTips[subj]
	return &Tip{
		Subject: subj,
		Text:    tips[s.deps.Rand.Intn(len(tips))],
		Reason:  reason,
	}, nil
}

func (s *Service) pickWeighted() domain.Subject {
	var total float64
	for _, subj := range domain.AllSubjects {
		total += subjectAffinity[subj]
	}
	roll := s.deps.Rand.Float64() * total
	for _, subj := range domain.AllSubjects {
		roll -= subjectAffinity[subj]
		if roll < 0 {
			return subj
		}
	}
	return domain.AllSubjects[len(domain.AllSubjects)-1]
}

// Report renders the student's last activity as a numbered list with a
// date header, newest entry last.
func (s *Service) Report(ctx context.Context, student string) (string, error) {
	turns, err := s.deps.History.ListByStudent(ctx, student, reportLimit)
	if err != nil {
		return "", fmt.Errorf("loading history: %w", err)
	}
	if len(turns) == 0 {
		return "Nada aconteceu ainda.", nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Relatório do %s (%s):\n", student, s.deps.Now().Format("02/01/2006"))
	for i := len(turns) - 1; i >= 0; i-- {
		t := turns[i]
		fmt.Fprintf(&b, "%d. [%s] %s: %s\n", len(turns)-i, t.CreatedAt.Format("02/01"), t.Subject.DisplayName(), t.Question)
	}
	return b.String(), nil
}

// Quiz builds a five-question reflective quiz: three subject questions in
// random order plus two fixed self-assessment prompts.
func (s *Service) Quiz(subj domain.Subject) string {
	pool := subjectQuestions[subj]
	order := s.deps.Rand.Perm(len(pool))

	var b strings.Builder
	for i, idx := range order {
		fmt.Fprintf(&b, "%d. %s\n", i+1, pool[idx])
	}
	fmt.Fprintf(&b, "%d. Tenta criar uma pergunta sua sobre isso!\n", len(pool)+1)
	fmt.Fprintf(&b, "%d. O que você achou mais difícil até agora?", len(pool)+2)
	return b.String()
}

// SaveFeedback records what the student thought of the session.
func (s *Service) SaveFeedback(ctx context.Context, student string, liked bool, comment string) error {
	return s.deps.Feedback.Add(ctx, &domain.Feedback{
		ID:        uuid.New().String(),
		Student:   student,
		Liked:     liked,
		Comment:   strings.TrimSpace(comment),
		CreatedAt: s.deps.Now().UTC(),
	})
}
