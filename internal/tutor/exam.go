package tutor

import (
	"context"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/layza-app/layza/internal/domain"
	"github.com/layza-app/layza/internal/llm"
	"github.com/layza-app/layza/internal/prompt"
	"github.com/layza-app/layza/internal/subject"
)

// Exam correction is a parallel, two-round variant of the dialogue: correct
// the pasted exam, react to the student's reaction, optionally take a 1-5
// rating, persist the turn. It shares the session's cache and gateway but
// does not move the main state machine.

// CorrectExam runs the first round. examText must contain the exam question
// on the first line and the student's answer on the second.
func (s *Session) CorrectExam(ctx context.Context, examText string) (string, error) {
	if s.state == StateEnded {
		return "", ErrSessionEnded
	}
	if !s.profile.Role.CanCorrectExams() {
		return "", ErrNotAllowed
	}

	lines := nonEmptyLines(examText)
	if len(lines) < 2 {
		return "", ErrExamFormat
	}
	s.examQuestion = lines[0]

	in := prompt.Input{
		Subject:       s.subject,
		Level:         s.profile.Level,
		StudentAnswer: lines[0] + "\n" + lines[1],
		Preferences:   s.profile.Preferences,
	}
	reply := s.generate(ctx, llm.TaskExam, prompt.Compose(prompt.KindExamCorrection, in))
	s.lastReply = reply
	return reply, nil
}

// ExamFeedback runs the second round: a feedback reply to the student's
// reaction to the correction.
func (s *Session) ExamFeedback(ctx context.Context, reaction string) (string, error) {
	if s.state == StateEnded {
		return "", ErrSessionEnded
	}
	if s.examQuestion == "" {
		return "", ErrBadState
	}

	in := prompt.Input{
		Subject:       s.subject,
		Level:         s.profile.Level,
		Keyword:       subject.ExtractKeyword(s.examQuestion, s.subject),
		StudentAnswer: strings.TrimSpace(reaction),
	}
	reply := s.generate(ctx, llm.TaskFeedback, prompt.Compose(prompt.KindFeedbackOnAnswer, in))
	s.lastReply = reply
	return reply, nil
}

// FinishExam persists the exam turn and, when ratingInput parses as a
// number from 1 to 5, a rating. Anything else skips the rating: out-of-range
// or non-numeric input is tolerated, never an error.
func (s *Session) FinishExam(ctx context.Context, ratingInput string) {
	if s.examQuestion == "" {
		return
	}
	now := s.deps.Now().UTC()

	turn := &domain.Turn{
		ID:        uuid.New().String(),
		Student:   s.profile.Name,
		Subject:   s.subject,
		Question:  s.examQuestion,
		Answer:    s.lastReply,
		CreatedAt: now,
	}
	if err := s.deps.History.Append(ctx, turn); err != nil {
		s.deps.Logger.Warn("failed to persist exam turn", "student", s.profile.Name, "error", err)
	}

	if rating := ParseRating(ratingInput); rating != nil && s.deps.Feedback != nil {
		fb := &domain.Feedback{
			ID:             uuid.New().String(),
			Student:        s.profile.Name,
			Liked:          *rating >= 3,
			Rating:         rating,
			ConversationID: s.conversationID,
			CreatedAt:      now,
		}
		if err := s.deps.Feedback.Add(ctx, fb); err != nil {
			s.deps.Logger.Warn("failed to persist exam rating", "student", s.profile.Name, "error", err)
		}
	}

	s.examQuestion = ""
}

// ParseRating converts rating input into a 1-5 value, or nil when the
// input is non-numeric or out of range.
func ParseRating(input string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < 1 || n > 5 {
		return nil
	}
	return &n
}

func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}
