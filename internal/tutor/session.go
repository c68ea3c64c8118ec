// Package tutor drives the Socratic tutoring dialogue: one student, one
// subject, one session. The session validates questions against its subject,
// turns them into prompts, calls the language-model gateway through a
// per-session response cache, watches follow-ups for confusion, and persists
// every resolved turn.
package tutor

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/layza-app/layza/internal/domain"
	"github.com/layza-app/layza/internal/llm"
	"github.com/layza-app/layza/internal/prompt"
	"github.com/layza-app/layza/internal/subject"
)

// historyContextTurns is how many past turns feed the initial prompt.
const historyContextTurns = 2

// minAnswerLen is the minimum follow-up length after trimming.
const minAnswerLen = 3

// Deps bundles the session's collaborators.
type Deps struct {
	Gateway     llm.Gateway
	History     HistoryStore
	Progress    ProgressTracker
	Feedback    FeedbackStore
	Recommender Recommender
	Logger      *slog.Logger
	Now         func() time.Time
}

// Session is a single tutoring dialogue. Not safe for concurrent use: each
// interactive session owns one.
type Session struct {
	profile domain.StudentProfile
	subject domain.Subject
	deps    Deps
	state   State

	// cache memoizes gateway replies by exact prompt text. It is scoped to
	// this session and only ever grows.
	cache map[string]string

	conversationID string
	question       string // the question that opened the current topic
	keyword        string
	lastReply      string

	// pending exam correction, parallel to the main flow
	examQuestion string
}

// NewSession creates a session for one student and subject.
func NewSession(profile domain.StudentProfile, subj domain.Subject, deps Deps) *Session {
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.DiscardHandler)
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &Session{
		profile:        profile,
		subject:        subj,
		deps:           deps,
		state:          StateIdle,
		cache:          make(map[string]string),
		conversationID: uuid.New().String(),
	}
}

// State returns the current dialogue state.
func (s *Session) State() State { return s.state }

// Subject returns the session's fixed subject.
func (s *Session) Subject() domain.Subject { return s.subject }

// Ask opens a topic. The question must be non-empty and must not classify
// as a different subject; on a mismatch the session stays in Idle and
// ErrWrongSubject is returned so the caller can retry with another
// question. On success the reflective opening reply is returned and the
// session awaits the student's answer.
func (s *Session) Ask(ctx context.Context, question string) (string, error) {
	if s.state == StateEnded {
		return "", ErrSessionEnded
	}
	if s.state != StateIdle && s.state != StateResolved {
		return "", ErrBadState
	}

	question = strings.TrimSpace(question)
	if question == "" {
		return "", ErrEmptyQuestion
	}
	if !subject.Matches(question, s.subject) {
		return "", ErrWrongSubject
	}
	s.state = StateSubjectConfirmed

	s.question = question
	s.keyword = subject.ExtractKeyword(question, s.subject)

	in := prompt.Input{
		Subject:     s.subject,
		Level:       s.profile.Level,
		Keyword:     s.keyword,
		HistoryText: s.historyText(ctx),
	}
	reply := s.generate(ctx, llm.TaskQuestion, prompt.Compose(prompt.KindInitialQuestion, in))

	s.lastReply = reply
	s.state = StateAwaitingFollowUp
	return reply, nil
}

// Outcome is the result of a student's follow-up answer.
type Outcome struct {
	Reply    string
	Confused bool
}

// Respond handles the student's reflective answer. A feedback reply is
// always generated; when the answer carries a confusion marker the session
// branches into clarification and the caller should offer the simple or
// technical explanation. Otherwise the turn resolves and is persisted.
func (s *Session) Respond(ctx context.Context, answer string) (*Outcome, error) {
	if s.state == StateEnded {
		return nil, ErrSessionEnded
	}
	if s.state != StateAwaitingFollowUp {
		return nil, ErrBadState
	}

	answer = strings.TrimSpace(answer)
	if len([]rune(answer)) < minAnswerLen {
		return nil, ErrAnswerTooShort
	}

	in := prompt.Input{
		Subject:       s.subject,
		Level:         s.profile.Level,
		Keyword:       s.keyword,
		StudentAnswer: answer,
	}
	reply := s.generate(ctx, llm.TaskFeedback, prompt.Compose(prompt.KindFeedbackOnAnswer, in))
	s.lastReply = reply

	if subject.IsConfused(answer) {
		// Branch choice happens in Clarify; park on the simple branch.
		s.state = StateClarifyingSimple
		return &Outcome{Reply: reply, Confused: true}, nil
	}

	s.resolve(ctx)
	return &Outcome{Reply: reply, Confused: false}, nil
}

// ClarifyKind selects the explanation style for a confused student.
type ClarifyKind string

const (
	ClarifySimple    ClarifyKind = "simple"
	ClarifyTechnical ClarifyKind = "technical"
)

// Clarify generates an explanation of the current keyword in the requested
// style and asks the student whether it is clear now. Only valid from a
// clarification branch.
func (s *Session) Clarify(ctx context.Context, kind ClarifyKind) (string, error) {
	if s.state == StateEnded {
		return "", ErrSessionEnded
	}
	if !s.state.clarifying() {
		return "", ErrBadState
	}

	in := prompt.Input{
		Subject: s.subject,
		Level:   s.profile.Level,
		Keyword: s.keyword,
	}
	kindTemplate := prompt.KindSimplifiedExplanation
	s.state = StateClarifyingSimple
	if kind == ClarifyTechnical {
		kindTemplate = prompt.KindTechnicalExplanation
		s.state = StateClarifyingTechnic
	}

	reply := s.generate(ctx, llm.TaskExplain, prompt.Compose(kindTemplate, in))
	s.lastReply = reply
	return reply, nil
}

// ConfirmUnderstanding records the student's yes/no after a clarification.
// "Yes" resolves the turn; "no" keeps the session in the clarification
// branch so the caller can re-offer simple, technical, new topic or end.
func (s *Session) ConfirmUnderstanding(ctx context.Context, understood bool) error {
	if s.state == StateEnded {
		return ErrSessionEnded
	}
	if !s.state.clarifying() {
		return ErrBadState
	}
	if understood {
		s.resolve(ctx)
	}
	return nil
}

// ContinueTopic loops a resolved session back to awaiting another
// reflection on the same topic, without re-asking the opening question.
func (s *Session) ContinueTopic() error {
	if s.state != StateResolved {
		return ErrBadState
	}
	s.state = StateAwaitingFollowUp
	return nil
}

// NewTopic returns the session to Idle so Ask can open a fresh question.
// Valid from Resolved or a clarification branch (the "new topic" menu
// option while still confused).
func (s *Session) NewTopic() error {
	if s.state != StateResolved && !s.state.clarifying() {
		return ErrBadState
	}
	s.state = StateIdle
	s.question = ""
	s.keyword = ""
	return nil
}

// End terminates the session. Terminal; nothing persists beyond what
// earlier turns already wrote.
func (s *Session) End() {
	s.state = StateEnded
}

// Recommend fetches a content suggestion for the current topic keyword,
// preferring the student's first stated format. Returns nil when the
// recommender is absent or finds nothing.
func (s *Session) Recommend(ctx context.Context) *domain.Recommendation {
	if s.deps.Recommender == nil || s.keyword == "" {
		return nil
	}
	format := domain.PrefReading
	if len(s.profile.Preferences) > 0 {
		format = s.profile.Preferences[0]
	}
	rec, err := s.deps.Recommender.Recommend(ctx, s.keyword, format)
	if err != nil {
		s.deps.Logger.Warn("recommendation fetch failed", "topic", s.keyword, "error", err)
		return nil
	}
	return rec
}

// resolve persists the turn and bumps progress. Persistence failures are
// logged and swallowed; the dialogue carries on without the saved turn.
func (s *Session) resolve(ctx context.Context) {
	now := s.deps.Now().UTC()
	turn := &domain.Turn{
		ID:        uuid.New().String(),
		Student:   s.profile.Name,
		Subject:   s.subject,
		Question:  s.question,
		Answer:    s.lastReply,
		CreatedAt: now,
	}
	if err := s.deps.History.Append(ctx, turn); err != nil {
		s.deps.Logger.Warn("failed to persist turn", "student", s.profile.Name, "error", err)
	}
	if s.deps.Progress != nil {
		if err := s.deps.Progress.Touch(ctx, s.profile.Name, s.subject, now); err != nil {
			s.deps.Logger.Warn("failed to update progress", "student", s.profile.Name, "error", err)
		}
	}
	s.state = StateResolved
}

// generate returns the gateway reply for promptText, memoized by the exact
// prompt string. Gateway failures degrade to a canned reply which is cached
// and returned like any other: from here on the dialogue cannot tell the
// difference.
func (s *Session) generate(ctx context.Context, task llm.TaskType, promptText string) string {
	if cached, ok := s.cache[promptText]; ok {
		return cached
	}

	resp, err := s.deps.Gateway.Generate(ctx, llm.GenerateRequest{
		Task:         task,
		SystemPrompt: prompt.SystemPrompt(s.subject),
		UserPrompt:   promptText,
	})

	var text string
	if err != nil {
		s.deps.Logger.Warn("gateway call failed, using fallback", "task", string(task), "error", err)
		text = fallbackText(s.subject, err)
	} else {
		text = resp.Text
	}

	s.cache[promptText] = text
	return text
}

// historyText renders the most recent turns oldest-first as prompt context.
func (s *Session) historyText(ctx context.Context) string {
	turns, err := s.deps.History.Recent(ctx, s.profile.Name, s.subject, historyContextTurns)
	if err != nil {
		s.deps.Logger.Warn("failed to load history context", "error", err)
		return ""
	}
	if len(turns) == 0 {
		return ""
	}

	var b strings.Builder
	for i := len(turns) - 1; i >= 0; i-- {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString("P: " + turns[i].Question + "\nR: " + turns[i].Answer)
	}
	return b.String()
}
