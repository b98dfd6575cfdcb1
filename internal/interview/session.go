package interview

import (
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SkipMarker is recorded as the answer text when a question is skipped.
const SkipMarker = "[skipped]"

// DefaultMaxFollowUps bounds how many follow-up questions may be asked for a
// single question.
const DefaultMaxFollowUps = 2

// Response is one answered (or skipped) question. Responses are append-only;
// several responses may share a question id when follow-ups occur.
type Response struct {
	QuestionID string    `json:"question_id"`
	Answer     string    `json:"answer"`
	Timestamp  time.Time `json:"timestamp"`
}

// Turn is the outcome of submitting an answer.
//
// When FollowUp is true, Next points at the question that was just answered
// and the caller is expected to present a follow-up (see FollowUpFor) rather
// than repeat the prompt verbatim.
type Turn struct {
	Next     *Question
	FollowUp bool
	Complete bool
}

type phase int

const (
	phaseAwaitingAnswer phase = iota
	phaseAwaitingFollowUp
	phaseComplete
)

// Session drives a single mock interview. It is not safe for concurrent use;
// the caller must serialize submissions.
type Session struct {
	ID string

	role         Role
	questions    []Question
	index        int
	followUps    int
	maxFollowUps int
	responses    []Response
	phase        phase

	rand *rand.Rand
	now  func() time.Time
}

// Option customizes a session at creation time.
type Option func(*Session)

// WithMaxFollowUps overrides the follow-up bound per question. Negative
// values disable follow-ups entirely.
func WithMaxFollowUps(n int) Option {
	return func(s *Session) {
		if n < 0 {
			n = 0
		}
		s.maxFollowUps = n
	}
}

// WithRand injects the random source used for follow-up selection. Tests use
// it to pin deterministic output.
func WithRand(r *rand.Rand) Option {
	return func(s *Session) { s.rand = r }
}

// WithClock injects the timestamp source for recorded responses.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// NewSession creates a session for the given role using questions from the
// bank. An unknown role falls back to the sales question list.
func NewSession(bank Bank, role Role, opts ...Option) *Session {
	s := &Session{
		ID:           uuid.NewString(),
		role:         role,
		questions:    bank.QuestionsFor(role),
		maxFollowUps: DefaultMaxFollowUps,
		rand:         rand.New(rand.NewSource(time.Now().UnixNano())),
		now:          time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Current returns the question awaiting an answer, or nil once the session
// is complete.
func (s *Session) Current() *Question {
	if s.index >= len(s.questions) {
		return nil
	}
	return &s.questions[s.index]
}

// SubmitAnswer records the answer for the current question and decides the
// next turn: a follow-up on the same question, the next question, or
// completion. Submitting after completion is a no-op returning the terminal
// turn.
func (s *Session) SubmitAnswer(answer string) Turn {
	current := s.Current()
	if current == nil {
		return Turn{Complete: true}
	}

	s.responses = append(s.responses, Response{
		QuestionID: current.ID,
		Answer:     strings.TrimSpace(answer),
		Timestamp:  s.now(),
	})

	if s.followUps < s.maxFollowUps && current.FollowUpHint != "" {
		s.followUps++
		s.phase = phaseAwaitingFollowUp
		return Turn{Next: current, FollowUp: true}
	}

	return s.advance()
}

// Skip records a placeholder response for the current question and advances
// without any follow-up.
func (s *Session) Skip() Turn {
	current := s.Current()
	if current == nil {
		return Turn{Complete: true}
	}

	s.responses = append(s.responses, Response{
		QuestionID: current.ID,
		Answer:     SkipMarker,
		Timestamp:  s.now(),
	})

	return s.advance()
}

func (s *Session) advance() Turn {
	s.followUps = 0
	s.index++

	if s.index >= len(s.questions) {
		s.phase = phaseComplete
		return Turn{Complete: true}
	}

	s.phase = phaseAwaitingAnswer
	return Turn{Next: &s.questions[s.index]}
}

// Complete reports whether the session has passed its last question.
func (s *Session) Complete() bool {
	return s.index >= len(s.questions)
}

// AwaitingFollowUp reports whether the last submission triggered a follow-up.
func (s *Session) AwaitingFollowUp() bool {
	return s.phase == phaseAwaitingFollowUp
}

// Role returns the role the session was created for.
func (s *Session) Role() Role {
	return s.role
}

// Questions returns the session's question list.
func (s *Session) Questions() []Question {
	out := make([]Question, len(s.questions))
	copy(out, s.questions)
	return out
}

// QuestionByID looks a question up in the session's list.
func (s *Session) QuestionByID(id string) *Question {
	for i := range s.questions {
		if s.questions[i].ID == id {
			return &s.questions[i]
		}
	}
	return nil
}

// Responses returns a snapshot of the recorded responses in submission order.
func (s *Session) Responses() []Response {
	out := make([]Response, len(s.responses))
	copy(out, s.responses)
	return out
}

// CurrentIndex returns the 0-based cursor position.
func (s *Session) CurrentIndex() int {
	return s.index
}

// TotalQuestions returns the number of questions in the session.
func (s *Session) TotalQuestions() int {
	return len(s.questions)
}

// Reset rewinds the session to its initial state, discarding all responses.
func (s *Session) Reset() {
	s.index = 0
	s.followUps = 0
	s.responses = nil
	s.phase = phaseAwaitingAnswer
}
