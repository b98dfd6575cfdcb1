// Package guidance maps classifier output to canned advisory messages shown
// alongside the interview transcript.
package guidance

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/mkravets/interview-trainer/internal/interview"
	"github.com/mkravets/interview-trainer/internal/validation"
)

// MessageType distinguishes how a message should be presented.
type MessageType string

const (
	TypeHint          MessageType = "hint"
	TypeWarning       MessageType = "warning"
	TypeSuggestion    MessageType = "suggestion"
	TypeEncouragement MessageType = "encouragement"
)

// Message is one canned guidance record.
type Message struct {
	Type MessageType `json:"type"`
	Text string      `json:"message"`
	Icon string      `json:"icon"`
}

// DefaultEncouragementProbability is the chance of offering an encouragement
// after a successful advance to the next question.
const DefaultEncouragementProbability = 0.3

var encouragements = []Message{
	{Type: TypeEncouragement, Text: "Great job! Keep going!", Icon: "👍"},
	{Type: TypeEncouragement, Text: "You're doing well!", Icon: "✨"},
	{Type: TypeEncouragement, Text: "Nice answer!", Icon: "👏"},
	{Type: TypeEncouragement, Text: "Good response!", Icon: "🌟"},
}

// Advisor holds the static hint table and the random source used for
// encouragement selection. It keeps no per-session state.
type Advisor struct {
	hints         map[string][]string
	rand          *rand.Rand
	encourageProb float64
}

// Option customizes an Advisor.
type Option func(*Advisor)

// WithRand injects the random source. Tests use it to pin deterministic
// output.
func WithRand(r *rand.Rand) Option {
	return func(a *Advisor) { a.rand = r }
}

// WithEncouragementProbability overrides the per-advance encouragement
// chance. Values outside [0,1] are clamped.
func WithEncouragementProbability(p float64) Option {
	return func(a *Advisor) {
		if p < 0 {
			p = 0
		}
		if p > 1 {
			p = 1
		}
		a.encourageProb = p
	}
}

// NewAdvisor creates an advisor with the built-in hint table.
func NewAdvisor(opts ...Option) *Advisor {
	a := &Advisor{
		hints:         questionHints,
		rand:          rand.New(rand.NewSource(time.Now().UnixNano())),
		encourageProb: DefaultEncouragementProbability,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// HintsFor returns the on-demand hints for a question, if any.
func (a *Advisor) HintsFor(q *interview.Question) []Message {
	if q == nil {
		return nil
	}

	hints := a.hints[q.ID]
	messages := make([]Message, 0, len(hints))
	for _, hint := range hints {
		messages = append(messages, Message{Type: TypeHint, Text: hint, Icon: "💡"})
	}
	return messages
}

// ForConfusedUser encourages a user who signalled uncertainty.
func (a *Advisor) ForConfusedUser() Message {
	return Message{
		Type: TypeSuggestion,
		Text: `Not sure how to answer? Try starting with "Based on my experience..." or "I would approach this by..." Remember, there's no perfect answer - just be honest and thoughtful.`,
		Icon: "🤔",
	}
}

// ForChattyUser nudges a long-winded user towards focus.
func (a *Advisor) ForChattyUser() Message {
	return Message{
		Type: TypeWarning,
		Text: "Your answer is quite detailed! That's great, but try to stay focused on the question. Consider summarizing your key points.",
		Icon: "💬",
	}
}

// ForEfficientUser nudges a terse user towards elaboration.
func (a *Advisor) ForEfficientUser() Message {
	return Message{
		Type: TypeSuggestion,
		Text: "Your answer is brief. Consider adding an example or explaining your reasoning to make it more compelling.",
		Icon: "⚡",
	}
}

// Redirection points an off-topic user back at the question.
func (a *Advisor) Redirection(q *interview.Question) Message {
	return Message{
		Type: TypeSuggestion,
		Text: fmt.Sprintf("Let's refocus on the question: %q. Try to relate your answer back to this topic.", q.Prompt),
		Icon: "🎯",
	}
}

// EmptyInput asks for any response at all.
func (a *Advisor) EmptyInput() Message {
	return Message{
		Type: TypeWarning,
		Text: `Please provide an answer. Even a brief response is better than no response. You can say "I'm not sure, but..." if you're uncertain.`,
		Icon: "⚠️",
	}
}

// Encouragement picks one of the canned encouragements at random.
func (a *Advisor) Encouragement() Message {
	return encouragements[a.rand.Intn(len(encouragements))]
}

// MaybeEncourage rolls the configured probability and, on success, returns an
// encouragement. Called after a successful non-follow-up advance.
func (a *Advisor) MaybeEncourage() (Message, bool) {
	if a.rand.Float64() >= a.encourageProb {
		return Message{}, false
	}
	return a.Encouragement(), true
}

// Advise maps one classified answer to its guidance messages: empty input
// short-circuits; otherwise the off-topic redirect, the persona message, and
// the generic validation warnings accumulate in that order. The chatty
// notice carries a key-points suggestion only when extraction actually
// shortened the answer.
func (a *Advisor) Advise(result validation.Result, persona validation.Persona, answer string, q *interview.Question) []Message {
	if result.IsEmpty {
		return []Message{a.EmptyInput()}
	}

	var messages []Message

	if result.IsOffTopic && q != nil {
		messages = append(messages, a.Redirection(q))
	}

	switch persona {
	case validation.PersonaChatty:
		messages = append(messages, a.ForChattyUser())
		if keyPoints := validation.ExtractKeyPoints(answer); len(keyPoints) < len(answer) {
			messages = append(messages, Message{
				Type: TypeSuggestion,
				Text: "Key points from your answer: " + keyPoints,
				Icon: "📝",
			})
		}
	case validation.PersonaConfused:
		messages = append(messages, a.ForConfusedUser())
	case validation.PersonaEfficient:
		if result.IsTooShort {
			messages = append(messages, a.ForEfficientUser())
		}
	}

	for _, warning := range result.Warnings {
		messages = append(messages, Message{Type: TypeWarning, Text: warning, Icon: "⚠️"})
	}

	return messages
}
