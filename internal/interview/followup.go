package interview

const genericFollowUp = "Can you tell me more about that?"

// followUpPools holds question-specific follow-up wordings. Selection is
// uniformly random, so callers must not expect a particular string.
var followUpPools = map[string][]string{
	"sales-2": {
		"What specific techniques did you use to de-escalate the situation?",
		"What was the outcome? Did you retain the customer?",
		"What did you learn from that experience?",
	},
	"sales-4": {
		"What tools or CRM systems do you use in your sales process?",
		"How do you measure success at each stage?",
		"What's the biggest challenge you face in your sales process?",
	},
	"eng-2": {
		"What specific technologies or tools did you use to solve it?",
		"How long did it take, and what was your debugging process?",
		"What would you do differently if you faced a similar problem?",
	},
	"eng-3": {
		"What specific practices do you follow during code reviews?",
		"How do you handle disagreements about code quality?",
		"Can you give an example of feedback you gave or received?",
	},
	"retail-2": {
		"What specific actions did you take that made the service excellent?",
		"How did the customer react?",
		"What did you learn from that experience?",
	},
	"retail-3": {
		"What specific steps would you take in that situation?",
		"How would you ensure the customer leaves satisfied?",
		"What if the customer's request is outside store policy?",
	},
}

// FollowUpFor picks the wording for a follow-up on the given question. It
// prefers the question-specific pool, then the question's generic hint, then
// a built-in prompt.
func (s *Session) FollowUpFor(q *Question) string {
	if q == nil || q.FollowUpHint == "" {
		return genericFollowUp
	}

	if pool, ok := followUpPools[q.ID]; ok && len(pool) > 0 {
		return pool[s.rand.Intn(len(pool))]
	}

	return q.FollowUpHint
}

// FollowUpPool exposes the known wordings for a question id. Empty when only
// the generic hint exists.
func FollowUpPool(id string) []string {
	pool := followUpPools[id]
	out := make([]string, len(pool))
	copy(out, pool)
	return out
}
