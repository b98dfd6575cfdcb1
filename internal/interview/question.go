package interview

import "strings"

// Role identifies one of the supported interview tracks.
type Role string

const (
	RoleSales    Role = "sales"
	RoleEngineer Role = "engineer"
	RoleRetail   Role = "retail-associate"
)

// Category classifies a question by the kind of answer it expects.
type Category string

const (
	CategoryBehavioral  Category = "behavioral"
	CategoryTechnical   Category = "technical"
	CategorySituational Category = "situational"
	CategoryGeneral     Category = "general"
)

// Question is a single interview question. Questions are immutable once a
// session is created.
type Question struct {
	ID           string   `json:"id" yaml:"id"`
	Prompt       string   `json:"prompt" yaml:"prompt"`
	Category     Category `json:"category" yaml:"category"`
	FollowUpHint string   `json:"follow_up_hint,omitempty" yaml:"follow-up-hint,omitempty"`
}

// ParseRole normalizes the supplied role name. Unknown values fall back to
// the sales role so that a session can always be created.
func ParseRole(s string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleSales:
		return RoleSales
	case RoleEngineer:
		return RoleEngineer
	case RoleRetail:
		return RoleRetail
	default:
		return RoleSales
	}
}

// ParseCategory validates a category name.
func ParseCategory(s string) (Category, bool) {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategoryBehavioral:
		return CategoryBehavioral, true
	case CategoryTechnical:
		return CategoryTechnical, true
	case CategorySituational:
		return CategorySituational, true
	case CategoryGeneral:
		return CategoryGeneral, true
	default:
		return "", false
	}
}

// Bank holds the ordered question lists per role.
type Bank map[Role][]Question

// QuestionsFor returns the ordered question list for the role. Unknown roles
// fall back to the sales list.
func (b Bank) QuestionsFor(role Role) []Question {
	questions, ok := b[role]
	if !ok {
		questions = b[RoleSales]
	}

	out := make([]Question, len(questions))
	copy(out, questions)
	return out
}

// DefaultBank returns the built-in question bank.
func DefaultBank() Bank {
	return defaultBank
}

var defaultBank = Bank{
	RoleSales: {
		{
			ID:           "sales-1",
			Prompt:       "Tell me about yourself and why you're interested in sales.",
			Category:     CategoryGeneral,
			FollowUpHint: "Ask about their sales experience, achievements, or motivation.",
		},
		{
			ID:           "sales-2",
			Prompt:       "Describe a time when you had to handle a difficult customer. How did you resolve the situation?",
			Category:     CategoryBehavioral,
			FollowUpHint: "Ask about specific techniques, outcomes, or what they learned.",
		},
		{
			ID:           "sales-3",
			Prompt:       "How do you handle rejection in sales?",
			Category:     CategorySituational,
			FollowUpHint: "Ask for examples or strategies they use to bounce back.",
		},
		{
			ID:           "sales-4",
			Prompt:       "Walk me through your sales process from initial contact to closing a deal.",
			Category:     CategoryTechnical,
			FollowUpHint: "Ask about specific tools, metrics, or challenges in their process.",
		},
		{
			ID:           "sales-5",
			Prompt:       "How do you build rapport with potential clients?",
			Category:     CategoryBehavioral,
			FollowUpHint: "Ask for specific examples or techniques they use.",
		},
	},
	RoleEngineer: {
		{
			ID:           "eng-1",
			Prompt:       "Tell me about yourself and your technical background.",
			Category:     CategoryGeneral,
			FollowUpHint: "Ask about specific technologies, projects, or experience.",
		},
		{
			ID:           "eng-2",
			Prompt:       "Describe a challenging technical problem you solved. What was your approach?",
			Category:     CategoryTechnical,
			FollowUpHint: "Ask about specific technologies used, debugging process, or lessons learned.",
		},
		{
			ID:           "eng-3",
			Prompt:       "How do you approach code reviews and collaboration with your team?",
			Category:     CategoryBehavioral,
			FollowUpHint: "Ask about specific practices, tools, or examples.",
		},
		{
			ID:           "eng-4",
			Prompt:       "Explain a technical concept you're passionate about to a non-technical person.",
			Category:     CategorySituational,
			FollowUpHint: "Ask them to actually explain it or provide more details.",
		},
		{
			ID:           "eng-5",
			Prompt:       "How do you stay updated with the latest technologies and best practices?",
			Category:     CategoryGeneral,
			FollowUpHint: "Ask about specific resources, communities, or learning methods.",
		},
	},
	RoleRetail: {
		{
			ID:           "retail-1",
			Prompt:       "Tell me about yourself and why you want to work in retail.",
			Category:     CategoryGeneral,
			FollowUpHint: "Ask about their interest in customer service or retail experience.",
		},
		{
			ID:           "retail-2",
			Prompt:       "Describe a time when you provided excellent customer service.",
			Category:     CategoryBehavioral,
			FollowUpHint: "Ask about specific details, customer reaction, or what made it excellent.",
		},
		{
			ID:           "retail-3",
			Prompt:       "How would you handle a situation where a customer is unhappy with a product?",
			Category:     CategorySituational,
			FollowUpHint: "Ask about specific steps they would take or policies they'd follow.",
		},
		{
			ID:           "retail-4",
			Prompt:       "How do you prioritize tasks when the store is busy?",
			Category:     CategorySituational,
			FollowUpHint: "Ask for examples or specific strategies they use.",
		},
		{
			ID:           "retail-5",
			Prompt:       "What do you think makes a great retail associate?",
			Category:     CategoryGeneral,
			FollowUpHint: "Ask them to relate it to their own experience or skills.",
		},
	},
}
