// Package validation classifies raw answer text with simple heuristics.
// Nothing here is a hard failure: every check degrades to advisory warnings
// and suggestions, and the caller decides whether to block submission.
package validation

import (
	"regexp"
	"strings"
)

const (
	minAnswerLength = 3
	maxAnswerLength = 2000

	// An off-topic answer shorter than this invalidates the submission.
	offTopicInvalidLength = 20

	// Share of punctuation above which the answer is flagged as noise.
	specialCharRatio = 0.3
)

var offTopicKeywords = []string{
	"weather", "sports", "politics", "movie", "music", "food", "travel",
	"vacation", "hobby", "game", "tv show", "netflix", "youtube",
}

var questionLeadIns = []string{
	"what is", "how do", "can you", "will you", "why", "when", "where",
	"tell me about", "explain", "help me", "i don't know", "i'm not sure",
}

// relevanceKeywords suppress the off-topic flag when found in either the
// answer or the current question prompt. Matching against the prompt alone
// is lenient (a keyword baked into the question suppresses the flag no
// matter what the user wrote); this mirrors the long-standing behavior and
// is kept until product review says otherwise.
var relevanceKeywords = []string{
	"customer", "client", "team", "project", "work", "job", "experience",
	"situation", "challenge", "problem", "solution", "result",
}

var specialCharPattern = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>/?]`)

// Result carries the classification flags for one submitted answer along
// with the warnings and suggestions accumulated by the checks, in check
// order. It is recomputed per submission and never stored.
type Result struct {
	IsValid              bool
	IsTooShort           bool
	IsTooLong            bool
	IsOffTopic           bool
	IsEmpty              bool
	ContainsInvalidChars bool
	Warnings             []string
	Suggestions          []string
}

// Validate inspects the raw answer text against the current question prompt.
// All checks are independent and cumulative except the empty-input
// short-circuit.
func Validate(answer, questionPrompt string) Result {
	trimmed := strings.TrimSpace(answer)
	result := Result{IsValid: true}

	if trimmed == "" {
		result.IsValid = false
		result.IsEmpty = true
		result.Warnings = append(result.Warnings, "Your answer is empty. Please provide a response.")
		result.Suggestions = append(result.Suggestions, "Try to answer the question asked, even if briefly.")
		return result
	}

	if len(trimmed) < minAnswerLength {
		result.IsTooShort = true
		result.Warnings = append(result.Warnings, "Your answer seems very brief. Consider providing more detail.")
		result.Suggestions = append(result.Suggestions, "Try to explain your answer with 2-3 sentences or an example.")
	}

	if len(trimmed) > maxAnswerLength {
		result.IsTooLong = true
		result.Warnings = append(result.Warnings, "Your answer is quite long. Consider being more concise.")
		result.Suggestions = append(result.Suggestions, "Focus on the key points relevant to the question.")
	}

	lower := strings.ToLower(trimmed)

	if containsAny(lower, offTopicKeywords) && !isContextuallyRelevant(lower, questionPrompt) {
		result.IsOffTopic = true
		result.Warnings = append(result.Warnings, "Your answer might be going off-topic. Try to stay focused on the interview question.")
		result.Suggestions = append(result.Suggestions, "Refocus on the question asked and provide a relevant example or explanation.")
	}

	if isAskingQuestion(lower) {
		result.Warnings = append(result.Warnings, "It seems you're asking a question. Please try to answer the interviewer's question instead.")
		result.Suggestions = append(result.Suggestions, `If you're unsure, you can say "I'm not entirely sure, but based on my experience..."`)
	}

	specialChars := len(specialCharPattern.FindAllString(trimmed, -1))
	if float64(specialChars) > float64(len(trimmed))*specialCharRatio {
		result.ContainsInvalidChars = true
		result.Warnings = append(result.Warnings, "Your answer contains many special characters. Please use normal text.")
	}

	if result.IsOffTopic && len(trimmed) < offTopicInvalidLength {
		result.IsValid = false
	}

	return result
}

func isContextuallyRelevant(lowerAnswer, questionPrompt string) bool {
	if questionPrompt == "" {
		return false
	}

	lowerQuestion := strings.ToLower(questionPrompt)
	for _, keyword := range relevanceKeywords {
		if strings.Contains(lowerAnswer, keyword) || strings.Contains(lowerQuestion, keyword) {
			return true
		}
	}

	return false
}

func isAskingQuestion(lowerAnswer string) bool {
	for _, lead := range questionLeadIns {
		if strings.HasPrefix(lowerAnswer, lead) || strings.Contains(lowerAnswer, "? "+lead) {
			return true
		}
	}
	return false
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
