// Package feedback derives per-answer scores from heuristic text features
// and aggregates them into a session summary.
package feedback

import (
	"math"
	"strings"

	"github.com/mkravets/interview-trainer/internal/interview"
)

const (
	baseScore = 5
	minScore  = 1
	maxScore  = 10

	detailedWordCount      = 20
	briefWordCount         = 10
	technicalBriefWords    = 15
	technicalDepthCutoff   = 7
	technicalKeywordWeight = 2
)

var structureWords = []string{"first", "then", "finally", "because"}

var exampleMarkers = []string{"example", "time when", "situation where"}

var technicalKeywords = []string{
	"api", "database", "algorithm", "code", "system", "framework",
	"language", "tool", "process", "method",
}

// Feedback is the scored assessment of a single response.
type Feedback struct {
	QuestionID         string   `json:"question_id"`
	Strengths          []string `json:"strengths"`
	Improvements       []string `json:"improvements"`
	Suggestions        []string `json:"suggestions"`
	CommunicationScore int      `json:"communication_score"`
	TechnicalScore     *int     `json:"technical_score,omitempty"`
	OverallScore       int      `json:"overall_score"`
}

// ScoreAnswer evaluates one response against its question. A technical score
// is produced only for technical-category questions.
func ScoreAnswer(response interview.Response, question interview.Question) Feedback {
	lower := strings.ToLower(response.Answer)
	wordCount := len(strings.Fields(response.Answer))

	hasStructure := containsAny(lower, structureWords)
	hasExamples := containsAny(lower, exampleMarkers)
	isDetailed := wordCount > detailedWordCount

	communication := baseScore
	if hasStructure {
		communication++
	}
	if hasExamples {
		communication++
	}
	if isDetailed {
		communication++
	}
	if wordCount < briefWordCount {
		communication -= 2
	}
	communication = clamp(communication)

	var technical *int
	if question.Category == interview.CategoryTechnical {
		score := baseScore
		if containsAny(lower, technicalKeywords) {
			score += technicalKeywordWeight
		}
		if isDetailed {
			score++
		}
		if wordCount < technicalBriefWords {
			score -= 2
		}
		score = clamp(score)
		technical = &score
	}

	var strengths, improvements, suggestions []string

	if hasStructure {
		strengths = append(strengths, "Well-structured response with clear organization")
	} else {
		improvements = append(improvements, "Consider structuring your answer with clear points or steps")
		suggestions = append(suggestions, `Use phrases like "First, I...", "Then, I...", "Finally, I..." to organize your thoughts`)
	}

	if hasExamples {
		strengths = append(strengths, "Good use of specific examples")
	} else {
		improvements = append(improvements, "Include specific examples or anecdotes")
		suggestions = append(suggestions, "Use the STAR method (Situation, Task, Action, Result) to structure behavioral questions")
	}

	if isDetailed {
		strengths = append(strengths, "Detailed and comprehensive answer")
	} else {
		improvements = append(improvements, "Provide more detail and context")
		suggestions = append(suggestions, `Aim for 2-3 sentences minimum, explaining the "why" behind your actions`)
	}

	if wordCount < briefWordCount {
		improvements = append(improvements, "Answer is too brief - expand on your thoughts")
		suggestions = append(suggestions, "Think about what the interviewer wants to know: the situation, your actions, and the outcome")
	}

	if technical != nil && *technical < technicalDepthCutoff {
		improvements = append(improvements, "Could demonstrate deeper technical knowledge")
		suggestions = append(suggestions, "Include specific technologies, tools, or methodologies relevant to the role")
	}

	overall := communication
	if technical != nil {
		overall = int(math.Round(float64(communication+*technical) / 2))
	}

	if len(strengths) == 0 {
		strengths = []string{"Good effort in answering the question"}
	}
	if len(suggestions) == 0 {
		suggestions = []string{"Keep practicing and refining your answers"}
	}

	return Feedback{
		QuestionID:         response.QuestionID,
		Strengths:          strengths,
		Improvements:       improvements,
		Suggestions:        suggestions,
		CommunicationScore: communication,
		TechnicalScore:     technical,
		OverallScore:       overall,
	}
}

func clamp(score int) int {
	if score < minScore {
		return minScore
	}
	if score > maxScore {
		return maxScore
	}
	return score
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
