package feedback

import (
	"fmt"
	"math"
	"sort"

	"github.com/mkravets/interview-trainer/internal/interview"
)

const (
	topStrengths    = 3
	topImprovements = 3
	topSuggestions  = 5

	excellentThreshold = 8
	goodThreshold      = 6
)

// Summary aggregates every per-answer feedback in a session.
type Summary struct {
	Text                 string   `json:"summary"`
	AverageCommunication float64  `json:"average_communication"`
	AverageTechnical     *float64 `json:"average_technical,omitempty"`
	AverageOverall       float64  `json:"average_overall"`
	KeyStrengths         []string `json:"key_strengths"`
	KeyImprovements      []string `json:"key_improvements"`
	Recommendations      []string `json:"recommendations"`
}

// Aggregate computes the session summary over all per-answer feedback.
// Averages are rounded to one decimal; the technical average covers only
// answers that received a technical score and is absent when none did.
func Aggregate(role interview.Role, all []Feedback) Summary {
	summary := Summary{
		KeyStrengths:    []string{},
		KeyImprovements: []string{},
		Recommendations: []string{},
	}

	if len(all) == 0 {
		summary.Text = narrative(role, 0)
		return summary
	}

	var commSum, overallSum, techSum float64
	techCount := 0
	var strengths, improvements, suggestions []string

	for _, f := range all {
		commSum += float64(f.CommunicationScore)
		overallSum += float64(f.OverallScore)
		if f.TechnicalScore != nil {
			techSum += float64(*f.TechnicalScore)
			techCount++
		}

		strengths = append(strengths, f.Strengths...)
		improvements = append(improvements, f.Improvements...)
		suggestions = append(suggestions, f.Suggestions...)
	}

	count := float64(len(all))
	summary.AverageCommunication = round1(commSum / count)
	summary.AverageOverall = round1(overallSum / count)
	if techCount > 0 {
		avg := round1(techSum / float64(techCount))
		summary.AverageTechnical = &avg
	}

	summary.KeyStrengths = topByFrequency(strengths, topStrengths)
	summary.KeyImprovements = topByFrequency(improvements, topImprovements)
	summary.Recommendations = topByFrequency(suggestions, topSuggestions)
	summary.Text = narrative(role, overallSum/count)

	return summary
}

// topByFrequency ranks texts by exact-match frequency. The sort is stable,
// so ties keep first-encountered order.
func topByFrequency(items []string, n int) []string {
	counts := make(map[string]int)
	order := make([]string, 0, len(items))

	for _, item := range items {
		if counts[item] == 0 {
			order = append(order, item)
		}
		counts[item]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > n {
		order = order[:n]
	}
	return order
}

func narrative(role interview.Role, avgOverall float64) string {
	text := fmt.Sprintf("You completed the %s interview practice session. ", role)

	switch {
	case avgOverall >= excellentThreshold:
		text += "Excellent performance! You demonstrated strong communication skills"
	case avgOverall >= goodThreshold:
		text += "Good performance with room for improvement"
	default:
		text += "There's significant room for improvement in your responses"
	}

	return text + "."
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
