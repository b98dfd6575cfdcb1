package validation

import (
	"regexp"
	"strings"
)

var sentenceTerminators = regexp.MustCompile(`[.!?]+`)

const keyPointSentences = 3

// ExtractKeyPoints condenses a long answer to its first three sentences.
// Answers of three sentences or fewer are returned unchanged. The condensed
// form is used only for chatty-user guidance, never for scoring.
func ExtractKeyPoints(answer string) string {
	parts := sentenceTerminators.Split(answer, -1)

	sentences := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			sentences = append(sentences, part)
		}
	}

	if len(sentences) <= keyPointSentences {
		return answer
	}

	return strings.Join(sentences[:keyPointSentences], ". ") + "."
}
