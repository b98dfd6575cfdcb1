package validation

import "strings"

// Persona is a coarse label describing how the user answers.
type Persona string

const (
	PersonaConfused  Persona = "confused"
	PersonaEfficient Persona = "efficient"
	PersonaChatty    Persona = "chatty"
	PersonaNormal    Persona = "normal"
)

var uncertaintyPhrases = []string{
	"i don't know", "i'm not sure", "not sure", "unsure", "confused", "help",
}

const (
	confusedMaxLength  = 10
	efficientMaxLength = 30
	chattyMinLength    = 500
	chattySegmentCount = 5
	chattySegmentsMin  = 200
)

// DetectPersona labels the answer in strict precedence order: confused wins
// over efficient, which wins over chatty. The first matching rule is
// authoritative even when later rules would also match.
func DetectPersona(answer string, priorResponses int) Persona {
	lower := strings.ToLower(answer)

	if containsAny(lower, uncertaintyPhrases) || len(answer) < confusedMaxLength {
		return PersonaConfused
	}

	if len(answer) < efficientMaxLength &&
		!strings.Contains(lower, "because") &&
		!strings.Contains(lower, "example") &&
		priorResponses > 0 {
		return PersonaEfficient
	}

	if len(answer) > chattyMinLength ||
		(strings.Count(answer, ".")+1 > chattySegmentCount && len(answer) > chattySegmentsMin) {
		return PersonaChatty
	}

	return PersonaNormal
}
