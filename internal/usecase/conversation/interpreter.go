package conversation

import (
	"fmt"
	"math"
	"strings"

	"github.com/theoyjy/IntelliMap/internal/entity"
	"github.com/tidwall/gjson"
)

// Interpretation is the structured content scraped from a model reply.
type Interpretation struct {
	Result entity.RecommendationResult
	// MentalProfile is empty when HasProfile is false.
	MentalProfile string
	HasProfile    bool
}

// Probabilities are percentages.
const (
	minProbability = 0.0
	maxProbability = 100.0
)

// replyNoise removes code fences, escaped and real line breaks and stray backslashes.
// Longer patterns come first so "```json" and `\n` win over their prefixes.
var replyNoise = strings.NewReplacer(
	"```json", "",
	"```JSON", "",
	"```", "",
	`\r`, "",
	`\n`, "",
	"\r", "",
	"\n", "",
	`\`, "",
)

// NormalizeReply applies the formatting clean-up performed before parsing.
func NormalizeReply(raw string) string {
	text := strings.TrimSpace(replyNoise.Replace(raw))

	if len(text) >= 2 && strings.HasPrefix(text, `"`) && strings.HasSuffix(text, `"`) {
		text = strings.TrimSpace(text[1 : len(text)-1])
	}

	if !strings.HasPrefix(text, "{") {
		text = "{" + text + "}"
	}

	return text
}

// InterpretReply extracts recommended actions, predicted outcomes and the optional
// mental profile from the raw model reply. Every failure wraps entity.ErrParse.
func InterpretReply(raw string) (*Interpretation, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("%w: empty reply", entity.ErrParse)
	}

	text := NormalizeReply(raw)
	if !gjson.Valid(text) {
		return nil, fmt.Errorf("%w: reply is not valid JSON", entity.ErrParse)
	}

	data := gjson.Get(text, keyData)
	if !data.Exists() {
		return nil, fmt.Errorf("%w: missing %q", entity.ErrParse, keyData)
	}
	if !data.IsObject() {
		return nil, fmt.Errorf("%w: %q is not an object", entity.ErrParse, keyData)
	}

	actions, err := extractActions(data)
	if err != nil {
		return nil, err
	}

	outcomes, err := extractOutcomes(data)
	if err != nil {
		return nil, err
	}

	interpretation := &Interpretation{
		Result: entity.RecommendationResult{
			Actions:  actions,
			Outcomes: outcomes,
		},
	}

	if profile := data.Get(keyMentalProfile); profile.Type == gjson.String {
		interpretation.MentalProfile = profile.String()
		interpretation.HasProfile = true
	}

	return interpretation, nil
}

func extractActions(data gjson.Result) ([]string, error) {
	field := data.Get(keyActions)
	if !field.IsArray() {
		return nil, fmt.Errorf("%w: %q is missing or not a list", entity.ErrParse, keyActions)
	}

	items := field.Array()
	actions := make([]string, 0, len(items))
	for i, item := range items {
		if item.Type != gjson.String {
			return nil, fmt.Errorf("%w: %s[%d] is not a string", entity.ErrParse, keyActions, i)
		}
		actions = append(actions, item.String())
	}

	return actions, nil
}

func extractOutcomes(data gjson.Result) ([]entity.Outcome, error) {
	field := data.Get(keyPredictions)
	if !field.IsArray() {
		return nil, fmt.Errorf("%w: %q is missing or not a list", entity.ErrParse, keyPredictions)
	}

	items := field.Array()
	outcomes := make([]entity.Outcome, 0, len(items))
	for i, item := range items {
		if !item.IsObject() {
			return nil, fmt.Errorf("%w: %s[%d] is not an object", entity.ErrParse, keyPredictions, i)
		}

		des := item.Get(keyDescription)
		if des.Type != gjson.String {
			return nil, fmt.Errorf("%w: %s[%d].%s is missing or not a string", entity.ErrParse, keyPredictions, i, keyDescription)
		}

		prob := item.Get(keyProbability)
		if prob.Type != gjson.Number {
			return nil, fmt.Errorf("%w: %s[%d].%s is missing or not a number", entity.ErrParse, keyPredictions, i, keyProbability)
		}
		value := prob.Float()
		if math.IsNaN(value) || value < minProbability || value > maxProbability {
			return nil, fmt.Errorf("%w: %s[%d].%s %s is outside %g-%g", entity.ErrParse, keyPredictions, i, keyProbability, prob.Raw, minProbability, maxProbability)
		}

		outcomes = append(outcomes, entity.Outcome{
			Description: des.String(),
			Probability: value,
		})
	}

	return outcomes, nil
}
