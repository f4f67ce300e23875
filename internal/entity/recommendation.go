package entity

// Outcome is a predicted result of taking the top recommended action.
// Probability is on the 0-100 percent scale.
type Outcome struct {
	Description string  `json:"des"`
	Probability float64 `json:"prob"`
}

// Fraction returns the probability on the 0-1 scale.
func (o Outcome) Fraction() float64 {
	return o.Probability / 100
}

// RecommendationResult is what a turn returns to the caller.
type RecommendationResult struct {
	Actions  []string  `json:"actions"`
	Outcomes []Outcome `json:"preRes"`
}

// QuestionnaireItem is one entry of the decision-style questionnaire.
type QuestionnaireItem struct {
	Text    string   `json:"text"`
	Options []string `json:"options"`
}
