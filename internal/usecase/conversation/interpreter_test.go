package conversation

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theoyjy/IntelliMap/internal/entity"
)

const bareReply = `{"data":{"actions":["Apply","Network","Rest"],"preRes":[{"des":"New job found","prob":60},{"des":"Still searching","prob":40}],"mentalProfile":"resilient"}}`

var bareInterpretation = &Interpretation{
	Result: entity.RecommendationResult{
		Actions: []string{"Apply", "Network", "Rest"},
		Outcomes: []entity.Outcome{
			{Description: "New job found", Probability: 60},
			{Description: "Still searching", Probability: 40},
		},
	},
	MentalProfile: "resilient",
	HasProfile:    true,
}

func TestInterpretReply_FormattingNoise(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "bare", raw: bareReply},
		{name: "json fence", raw: "```json\n" + bareReply + "\n```"},
		{name: "plain fence", raw: "```\n" + bareReply + "\n```"},
		{name: "surrounding whitespace", raw: "\n\n  " + bareReply + "  \n"},
		{name: "quoted", raw: `"` + bareReply + `"`},
		{name: "quoted with escapes", raw: `"{\"data\":{\"actions\":[\"Apply\",\"Network\",\"Rest\"],\"preRes\":[{\"des\":\"New job found\",\"prob\":60},{\"des\":\"Still searching\",\"prob\":40}],\"mentalProfile\":\"resilient\"}}"`},
		{name: "literal newline escapes", raw: `{\n"data":{\n"actions":["Apply","Network","Rest"],\n"preRes":[{"des":"New job found","prob":60},{"des":"Still searching","prob":40}],\n"mentalProfile":"resilient"}\n}`},
		{name: "fenced and quoted", raw: "```json\n\"" + bareReply + "\"\n```"},
		{name: "bare object body", raw: `"data":{"actions":["Apply","Network","Rest"],"preRes":[{"des":"New job found","prob":60},{"des":"Still searching","prob":40}],"mentalProfile":"resilient"}`},
		{name: "crlf line breaks", raw: "{\r\n  \"data\": {\r\n    \"actions\": [\"Apply\", \"Network\", \"Rest\"],\r\n    \"preRes\": [{\"des\": \"New job found\", \"prob\": 60}, {\"des\": \"Still searching\", \"prob\": 40}],\r\n    \"mentalProfile\": \"resilient\"\r\n  }\r\n}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := InterpretReply(tt.raw)
			require.NoError(t, err)
			if diff := cmp.Diff(bareInterpretation, got); diff != "" {
				t.Errorf("InterpretReply() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInterpretReply_ParseErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: ""},
		{name: "whitespace only", raw: "   \n "},
		{name: "garbage", raw: "Sorry, I cannot help with that."},
		{name: "missing data", raw: `{"actions":["Apply"],"preRes":[]}`},
		{name: "data not an object", raw: `{"data":"nothing"}`},
		{name: "missing actions", raw: `{"data":{"preRes":[{"des":"x","prob":1}]}}`},
		{name: "actions not a list", raw: `{"data":{"actions":"Apply","preRes":[{"des":"x","prob":1}]}}`},
		{name: "action not a string", raw: `{"data":{"actions":["Apply",3],"preRes":[{"des":"x","prob":1}]}}`},
		{name: "missing preRes", raw: `{"data":{"actions":["Apply"]}}`},
		{name: "preRes entry without prob", raw: `{"data":{"actions":["Apply"],"preRes":[{"des":"New job found"}]}}`},
		{name: "preRes entry without des", raw: `{"data":{"actions":["Apply"],"preRes":[{"prob":60}]}}`},
		{name: "prob not a number", raw: `{"data":{"actions":["Apply"],"preRes":[{"des":"x","prob":"sixty"}]}}`},
		{name: "preRes entry not an object", raw: `{"data":{"actions":["Apply"],"preRes":["x"]}}`},
		{name: "prob overflows float", raw: `{"data":{"actions":["Apply"],"preRes":[{"des":"x","prob":1e400}]}}`},
		{name: "prob negative infinity", raw: `{"data":{"actions":["Apply"],"preRes":[{"des":"x","prob":-1e400}]}}`},
		{name: "prob above 100", raw: `{"data":{"actions":["Apply"],"preRes":[{"des":"x","prob":150}]}}`},
		{name: "prob negative", raw: `{"data":{"actions":["Apply"],"preRes":[{"des":"x","prob":-5}]}}`},
		{name: "truncated", raw: `{"data":{"actions":["Apply"],"preRes":[{"des":"x","prob":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := InterpretReply(tt.raw)
			require.ErrorIs(t, err, entity.ErrParse)
			assert.Nil(t, got)
		})
	}
}

func TestInterpretReply_MentalProfileIsOptional(t *testing.T) {
	got, err := InterpretReply(`{"data":{"actions":["Apply"],"preRes":[{"des":"x","prob":100}]}}`)
	require.NoError(t, err)

	assert.False(t, got.HasProfile)
	assert.Empty(t, got.MentalProfile)
	assert.Equal(t, []string{"Apply"}, got.Result.Actions)

	got, err = InterpretReply(`{"data":{"actions":["Apply"],"preRes":[{"des":"x","prob":100}],"mentalProfile":42}}`)
	require.NoError(t, err)
	assert.False(t, got.HasProfile)
}

func TestInterpretReply_AcceptsAnyListLength(t *testing.T) {
	got, err := InterpretReply(`{"data":{"actions":["A","B","C","D","E"],"preRes":[{"des":"only","prob":0.7}],"mentalProfile":"calm"}}`)
	require.NoError(t, err)

	assert.Len(t, got.Result.Actions, 5)
	require.Len(t, got.Result.Outcomes, 1)
	assert.InDelta(t, 0.7, got.Result.Outcomes[0].Probability, 1e-9)

	got, err = InterpretReply(`{"data":{"actions":[],"preRes":[]}}`)
	require.NoError(t, err)
	assert.Empty(t, got.Result.Actions)
	assert.Empty(t, got.Result.Outcomes)
}

func TestInterpretReply_ProbabilityBounds(t *testing.T) {
	got, err := InterpretReply(`{"data":{"actions":["A"],"preRes":[{"des":"never","prob":0},{"des":"certain","prob":100}]}}`)
	require.NoError(t, err)
	require.Len(t, got.Result.Outcomes, 2)
	assert.Zero(t, got.Result.Outcomes[0].Probability)
	assert.Equal(t, float64(100), got.Result.Outcomes[1].Probability)
}

func TestNormalizeReply(t *testing.T) {
	assert.Equal(t, "{}", NormalizeReply(""))
	assert.Equal(t, `{"a":1}`, NormalizeReply("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, NormalizeReply(`"{"a":1}"`))
	// Only one layer of quotes is removed.
	assert.Equal(t, `{"{"a":1}"}`, NormalizeReply(`""{"a":1}""`))
}
