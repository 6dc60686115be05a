package questionbank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmbeddedBank(t *testing.T) {
	bank, err := Load()
	require.NoError(t, err)
	assert.Greater(t, bank.Len(), 0)

	topics := bank.Topics()
	assert.Contains(t, topics, "geography")
	assert.Contains(t, topics, "science")

	// Every topic must offer all three difficulties so the adaptive
	// picker always has somewhere to step.
	for _, topic := range topics {
		have := map[Difficulty]bool{}
		for _, q := range bank.Questions() {
			if q.Topic == topic {
				have[q.Difficulty] = true
			}
		}
		assert.Len(t, have, 3, "topic %s missing a difficulty bucket", topic)
	}
}

func TestParse_RejectsInvalidBanks(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{{{`},
		{"empty array", `[]`},
		{"missing prompt", `[{"id":"q1","topic":"t","difficulty":"easy","choices":["a","b"],"correct_index":0}]`},
		{"bad difficulty", `[{"id":"q1","topic":"t","difficulty":"extreme","prompt":"?","choices":["a","b"],"correct_index":0}]`},
		{"one choice", `[{"id":"q1","topic":"t","difficulty":"easy","prompt":"?","choices":["a"],"correct_index":0}]`},
		{"five choices", `[{"id":"q1","topic":"t","difficulty":"easy","prompt":"?","choices":["a","b","c","d","e"],"correct_index":0}]`},
		{"unknown field", `[{"id":"q1","topic":"t","difficulty":"easy","prompt":"?","choices":["a","b"],"correct_index":0,"hint":"x"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestParse_RejectsOutOfRangeCorrectIndex(t *testing.T) {
	data := `[{"id":"q1","topic":"t","difficulty":"easy","prompt":"?","choices":["a","b"],"correct_index":2}]`
	_, err := parse([]byte(data))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "correct_index")
}

func TestParse_RejectsDuplicateIDs(t *testing.T) {
	data := `[
		{"id":"q1","topic":"t","difficulty":"easy","prompt":"a?","choices":["a","b"],"correct_index":0},
		{"id":"q1","topic":"t","difficulty":"easy","prompt":"b?","choices":["a","b"],"correct_index":1}
	]`
	_, err := parse([]byte(data))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}
