package words

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	t.Parallel()

	dict := Default()
	tests := []struct {
		word string
		want uint32
	}{
		{"TEST", 4},
		{"T*EST", 8},
		{"T*E*ST", 16},
		{"T*E*S*T", 32},
		{"T*E*S*T*", 64},
		{"JOG", 11},
		{"QUIZ", 20},
		{"EXACT", 14},
		{"TSET", 0},
		{"XQZ*", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Score(MustParseCards(tt.word), dict))
		})
	}
}

func TestRawScoreIgnoresDictionary(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint32(4), RawScore(MustParseCards("TSET")))
	assert.Equal(t, uint32(52), RawScore(MustParseCards("X*QZ")))
	assert.Equal(t, uint32(0), Score(MustParseCards("TEST"), nil))
}

func TestPoints(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint32(1), Points(0))
	assert.Equal(t, uint32(10), Points(16))
	assert.Equal(t, uint32(8), Points(25))
	assert.Equal(t, uint32(0), Points(Letters))
}
