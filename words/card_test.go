package words

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCards(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    []Card
		wantErr bool
	}{
		{name: "plain", input: "CAT", want: []Card{{Letter: 2}, {Letter: 0}, {Letter: 19}}},
		{name: "lowercase", input: "ox", want: []Card{{Letter: 14}, {Letter: 23}}},
		{name: "gold", input: "Q*I", want: []Card{{Letter: 16, Gold: true}, {Letter: 8}}},
		{name: "empty", input: "", want: []Card{}},
		{name: "leading gold marker", input: "*A", wantErr: true},
		{name: "digit", input: "A1", wantErr: true},
		{name: "space", input: "A B", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseCards(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCardString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "E", NewCard(4, false).String())
	assert.Equal(t, "Z*", NewCard(25, true).String())
	assert.Equal(t, "TEST", Spell(MustParseCards("T*EST")))
	assert.True(t, NewCard(25, false).Valid())
	assert.False(t, NewCard(26, false).Valid())
}

func TestMustParseCardsPanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { MustParseCards("A?") })
}
