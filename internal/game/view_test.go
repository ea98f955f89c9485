package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewHidesOtherHands(t *testing.T) {
	t.Parallel()
	rules := testRules()
	s := newTable(t, rules, 3)

	v, err := s.View(1, rules)
	require.NoError(t, err)
	assert.Equal(t, addr(1), v.You)
	assert.Nil(t, v.River, "river is hidden during blind")
	require.Len(t, v.Players, 3)
	for i, p := range v.Players {
		if i == 1 {
			assert.Len(t, p.Hand, HandSize)
		} else {
			assert.Nil(t, p.Hand)
		}
	}
}

func TestViewWordVisibility(t *testing.T) {
	t.Parallel()
	rules := testRules()
	s := toChoice(t, newTable(t, rules, 2), rules)
	s = withHands(s, "GEXYZ", "CATDO", "ACTZQ")

	v, err := s.View(0, rules)
	require.NoError(t, err)
	assert.Len(t, v.River, RiverSize)

	s, _ = mustApply(t, s, rules, envFor(addr(0)), PutDownCard{Indexes: []byte{0, 1, 2}})

	own, err := s.View(0, rules)
	require.NoError(t, err)
	require.Len(t, own.Words, 1)
	assert.True(t, own.Words[0].Visible)
	assert.Equal(t, "CAT", own.Words[0].Word)
	assert.Equal(t, uint32(5), own.Words[0].Score)

	other, err := s.View(1, rules)
	require.NoError(t, err)
	require.Len(t, other.Words, 1)
	assert.False(t, other.Words[0].Visible)
	assert.Empty(t, other.Words[0].Word)
	assert.Nil(t, other.Words[0].Cards)
	assert.True(t, other.Players[0].PutDown)

	s, _ = mustApply(t, s, rules, envFor(addr(1)), PutDownCard{Indexes: []byte{0, 1, 2}})
	other, err = s.View(1, rules)
	require.NoError(t, err)
	require.Len(t, other.Words, 2)
	for _, w := range other.Words {
		assert.True(t, w.Visible, w.Player)
	}
	assert.Equal(t, addr(0), other.WinnerForTurn)
}

func TestViewRequiresKnownSecret(t *testing.T) {
	t.Parallel()
	rules := testRules()
	s := newTable(t, rules, 2)

	_, err := s.View(99, rules)
	require.ErrorIs(t, err, ErrAuthorization)

	s.Players[1].Secret = s.Players[0].Secret
	_, err = s.View(s.Players[0].Secret, rules)
	require.ErrorIs(t, err, ErrAuthorization, "shared secrets identify nobody")
}

func TestJoinStatus(t *testing.T) {
	t.Parallel()
	rules := testRules()

	open := newTable(t, rules, 2)
	assert.Equal(t, JoinStatus{CanJoin: true, Players: 2, MaxPlayers: 4, StartedTime: testBlockTime}, open.JoinStatus(rules))

	locked := NewSession(rules, "pw", 0)
	st := locked.JoinStatus(rules)
	assert.True(t, st.RequiresPassword)
	assert.True(t, st.CanJoin)
	assert.Zero(t, st.StartedTime)

	full := newTable(t, rules, 4)
	assert.False(t, full.JoinStatus(rules).CanJoin)

	done := newTable(t, rules, 2)
	done.Winner = addr(0)
	assert.False(t, done.JoinStatus(rules).CanJoin)
}
