package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lox/wordpot/words"
)

const (
	testBlockTime = 1_600_000_000
	startChips    = 10_000_000
)

func testRules() Rules {
	return DefaultRules()
}

func addr(i int) string {
	return fmt.Sprintf("player%d", i)
}

func envFor(sender string, funds ...Coin) Env {
	return Env{Sender: sender, BlockTime: testBlockTime, Funds: funds}
}

func scrt(amount uint64) Coin {
	return Coin{Denom: "uscrt", Amount: amount}
}

// mustApply runs cmd and fails the test on rejection.
func mustApply(t *testing.T, s *Session, rules Rules, env Env, cmd Command) (*Session, []Effect) {
	t.Helper()
	next, effects, err := Apply(s, rules, env, cmd)
	require.NoError(t, err, "%s by %s", cmd.Name(), env.Sender)
	return next, effects
}

// rejected runs cmd, asserts it fails with kind and returns the error.
func rejected(t *testing.T, s *Session, rules Rules, env Env, cmd Command, kind error) error {
	t.Helper()
	before := s.Clone()
	next, effects, err := Apply(s, rules, env, cmd)
	require.ErrorIs(t, err, kind)
	require.Nil(t, next)
	require.Nil(t, effects)
	require.Equal(t, before, s, "rejected command must not touch the session")
	var rej *RejectError
	require.ErrorAs(t, err, &rej)
	return err
}

// newTable seats n players, each buying in with startChips.
func newTable(t *testing.T, rules Rules, n int) *Session {
	t.Helper()
	s := NewSession(rules, "", 0)
	for i := range n {
		s, _ = mustApply(t, s, rules, envFor(addr(i), scrt(startChips)), Join{Secret: uint64(i)})
	}
	return s
}

// everyone runs the same command for every seated player in join order.
func everyone(t *testing.T, s *Session, rules Rules, cmd Command) *Session {
	t.Helper()
	for _, p := range s.Players {
		s, _ = mustApply(t, s, rules, envFor(p.Addr), cmd)
	}
	return s
}

// toChoice checks every player through Blind and Flop.
func toChoice(t *testing.T, s *Session, rules Rules) *Session {
	t.Helper()
	s = everyone(t, s, rules, Check{})
	require.Equal(t, RoundFlop, s.Board.Round)
	s = everyone(t, s, rules, Check{})
	require.Equal(t, RoundChoice, s.Board.Round)
	return s
}

// withHands replaces the dealt cards with fixed ones.
func withHands(s *Session, river string, hands ...string) *Session {
	s.Board.River = words.MustParseCards(river)
	for i, h := range hands {
		s.Players[i].Hand = words.MustParseCards(h)
	}
	return s
}

func chipsOf(s *Session) []uint64 {
	out := make([]uint64, len(s.Players))
	for i, p := range s.Players {
		out[i] = p.Chips
	}
	return out
}

func transfers(effects []Effect) []Transfer {
	var out []Transfer
	for _, e := range effects {
		if tr, ok := e.(Transfer); ok {
			out = append(out, tr)
		}
	}
	return out
}
