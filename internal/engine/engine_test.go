package engine

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/wordpot/internal/game"
	"github.com/lox/wordpot/internal/store"
)

const blockTime = 1_700_000_000

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func env(sender string, funds ...uint64) game.Env {
	e := game.Env{Sender: sender, BlockTime: blockTime}
	for _, f := range funds {
		e.Funds = append(e.Funds, game.Coin{Denom: "uscrt", Amount: f})
	}
	return e
}

func newEngine(t *testing.T, st store.Store, modify func(*game.Rules)) *Engine {
	t.Helper()
	rules := game.DefaultRules()
	if modify != nil {
		modify(&rules)
	}
	return New(st, rules, quietLogger())
}

func blob(t *testing.T, st store.Store, id string) []byte {
	t.Helper()
	data, err := st.Get(context.Background(), id, StateKey)
	require.NoError(t, err)
	return data
}

func TestInit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEngine(t, store.NewMemory(), nil)

	require.NoError(t, e.Init(ctx, "s1", "", 3))
	assert.ErrorIs(t, e.Init(ctx, "s1", "", 3), ErrSessionExists)

	status, err := e.CanJoin(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, status.CanJoin)
	assert.False(t, status.RequiresPassword)
	assert.Equal(t, 0, status.Players)

	_, err = e.CanJoin(ctx, "missing")
	assert.ErrorIs(t, err, ErrNoSession)
	_, err = e.Execute(ctx, "missing", env("alice"), game.Check{})
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestRejectedCommandLeavesBlobUnchanged(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := store.NewMemory()
	e := newEngine(t, st, nil)

	require.NoError(t, e.Init(ctx, "s1", "secret", 0))
	_, err := e.Execute(ctx, "s1", env("alice", 5_000_000), game.Join{Secret: 1, Password: "secret"})
	require.NoError(t, err)

	tests := []struct {
		name string
		env  game.Env
		cmd  game.Command
		kind error
	}{
		{"wrong password", env("bob"), game.Join{Secret: 2, Password: "guess"}, game.ErrAuthorization},
		{"already joined", env("alice"), game.Join{Secret: 1, Password: "secret"}, game.ErrLifecycle},
		{"bet before dealing", env("alice"), game.Bet{Amount: 1_000_000}, game.ErrPhase},
		{"stranger", env("mallory"), game.Check{}, game.ErrAuthorization},
		{"next turn too early", env("alice"), game.RequestNextTurn{}, game.ErrPhase},
	}

	for _, tt := range tests {
		before := blob(t, st, "s1")
		effects, err := e.Execute(ctx, "s1", tt.env, tt.cmd)
		require.ErrorIs(t, err, tt.kind, tt.name)
		assert.Nil(t, effects, tt.name)
		var rej *game.RejectError
		assert.ErrorAs(t, err, &rej, tt.name)
		assert.Equal(t, before, blob(t, st, "s1"), tt.name)
	}
}

func TestSessionLifecycle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEngine(t, store.NewMemory(), func(r *game.Rules) {
		r.MaxTurns = 1
		r.ResultsAddress = "results"
	})

	require.NoError(t, e.Init(ctx, "s1", "", 0))
	_, err := e.Execute(ctx, "s1", env("alice", 10_000_000), game.Join{Secret: 11})
	require.NoError(t, err)
	_, err = e.Execute(ctx, "s1", env("bob", 10_000_000), game.Join{Secret: 22})
	require.NoError(t, err)

	view, err := e.GameState(ctx, "s1", 11)
	require.NoError(t, err)
	assert.Equal(t, "alice", view.You)
	assert.Equal(t, game.RoundBlind, view.Round)
	assert.Nil(t, view.River, "river stays hidden during the blind")

	_, err = e.Execute(ctx, "s1", env("alice"), game.Bet{Amount: 2_000_000})
	require.NoError(t, err)

	effects, err := e.Execute(ctx, "s1", env("bob"), game.Fold{})
	require.NoError(t, err)
	assert.Equal(t, []game.Effect{game.Transfer{To: "jackpot", Amount: 100_000, Denom: "uscrt"}}, effects)

	_, err = e.Result(ctx, "s1")
	assert.ErrorIs(t, err, game.ErrLifecycle, "no result before the session concludes")

	effects, err = e.Execute(ctx, "s1", env("alice"), game.RequestNextTurn{})
	require.NoError(t, err)
	require.Len(t, effects, 3)
	assert.Equal(t, game.Transfer{To: "alice", Amount: 9_900_000, Denom: "uscrt"}, effects[0])
	assert.Equal(t, game.Transfer{To: "bob", Amount: 10_000_000, Denom: "uscrt"}, effects[1])
	assert.Equal(t, game.Notify{
		Target: "results",
		Event:  game.EventConcluded,
		Attributes: map[string]string{
			"winner": "bob",
			"chips":  "10000000",
			"turns":  "1",
		},
	}, effects[2])

	out, err := e.Result(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "bob", out.Winner)
	assert.Equal(t, []game.Balance{{Addr: "alice", Chips: 9_900_000}, {Addr: "bob", Chips: 10_000_000}}, out.Balances)

	_, err = e.Execute(ctx, "s1", env("carol", 5_000_000), game.Join{Secret: 33})
	assert.ErrorIs(t, err, game.ErrLifecycle)

	status, err := e.CanJoin(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, status.CanJoin)
}

// failingStore loads normally but refuses writes.
type failingStore struct {
	store.Store
}

var errDiskFull = errors.New("disk full")

func (failingStore) Put(context.Context, string, string, []byte) error {
	return errDiskFull
}

func TestExecuteStoreFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	mem := store.NewMemory()
	require.NoError(t, newEngine(t, mem, nil).Init(ctx, "s1", "", 0))
	before := blob(t, mem, "s1")

	e := newEngine(t, failingStore{mem}, nil)
	effects, err := e.Execute(ctx, "s1", env("alice", 5_000_000), game.Join{Secret: 1})
	assert.ErrorIs(t, err, errDiskFull)
	assert.Nil(t, effects, "effects must not be released when the commit fails")
	assert.Equal(t, before, blob(t, mem, "s1"))
}

func TestCorruptBlob(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := store.NewMemory()
	require.NoError(t, st.Put(ctx, "s1", StateKey, []byte{0xc1}))
	e := newEngine(t, st, nil)

	_, err := e.GameState(ctx, "s1", 1)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoSession)
}
