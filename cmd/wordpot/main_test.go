package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/wordpot/internal/game"
)

func TestParseCommands(t *testing.T) {
	t.Parallel()

	var cli CLI
	parser, err := kong.New(&cli, kong.Vars{"version": "test"})
	require.NoError(t, err)

	kctx, err := parser.Parse([]string{"--session", "s1", "bet", "--sender", "alice", "--funds", "5", "2000000"})
	require.NoError(t, err)
	assert.Equal(t, "bet <amount>", kctx.Command())
	assert.Equal(t, "s1", cli.Session)
	assert.Equal(t, "alice", cli.Bet.Sender)
	assert.Equal(t, uint64(5), cli.Bet.Funds)
	assert.Equal(t, uint64(2_000_000), cli.Bet.Amount)

	_, err = parser.Parse([]string{"play", "--sender", "bob", "--indexes", "0,1,250"})
	require.NoError(t, err)
	assert.Equal(t, []uint{0, 1, 250}, cli.Play.Indexes)

	_, err = parser.Parse([]string{"fold"})
	require.Error(t, err, "sender is required")
}

func TestCommandsAgainstFileStore(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "wordpot.hcl")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
store {
  driver = "file"
  path   = "`+filepath.Join(dir, "state")+`"
}

log {
  level = "error"
}
`), 0o644))

	ctx := context.Background()
	g := &Globals{Config: cfgPath, Session: "cli1", NoColor: true}

	require.NoError(t, (&InitCmd{}).Run(ctx, g))
	require.NoError(t, (&JoinCmd{SenderFlags: SenderFlags{Sender: "alice", Funds: 10_000_000}, Secret: 11}).Run(ctx, g))
	require.NoError(t, (&JoinCmd{SenderFlags: SenderFlags{Sender: "bob", Funds: 10_000_000}, Secret: 22}).Run(ctx, g))

	err := (&BetCmd{SenderFlags: SenderFlags{Sender: "alice"}, Amount: 500}).Run(ctx, g)
	require.ErrorIs(t, err, game.ErrValidation)

	err = (&PlayCmd{SenderFlags: SenderFlags{Sender: "alice"}, Indexes: []uint{256}}).Run(ctx, g)
	require.ErrorContains(t, err, "out of range")

	a, err := g.open()
	require.NoError(t, err)
	defer a.Close()

	status, err := a.engine.CanJoin(ctx, "cli1")
	require.NoError(t, err)
	assert.Equal(t, 2, status.Players)

	v, err := a.engine.GameState(ctx, "cli1", 11)
	require.NoError(t, err)
	assert.Equal(t, "alice", v.You)
	assert.Equal(t, game.RoundBlind, v.Round)

	require.Error(t, (&InitCmd{}).Run(ctx, g), "session ids are unique")
	require.ErrorContains(t, (&ResultCmd{}).Run(ctx, &Globals{Config: cfgPath}), "session id is required")
}
