package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Init     InitCmd          `cmd:"" help:"Create a new session"`
	Join     JoinCmd          `cmd:"" help:"Take a seat in a session"`
	BuyChips BuyChipsCmd      `cmd:"buy-chips" help:"Convert attached funds into chips"`
	Bet      BetCmd           `cmd:"" help:"Bet chips in the blind or flop round"`
	Match    MatchCmd         `cmd:"" help:"Match the highest bet"`
	Fold     FoldCmd          `cmd:"" help:"Fold the current turn"`
	Check    CheckCmd         `cmd:"" help:"Pass without betting"`
	Leave    LeaveCmd         `cmd:"" help:"Leave the session and cash out"`
	Play     PlayCmd          `cmd:"" help:"Put down a word"`
	Next     NextCmd          `cmd:"" help:"Start the next turn"`
	State    StateCmd         `cmd:"" help:"Show the session as seen by a player"`
	CanJoin  CanJoinCmd       `cmd:"can-join" help:"Report whether a seat is free"`
	Result   ResultCmd        `cmd:"" help:"Show the outcome of a concluded session"`
	Hint     HintCmd          `cmd:"" help:"Show the best word a player can build"`
	Replay   ReplayCmd        `cmd:"" help:"Replay an HCL command script against a fresh session"`
	Simulate SimulateCmd      `cmd:"" help:"Run bot-vs-bot simulations"`
}

func main() {
	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("wordpot"),
		kong.Description("Deterministic wagering word-game session engine"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
		kong.BindTo(sigCtx, (*context.Context)(nil)),
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
