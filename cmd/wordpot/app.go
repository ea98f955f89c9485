package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/wordpot/internal/config"
	"github.com/lox/wordpot/internal/display"
	"github.com/lox/wordpot/internal/engine"
	"github.com/lox/wordpot/internal/game"
	"github.com/lox/wordpot/internal/store"
)

// Globals are flags shared by every command.
type Globals struct {
	Config  string `short:"c" default:"wordpot.hcl" help:"Config file (HCL); a missing file means defaults"`
	Session string `short:"s" env:"WORDPOT_SESSION" help:"Session id"`
	Debug   bool   `help:"Enable debug logging"`
	NoColor bool   `help:"Disable colored output"`
}

// app is everything a command needs to talk to the engine.
type app struct {
	cfg    *config.Config
	logger *log.Logger
	store  store.Store
	engine *engine.Engine
	clock  quartz.Clock
	out    *display.Renderer
}

func (g *Globals) open() (*app, error) {
	cfg, err := config.Load(g.Config, env.ToMap(os.Environ()))
	if err != nil {
		return nil, err
	}
	if g.Debug {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger := cfg.Logger(os.Stderr)
	rules, err := cfg.GameRules()
	if err != nil {
		return nil, err
	}
	st, err := cfg.OpenStore()
	if err != nil {
		return nil, err
	}
	if cfg.Store.Driver == store.DriverMemory {
		logger.Warn("Memory store does not outlive this command")
	}

	return &app{
		cfg:    cfg,
		logger: logger,
		store:  st,
		engine: engine.New(st, rules, logger),
		clock:  quartz.NewReal(),
		out:    display.New(os.Stdout, !g.NoColor),
	}, nil
}

func (a *app) Close() error {
	return a.store.Close()
}

func (g *Globals) session() (string, error) {
	if g.Session == "" {
		return "", errors.New("a session id is required (--session or WORDPOT_SESSION)")
	}
	return g.Session, nil
}

// SenderFlags identify the caller of a command and the funds attached to it.
type SenderFlags struct {
	Sender string `required:"" help:"Address sending the command"`
	Funds  uint64 `help:"Funds attached to the command, in the configured denomination"`
}

func (f SenderFlags) env(a *app) game.Env {
	e := game.Env{
		Sender:    f.Sender,
		BlockTime: uint64(a.clock.Now().Unix()),
	}
	if f.Funds > 0 {
		e.Funds = []game.Coin{{Denom: a.engine.Rules().Denom, Amount: f.Funds}}
	}
	return e
}

// execute runs cmd against the selected session and prints the resulting effects.
func execute(ctx context.Context, g *Globals, f SenderFlags, cmd game.Command) error {
	id, err := g.session()
	if err != nil {
		return err
	}
	a, err := g.open()
	if err != nil {
		return err
	}
	defer a.Close()

	effects, err := a.engine.Execute(ctx, id, f.env(a), cmd)
	if err != nil {
		var reject *game.RejectError
		if errors.As(err, &reject) {
			return fmt.Errorf("%s rejected: %w", cmd.Name(), err)
		}
		return err
	}
	a.out.Effects(effects)
	return nil
}
