package main

import (
	"context"
	"fmt"

	"github.com/lox/wordpot/internal/display"
	"github.com/lox/wordpot/internal/gameid"
	"github.com/lox/wordpot/internal/script"
)

// ReplayCmd replays a script of commands against a new session in the configured store.
type ReplayCmd struct {
	Script string `arg:"" type:"existingfile" help:"HCL script to replay"`
}

func (c *ReplayCmd) Run(ctx context.Context, g *Globals) error {
	sc, err := script.ParseFile(c.Script)
	if err != nil {
		return err
	}
	id := g.Session
	if id == "" {
		id = gameid.Generate()
	}
	a, err := g.open()
	if err != nil {
		return err
	}
	defer a.Close()

	results, err := sc.Run(ctx, a.engine, id, a.clock)
	for i, r := range results {
		status := "ok"
		if r.Err != nil {
			status = "rejected: " + r.Err.Error()
		}
		fmt.Printf("%3d %-18s %-10s %s\n", i+1, r.Step.Command.Name(), r.Step.Sender, status)
		for _, e := range r.Effects {
			fmt.Printf("      %s\n", display.Effect(e))
		}
	}
	if err != nil {
		return err
	}
	a.logger.Info("Replay finished", "session", id, "steps", len(results))
	return nil
}
