package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/wordpot/words"
)

type StateCmd struct {
	Secret uint64 `required:"" help:"Secret the player joined with"`
}

func (c *StateCmd) Run(ctx context.Context, g *Globals) error {
	id, err := g.session()
	if err != nil {
		return err
	}
	a, err := g.open()
	if err != nil {
		return err
	}
	defer a.Close()

	v, err := a.engine.GameState(ctx, id, c.Secret)
	if err != nil {
		return err
	}
	a.out.View(v)
	return nil
}

type CanJoinCmd struct{}

func (c *CanJoinCmd) Run(ctx context.Context, g *Globals) error {
	id, err := g.session()
	if err != nil {
		return err
	}
	a, err := g.open()
	if err != nil {
		return err
	}
	defer a.Close()

	status, err := a.engine.CanJoin(ctx, id)
	if err != nil {
		return err
	}
	a.out.JoinStatus(status)
	return nil
}

type ResultCmd struct{}

func (c *ResultCmd) Run(ctx context.Context, g *Globals) error {
	id, err := g.session()
	if err != nil {
		return err
	}
	a, err := g.open()
	if err != nil {
		return err
	}
	defer a.Close()

	outcome, err := a.engine.Result(ctx, id)
	if err != nil {
		return err
	}
	a.out.Outcome(outcome)
	return nil
}

// HintCmd solves the player's current hand against the visible river.
type HintCmd struct {
	Secret uint64 `required:"" help:"Secret the player joined with"`
}

func (c *HintCmd) Run(ctx context.Context, g *Globals) error {
	id, err := g.session()
	if err != nil {
		return err
	}
	a, err := g.open()
	if err != nil {
		return err
	}
	defer a.Close()

	v, err := a.engine.GameState(ctx, id, c.Secret)
	if err != nil {
		return err
	}
	var hand []words.Card
	for _, p := range v.Players {
		if p.Addr == v.You {
			hand = p.Hand
		}
	}
	best, ok := words.Solve(a.engine.Rules().Dictionary, hand, v.River)
	if !ok {
		fmt.Println("no word available")
		return nil
	}
	idx := make([]string, len(best.Indexes))
	for i, b := range best.Indexes {
		idx[i] = strconv.Itoa(int(b))
	}
	fmt.Printf("%s score=%d --indexes %s\n", best.Word, best.Score, strings.Join(idx, ","))
	return nil
}
