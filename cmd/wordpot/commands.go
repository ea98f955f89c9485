package main

import (
	"context"
	"fmt"

	"github.com/lox/wordpot/internal/game"
	"github.com/lox/wordpot/internal/gameid"
)

// InitCmd creates a session.
type InitCmd struct {
	ID          string `help:"Session id (generated when empty)"`
	Password    string `help:"Room password"`
	LevelDesign uint64 `help:"Background value chosen by the host"`
}

func (c *InitCmd) Run(ctx context.Context, g *Globals) error {
	id := c.ID
	if id == "" {
		id = g.Session
	}
	if id == "" {
		id = gameid.Generate()
	}
	a, err := g.open()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.engine.Init(ctx, id, c.Password, c.LevelDesign); err != nil {
		return err
	}
	fmt.Println(id)
	return nil
}

// JoinCmd takes a seat.
type JoinCmd struct {
	SenderFlags `embed:""`
	Secret      uint64   `required:"" help:"Secret contributed to the deck seed; also the key for viewing state"`
	Password    string   `help:"Room password"`
	Cosmetics   []string `help:"Cosmetic item ids to display with the seat"`
}

func (c *JoinCmd) Run(ctx context.Context, g *Globals) error {
	return execute(ctx, g, c.SenderFlags, game.Join{
		Secret:    c.Secret,
		Password:  c.Password,
		Cosmetics: c.Cosmetics,
	})
}

type BuyChipsCmd struct {
	SenderFlags `embed:""`
}

func (c *BuyChipsCmd) Run(ctx context.Context, g *Globals) error {
	return execute(ctx, g, c.SenderFlags, game.BuyChips{})
}

type BetCmd struct {
	SenderFlags `embed:""`
	Amount      uint64 `arg:"" help:"Chips to bet"`
}

func (c *BetCmd) Run(ctx context.Context, g *Globals) error {
	return execute(ctx, g, c.SenderFlags, game.Bet{Amount: c.Amount})
}

type MatchCmd struct {
	SenderFlags `embed:""`
	Amount      uint64 `arg:"" help:"Chips to add; must close the gap to the highest bet"`
}

func (c *MatchCmd) Run(ctx context.Context, g *Globals) error {
	return execute(ctx, g, c.SenderFlags, game.Match{Amount: c.Amount})
}

type FoldCmd struct {
	SenderFlags `embed:""`
}

func (c *FoldCmd) Run(ctx context.Context, g *Globals) error {
	return execute(ctx, g, c.SenderFlags, game.Fold{})
}

type CheckCmd struct {
	SenderFlags `embed:""`
}

func (c *CheckCmd) Run(ctx context.Context, g *Globals) error {
	return execute(ctx, g, c.SenderFlags, game.Check{})
}

type LeaveCmd struct {
	SenderFlags `embed:""`
}

func (c *LeaveCmd) Run(ctx context.Context, g *Globals) error {
	return execute(ctx, g, c.SenderFlags, game.Leave{})
}

// PlayCmd puts down a word. Hand cards are indexes 0-4 and river cards 250-254.
type PlayCmd struct {
	SenderFlags      `embed:""`
	Indexes          []uint `required:"" help:"Card indexes spelling the word, in order"`
	OpenedDictionary bool   `help:"Record that the dictionary was consulted"`
}

func (c *PlayCmd) Run(ctx context.Context, g *Globals) error {
	indexes := make([]byte, len(c.Indexes))
	for i, idx := range c.Indexes {
		if idx > 255 {
			return fmt.Errorf("card index %d out of range", idx)
		}
		indexes[i] = byte(idx)
	}
	return execute(ctx, g, c.SenderFlags, game.PutDownCard{
		Indexes:          indexes,
		OpenedDictionary: c.OpenedDictionary,
	})
}

type NextCmd struct {
	SenderFlags `embed:""`
}

func (c *NextCmd) Run(ctx context.Context, g *Globals) error {
	return execute(ctx, g, c.SenderFlags, game.RequestNextTurn{})
}
