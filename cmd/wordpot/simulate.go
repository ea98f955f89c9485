package main

import (
	"context"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/lox/wordpot/internal/config"
	"github.com/lox/wordpot/internal/simulator"
	"github.com/lox/wordpot/internal/statistics"
)

type SimulateCmd struct {
	Sessions   int      `default:"1000" help:"Number of sessions to simulate"`
	Players    int      `default:"2" help:"Bots per session (2-4)"`
	Strategies []string `default:"solver,random" help:"Bot strategies, assigned to seats in rotation"`
	Seed       int64    `default:"0" help:"RNG seed (0 for random)"`
	MaxTurns   uint64   `default:"20" help:"Turn limit when the config sets none"`
	Workers    int      `default:"0" help:"Parallel sessions (0 for GOMAXPROCS)"`
}

func (c *SimulateCmd) Run(ctx context.Context, g *Globals) error {
	cfg, err := config.Load(g.Config, env.ToMap(os.Environ()))
	if err != nil {
		return err
	}
	if g.Debug {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	logger := cfg.Logger(os.Stderr)
	rules, err := cfg.GameRules()
	if err != nil {
		return err
	}
	if rules.MaxTurns == 0 {
		rules.MaxTurns = c.MaxTurns
	}

	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}

	fmt.Printf("Starting simulation: %d sessions, %d players %v (seed: %d)\n",
		c.Sessions, c.Players, c.Strategies, c.Seed)

	sim := simulator.New(simulator.Config{
		Sessions:   c.Sessions,
		Players:    c.Players,
		Strategies: c.Strategies,
		Seed:       c.Seed,
		Workers:    c.Workers,
		Rules:      rules,
		Logger:     logger,
	})

	start := time.Now()
	stats, err := sim.Run(ctx)
	if err != nil {
		return err
	}
	printResults(stats, time.Since(start))
	return nil
}

func printResults(stats *statistics.Statistics, duration time.Duration) {
	low, high := stats.ConfidenceInterval95()

	fmt.Printf("\n=== RESULTS ===\n")
	fmt.Printf("Sessions: %d in %s (%.1f sessions/sec)\n",
		stats.Sessions, duration.Round(time.Millisecond), float64(stats.Sessions)/duration.Seconds())
	fmt.Printf("Turns: mean %.2f ± %.2f SE, median %.1f, p90 %.1f\n",
		stats.Mean(), stats.StdError(), stats.Median(), stats.Percentile(0.9))
	fmt.Printf("95%% CI: [%.2f, %.2f] turns/session\n", low, high)
	fmt.Printf("Chips: bought %d, paid out %d, rake %d, dust %d\n",
		stats.BuyIns, stats.Payouts, stats.Rake, stats.Dust())
	fmt.Printf("Rejected bot commands: %d\n", stats.Rejections)
	if stats.BestWord != "" {
		fmt.Printf("Best word: %s (%d)\n", stats.BestWord, stats.BestScore)
	}

	fmt.Printf("\nBy seat:\n")
	for seat := 1; seat <= statistics.MaxSeats; seat++ {
		ss := stats.SeatResults[seat]
		if ss.Sessions == 0 {
			continue
		}
		fmt.Printf("  seat %d: %d wins of %d, net %.0f/session\n",
			seat, ss.Wins, ss.Sessions, ss.SumNet/float64(ss.Sessions))
	}

	fmt.Printf("\nBy strategy:\n")
	names := make([]string, 0, len(stats.Strategies))
	for name := range stats.Strategies {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		st := stats.Strategies[name]
		fmt.Printf("  %-8s win rate %.1f%%, net %.0f/seat\n",
			name, 100*stats.WinRate(name), st.SumNet/float64(st.Seats))
	}
}
