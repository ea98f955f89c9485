// Package simulator plays many independent seeded sessions between bots and collects
// statistics. Sessions run in parallel; each one is deterministic for its seed.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/wordpot/internal/engine"
	"github.com/lox/wordpot/internal/game"
	"github.com/lox/wordpot/internal/randutil"
	"github.com/lox/wordpot/internal/statistics"
	"github.com/lox/wordpot/internal/store"
)

// ErrStalled is returned when no bot can make progress in a session.
var ErrStalled = errors.New("simulator: session stalled")

// Config holds configuration for running simulations
type Config struct {
	Sessions   int
	Players    int      // 2 to 4
	Strategies []string // assigned to seats in rotation
	Seed       int64
	BuyIn      uint64 // 0 means ten minimum buy-ins
	MaxSteps   int    // commands per session before giving up, 0 for the default
	Workers    int    // 0 uses GOMAXPROCS
	Rules      game.Rules
	Logger     *log.Logger
}

// Simulator runs word-game sessions between bots
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Players == 0 {
		config.Players = 2
	}
	if len(config.Strategies) == 0 {
		config.Strategies = []string{StrategySolver}
	}
	if config.BuyIn == 0 {
		config.BuyIn = 10 * config.Rules.MinBuyIn
	}
	if config.MaxSteps == 0 {
		config.MaxSteps = 10_000
	}
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	return &Simulator{config: config}
}

func (s *Simulator) validate() error {
	if s.config.Sessions <= 0 {
		return fmt.Errorf("sessions must be positive, got %d", s.config.Sessions)
	}
	if s.config.Players < 2 || s.config.Players > game.MaxPlayers {
		return fmt.Errorf("players must be between 2 and %d, got %d", game.MaxPlayers, s.config.Players)
	}
	for _, st := range s.config.Strategies {
		switch st {
		case StrategySolver, StrategyRandom:
		default:
			return fmt.Errorf("unknown strategy %q (want one of %s)", st, strings.Join(Strategies, ", "))
		}
	}
	if s.config.Rules.MaxTurns == 0 {
		return fmt.Errorf("rules must set a turn limit for simulation")
	}
	return s.config.Rules.Validate()
}

// Run plays every session and returns the aggregate statistics.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	// Every session lives in one shared store under its own id.
	st := store.NewMemory()
	results := make([]statistics.SessionResult, s.config.Sessions)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)
	for i := range s.config.Sessions {
		seed := s.config.Seed + int64(i)
		g.Go(func() error {
			result, err := s.playSession(ctx, st, seed)
			if err != nil {
				return fmt.Errorf("session %d (seed %d): %w", i+1, seed, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for _, r := range results {
		stats.Add(r)
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	return stats, nil
}

// playSession plays one session to conclusion.
func (s *Simulator) playSession(ctx context.Context, st store.Store, seed int64) (statistics.SessionResult, error) {
	rng := randutil.New(seed)
	rules := s.config.Rules
	logger := s.config.Logger.With("seed", seed)
	eng := engine.New(st, rules, logger)

	id := fmt.Sprintf("sim%d", seed)
	if err := eng.Init(ctx, id, "", rng.Uint64N(8)); err != nil {
		return statistics.SessionResult{}, err
	}

	result := statistics.SessionResult{Seed: seed}
	blockTime := 1_600_000_000 + uint64(rng.Uint32())
	bots := make([]*bot, s.config.Players)
	for i := range bots {
		b := &bot{
			addr:     fmt.Sprintf("seat%d", i+1),
			secret:   rng.Uint64(),
			strategy: s.config.Strategies[i%len(s.config.Strategies)],
			rng:      rng,
			rules:    rules,
		}
		bots[i] = b
		env := game.Env{
			Sender:    b.addr,
			BlockTime: blockTime,
			Funds:     []game.Coin{{Denom: rules.Denom, Amount: s.config.BuyIn}},
		}
		if _, err := eng.Execute(ctx, id, env, game.Join{Secret: b.secret}); err != nil {
			return result, fmt.Errorf("join %s: %w", b.addr, err)
		}
		result.Seats = append(result.Seats, statistics.SeatResult{Seat: i + 1, Strategy: b.strategy, BuyIn: s.config.BuyIn})
	}

	for steps := 0; ; {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		acted := false
		for _, b := range bots {
			v, err := eng.GameState(ctx, id, b.secret)
			if err != nil {
				return result, err
			}
			if v.Winner != "" {
				return s.finish(ctx, eng, id, bots, result)
			}
			s.trackWords(v, &result)

			cmd := b.decide(v)
			if cmd == nil {
				continue
			}
			if steps++; steps > s.config.MaxSteps {
				return result, fmt.Errorf("%w after %d steps", ErrStalled, s.config.MaxSteps)
			}
			acted = true

			env := game.Env{Sender: b.addr, BlockTime: blockTime + uint64(steps)}
			effects, err := eng.Execute(ctx, id, env, cmd)
			var rej *game.RejectError
			if errors.As(err, &rej) {
				result.Rejections++
				logger.Debug("Bot command rejected", "bot", b.addr, "command", cmd.Name(), "reason", rej.Reason)
				if _, isFold := cmd.(game.Fold); isFold {
					return result, fmt.Errorf("%s cannot fold: %w", b.addr, err)
				}
				effects, err = eng.Execute(ctx, id, env, game.Fold{})
			}
			if err != nil {
				return result, err
			}
			result.Rake += rakeOf(effects, rules)
		}
		if !acted {
			return result, ErrStalled
		}
	}
}

// trackWords records the best word revealed once a turn resolves.
func (s *Simulator) trackWords(v *game.GameView, result *statistics.SessionResult) {
	if v.WinnerForTurn == "" {
		return
	}
	for _, w := range v.Words {
		if w.Visible && w.Score > result.BestScore {
			result.BestScore = w.Score
			result.BestWord = w.Word
		}
	}
}

func (s *Simulator) finish(ctx context.Context, eng *engine.Engine, id string, bots []*bot, result statistics.SessionResult) (statistics.SessionResult, error) {
	out, err := eng.Result(ctx, id)
	if err != nil {
		return result, err
	}
	result.Turns = out.Turns
	for _, bal := range out.Balances {
		for i, b := range bots {
			if b.addr != bal.Addr {
				continue
			}
			result.Seats[i].Final = bal.Chips
			if bal.Addr == out.Winner {
				result.Winner = i + 1
			}
		}
	}
	return result, nil
}

func rakeOf(effects []game.Effect, rules game.Rules) uint64 {
	var rake uint64
	for _, e := range effects {
		if t, ok := e.(game.Transfer); ok && t.To == rules.JackpotAddress {
			rake += t.Amount
		}
	}
	return rake
}
