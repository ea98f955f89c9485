package simulator

import (
	"math/rand/v2"

	"github.com/lox/wordpot/internal/game"
	"github.com/lox/wordpot/words"
)

// Bot strategies.
const (
	StrategySolver = "solver" // bets on strong hands, always plays the best word
	StrategyRandom = "random" // picks legal-looking moves at random
)

// Strategies lists the known strategies.
var Strategies = []string{StrategySolver, StrategyRandom}

// bot decides one player's next command from its view of the session.
type bot struct {
	addr     string
	secret   uint64
	strategy string
	rng      *rand.Rand
	rules    game.Rules
}

func phaseBet(p game.PlayerView, r game.Round) uint64 {
	switch r {
	case game.RoundFlop, game.RoundMatching2:
		return p.Bet2
	default:
		return p.Bet
	}
}

// decide returns the command to send, or nil when the bot has nothing to do.
func (b *bot) decide(v *game.GameView) game.Command {
	if v.Winner != "" {
		return nil
	}
	if v.WinnerForTurn != "" {
		return game.RequestNextTurn{}
	}

	var me game.PlayerView
	var highest uint64
	for _, p := range v.Players {
		if p.Addr == b.addr {
			me = p
		}
		if !p.Folded {
			highest = max(highest, phaseBet(p, v.Round))
		}
	}
	if me.Addr == "" || me.Folded {
		return nil
	}

	switch v.Round {
	case game.RoundBlind, game.RoundFlop:
		if me.LastAction.Kind != game.ActionNone {
			return nil
		}
		return b.wager(v, me)
	case game.RoundMatching, game.RoundMatching2:
		gap := highest - phaseBet(me, v.Round)
		if gap == 0 && phaseBet(me, v.Round) > 0 {
			return nil
		}
		if gap == 0 || gap > me.Chips {
			return game.Fold{}
		}
		return game.Match{Amount: gap}
	case game.RoundChoice:
		if me.PutDown {
			return nil
		}
		return b.word(v, me)
	}
	return nil
}

// wager opens a betting phase with a check or a bet.
func (b *bot) wager(v *game.GameView, me game.PlayerView) game.Command {
	minBet := b.rules.MinBet
	if me.Chips < minBet {
		return game.Check{}
	}

	switch b.strategy {
	case StrategyRandom:
		switch n := b.rng.IntN(10); {
		case n < 4:
			return game.Check{}
		case n < 9:
			multiple := uint64(1 + b.rng.IntN(3))
			return game.Bet{Amount: min(minBet*multiple, me.Chips)}
		default:
			return game.Fold{}
		}
	default:
		best, ok := words.Solve(b.rules.Dictionary, me.Hand, v.River)
		switch {
		case !ok:
			return game.Check{}
		case best.Score >= 12 && me.Chips >= 2*minBet:
			return game.Bet{Amount: 2 * minBet}
		case best.Score >= 6:
			return game.Bet{Amount: minBet}
		default:
			return game.Check{}
		}
	}
}

// word submits the best word the bot can see, or a single card when it has nothing.
func (b *bot) word(v *game.GameView, me game.PlayerView) game.Command {
	if b.strategy != StrategyRandom || b.rng.IntN(2) == 0 {
		if best, ok := words.Solve(b.rules.Dictionary, me.Hand, v.River); ok {
			return game.PutDownCard{Indexes: best.Indexes, OpenedDictionary: b.strategy == StrategySolver}
		}
	}
	if len(me.Hand) > 0 {
		return game.PutDownCard{Indexes: []byte{byte(b.rng.IntN(len(me.Hand)))}}
	}
	return game.PutDownCard{Indexes: []byte{words.RiverOffset}}
}
