package game

import (
	"strconv"

	"github.com/lox/wordpot/words"
)

// WordScore scores a submission with the dictionary in rules.
func WordScore(w Word, rules Rules) uint32 {
	dict := rules.Dictionary
	if dict == nil {
		dict = words.Default()
	}
	return words.Score(w.Cards, dict)
}

// settleWords pays the pool to every submission sharing the top score.
func (t *transition) settleWords() {
	var (
		best    uint32
		winners []string
	)
	for _, w := range t.s.Board.Words {
		score := WordScore(w, t.rules)
		switch {
		case winners == nil || score > best:
			best = score
			winners = []string{w.Player}
		case score == best:
			winners = append(winners, w.Player)
		}
	}
	if len(winners) > 0 {
		t.payout(winners)
	}
}

// payout takes the rake off the pool and splits the rest evenly between winners. The
// remainder of the integer division stays unassigned. The rake percent is the one stored
// with the session.
func (t *transition) payout(winners []string) {
	s := t.s
	pool := s.Board.Pool
	// The rake is only taken when there is a jackpot to receive it.
	var rake uint64
	if t.rules.JackpotAddress != "" {
		rake = pool * s.Board.RakePercent / 100
	}
	share := (pool - rake) / uint64(len(winners))

	for _, addr := range winners {
		if p := s.Player(addr); p != nil {
			p.Chips += share
		}
	}
	if rake > 0 {
		t.emit(Transfer{To: t.rules.JackpotAddress, Amount: rake, Denom: t.rules.Denom})
	}
	for _, p := range s.Players {
		p.Bet = 0
		p.Bet2 = 0
	}
	s.Board.Pool = 0
	s.Board.WinnerForTurn = winners[0]
}

func (t *transition) requestNextTurn() error {
	if _, err := t.actor(); err != nil {
		return err
	}
	s := t.s
	if !s.Board.Round.Dealt() {
		return reject(ErrPhase, msgWaitingPlayers)
	}
	if !s.TurnResolved() {
		return reject(ErrPhase, msgNextTurnTooEarly)
	}

	s.Board.Words = nil
	s.Board.WinnerForTurn = ""
	s.Board.Turn++
	for _, p := range s.Players {
		p.resetTurn()
	}

	river, err := t.draw(RiverSize)
	if err != nil {
		return err
	}
	s.Board.River = river
	for _, p := range s.Players {
		if missing := HandSize - len(p.Hand); missing > 0 {
			cards, err := t.draw(missing)
			if err != nil {
				return err
			}
			p.Hand = append(p.Hand, cards...)
		}
		if p.Chips < t.rules.MinChips {
			p.Folded = true
			p.LastAction = LastAction{Kind: ActionFolded}
		}
	}
	s.Board.Round = RoundBlind

	t.concludeIfOver()
	return nil
}

// concludeIfOver ends the session once fewer than two players can afford to play or the
// turn limit is reached. The richest player wins, the earliest to join on ties, and every
// balance is paid out.
func (t *transition) concludeIfOver() {
	s := t.s
	funded := 0
	for _, p := range s.Players {
		if p.Chips >= t.rules.MinChips {
			funded++
		}
	}
	limitReached := t.rules.MaxTurns > 0 && s.Board.Turn >= t.rules.MaxTurns
	if funded >= 2 && !limitReached {
		return
	}
	if len(s.Players) == 0 {
		return
	}

	winner := s.Players[0]
	for _, p := range s.Players[1:] {
		if p.Chips > winner.Chips {
			winner = p
		}
	}
	s.Winner = winner.Addr

	for _, p := range s.Players {
		if p.Chips > 0 {
			t.emit(Transfer{To: p.Addr, Amount: p.Chips, Denom: t.rules.Denom})
		}
	}
	if t.rules.ResultsAddress != "" {
		t.emit(Notify{
			Target: t.rules.ResultsAddress,
			Event:  EventConcluded,
			Attributes: map[string]string{
				"winner": winner.Addr,
				"chips":  strconv.FormatUint(winner.Chips, 10),
				"turns":  strconv.FormatUint(s.Board.Turn, 10),
			},
		})
	}
}
