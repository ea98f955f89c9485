package game

import (
	"fmt"
	"slices"

	"github.com/lox/wordpot/internal/randutil"
	"github.com/lox/wordpot/words"
)

func (t *transition) seats() int {
	if t.rules.MaxPlayers <= 0 || t.rules.MaxPlayers > MaxPlayers {
		return MaxPlayers
	}
	return t.rules.MaxPlayers
}

func (t *transition) join(c Join) error {
	s := t.s
	if s.Concluded() {
		return reject(ErrLifecycle, msgGameOver)
	}
	if s.HasPassword && c.Password != s.Password {
		return reject(ErrAuthorization, msgWrongPassword)
	}
	if len(s.Players) >= t.seats() {
		return reject(ErrLifecycle, msgGameFull)
	}
	if s.Player(t.env.Sender) != nil {
		return reject(ErrLifecycle, msgAlreadyJoined)
	}

	p := &Player{
		Addr:      t.env.Sender,
		Secret:    c.Secret,
		HP:        t.rules.StartingHP,
		Cosmetics: slices.Clone(c.Cosmetics),
	}
	amount, err := t.attached()
	if err != nil {
		return err
	}
	if amount > 0 {
		if amount < t.rules.MinBuyIn {
			return reject(ErrValidation, msgBuyInTooSmall)
		}
		if err := t.credit(p, amount); err != nil {
			return err
		}
	}
	s.Players = append(s.Players, p)

	switch {
	case !s.Board.Round.Dealt():
		if len(s.Players) >= 2 {
			return t.deal()
		}
	default:
		hand, err := t.draw(HandSize)
		if err != nil {
			return err
		}
		p.Hand = hand
		// Seats taken mid-turn wait for the next one.
		if s.Board.Round != RoundBlind || s.TurnResolved() {
			p.Folded = true
			p.LastAction = LastAction{Kind: ActionFolded}
		}
	}
	return nil
}

// deal generates the deck from the block time and the secrets of everyone seated,
// draws the river and then a hand for every player.
func (t *transition) deal() error {
	s := t.s
	seed := randutil.Seed(t.env.BlockTime, s.Secrets())
	s.Deck = words.NewDeck(randutil.FromSeed(seed))

	river, err := t.draw(RiverSize)
	if err != nil {
		return fmt.Errorf("deal river: %w", err)
	}
	s.Board.River = river
	for _, p := range s.Players {
		if len(p.Hand) > 0 {
			continue
		}
		if p.Hand, err = t.draw(HandSize); err != nil {
			return fmt.Errorf("deal hand: %w", err)
		}
	}
	s.Board.Round = RoundBlind
	s.StartedTime = t.env.BlockTime
	return nil
}

func (t *transition) buyChips() error {
	p, err := t.actor()
	if err != nil {
		return err
	}
	amount, err := t.attached()
	if err != nil {
		return err
	}
	if amount == 0 {
		return reject(ErrValidation, msgWrongFunds)
	}
	if amount < t.rules.MinBuyIn {
		return reject(ErrValidation, msgBuyInTooSmall)
	}
	return t.credit(p, amount)
}

func (t *transition) leave() error {
	p, err := t.actor()
	if err != nil {
		return err
	}
	s := t.s
	if p.Chips > 0 {
		t.emit(Transfer{To: p.Addr, Amount: p.Chips, Denom: t.rules.Denom})
	}
	// Bets already in the pool stay there.
	s.Players = slices.DeleteFunc(s.Players, func(q *Player) bool { return q.Addr == p.Addr })
	if i := s.wordOf(p.Addr); i >= 0 {
		s.Board.Words = slices.Delete(s.Board.Words, i, i+1)
	}
	t.resolve()
	return nil
}
