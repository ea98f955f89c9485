package game

import (
	"errors"
	"fmt"

	"github.com/lox/wordpot/internal/randutil"
	"github.com/lox/wordpot/words"
)

// ErrUnknownCommand is returned by Apply for command types it does not handle.
var ErrUnknownCommand = errors.New("game: unknown command")

// transition carries one command through a private copy of the session.
type transition struct {
	s       *Session
	rules   Rules
	env     Env
	effects []Effect
}

// Apply runs cmd against a copy of s and returns the new session together with the
// effects the host must execute after storing it. s itself is never modified, so a
// rejected command leaves the caller's state exactly as it was.
func Apply(s *Session, rules Rules, env Env, cmd Command) (*Session, []Effect, error) {
	if s == nil {
		return nil, nil, errors.New("game: nil session")
	}
	if rules.Dictionary == nil {
		rules.Dictionary = words.Default()
	}
	t := &transition{s: s.Clone(), rules: rules, env: env}

	var err error
	switch c := cmd.(type) {
	case Join:
		err = t.join(c)
	case BuyChips:
		err = t.buyChips()
	case Bet:
		err = t.bet(c)
	case Match:
		err = t.match(c)
	case Check:
		err = t.check()
	case Fold:
		err = t.fold()
	case Leave:
		err = t.leave()
	case PutDownCard:
		err = t.putDownCard(c)
	case RequestNextTurn:
		err = t.requestNextTurn()
	default:
		err = fmt.Errorf("%w: %T", ErrUnknownCommand, cmd)
	}
	if err != nil {
		return nil, nil, err
	}
	return t.s, t.effects, nil
}

func (t *transition) emit(e Effect) {
	t.effects = append(t.effects, e)
}

// actor returns the calling participant of a session that is still running.
func (t *transition) actor() (*Player, error) {
	if t.s.Concluded() {
		return nil, reject(ErrLifecycle, msgGameOver)
	}
	p := t.s.Player(t.env.Sender)
	if p == nil {
		return nil, reject(ErrAuthorization, msgNotInGame)
	}
	return p, nil
}

// turnActor is actor for commands that act on the current, unresolved turn.
func (t *transition) turnActor() (*Player, error) {
	p, err := t.actor()
	if err != nil {
		return nil, err
	}
	if !t.s.Board.Round.Dealt() {
		return nil, reject(ErrPhase, msgWaitingPlayers)
	}
	if t.s.TurnResolved() {
		return nil, reject(ErrPhase, msgTurnOver)
	}
	return p, nil
}

// attached returns the amount of the single coin sent with the call, or 0 when nothing
// was sent.
func (t *transition) attached() (uint64, error) {
	funds := t.env.Funds
	if len(funds) == 0 {
		return 0, nil
	}
	if len(funds) != 1 || funds[0].Denom != t.rules.Denom || funds[0].Amount == 0 {
		return 0, reject(ErrValidation, msgWrongFunds)
	}
	return funds[0].Amount, nil
}

// credit adds amount to the player's chips within the table limit.
func (t *transition) credit(p *Player, amount uint64) error {
	if amount > t.rules.MaxChips || p.Chips > t.rules.MaxChips-amount {
		return reject(ErrValidation, msgTooManyChips)
	}
	p.Chips += amount
	return nil
}

// topUp credits funds attached to a bet or match.
func (t *transition) topUp(p *Player) error {
	amount, err := t.attached()
	if err != nil || amount == 0 {
		return err
	}
	return t.credit(p, amount)
}

// draw takes n cards from the pile. A pile that is too short gets a fresh deck, seeded
// from the block time, the player secrets and the turn number, appended underneath.
func (t *transition) draw(n int) ([]words.Card, error) {
	if len(t.s.Deck) < n {
		material := append(t.s.Secrets(), t.s.Board.Turn)
		fresh := words.NewDeck(randutil.FromSeed(randutil.Seed(t.env.BlockTime, material)))
		t.s.Deck = append(t.s.Deck, fresh...)
	}
	cards, rest, err := words.Draw(t.s.Deck, n)
	if err != nil {
		return nil, fmt.Errorf("draw %d cards: %w", n, err)
	}
	t.s.Deck = rest
	return cards, nil
}

// resolve settles the turn when a fold or departure left a single player, or when every
// remaining player has put down a word. Otherwise it re-runs round advancement.
func (t *transition) resolve() {
	s := t.s
	if !s.Board.Round.Dealt() || s.TurnResolved() {
		return
	}
	active := s.Active()
	switch {
	case len(active) == 0:
		return
	case len(active) == 1:
		t.payout([]string{active[0].Addr})
	case s.Board.Round == RoundChoice:
		if len(s.Board.Words) >= len(active) {
			t.settleWords()
		}
	default:
		t.advance()
	}
}
