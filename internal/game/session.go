package game

import (
	"slices"

	"github.com/lox/wordpot/words"
)

// RiverSize and HandSize are the number of community and private cards.
const (
	RiverSize = 5
	HandSize  = 5
)

// Word is a submitted word for the current turn.
type Word struct {
	Cards  []words.Card
	Player string
}

// Board holds the state of the current turn.
type Board struct {
	Round         Round
	Pool          uint64
	RakePercent   uint64
	River         []words.Card
	Words         []Word
	WinnerForTurn string
	Turn          uint64
}

// Session is the root aggregate of one game. It is only ever changed through Apply,
// which works on a copy.
type Session struct {
	Players     []*Player
	Deck        []words.Card
	Board       Board
	Winner      string
	Password    string
	HasPassword bool
	StartedTime uint64
	LevelDesign uint64
}

// NewSession creates an empty session waiting for players. An empty password leaves
// the room open.
func NewSession(rules Rules, password string, levelDesign uint64) *Session {
	return &Session{
		Board:       Board{Round: RoundNone, RakePercent: rules.RakePercent},
		Password:    password,
		HasPassword: password != "",
		LevelDesign: levelDesign,
	}
}

// Clone returns a deep copy of the session.
func (s *Session) Clone() *Session {
	cp := *s
	if s.Players != nil {
		cp.Players = make([]*Player, len(s.Players))
		for i, p := range s.Players {
			cp.Players[i] = p.Clone()
		}
	}
	cp.Deck = slices.Clone(s.Deck)
	cp.Board.River = slices.Clone(s.Board.River)
	if s.Board.Words != nil {
		cp.Board.Words = make([]Word, len(s.Board.Words))
		for i, w := range s.Board.Words {
			cp.Board.Words[i] = Word{Cards: slices.Clone(w.Cards), Player: w.Player}
		}
	}
	return &cp
}

// Player returns the participant with addr, or nil.
func (s *Session) Player(addr string) *Player {
	for _, p := range s.Players {
		if p.Addr == addr {
			return p
		}
	}
	return nil
}

// Concluded reports whether the session has a final winner.
func (s *Session) Concluded() bool {
	return s.Winner != ""
}

// TurnResolved reports whether the current turn has a winner and awaits RequestNextTurn.
func (s *Session) TurnResolved() bool {
	return s.Board.WinnerForTurn != ""
}

// Active returns the non-folded players in join order.
func (s *Session) Active() []*Player {
	out := make([]*Player, 0, len(s.Players))
	for _, p := range s.Players {
		if !p.Folded {
			out = append(out, p)
		}
	}
	return out
}

// Secrets returns every player secret in join order.
func (s *Session) Secrets() []uint64 {
	out := make([]uint64, len(s.Players))
	for i, p := range s.Players {
		out[i] = p.Secret
	}
	return out
}

// wordOf returns the index of addr's submission, or -1.
func (s *Session) wordOf(addr string) int {
	return slices.IndexFunc(s.Board.Words, func(w Word) bool { return w.Player == addr })
}

// OutstandingBets is the sum of every player's bet accumulators.
func (s *Session) OutstandingBets() uint64 {
	var sum uint64
	for _, p := range s.Players {
		sum += p.Bet + p.Bet2
	}
	return sum
}
