package game

import (
	"slices"

	"github.com/lox/wordpot/words"
)

// PlayerView is one seat as seen by a particular player.
type PlayerView struct {
	Addr       string
	HP         uint8
	Bet        uint64
	Bet2       uint64
	Folded     bool
	Checked    bool
	Checked2   bool
	LastAction LastAction
	Chips      uint64
	Cosmetics  []string
	Hand       []words.Card // only the viewer's own hand
	PutDown    bool
}

// WordView is a submitted word. Cards and Score are only filled in when the viewer may
// see them.
type WordView struct {
	Player  string
	Cards   []words.Card
	Word    string
	Score   uint32
	Visible bool
}

// GameView is the session as seen by one player.
type GameView struct {
	You           string
	Round         Round
	Turn          uint64
	Pool          uint64
	RakePercent   uint64
	River         []words.Card // nil until the flop
	Players       []PlayerView
	Words         []WordView
	WinnerForTurn string
	Winner        string
	StartedTime   uint64
	LevelDesign   uint64
}

// JoinStatus answers whether a seat is available.
type JoinStatus struct {
	CanJoin          bool
	Players          int
	MaxPlayers       int
	RequiresPassword bool
	StartedTime      uint64
}

// Balance is a player's final chip count.
type Balance struct {
	Addr  string
	Chips uint64
}

// Outcome is the final result of a concluded session.
type Outcome struct {
	Winner   string
	Turns    uint64
	Balances []Balance
}

// View returns the session as seen by the player holding secret. Other players' hands
// are never shown. Their words stay hidden until the turn has a winner, and the river
// stays hidden during Blind and Matching.
func (s *Session) View(secret uint64, rules Rules) (*GameView, error) {
	var viewer *Player
	for _, p := range s.Players {
		if p.Secret != secret {
			continue
		}
		if viewer != nil {
			// Ambiguous secrets identify nobody.
			return nil, reject(ErrAuthorization, msgNotInGame)
		}
		viewer = p
	}
	if viewer == nil {
		return nil, reject(ErrAuthorization, msgNotInGame)
	}

	v := &GameView{
		You:           viewer.Addr,
		Round:         s.Board.Round,
		Turn:          s.Board.Turn,
		Pool:          s.Board.Pool,
		RakePercent:   s.Board.RakePercent,
		WinnerForTurn: s.Board.WinnerForTurn,
		Winner:        s.Winner,
		StartedTime:   s.StartedTime,
		LevelDesign:   s.LevelDesign,
	}
	switch s.Board.Round {
	case RoundNone, RoundBlind, RoundMatching:
	default:
		v.River = slices.Clone(s.Board.River)
	}

	for _, p := range s.Players {
		pv := PlayerView{
			Addr:       p.Addr,
			HP:         p.HP,
			Bet:        p.Bet,
			Bet2:       p.Bet2,
			Folded:     p.Folded,
			Checked:    p.Checked,
			Checked2:   p.Checked2,
			LastAction: p.LastAction,
			Chips:      p.Chips,
			Cosmetics:  slices.Clone(p.Cosmetics),
			PutDown:    s.wordOf(p.Addr) >= 0,
		}
		if p == viewer {
			pv.Hand = slices.Clone(p.Hand)
		}
		v.Players = append(v.Players, pv)
	}

	for _, w := range s.Board.Words {
		wv := WordView{Player: w.Player}
		if w.Player == viewer.Addr || s.TurnResolved() {
			wv.Visible = true
			wv.Cards = slices.Clone(w.Cards)
			wv.Word = words.Spell(w.Cards)
			wv.Score = WordScore(w, rules)
		}
		v.Words = append(v.Words, wv)
	}
	return v, nil
}

// JoinStatus reports whether another player can take a seat.
func (s *Session) JoinStatus(rules Rules) JoinStatus {
	seats := rules.MaxPlayers
	if seats <= 0 || seats > MaxPlayers {
		seats = MaxPlayers
	}
	return JoinStatus{
		CanJoin:          !s.Concluded() && len(s.Players) < seats,
		Players:          len(s.Players),
		MaxPlayers:       seats,
		RequiresPassword: s.HasPassword,
		StartedTime:      s.StartedTime,
	}
}

// Outcome returns the final winner and balances, or an ErrLifecycle rejection while the
// session is still running.
func (s *Session) Outcome() (*Outcome, error) {
	if !s.Concluded() {
		return nil, reject(ErrLifecycle, msgWaitingPlayers)
	}
	out := &Outcome{Winner: s.Winner, Turns: s.Board.Turn}
	for _, p := range s.Players {
		out.Balances = append(out.Balances, Balance{Addr: p.Addr, Chips: p.Chips})
	}
	return out, nil
}
