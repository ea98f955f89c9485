package game

import (
	"slices"

	"github.com/lox/wordpot/words"
)

// Player is a session participant.
type Player struct {
	Addr   string
	Secret uint64
	Hand   []words.Card
	HP     uint8

	Bet      uint64 // accumulated during Blind and Matching
	Bet2     uint64 // accumulated during Flop and Matching2
	Folded   bool
	Checked  bool
	Checked2 bool

	OpenedDictionary bool
	LastAction       LastAction
	Chips            uint64
	Cosmetics        []string
}

// Clone returns a deep copy of the player.
func (p *Player) Clone() *Player {
	cp := *p
	cp.Hand = slices.Clone(p.Hand)
	cp.Cosmetics = slices.Clone(p.Cosmetics)
	return &cp
}

// PhaseBet returns the bet accumulator used during round r.
func (p *Player) PhaseBet(r Round) uint64 {
	if r.second() {
		return p.Bet2
	}
	return p.Bet
}

func (p *Player) addPhaseBet(r Round, amount uint64) {
	if r.second() {
		p.Bet2 += amount
	} else {
		p.Bet += amount
	}
}

// PhaseChecked returns the checked flag used during round r.
func (p *Player) PhaseChecked(r Round) bool {
	if r.second() {
		return p.Checked2
	}
	return p.Checked
}

func (p *Player) setPhaseChecked(r Round, v bool) {
	if r.second() {
		p.Checked2 = v
	} else {
		p.Checked = v
	}
}

// resetTurn clears the per-turn fields ahead of a new turn.
func (p *Player) resetTurn() {
	p.Bet = 0
	p.Bet2 = 0
	p.Folded = false
	p.Checked = false
	p.Checked2 = false
	p.OpenedDictionary = false
	p.LastAction = LastAction{}
}
