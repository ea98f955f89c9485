package game

import (
	"fmt"

	"github.com/lox/wordpot/words"
)

// MaxPlayers is the hard seat limit of a session.
const MaxPlayers = 4

// Rules are the table parameters a session is played under. They are supplied by the
// host on every call and are not stored in the session, except the rake percentage
// which is fixed at creation.
type Rules struct {
	MaxPlayers  int
	StartingHP  uint8
	Denom       string
	MinBet      uint64
	MinChips    uint64 // players below this are sat out at the start of a turn
	MinBuyIn    uint64
	MaxChips    uint64
	RakePercent uint64
	MaxTurns    uint64 // 0 means no limit

	JackpotAddress string // receives the rake
	ResultsAddress string // notified when the session concludes, if set

	Dictionary *words.Dictionary
}

// DefaultRules returns the standard table: four seats, 1 SCRT minimum bet and buy-in,
// 5% rake.
func DefaultRules() Rules {
	return Rules{
		MaxPlayers:     MaxPlayers,
		StartingHP:     5,
		Denom:          "uscrt",
		MinBet:         1_000_000,
		MinChips:       1_000_000,
		MinBuyIn:       1_000_000,
		MaxChips:       100_000_000,
		RakePercent:    5,
		JackpotAddress: "jackpot",
		Dictionary:     words.Default(),
	}
}

// Validate checks the rules are internally consistent.
func (r Rules) Validate() error {
	if r.MaxPlayers < 2 || r.MaxPlayers > MaxPlayers {
		return fmt.Errorf("max players must be between 2 and %d, got %d", MaxPlayers, r.MaxPlayers)
	}
	if r.Denom == "" {
		return fmt.Errorf("denom must be set")
	}
	if r.MinBet == 0 {
		return fmt.Errorf("minimum bet must be positive")
	}
	if r.MinBuyIn > r.MaxChips {
		return fmt.Errorf("minimum buy-in %d exceeds chip limit %d", r.MinBuyIn, r.MaxChips)
	}
	if r.RakePercent > 100 {
		return fmt.Errorf("rake percent must be at most 100, got %d", r.RakePercent)
	}
	if r.RakePercent > 0 && r.JackpotAddress == "" {
		return fmt.Errorf("jackpot address is required when rake is enabled")
	}
	if r.Dictionary == nil || r.Dictionary.Len() == 0 {
		return fmt.Errorf("dictionary must not be empty")
	}
	return nil
}
