package game

import "strconv"

// Round is the betting phase of the current turn.
type Round uint8

const (
	// RoundNone is the state before dealing.
	RoundNone Round = iota
	// RoundBlind: river hidden, every player bets or checks.
	RoundBlind
	// RoundMatching: players below the highest blind bet match it or fold.
	RoundMatching
	// RoundFlop: river shown, second betting phase.
	RoundFlop
	// RoundMatching2 is Matching for the flop bets.
	RoundMatching2
	// RoundChoice: players put down words.
	RoundChoice
)

func (r Round) String() string {
	if int(r) >= len(roundNames) {
		return "unknown"
	}
	return roundNames[r]
}

var roundNames = [...]string{"none", "blind", "matching", "flop", "matching2", "choice"}

// Valid reports whether r is one of the defined rounds.
func (r Round) Valid() bool {
	return r <= RoundChoice
}

// Dealt reports whether cards have been dealt for the turn.
func (r Round) Dealt() bool {
	return r != RoundNone
}

// Betting reports whether bets and checks are accepted (Blind or Flop).
func (r Round) Betting() bool {
	return r == RoundBlind || r == RoundFlop
}

// Matching reports whether r is one of the matching sub-phases.
func (r Round) Matching() bool {
	return r == RoundMatching || r == RoundMatching2
}

// second reports whether r belongs to the flop half of the turn, which uses Bet2 and
// Checked2.
func (r Round) second() bool {
	return r == RoundFlop || r == RoundMatching2
}

// matchingFor returns the matching sub-phase of r's main phase.
func (r Round) matchingFor() Round {
	if r.second() {
		return RoundMatching2
	}
	return RoundMatching
}

// next returns the main phase that follows r's betting half.
func (r Round) next() Round {
	if r.second() {
		return RoundChoice
	}
	return RoundFlop
}

// ActionKind tags a player's last recorded action.
type ActionKind uint8

const (
	ActionNone ActionKind = iota
	ActionChecked
	ActionFolded
	ActionSentBet
	ActionMatchedBet
	ActionChoseWord
)

func (a ActionKind) String() string {
	if int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

var actionNames = [...]string{"none", "checked", "folded", "sent_bet", "matched_bet", "chose_word"}

// LastAction is the most recent action of a player in the current sub-phase. Amount is
// only meaningful for ActionSentBet.
type LastAction struct {
	Kind   ActionKind
	Amount uint64
}

func (a LastAction) String() string {
	if a.Kind == ActionSentBet {
		return a.Kind.String() + "(" + strconv.FormatUint(a.Amount, 10) + ")"
	}
	return a.Kind.String()
}
