package game

import "errors"

// Rejection kinds. Every rejected command returns a *RejectError that matches exactly
// one of these with errors.Is.
var (
	// ErrAuthorization means the caller may not perform the command: not a participant,
	// wrong password or unknown secret.
	ErrAuthorization = errors.New("game: unauthorized")

	// ErrPhase means the command is not valid in the current round.
	ErrPhase = errors.New("game: wrong phase")

	// ErrValidation means the command arguments or attached funds are invalid.
	ErrValidation = errors.New("game: invalid request")

	// ErrLifecycle covers capacity and session lifecycle: full, already joined, concluded.
	ErrLifecycle = errors.New("game: lifecycle")
)

// RejectError is a command rejection with a player-facing reason.
type RejectError struct {
	Kind   error
	Reason string
}

func (e *RejectError) Error() string {
	return e.Reason
}

func (e *RejectError) Unwrap() error {
	return e.Kind
}

func reject(kind error, reason string) error {
	return &RejectError{Kind: kind, Reason: reason}
}

// Player-facing rejection reasons.
const (
	msgNotInGame         = "You are not in the game"
	msgNextTurnTooEarly  = "You can't advance to the next turn yet"
	msgGameFull          = "Game is full."
	msgWaitingPlayers    = "Still waiting for players."
	msgGameOver          = "The game is already over."
	msgAlreadyJoined     = "You're already in the game and can't join again."
	msgWrongPassword     = "Wrong room password."
	msgBadIndex          = "You cannot place a card that's not in your hand"
	msgCannotPutDown     = "You can't put a card down at the moment"
	msgAlreadyPutDown    = "You already put down a card for this turn. Please wait for your opponent"
	msgDuplicateIndex    = "You can't use the same card more than once"
	msgEmptyWord         = "You have to put down at least one card."
	msgWrongMatch        = "You've sent the wrong bet amount."
	msgNothingToMatch    = "You have nothing to match."
	msgBetFolded         = "You can't bet if you're folded."
	msgPutDownFolded     = "You can't put down a card if you're folded."
	msgCheckMatching     = "You can't check if you're in the matching round."
	msgCannotBet         = "You can't bet at the moment."
	msgCannotCheck       = "You can't check at the moment."
	msgCannotMatch       = "You can only match during a matching round."
	msgAlreadyChecked    = "You already checked this round."
	msgCheckAfterBet     = "You can't check after placing a bet."
	msgBetTooSmall       = "Your bet is below the table minimum."
	msgInsufficientChips = "You don't have enough chips for this bet."
	msgAlreadyFolded     = "You already folded."
	msgFoldAfterWord     = "You can't fold after putting down a word."
	msgTurnOver          = "This turn is over. Request the next turn to continue."
	msgWrongFunds        = "You've sent the wrong funds."
	msgBuyInTooSmall     = "You have to buy at least the minimum amount of chips."
	msgTooManyChips      = "This would take you over the chip limit."
)
