package game

// Coin is an amount of funds attached to a call.
type Coin struct {
	Denom  string
	Amount uint64
}

// Env is the caller context supplied by the host with every command.
type Env struct {
	Sender    string
	BlockTime uint64
	Funds     []Coin
}

// Command is one of the mutating operations a participant can send.
type Command interface {
	// Name is the command's wire name.
	Name() string
	command()
}

// Join takes a seat. Secret is the caller's contribution to the deck seed.
type Join struct {
	Secret    uint64
	Password  string
	Cosmetics []string
}

// BuyChips converts the attached funds into chips.
type BuyChips struct{}

// Bet adds Amount chips to the caller's bet for the current betting phase.
type Bet struct {
	Amount uint64
}

// Match pays the gap to the highest bet during a matching round.
type Match struct {
	Amount uint64
}

// Fold withdraws the caller from the current turn.
type Fold struct{}

// Check passes without betting.
type Check struct{}

// Leave gives up the seat and cashes out the caller's chips.
type Leave struct{}

// PutDownCard submits a word. Indexes 0-4 address hand cards and 250-254 the river.
type PutDownCard struct {
	Indexes          []byte
	OpenedDictionary bool
}

// RequestNextTurn starts the next turn once the current one has a winner.
type RequestNextTurn struct{}

func (Join) Name() string            { return "join" }
func (BuyChips) Name() string        { return "buy_chips" }
func (Bet) Name() string             { return "bet" }
func (Match) Name() string           { return "match" }
func (Fold) Name() string            { return "fold" }
func (Check) Name() string           { return "check" }
func (Leave) Name() string           { return "leave" }
func (PutDownCard) Name() string     { return "put_down_card" }
func (RequestNextTurn) Name() string { return "request_next_turn" }

func (Join) command()            {}
func (BuyChips) command()        {}
func (Bet) command()             {}
func (Match) command()           {}
func (Fold) command()            {}
func (Check) command()           {}
func (Leave) command()           {}
func (PutDownCard) command()     {}
func (RequestNextTurn) command() {}
