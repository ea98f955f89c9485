package game

func (t *transition) bet(c Bet) error {
	p, err := t.turnActor()
	if err != nil {
		return err
	}
	r := t.s.Board.Round
	if p.Folded {
		return reject(ErrPhase, msgBetFolded)
	}
	if !r.Betting() {
		return reject(ErrPhase, msgCannotBet)
	}
	if p.PhaseChecked(r) {
		return reject(ErrValidation, msgAlreadyChecked)
	}
	if err := t.topUp(p); err != nil {
		return err
	}
	if c.Amount < t.rules.MinBet {
		return reject(ErrValidation, msgBetTooSmall)
	}
	if p.Chips < c.Amount {
		return reject(ErrValidation, msgInsufficientChips)
	}

	t.stake(p, c.Amount)
	p.LastAction = LastAction{Kind: ActionSentBet, Amount: c.Amount}
	t.advance()
	return nil
}

func (t *transition) check() error {
	p, err := t.turnActor()
	if err != nil {
		return err
	}
	r := t.s.Board.Round
	switch {
	case p.Folded:
		return reject(ErrPhase, msgBetFolded)
	case r.Matching():
		return reject(ErrPhase, msgCheckMatching)
	case !r.Betting():
		return reject(ErrPhase, msgCannotCheck)
	case p.PhaseChecked(r):
		return reject(ErrValidation, msgAlreadyChecked)
	case p.PhaseBet(r) > 0:
		return reject(ErrValidation, msgCheckAfterBet)
	}

	p.setPhaseChecked(r, true)
	p.LastAction = LastAction{Kind: ActionChecked}
	t.advance()
	return nil
}

func (t *transition) match(c Match) error {
	p, err := t.turnActor()
	if err != nil {
		return err
	}
	r := t.s.Board.Round
	if p.Folded {
		return reject(ErrPhase, msgBetFolded)
	}
	if !r.Matching() {
		return reject(ErrPhase, msgCannotMatch)
	}
	if err := t.topUp(p); err != nil {
		return err
	}
	gap := t.highestBet(r) - p.PhaseBet(r)
	if gap == 0 {
		return reject(ErrValidation, msgNothingToMatch)
	}
	if c.Amount != gap {
		return reject(ErrValidation, msgWrongMatch)
	}
	if p.Chips < gap {
		return reject(ErrValidation, msgInsufficientChips)
	}

	t.stake(p, gap)
	p.setPhaseChecked(r, false)
	p.LastAction = LastAction{Kind: ActionMatchedBet}
	t.advance()
	return nil
}

func (t *transition) fold() error {
	p, err := t.turnActor()
	if err != nil {
		return err
	}
	if p.Folded {
		return reject(ErrValidation, msgAlreadyFolded)
	}
	if t.s.wordOf(p.Addr) >= 0 {
		return reject(ErrPhase, msgFoldAfterWord)
	}

	p.Folded = true
	p.LastAction = LastAction{Kind: ActionFolded}
	hand, err := t.draw(HandSize)
	if err != nil {
		return err
	}
	p.Hand = hand
	t.resolve()
	return nil
}

// stake moves amount from the player's chips into the pool.
func (t *transition) stake(p *Player, amount uint64) {
	p.Chips -= amount
	p.addPhaseBet(t.s.Board.Round, amount)
	t.s.Board.Pool += amount
}

// highestBet is the largest accumulator for round r among non-folded players.
func (t *transition) highestBet(r Round) uint64 {
	var high uint64
	for _, p := range t.s.Players {
		if !p.Folded && p.PhaseBet(r) > high {
			high = p.PhaseBet(r)
		}
	}
	return high
}

// advance moves the round forward once the non-folded players' bets and checks allow
// it. In a matching round a checked player still owes the gap, so checks only exempt a
// player from betting during Blind and Flop.
func (t *transition) advance() {
	s := t.s
	r := s.Board.Round
	if !r.Betting() && !r.Matching() {
		return
	}
	active := s.Active()
	if len(active) < 2 {
		return
	}

	allActed, allBet, equal, anyChecked, allChecked := true, true, true, false, true
	var level uint64
	for _, p := range active {
		checked := p.PhaseChecked(r)
		bet := p.PhaseBet(r)
		if p.LastAction.Kind == ActionNone {
			allActed = false
		}
		if checked {
			anyChecked = true
		} else {
			allChecked = false
		}
		if bet == 0 && (!checked || r.Matching()) {
			allBet = false
		}
		if bet > 0 {
			if level == 0 {
				level = bet
			} else if bet != level {
				equal = false
			}
		}
	}

	next := r
	switch {
	case allChecked:
		next = r.next()
	case allActed && anyChecked:
		next = r.matchingFor()
	case allBet && equal:
		next = r.next()
	case allBet:
		next = r.matchingFor()
	}
	if next != r {
		t.setRound(next)
	}
}

// setRound changes the round and clears the last action of everyone still in the turn.
func (t *transition) setRound(r Round) {
	t.s.Board.Round = r
	for _, p := range t.s.Players {
		if !p.Folded {
			p.LastAction = LastAction{}
		}
	}
}
