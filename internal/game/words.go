package game

import "github.com/lox/wordpot/words"

func (t *transition) putDownCard(c PutDownCard) error {
	p, err := t.turnActor()
	if err != nil {
		return err
	}
	s := t.s
	if p.Folded {
		return reject(ErrPhase, msgPutDownFolded)
	}
	if s.Board.Round != RoundChoice {
		return reject(ErrPhase, msgCannotPutDown)
	}
	if s.wordOf(p.Addr) >= 0 {
		return reject(ErrPhase, msgAlreadyPutDown)
	}
	cards, used, err := selectCards(p.Hand, s.Board.River, c.Indexes)
	if err != nil {
		return err
	}

	kept := p.Hand[:0:0]
	for i, card := range p.Hand {
		if !used[i] {
			kept = append(kept, card)
		}
	}
	p.Hand = kept
	p.OpenedDictionary = c.OpenedDictionary
	p.LastAction = LastAction{Kind: ActionChoseWord}
	s.Board.Words = append(s.Board.Words, Word{Cards: cards, Player: p.Addr})

	t.resolve()
	return nil
}

// selectCards resolves submission indexes into cards and reports which hand slots were
// consumed. Nothing is changed when an index is out of range or repeated.
func selectCards(hand, river []words.Card, indexes []byte) ([]words.Card, []bool, error) {
	if len(indexes) == 0 {
		return nil, nil, reject(ErrValidation, msgEmptyWord)
	}
	var seen [256]bool
	used := make([]bool, len(hand))
	cards := make([]words.Card, 0, len(indexes))
	for _, idx := range indexes {
		if seen[idx] {
			return nil, nil, reject(ErrValidation, msgDuplicateIndex)
		}
		seen[idx] = true
		switch {
		case int(idx) < HandSize && int(idx) < len(hand):
			used[idx] = true
			cards = append(cards, hand[idx])
		case idx >= words.RiverOffset && int(idx-words.RiverOffset) < len(river):
			cards = append(cards, river[idx-words.RiverOffset])
		default:
			return nil, nil, reject(ErrValidation, msgBadIndex)
		}
	}
	return cards, used, nil
}
