package words

import (
	"errors"
	rand "math/rand/v2"
)

// GoldCards is the number of cards flagged gold in a freshly generated deck.
const GoldCards = 5

// ErrDeckExhausted is returned when a draw asks for more cards than the pile holds.
var ErrDeckExhausted = errors.New("words: not enough cards left in the deck")

// letterCounts is the deck composition: letter value and number of copies, most common
// letters first.
var letterCounts = [Letters][2]uint8{
	{4, 12},  // E
	{0, 9},   // A
	{8, 9},   // I
	{14, 8},  // O
	{13, 6},  // N
	{17, 6},  // R
	{19, 6},  // T
	{11, 4},  // L
	{18, 4},  // S
	{20, 4},  // U
	{3, 4},   // D
	{6, 3},   // G
	{1, 2},   // B
	{2, 2},   // C
	{12, 2},  // M
	{15, 2},  // P
	{5, 2},   // F
	{7, 2},   // H
	{21, 2},  // V
	{22, 2},  // W
	{24, 2},  // Y
	{10, 1},  // K
	{9, 1},   // J
	{23, 1},  // X
	{16, 1},  // Q
	{25, 1},  // Z
}

// DeckSize is the number of cards in a freshly generated deck.
var DeckSize = func() int {
	n := 0
	for _, lc := range letterCounts {
		n += int(lc[1])
	}
	return n
}()

// NewDeck builds the fixed-composition deck and shuffles it with rng. The first GoldCards
// cards after the first shuffle are marked gold, then the deck is shuffled again so the
// gold cards do not sit at predictable positions.
func NewDeck(rng *rand.Rand) []Card {
	deck := make([]Card, 0, DeckSize)
	for _, lc := range letterCounts {
		for range lc[1] {
			deck = append(deck, Card{Letter: lc[0]})
		}
	}

	Shuffle(deck, rng)
	for i := 0; i < GoldCards; i++ {
		deck[i].Gold = true
	}
	Shuffle(deck, rng)
	return deck
}

// Shuffle shuffles cards in place using Fisher-Yates. The draw sequence is
// rng.Uint64N(i+1) for i from len-1 down to 1, so identical generators always produce
// identical orders.
func Shuffle(cards []Card, rng *rand.Rand) {
	for i := len(cards) - 1; i > 0; i-- {
		j := int(rng.Uint64N(uint64(i + 1)))
		cards[i], cards[j] = cards[j], cards[i]
	}
}

// Draw removes n cards from the front of deck. Each draw takes deck[0] and backfills
// that slot with the last card of the pile (swap-remove), so the cards come out in the
// pile's current front-to-back order but the remaining pile is reordered after every
// draw. The returned rest shares deck's backing array.
func Draw(deck []Card, n int) (drawn, rest []Card, err error) {
	if n < 0 || n > len(deck) {
		return nil, deck, ErrDeckExhausted
	}
	drawn = make([]Card, 0, n)
	for range n {
		drawn = append(drawn, deck[0])
		last := len(deck) - 1
		deck[0] = deck[last]
		deck = deck[:last]
	}
	return drawn, deck, nil
}

// Composition returns the number of copies of each letter in a fresh deck.
func Composition() [Letters]int {
	var out [Letters]int
	for _, lc := range letterCounts {
		out[lc[0]] = int(lc[1])
	}
	return out
}
