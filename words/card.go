// Package words holds the letter cards, the deterministic deck, the dictionary and the
// scoring rules of the word game.
package words

import (
	"fmt"
	"strings"
)

// Letters is the number of distinct letter values (A=0 ... Z=25).
const Letters = 26

// Card is a single letter card. Gold cards double the score of any word they appear in.
type Card struct {
	Letter uint8
	Gold   bool
}

// NewCard creates a card for the given letter value.
func NewCard(letter uint8, gold bool) Card {
	return Card{Letter: letter, Gold: gold}
}

// Rune returns the uppercase letter of the card.
func (c Card) Rune() rune {
	return rune('A' + c.Letter)
}

// String returns the letter, with a trailing '*' for gold cards (e.g. "E", "Q*").
func (c Card) String() string {
	if c.Gold {
		return string(c.Rune()) + "*"
	}
	return string(c.Rune())
}

// Valid reports whether the letter value is in range.
func (c Card) Valid() bool {
	return c.Letter < Letters
}

// Spell returns the uppercase letter string of a sequence of cards.
func Spell(cards []Card) string {
	var b strings.Builder
	b.Grow(len(cards))
	for _, c := range cards {
		b.WriteRune(c.Rune())
	}
	return b.String()
}

// ParseCards parses a word like "TEST" or "T*EST" into cards. A '*' after a letter marks
// that card gold.
func ParseCards(s string) ([]Card, error) {
	cards := make([]Card, 0, len(s))
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch >= 'a' && ch <= 'z' {
			ch -= 'a' - 'A'
		}
		if ch == '*' {
			if len(cards) == 0 {
				return nil, fmt.Errorf("gold marker at position %d has no card", i)
			}
			cards[len(cards)-1].Gold = true
			continue
		}
		if ch < 'A' || ch > 'Z' {
			return nil, fmt.Errorf("invalid letter %q at position %d", s[i], i)
		}
		cards = append(cards, Card{Letter: ch - 'A'})
	}
	return cards, nil
}

// MustParseCards is like ParseCards but panics on error. Intended for tests and fixtures.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}
