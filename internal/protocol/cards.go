package protocol

import (
	"fmt"

	"github.com/tinylib/msgp/msgp"

	"github.com/lox/wordpot/words"
)

// Cards are packed one per byte: the letter value in the low bits and 0x80 for gold.
const goldBit = 0x80

func appendCards(b []byte, cards []words.Card) []byte {
	packed := make([]byte, len(cards))
	for i, c := range cards {
		packed[i] = c.Letter
		if c.Gold {
			packed[i] |= goldBit
		}
	}
	return msgp.AppendBytes(b, packed)
}

func readCards(b []byte) ([]words.Card, []byte, error) {
	packed, b, err := msgp.ReadBytesZC(b)
	if err != nil {
		return nil, b, err
	}
	if len(packed) == 0 {
		return nil, b, nil
	}
	cards := make([]words.Card, len(packed))
	for i, v := range packed {
		c := words.Card{Letter: v &^ goldBit, Gold: v&goldBit != 0}
		if !c.Valid() {
			return nil, b, fmt.Errorf("card %d: invalid letter value %d", i, c.Letter)
		}
		cards[i] = c
	}
	return cards, b, nil
}
