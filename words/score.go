package words

// letterPoints is the point value of each letter, indexed by letter value.
var letterPoints = [Letters]uint32{
	1, 3, 3, 2, 1, 4, 2, 4, 1, 8, 5, 1, 3, 1, 1, 3, 10, 1, 1, 1, 1, 4, 4, 8, 4, 8,
}

// Points returns the point value of a single letter.
func Points(letter uint8) uint32 {
	if letter >= Letters {
		return 0
	}
	return letterPoints[letter]
}

// RawScore sums the letter points of cards and doubles the result once per gold card.
// It does not consult a dictionary.
func RawScore(cards []Card) uint32 {
	var score uint32
	golds := 0
	for _, c := range cards {
		if c.Gold {
			golds++
		}
		score += Points(c.Letter)
	}
	return score << golds
}

// Score is RawScore for words in dict and 0 for everything else.
func Score(cards []Card, dict *Dictionary) uint32 {
	score := RawScore(cards)
	if !dict.Contains(Spell(cards)) {
		return 0
	}
	return score
}
