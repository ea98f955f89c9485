package words

// RiverOffset is added to a river slot to form its submission index: hand slots are
// addressed as 0..4 and river slots as 250..254.
const RiverOffset = 250

// Solution is the best word found by Solve.
type Solution struct {
	Word    string
	Indexes []byte
	Score   uint32
}

// Solve returns the highest-scoring dictionary word that can be built from hand and
// river, together with the submission indexes that spell it. Where several cards carry
// the same letter, gold cards are used first. Ties keep the word that sorts first. ok is
// false when no dictionary word can be built.
func Solve(dict *Dictionary, hand, river []Card) (best Solution, ok bool) {
	type slot struct {
		index byte
		gold  bool
	}
	var avail [Letters][]slot
	// Gold cards go first in each bucket so they are picked before plain ones.
	for pass := 0; pass < 2; pass++ {
		wantGold := pass == 0
		for i, c := range hand {
			if c.Valid() && c.Gold == wantGold {
				avail[c.Letter] = append(avail[c.Letter], slot{byte(i), c.Gold})
			}
		}
		for i, c := range river {
			if c.Valid() && c.Gold == wantGold {
				avail[c.Letter] = append(avail[c.Letter], slot{byte(RiverOffset + i), c.Gold})
			}
		}
	}

	total := len(hand) + len(river)
	for _, w := range dict.Words() {
		if len(w) > total {
			continue
		}
		var used [Letters]int
		indexes := make([]byte, 0, len(w))
		var score uint32
		golds := 0
		fits := true
		for i := 0; i < len(w); i++ {
			l := w[i] - 'A'
			if used[l] >= len(avail[l]) {
				fits = false
				break
			}
			s := avail[l][used[l]]
			used[l]++
			indexes = append(indexes, s.index)
			score += Points(l)
			if s.gold {
				golds++
			}
		}
		if !fits {
			continue
		}
		score <<= golds
		if !ok || score > best.Score {
			best = Solution{Word: w, Indexes: indexes, Score: score}
			ok = true
		}
	}
	return best, ok
}
