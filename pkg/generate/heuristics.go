package generate

import (
	"strings"

	"github.com/tilesmith/boggen/pkg/board"
	"github.com/tilesmith/boggen/pkg/solve"
)

// The pre-filter is a pure optimization: one O(cells) pass over a freshly
// sampled board that skips the expensive dictionary search for boards with
// hopeless letter statistics. A false rejection only wastes one cheap board
// sample; it never claims a board is good.

// commonLetters are high-frequency word-building consonants.
const commonLetters = "RSTLND"

// endingLetters are common final letters of English words.
const endingLetters = "SEDTRY"

// vowelCompounds are the compound codes whose expansion contains a vowel:
// Qu, In, Er, He, An. Th and the blank do not qualify.
const vowelCompounds = "12456"

// gridStats are the single-pass letter statistics the filter tiers consult.
type gridStats struct {
	cells     int
	vowels    int // cells holding a vowel or a vowel-bearing compound
	common    int // cells holding one of commonLetters
	compounds int // cells holding any compound code
	hasEnding bool
}

func statsOf(g board.Grid) gridStats {
	st := gridStats{cells: len(g.Cells)}
	for i := 0; i < len(g.Cells); i++ {
		sym := g.Cells[i]
		if board.IsCompound(sym) {
			st.compounds++
			if strings.IndexByte(vowelCompounds, sym) >= 0 {
				st.vowels++
			}
			t1, t2 := board.CompoundLetters(sym)
			if strings.IndexByte(endingLetters, t1) >= 0 || strings.IndexByte(endingLetters, t2) >= 0 {
				st.hasEnding = true
			}
			continue
		}
		if strings.IndexByte("AEIOU", sym) >= 0 {
			st.vowels++
		}
		if strings.IndexByte(commonLetters, sym) >= 0 {
			st.common++
		}
		if strings.IndexByte(endingLetters, sym) >= 0 {
			st.hasEnding = true
		}
	}
	return st
}

// admissible decides whether a sampled board is worth solving. Thresholds
// tighten as the constraints get harder to hit: boards that must yield
// hundreds of words need plenty of vowels and connective consonants, so
// anything else is rejected before the search runs.
func admissible(g board.Grid, cons solve.Constraints) bool {
	st := statsOf(g)
	if st.cells == 0 {
		return false
	}
	vowelPct := st.vowels * 100 / st.cells

	// Baseline: applies to every board.
	if vowelPct < 15 || vowelPct > 65 {
		return false
	}
	if st.common < 1 {
		return false
	}
	if st.compounds*2 > st.cells {
		return false
	}

	if cons.MinWords > 100 {
		if vowelPct < 20 || vowelPct > 55 {
			return false
		}
		if st.common < 2 {
			return false
		}
	}

	if cons.MinWords > 200 || cons.MinLongest > 10 {
		if st.vowels < 3 || st.common < 3 {
			return false
		}
		if !st.hasEnding {
			return false
		}
	}

	return true
}
