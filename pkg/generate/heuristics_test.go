package generate

import (
	"testing"

	"github.com/tilesmith/boggen/pkg/board"
	"github.com/tilesmith/boggen/pkg/solve"
)

func mustGrid(t *testing.T, cells string, w, h int) board.Grid {
	t.Helper()
	g, err := board.New(cells, w, h)
	if err != nil {
		t.Fatalf("board.New(%q, %d, %d) failed: %v", cells, w, h, err)
	}
	return g
}

func TestStatsOf(t *testing.T) {
	g := mustGrid(t, "AER1X3", 3, 2)
	st := statsOf(g)

	if st.cells != 6 {
		t.Errorf("cells = %d, want 6", st.cells)
	}
	// A, E, plus the vowel-bearing Qu compound.
	if st.vowels != 3 {
		t.Errorf("vowels = %d, want 3", st.vowels)
	}
	if st.common != 1 { // R
		t.Errorf("common = %d, want 1", st.common)
	}
	if st.compounds != 2 { // Qu, Th
		t.Errorf("compounds = %d, want 2", st.compounds)
	}
	if !st.hasEnding { // E, R and Th's T all qualify
		t.Error("hasEnding = false, want true")
	}
}

func TestStatsOfVowelCompounds(t *testing.T) {
	// Qu, In, Er, He, An carry vowels; Th and the blank do not.
	g := mustGrid(t, "245613", 3, 2)
	st := statsOf(g)
	if st.vowels != 5 {
		t.Errorf("vowels = %d, want 5", st.vowels)
	}
	if st.compounds != 6 {
		t.Errorf("compounds = %d, want 6", st.compounds)
	}
}

func TestAdmissibleBaseline(t *testing.T) {
	open := solve.Open()

	tests := []struct {
		name  string
		cells string
		w, h  int
		want  bool
	}{
		{"balanced", "RSTLNEAIODCMPBGH", 4, 4, true},
		{"no vowels", "BCDFGHJKLMNPQRST", 4, 4, false},
		{"all vowels", "AEIOAEIOAEIOAEIO", 4, 4, false},
		{"no common letters", "AXQJ", 2, 2, false},
		{"compound heavy", "1122", 2, 2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGrid(t, tt.cells, tt.w, tt.h)
			if got := admissible(g, open); got != tt.want {
				t.Errorf("admissible(%q) = %v, want %v", tt.cells, got, tt.want)
			}
		})
	}
}

func TestAdmissibleTightensWithMinWords(t *testing.T) {
	// 60% vowels passes the baseline band but not the >100-words band.
	g := mustGrid(t, "AEIRS", 5, 1)
	if !admissible(g, solve.Constraints{MinWords: 50}) {
		t.Error("vowel-heavy board rejected under a mild word floor")
	}
	if admissible(g, solve.Constraints{MinWords: 150}) {
		t.Error("vowel-heavy board accepted under a demanding word floor")
	}

	// One connective consonant is too few when hundreds of words are needed.
	sparse := mustGrid(t, "AERX", 2, 2)
	if !admissible(sparse, solve.Open()) {
		t.Error("sparse board rejected under open constraints")
	}
	if admissible(sparse, solve.Constraints{MinWords: 150}) {
		t.Error("sparse board accepted under a demanding word floor")
	}
}

func TestAdmissibleHardestTier(t *testing.T) {
	rich := mustGrid(t, "AEIRSTLXZ", 3, 3)
	if !admissible(rich, solve.Constraints{MinLongest: 11}) {
		t.Error("letter-rich board rejected under a long-word demand")
	}

	// No common ending letter on the board at all.
	noEnding := mustGrid(t, "AIOLNNXXZ", 3, 3)
	if !admissible(noEnding, solve.Open()) {
		t.Error("board rejected under open constraints")
	}
	if admissible(noEnding, solve.Constraints{MinLongest: 11}) {
		t.Error("board without ending letters accepted under a long-word demand")
	}
}
