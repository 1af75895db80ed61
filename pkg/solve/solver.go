// Package solve enumerates every dictionary word reachable on a board and
// checks the result against difficulty constraints.
//
// A Solver is a self-contained search session: it owns the word buffer, the
// deduplication set and the per-trial counters, so distinct Solvers may run
// concurrently against the same shared dictionary. A single Solver is not
// safe for concurrent use; it is meant to be reused trial after trial by one
// generator loop.
package solve

import (
	"math"

	"github.com/tilesmith/boggen/pkg/board"
	"github.com/tilesmith/boggen/pkg/dawg"
)

// Constraints bound what counts as an acceptable board. All bounds are
// inclusive. Max fields set to zero or below mean unbounded.
type Constraints struct {
	MinWords   int
	MaxWords   int
	MinScore   int
	MaxScore   int
	MinLongest int
	MaxLongest int

	// MinLength filters which completed words are eligible to count at all.
	// Shorter dictionary words are ignored: they appear in no word list and
	// contribute to no aggregate.
	MinLength int
}

// Open returns fully open constraints: no lower bounds, no upper bounds,
// every word length eligible.
func Open() Constraints { return Constraints{} }

func orUnbounded(v int) int {
	if v <= 0 {
		return math.MaxInt
	}
	return v
}

// Solver walks a board cell by cell in lock-step with the dictionary graph,
// collecting unique words and enforcing upper bounds as it goes.
type Solver struct {
	dict   *dawg.Dawg
	scores ScoreTable
	cons   Constraints

	maxWords   int // normalized upper bounds
	maxScore   int
	maxLongest int

	set *WordSet
	buf [dawg.MaxWordLen + 2]byte

	grid    board.Grid
	words   int
	score   int
	longest int
	aborted bool
}

// NewSolver builds a search session over a shared, read-only dictionary.
func NewSolver(dict *dawg.Dawg, scores ScoreTable, cons Constraints) *Solver {
	return &Solver{
		dict:       dict,
		scores:     scores,
		cons:       cons,
		maxWords:   orUnbounded(cons.MaxWords),
		maxScore:   orUnbounded(cons.MaxScore),
		maxLongest: orUnbounded(cons.MaxLongest),
		set:        NewWordSet(),
	}
}

// Solve runs one full trial over g and reports whether the board satisfies
// the constraints. State from any previous trial is discarded first; after a
// successful trial, Words, WordCount, Score and Longest describe the board.
//
// A trial fails either by early abort (an upper bound crossed mid-search) or
// by missing a lower bound in the final check.
func (s *Solver) Solve(g board.Grid) bool {
	s.grid = g
	s.words, s.score, s.longest = 0, 0, 0
	s.aborted = false
	s.set.Reset()

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if !s.walk(dawg.Root, 0, y, x, 0) {
				return false
			}
		}
	}

	return s.words >= s.cons.MinWords &&
		s.score >= s.cons.MinScore &&
		s.longest >= s.cons.MinLongest &&
		s.longest <= s.maxLongest
}

// walk extends the word in progress onto the cell at (y, x), given the
// dictionary node i reached by the word so far. The used mask carries one
// bit per cell already consumed; it is passed by value so each branch of the
// recursion sees only its own path.
//
// The return value is not "found a word" but "keep searching": false means
// an upper bound was crossed and the whole trial must stop.
func (s *Solver) walk(i uint32, wlen, y, x int, used uint64) bool {
	if s.aborted {
		return false
	}

	// Off the board or a cell this word already uses: a dead end for this
	// path, not a violation.
	if y < 0 || y >= s.grid.Height || x < 0 || x >= s.grid.Width {
		return true
	}
	mask := uint64(1) << (y*s.grid.Width + x)
	if used&mask != 0 {
		return true
	}

	sym := s.grid.At(y, x)
	if board.IsCompound(sym) {
		t1, t2 := board.CompoundLetters(sym)
		i = s.dict.Match(i, t1)
		if i == 0 {
			return true
		}
		i = s.dict.Match(s.dict.Child(i), t2)
		if i == 0 {
			return true
		}
		s.buf[wlen] = t1
		s.buf[wlen+1] = t2
		wlen += 2
	} else {
		i = s.dict.Match(i, sym)
		if i == 0 {
			return true
		}
		s.buf[wlen] = sym
		wlen++
	}
	used |= mask

	if s.dict.IsWord(i) && wlen >= s.cons.MinLength {
		if !s.record(s.buf[:wlen]) {
			return false
		}
	}

	// Every neighbor, including diagonals. The current cell comes up again
	// but its used bit blocks it.
	child := s.dict.Child(i)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if !s.walk(child, wlen, y+dy, x+dx, used) {
				return false
			}
		}
	}
	return true
}

// record books a completed word, returning false the instant any upper
// bound is crossed. Duplicates are a no-op.
func (s *Solver) record(word []byte) bool {
	if !s.set.Insert(word) {
		return true
	}

	s.words++
	if s.words > s.maxWords {
		s.aborted = true
		return false
	}

	s.score += s.scores.Of(len(word))
	if s.score > s.maxScore {
		s.aborted = true
		return false
	}

	if len(word) > s.longest {
		s.longest = len(word)
		if s.longest > s.maxLongest {
			s.aborted = true
			return false
		}
	}
	return true
}

// Words drains the unique words found by the last trial.
func (s *Solver) Words() []string { return s.set.Words() }

// WordCount returns the number of unique words found by the last trial.
func (s *Solver) WordCount() int { return s.words }

// Score returns the cumulative score of the last trial.
func (s *Solver) Score() int { return s.score }

// Longest returns the longest word length of the last trial.
func (s *Solver) Longest() int { return s.longest }

// Aborted reports whether the last trial stopped early on an upper bound.
func (s *Solver) Aborted() bool { return s.aborted }
