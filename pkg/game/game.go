// Package game runs a timed play session over a generated board: the player
// guesses words, each guess is checked against the board's legal word list,
// and found/bad tallies track the running score.
package game

import (
	"sort"
	"strings"
	"time"

	"github.com/tilesmith/boggen/pkg/board"
	"github.com/tilesmith/boggen/pkg/solve"
)

// DefaultDuration is the traditional round length.
const DefaultDuration = 120 * time.Second

// GuessResult classifies one guess.
type GuessResult int

const (
	// GuessGood is a legal word not guessed before.
	GuessGood GuessResult = iota
	// GuessBad is a word not obtainable on this board.
	GuessBad
	// GuessDup is a legal word the player already found.
	GuessDup
)

// Tally accumulates a list of words with its running score and longest length.
type Tally struct {
	words   []string
	present map[string]bool
	scores  solve.ScoreTable

	Score   int
	Longest int
}

func newTally(scores solve.ScoreTable) *Tally {
	return &Tally{present: make(map[string]bool), scores: scores}
}

// Add records word once; repeated adds are ignored.
func (t *Tally) Add(word string) {
	if t.present[word] {
		return
	}
	t.present[word] = true
	t.words = append(t.words, word)
	t.Score += t.scores.Of(len(word))
	if len(word) > t.Longest {
		t.Longest = len(word)
	}
}

// Has reports whether word was recorded.
func (t *Tally) Has(word string) bool { return t.present[word] }

// Words returns the recorded words in the order they were added.
func (t *Tally) Words() []string { return t.words }

// Len returns the number of recorded words.
func (t *Tally) Len() int { return len(t.words) }

// Game is one play session. It is not safe for concurrent use.
type Game struct {
	Grid     board.Grid
	Duration time.Duration

	// Legal is the full tally of words obtainable on the board.
	Legal *Tally
	// Found holds the player's correct guesses.
	Found *Tally
	// Bad holds the player's incorrect guesses.
	Bad *Tally
}

// New builds a session from a board and its enumerated legal words.
func New(grid board.Grid, legalWords []string, scores solve.ScoreTable) *Game {
	g := &Game{
		Grid:     grid,
		Duration: DefaultDuration,
		Legal:    newTally(scores),
		Found:    newTally(scores),
		Bad:      newTally(scores),
	}
	for _, w := range legalWords {
		g.Legal.Add(w)
	}
	return g
}

// Guess checks one word. Good guesses move into Found, wrong ones into Bad,
// and repeats of either are reported as duplicates.
func (g *Game) Guess(word string) GuessResult {
	word = strings.ToUpper(strings.TrimSpace(word))
	if word == "" {
		return GuessBad
	}
	if g.Found.Has(word) || g.Bad.Has(word) {
		return GuessDup
	}
	if g.Legal.Has(word) {
		g.Found.Add(word)
		return GuessGood
	}
	g.Bad.Add(word)
	return GuessBad
}

// Missed returns the legal words the player never found, sorted.
func (g *Game) Missed() []string {
	missed := make([]string, 0, g.Legal.Len()-g.Found.Len())
	for _, w := range g.Legal.Words() {
		if !g.Found.Has(w) {
			missed = append(missed, w)
		}
	}
	sort.Strings(missed)
	return missed
}
