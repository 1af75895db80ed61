package solve

import "github.com/tilesmith/boggen/pkg/dawg"

// ScoreTable maps word length to points. Index 0 through the maximum word
// length the dictionary carries.
type ScoreTable [dawg.MaxWordLen + 1]int

// DefaultScores is the traditional table: nothing below three letters,
// then 1, 1, 2, 3, 5 and 11 points for everything from eight letters up.
var DefaultScores = ScoreTable{0, 0, 0, 1, 1, 2, 3, 5, 11, 11, 11, 11, 11, 11, 11, 11, 11}

// Of returns the points for a word of the given length.
func (t ScoreTable) Of(length int) int {
	if length < 0 || length >= len(t) {
		return 0
	}
	return t[length]
}
