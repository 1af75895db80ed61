package game

import (
	"testing"

	"github.com/tilesmith/boggen/pkg/board"
	"github.com/tilesmith/boggen/pkg/solve"
)

func testGame(t *testing.T) *Game {
	t.Helper()
	grid, err := board.New("CATS", 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	return New(grid, []string{"CAT", "CATS", "ACT", "SAT"}, solve.DefaultScores)
}

func TestGuess(t *testing.T) {
	g := testGame(t)

	if got := g.Guess("cat"); got != GuessGood {
		t.Errorf("Guess(cat) = %v, want GuessGood", got)
	}
	if got := g.Guess(" CAT "); got != GuessDup {
		t.Errorf("repeat Guess(CAT) = %v, want GuessDup", got)
	}
	if got := g.Guess("DOG"); got != GuessBad {
		t.Errorf("Guess(DOG) = %v, want GuessBad", got)
	}
	if got := g.Guess("DOG"); got != GuessDup {
		t.Errorf("repeat Guess(DOG) = %v, want GuessDup", got)
	}
	if got := g.Guess(""); got != GuessBad {
		t.Errorf("Guess(\"\") = %v, want GuessBad", got)
	}

	if g.Found.Len() != 1 {
		t.Errorf("Found.Len() = %d, want 1", g.Found.Len())
	}
	if g.Bad.Len() != 1 {
		t.Errorf("Bad.Len() = %d, want 1", g.Bad.Len())
	}
}

func TestScoring(t *testing.T) {
	g := testGame(t)
	g.Guess("CAT")
	g.Guess("CATS")

	if g.Found.Score != 2 {
		t.Errorf("Found.Score = %d, want 2", g.Found.Score)
	}
	if g.Found.Longest != 4 {
		t.Errorf("Found.Longest = %d, want 4", g.Found.Longest)
	}
	if g.Legal.Score != 4 {
		t.Errorf("Legal.Score = %d, want 4", g.Legal.Score)
	}
}

func TestMissed(t *testing.T) {
	g := testGame(t)
	g.Guess("CAT")
	g.Guess("SAT")
	g.Guess("DOG") // bad guesses never count as found

	missed := g.Missed()
	want := []string{"ACT", "CATS"}
	if len(missed) != len(want) {
		t.Fatalf("Missed() = %v, want %v", missed, want)
	}
	for i := range want {
		if missed[i] != want[i] {
			t.Errorf("Missed()[%d] = %q, want %q (sorted)", i, missed[i], want[i])
		}
	}
}

func TestTallyIgnoresRepeats(t *testing.T) {
	tally := newTally(solve.DefaultScores)
	tally.Add("CAT")
	tally.Add("CAT")

	if tally.Len() != 1 || tally.Score != 1 {
		t.Errorf("Len = %d Score = %d after repeated Add, want 1 and 1", tally.Len(), tally.Score)
	}
}
