// Package board defines letter grids and the dice that fill them.
//
// A board is a small rectangular grid of symbols. Each symbol is either a
// single upper-case letter or a compound code ('0'-'6') standing in for a
// fixed two-letter sequence such as "QU". Boards are represented flat, row
// by row, so a generated board round-trips through a plain string.
package board

import (
	"strings"

	errs "github.com/tilesmith/boggen/pkg/errors"
)

// MaxCells caps the board size. The solver tracks visited cells in a 64-bit
// mask but the dictionary search is only tuned for dice boards up to 6x6.
const MaxCells = 36

// Compound symbol codes. Code '0' is the blank face: its "letters" never
// match a dictionary letter, so paths through a blank die simply end.
var compounds = [7][2]byte{
	{'_', '_'}, // 0: blank
	{'Q', 'U'}, // 1
	{'I', 'N'}, // 2
	{'T', 'H'}, // 3
	{'E', 'R'}, // 4
	{'H', 'E'}, // 5
	{'A', 'N'}, // 6
}

// compoundDisplay is the face label shown for each compound code.
var compoundDisplay = [7]string{"__", "Qu", "In", "Th", "Er", "He", "An"}

// IsCompound reports whether sym is a two-letter compound code.
func IsCompound(sym byte) bool { return sym >= '0' && sym <= '6' }

// CompoundLetters returns the two letters a compound code stands for.
// Calling it with a non-compound symbol is a programming error.
func CompoundLetters(sym byte) (byte, byte) {
	c := compounds[sym-'0']
	return c[0], c[1]
}

// FaceDisplay returns the human-readable label for a cell symbol:
// the letter itself, or "Qu", "Th" and so on for compound codes.
func FaceDisplay(sym byte) string {
	if IsCompound(sym) {
		return compoundDisplay[sym-'0']
	}
	return string(sym)
}

// Grid is an immutable board of symbols, stored flat in row-major order.
type Grid struct {
	Width  int
	Height int
	Cells  string
}

// New validates dimensions and cell symbols and returns the grid.
func New(cells string, width, height int) (Grid, error) {
	if width*height > MaxCells {
		return Grid{}, errs.New(errs.ErrCodeInvalidBoard, "board %dx%d has %d cells, max %d", width, height, width*height, MaxCells)
	}
	if err := errs.ValidateBoardCells(cells, width, height); err != nil {
		return Grid{}, err
	}
	return Grid{Width: width, Height: height, Cells: cells}, nil
}

// At returns the symbol at row y, column x. Bounds are the caller's problem.
func (g Grid) At(y, x int) byte { return g.Cells[y*g.Width+x] }

// Rows splits the flat cell string into display rows, one label per cell.
func (g Grid) Rows() []string {
	rows := make([]string, g.Height)
	var b strings.Builder
	for y := 0; y < g.Height; y++ {
		b.Reset()
		for x := 0; x < g.Width; x++ {
			if x > 0 {
				b.WriteByte(' ')
			}
			label := FaceDisplay(g.At(y, x))
			if len(label) == 1 {
				label += " "
			}
			b.WriteString(label)
		}
		rows[y] = b.String()
	}
	return rows
}

// String returns the flat symbol representation.
func (g Grid) String() string { return g.Cells }
