package board

import (
	"strings"
	"testing"
)

func TestNewValidates(t *testing.T) {
	tests := []struct {
		name   string
		cells  string
		width  int
		height int
		ok     bool
	}{
		{"square 4x4", "ABCDEFGHIJKLMNOP", 4, 4, true},
		{"rectangular 2x3", "ABCDEF", 2, 3, true},
		{"single cell", "A", 1, 1, true},
		{"full 6x6", strings.Repeat("A", 36), 6, 6, true},
		{"compound cells", "1ITX", 2, 2, true},
		{"over cell cap", strings.Repeat("A", 37), 37, 1, false},
		{"length mismatch", "ABC", 2, 2, false},
		{"lowercase", "abcd", 2, 2, false},
		{"bad symbol", "AB?D", 2, 2, false},
		{"empty", "", 0, 0, false},
		{"negative width", "ABCD", -2, -2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(tt.cells, tt.width, tt.height)
			if tt.ok && err != nil {
				t.Fatalf("New(%q, %d, %d) failed: %v", tt.cells, tt.width, tt.height, err)
			}
			if !tt.ok {
				if err == nil {
					t.Fatalf("New(%q, %d, %d) succeeded, want error", tt.cells, tt.width, tt.height)
				}
				return
			}
			if g.Cells != tt.cells || g.Width != tt.width || g.Height != tt.height {
				t.Errorf("New returned %+v", g)
			}
		})
	}
}

func TestAt(t *testing.T) {
	g, err := New("ABCDEF", 3, 2)
	if err != nil {
		t.Fatal(err)
	}
	if got := g.At(0, 0); got != 'A' {
		t.Errorf("At(0,0) = %c, want A", got)
	}
	if got := g.At(0, 2); got != 'C' {
		t.Errorf("At(0,2) = %c, want C", got)
	}
	if got := g.At(1, 0); got != 'D' {
		t.Errorf("At(1,0) = %c, want D", got)
	}
	if got := g.At(1, 2); got != 'F' {
		t.Errorf("At(1,2) = %c, want F", got)
	}
}

func TestCompounds(t *testing.T) {
	tests := []struct {
		sym     byte
		t1, t2  byte
		display string
	}{
		{'0', 0, 0, "__"},
		{'1', 'Q', 'U', "Qu"},
		{'2', 'I', 'N', "In"},
		{'3', 'T', 'H', "Th"},
		{'4', 'E', 'R', "Er"},
		{'5', 'H', 'E', "He"},
		{'6', 'A', 'N', "An"},
	}
	for _, tt := range tests {
		if !IsCompound(tt.sym) {
			t.Errorf("IsCompound(%c) = false, want true", tt.sym)
		}
		if tt.sym == '0' {
			continue
		}
		t1, t2 := CompoundLetters(tt.sym)
		if t1 != tt.t1 || t2 != tt.t2 {
			t.Errorf("CompoundLetters(%c) = %c%c, want %c%c", tt.sym, t1, t2, tt.t1, tt.t2)
		}
		if got := FaceDisplay(tt.sym); got != tt.display {
			t.Errorf("FaceDisplay(%c) = %q, want %q", tt.sym, got, tt.display)
		}
	}

	if IsCompound('A') || IsCompound('7') {
		t.Error("IsCompound accepted a plain letter or out-of-range code")
	}
	if got := FaceDisplay('X'); got != "X" {
		t.Errorf("FaceDisplay('X') = %q, want \"X\"", got)
	}
}

func TestRows(t *testing.T) {
	g, err := New("1ITX", 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	rows := g.Rows()
	if len(rows) != 2 {
		t.Fatalf("Rows() returned %d rows, want 2", len(rows))
	}
	if rows[0] != "Qu I " {
		t.Errorf("rows[0] = %q, want %q", rows[0], "Qu I ")
	}
	if rows[1] != "T  X " {
		t.Errorf("rows[1] = %q, want %q", rows[1], "T  X ")
	}
}

func TestSets(t *testing.T) {
	sets := Sets()
	if len(sets) == 0 {
		t.Fatal("Sets() returned nothing")
	}
	for _, s := range sets {
		if len(s.Dice) != s.Size*s.Size {
			t.Errorf("set %q has %d dice for a %dx%d board", s.Name, len(s.Dice), s.Size, s.Size)
		}
		for i, die := range s.Dice {
			if len(die) == 0 {
				t.Errorf("set %q die %d has no faces", s.Name, i)
			}
			for j := 0; j < len(die); j++ {
				c := die[j]
				if (c < 'A' || c > 'Z') && !IsCompound(c) {
					t.Errorf("set %q die %d face %q is not a valid symbol", s.Name, i, c)
				}
			}
		}
	}
}

func TestSetByName(t *testing.T) {
	s, err := SetByName("4")
	if err != nil {
		t.Fatalf("SetByName(\"4\") failed: %v", err)
	}
	if s.Size != 4 {
		t.Errorf("set \"4\" size = %d, want 4", s.Size)
	}

	if _, err := SetByName("no-such-set"); err == nil {
		t.Error("SetByName(\"no-such-set\") succeeded, want error")
	}
	if _, err := SetByName(""); err == nil {
		t.Error("SetByName(\"\") succeeded, want error")
	}
}
