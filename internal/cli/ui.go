package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tilesmith/boggen/pkg/board"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleHighlight for emphasized values.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleBoardCell = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	styleBoardEdge = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printError prints an error message.
func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconError.Render(iconError) + " " + msg)
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(msg))
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + msg)
}

// printDetail prints a detail line (indented).
func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println("  " + StyleDim.Render(msg))
}

// =============================================================================
// Board Output
// =============================================================================

// renderBoard formats a grid as a bordered block with one display face per
// cell. Compound faces render as two letters, so every cell is two columns.
func renderBoard(g board.Grid) string {
	var b strings.Builder

	edge := styleBoardEdge.Render("+" + strings.Repeat("---", g.Width) + "-+")
	b.WriteString(edge)
	b.WriteString("\n")

	for y := 0; y < g.Height; y++ {
		b.WriteString(styleBoardEdge.Render("|"))
		for x := 0; x < g.Width; x++ {
			face := board.FaceDisplay(g.At(y, x))
			if len(face) == 1 {
				face += " "
			}
			b.WriteString(" " + styleBoardCell.Render(face))
		}
		b.WriteString(styleBoardEdge.Render(" |"))
		b.WriteString("\n")
	}

	b.WriteString(edge)
	return b.String()
}

// printBoardSummary prints the grid and its solved aggregates.
func printBoardSummary(g board.Grid, tries, words, score, longest int) {
	fmt.Println(renderBoard(g))
	fmt.Println()
	if tries > 0 {
		printDetail("tries: %d", tries)
	}
	printDetail("cells: %s", g.Cells)
	printDetail("words: %d  score: %d  longest: %d", words, score, longest)
}

// printWordList prints words in columns grouped by length, longest first.
func printWordList(words []string) {
	if len(words) == 0 {
		printInfo("No words found")
		return
	}

	byLen := map[int][]string{}
	lengths := []int{}
	for _, w := range words {
		n := len(w)
		if _, ok := byLen[n]; !ok {
			lengths = append(lengths, n)
		}
		byLen[n] = append(byLen[n], w)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(lengths)))

	for _, n := range lengths {
		group := byLen[n]
		sort.Strings(group)
		fmt.Println(StyleTitle.Render(fmt.Sprintf("%d letters", n)) + StyleDim.Render(fmt.Sprintf(" (%d)", len(group))))
		fmt.Println("  " + StyleValue.Render(strings.Join(group, " ")))
	}
}
