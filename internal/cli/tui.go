package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tilesmith/boggen/pkg/game"
)

// Guess feedback styles
var (
	guessGoodStyle = lipgloss.NewStyle().Foreground(colorGreen)
	guessBadStyle  = lipgloss.NewStyle().Foreground(colorRed)
	guessDupStyle  = lipgloss.NewStyle().Foreground(colorYellow)
)

// tickMsg drives the countdown clock.
type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// =============================================================================
// PlayModel - Timed play session
// =============================================================================

// PlayModel is the bubbletea model for a timed play session.
type PlayModel struct {
	Game      *game.Game
	Remaining time.Duration

	input    string
	feedback string
	over     bool
	quit     bool
}

// NewPlayModel creates a play model with the session's full duration left.
func NewPlayModel(g *game.Game) PlayModel {
	return PlayModel{
		Game:      g,
		Remaining: g.Duration,
	}
}

func (m PlayModel) Init() tea.Cmd {
	return tick()
}

func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if m.over {
			return m, nil
		}
		m.Remaining -= time.Second
		if m.Remaining <= 0 {
			m.Remaining = 0
			m.over = true
			return m, nil
		}
		return m, tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quit = true
			return m, tea.Quit
		case "enter":
			if m.over {
				return m, tea.Quit
			}
			m.submit()
		case "backspace":
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}
		default:
			if m.over {
				return m, nil
			}
			s := msg.String()
			if len(s) == 1 {
				c := s[0]
				if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' {
					m.input += strings.ToUpper(s)
				}
			}
		}
	}
	return m, nil
}

func (m *PlayModel) submit() {
	word := m.input
	m.input = ""
	if word == "" {
		return
	}
	switch m.Game.Guess(word) {
	case game.GuessGood:
		m.feedback = guessGoodStyle.Render(fmt.Sprintf("%s %s +%d", iconSuccess, word, m.Game.Found.Score))
	case game.GuessDup:
		m.feedback = guessDupStyle.Render(fmt.Sprintf("%s %s already found", iconWarning, word))
	default:
		m.feedback = guessBadStyle.Render(fmt.Sprintf("%s %s is not on this board", iconError, word))
	}
}

func (m PlayModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Boggen"))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  %s left  ⏎ submit  esc quit", formatClock(m.Remaining))))
	b.WriteString("\n\n")
	b.WriteString(renderBoard(m.Game.Grid))
	b.WriteString("\n\n")

	if m.over {
		b.WriteString(StyleSuccess.Render("Time!"))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("Found %s of %s words for %s points\n",
			StyleNumber.Render(fmt.Sprintf("%d", m.Game.Found.Len())),
			StyleNumber.Render(fmt.Sprintf("%d", m.Game.Legal.Len())),
			StyleNumber.Render(fmt.Sprintf("%d", m.Game.Found.Score))))
		b.WriteString(StyleDim.Render("press enter to see what you missed"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(fmt.Sprintf("%s %d  %s %d\n",
		StyleDim.Render("score"), m.Game.Found.Score,
		StyleDim.Render("found"), m.Game.Found.Len()))

	if found := m.Game.Found.Words(); len(found) > 0 {
		recent := found
		if len(recent) > 8 {
			recent = recent[len(recent)-8:]
		}
		b.WriteString(StyleDim.Render(strings.Join(recent, " ")))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.feedback != "" {
		b.WriteString(m.feedback)
		b.WriteString("\n")
	}
	b.WriteString(StyleHighlight.Render("> ") + StyleValue.Render(m.input) + StyleHighlight.Render("▌"))
	b.WriteString("\n")

	return b.String()
}

// Quit reports whether the player bailed out before the clock ran down.
func (m PlayModel) Quit() bool { return m.quit }

// formatClock renders a duration as M:SS.
func formatClock(d time.Duration) string {
	s := int(d.Seconds())
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}
