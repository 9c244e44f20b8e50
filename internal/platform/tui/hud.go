package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/coin-race/internal/core"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	pauseStyle = lipgloss.NewStyle().Bold(true).Reverse(true).Padding(0, 1)
)

// playerColor returns the sprite color of a character, for matching HUD text.
func playerColor(id string) core.Color {
	for _, w := range walkers {
		if w.id == id {
			return w.color
		}
	}
	return core.ColorBrightWhite
}

// Scoreline holds the latest published scores and renders them as one line.
type Scoreline struct {
	scores []core.PlayerScore
}

// Update replaces the displayed scores.
func (s *Scoreline) Update(scores []core.PlayerScore) {
	s.scores = append(s.scores[:0], scores...)
}

// Scores returns the displayed scores.
func (s *Scoreline) Scores() []core.PlayerScore {
	return s.scores
}

// View renders the title, every score and an optional status on the right.
func (s *Scoreline) View(title, status string, width int) string {
	parts := make([]string, 0, len(s.scores))
	for _, p := range s.scores {
		parts = append(parts, styleFor(playerColor(p.ID)).Render(fmt.Sprintf("%s %d", p.Label, p.Score)))
	}
	left := titleStyle.Render(title) + "  " + strings.Join(parts, dimStyle.Render("  ·  "))

	right := ""
	if status != "" {
		right = pauseStyle.Render(status)
	}
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
