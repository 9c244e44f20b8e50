package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/coin-race/internal/core"
)

// WinBanner receives the winner from the game and draws the end screen.
type WinBanner struct {
	sheet  SpriteSheet
	label  string
	image  core.SpriteRef
	active bool
}

// NewWinBanner creates an inactive banner that draws portraits from sheet.
func NewWinBanner(sheet SpriteSheet) *WinBanner {
	return &WinBanner{sheet: sheet}
}

// PresentWin shows the banner for the given winner.
func (b *WinBanner) PresentWin(winnerLabel string, winnerImage core.SpriteRef) {
	b.label = winnerLabel
	b.image = winnerImage
	b.active = true
}

// Active reports whether a winner is being shown.
func (b *WinBanner) Active() bool {
	return b.active
}

// Clear hides the banner.
func (b *WinBanner) Clear() {
	*b = WinBanner{sheet: b.sheet}
}

// View renders the banner with the final scores, centered in a
// width x height area.
func (b *WinBanner) View(width, height int, scores []core.PlayerScore) string {
	var rows []string
	if g, ok := b.sheet[b.image]; ok {
		style := styleFor(g.Color)
		for _, line := range g.Lines {
			rows = append(rows, style.Render(line))
		}
		rows = append(rows, "")
	}
	rows = append(rows, titleStyle.Render(fmt.Sprintf("%s Wins!", b.label)))
	if len(scores) > 0 {
		final := make([]string, 0, len(scores))
		for _, p := range scores {
			final = append(final, styleFor(playerColor(p.ID)).Render(fmt.Sprintf("%s %d", p.Label, p.Score)))
		}
		rows = append(rows, strings.Join(final, dimStyle.Render(" · ")))
	}
	rows = append(rows, "", dimStyle.Render("r to race again · q to quit"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("11")).
		Padding(1, 4).
		Align(lipgloss.Center).
		Render(lipgloss.JoinVertical(lipgloss.Center, rows...))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
