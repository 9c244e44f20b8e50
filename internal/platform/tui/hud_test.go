package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/coin-race/internal/core"
)

func TestScorelineView(t *testing.T) {
	var s Scoreline
	s.Update([]core.PlayerScore{
		{ID: "neuro", Label: "Neuro", Score: 3},
		{ID: "evil", Label: "Evil", Score: 7},
	})

	view := s.View("Coin Race", "", 60)

	for _, want := range []string{"Coin Race", "Neuro 3", "Evil 7"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() = %q, missing %q", view, want)
		}
	}
	if w := lipgloss.Width(view); w != 60 {
		t.Errorf("width = %d, expected 60", w)
	}
}

func TestScorelineUpdateCopies(t *testing.T) {
	var s Scoreline
	scores := []core.PlayerScore{{ID: "neuro", Label: "Neuro", Score: 1}}
	s.Update(scores)
	scores[0].Score = 9

	if got := s.Scores()[0].Score; got != 1 {
		t.Errorf("Score = %d, expected the scoreline to keep its own copy", got)
	}
}
