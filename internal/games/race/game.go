// Package race implements the two-player coin race.
// Neuro (WASD) and Evil (arrow keys) walk a shared canvas and compete for a
// coin that jumps somewhere new every time it is picked up.
package race

import (
	"math/rand"

	"github.com/vovakirdan/coin-race/internal/core"
	"github.com/vovakirdan/coin-race/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeRace    Mode = "race"
	ModeEndless Mode = "endless" // Scores count, nobody wins
)

// Game implements the race.
type Game struct {
	mode    Mode
	runtime core.RuntimeConfig
	rng     *rand.Rand
	placer  *Placer

	characters []*Character
	item       Item
	board      *ScoreBoard

	phase    core.Phase
	winner   int
	tick     uint64
	stepping bool

	presenter core.WinPresenter
	scoreFns  []func([]core.PlayerScore)
}

// New creates a scored race.
func New() *Game {
	return &Game{mode: ModeRace, winner: -1}
}

// NewEndless creates a race without a win condition.
func NewEndless() *Game {
	return &Game{mode: ModeEndless, winner: -1}
}

func init() {
	registry.Register("race", func() registry.Game {
		return New()
	})
	registry.Register("race_endless", func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "race_endless"
	}
	return "race"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Coin Race (Endless)"
	}
	return "Coin Race"
}

// SetWinPresenter registers who is told about the winner.
func (g *Game) SetWinPresenter(p core.WinPresenter) {
	g.presenter = p
}

// OnScore registers a callback fired whenever a score changes and on Reset.
func (g *Game) OnScore(fn func([]core.PlayerScore)) {
	g.scoreFns = append(g.scoreFns, fn)
}

// Reset recreates every entity from runtime, including labels and the
// placement cap. Presenter and score callbacks are kept.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.placer = NewPlacer(g.rng, runtime.CanvasW, runtime.CanvasH, runtime.MaxPlacementAttempts)

	g.characters = newRoster(runtime.Labels)
	g.item = NewItem()
	g.board = NewScoreBoard(len(g.characters))

	g.phase = core.PhaseRunning
	g.winner = -1
	g.tick = 0
	g.stepping = false

	g.placeItem()
	g.publishScores()
}

// Step advances the match by one tick: move everyone, then check pickups in
// registration order. Once won, or while a step is already running, it does
// nothing. A frame rendered after Step already shows a collected item at its
// new spot.
func (g *Game) Step(in core.KeyReader) core.StepResult {
	if g.board == nil || g.phase == core.PhaseWon || g.stepping {
		return core.StepResult{State: g.State()}
	}
	g.stepping = true
	defer func() { g.stepping = false }()

	g.tick++
	for _, c := range g.characters {
		c.Update(in)
	}

	var result core.StepResult
	for i, c := range g.characters {
		if core.CenterDistance(c.Box, g.item.Box) >= CollectRadius {
			continue
		}
		g.board.Award(i)
		result.Collected = append(result.Collected, c.ID)
		if g.placeItem() {
			result.Fallback = true
		}
		g.publishScores()
		if g.checkWin() {
			break
		}
	}

	result.State = g.State()
	return result
}

// placeItem moves the item away from everyone. It reports a fallback placement.
func (g *Game) placeItem() bool {
	pos, fallback := g.placer.Place(g.item.Box.W, g.item.Box.H, g.characters)
	g.item.Box.Pos = pos
	return fallback
}

// checkWin moves to the won phase if the board has a winner.
func (g *Game) checkWin() bool {
	if g.mode == ModeEndless {
		return false
	}
	i, ok := g.board.Winner()
	if !ok {
		return false
	}
	g.phase = core.PhaseWon
	g.winner = i
	if g.presenter != nil {
		w := g.characters[i]
		g.presenter.PresentWin(w.Label, w.Portrait())
	}
	return true
}

func (g *Game) publishScores() {
	if len(g.scoreFns) == 0 {
		return
	}
	scores := g.scores()
	for _, fn := range g.scoreFns {
		fn(scores)
	}
}

func (g *Game) scores() []core.PlayerScore {
	scores := make([]core.PlayerScore, len(g.characters))
	for i, c := range g.characters {
		scores[i] = core.PlayerScore{ID: c.ID, Label: c.Label, Score: g.board.Score(i)}
	}
	return scores
}

// Render draws background, characters and item, in that order.
func (g *Game) Render(dst core.Surface) {
	if g.board == nil {
		return
	}
	w, h := g.runtime.CanvasW, g.runtime.CanvasH
	dst.ClearRect(0, 0, w, h)
	dst.DrawImage(BackgroundSprite, 0, 0, w, h)

	for _, c := range g.characters {
		ref, ok := c.Sprite()
		if !ok {
			continue
		}
		dst.DrawImage(ref, c.Box.Pos.X, c.Box.Pos.Y, c.Box.W, c.Box.H)
	}

	if g.item.Sprite != "" {
		b := g.item.Box
		dst.DrawImage(g.item.Sprite, b.Pos.X, b.Pos.Y, b.W, b.H)
	}
}

// State returns the current match state.
func (g *Game) State() core.GameState {
	if g.board == nil {
		return core.GameState{}
	}
	state := core.GameState{
		Phase:  g.phase,
		Scores: g.scores(),
		Tick:   g.tick,
	}
	if g.winner >= 0 {
		state.Winner = g.characters[g.winner].Label
	}
	return state
}

// Characters returns the live characters in registration order.
func (g *Game) Characters() []*Character {
	return g.characters
}

// Item returns the current item.
func (g *Game) Item() Item {
	return g.item
}
