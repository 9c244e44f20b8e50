package race

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/coin-race/internal/core"
)

// Item defaults.
const (
	ItemSize         = 32.0
	MinSeparation    = 50.0 // Center distance kept from every character at placement
	ItemSprite       = core.SpriteRef("coin")
	BackgroundSprite = core.SpriteRef("background")
)

// Item is the collectible. It only moves when placed.
type Item struct {
	Box    core.Box
	Sprite core.SpriteRef
}

// NewItem creates an item at the origin.
func NewItem() Item {
	return Item{
		Box:    core.NewBox(0, 0, ItemSize, ItemSize),
		Sprite: ItemSprite,
	}
}

// Placer picks random item positions inside the canvas away from characters.
type Placer struct {
	Width, Height float64
	MinSeparation float64
	// MaxAttempts caps the search. Zero or less means search until a valid
	// spot turns up, which never ends on a canvas too small for the exclusion.
	MaxAttempts int

	rng *rand.Rand
}

// NewPlacer creates a placer for a canvas of the given size.
func NewPlacer(rng *rand.Rand, width, height float64, maxAttempts int) *Placer {
	return &Placer{
		Width:         width,
		Height:        height,
		MinSeparation: MinSeparation,
		MaxAttempts:   maxAttempts,
		rng:           rng,
	}
}

// Place returns a top-left position for an item of size w×h.
// Every excluded character's center is at least MinSeparation from the
// item's center, unless the attempt cap ran out: then the best candidate
// seen is returned with fallback set.
func (p *Placer) Place(w, h float64, excluded []*Character) (pos core.Vec, fallback bool) {
	spanX := math.Max(p.Width-w, 0)
	spanY := math.Max(p.Height-h, 0)

	best := core.Vec{}
	bestClearance := math.Inf(-1)

	for attempt := 0; p.MaxAttempts <= 0 || attempt < p.MaxAttempts; attempt++ {
		candidate := core.Vec{
			X: p.rng.Float64() * spanX,
			Y: p.rng.Float64() * spanY,
		}
		clearance := clearanceFrom(core.Box{Pos: candidate, W: w, H: h}, excluded)
		if clearance >= p.MinSeparation {
			return candidate, false
		}
		if clearance > bestClearance {
			best, bestClearance = candidate, clearance
		}
	}
	return best, true
}

// clearanceFrom returns the smallest center distance from box to any character.
// With nothing to avoid it is +Inf.
func clearanceFrom(box core.Box, excluded []*Character) float64 {
	clearance := math.Inf(1)
	for _, c := range excluded {
		clearance = math.Min(clearance, core.CenterDistance(box, c.Box))
	}
	return clearance
}
