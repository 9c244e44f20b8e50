package race

import (
	"fmt"
	"math"

	"github.com/vovakirdan/coin-race/internal/core"
)

// Facing is the direction a character is oriented toward.
type Facing int

const (
	FacingDown Facing = iota
	FacingUp
	FacingLeft
	FacingRight
)

// String returns the lower-case name used in sprite references.
func (f Facing) String() string {
	switch f {
	case FacingUp:
		return "up"
	case FacingDown:
		return "down"
	case FacingLeft:
		return "left"
	case FacingRight:
		return "right"
	default:
		return "unknown"
	}
}

// Movement and animation constants.
const (
	WalkSpeed     = 5.0 // Canvas units per tick, in any direction
	FrameInterval = 10  // Ticks per walk-cycle frame
)

// Frames per facing: vertical walk cycles have 4 frames, horizontal ones 2.
var frameCounts = map[Facing]int{
	FacingUp:    4,
	FacingDown:  4,
	FacingLeft:  2,
	FacingRight: 2,
}

// Controls binds the four directions to keys.
type Controls struct {
	Up, Down, Left, Right core.Key
}

// SpriteSet maps each facing to its ordered walk-cycle frames.
type SpriteSet map[Facing][]core.SpriteRef

// NewSpriteSet builds the standard set for a character: <id>_<facing>_<n>.
func NewSpriteSet(id string) SpriteSet {
	set := make(SpriteSet, len(frameCounts))
	for facing, n := range frameCounts {
		refs := make([]core.SpriteRef, n)
		for i := range refs {
			refs[i] = core.SpriteRef(fmt.Sprintf("%s_%s_%d", id, facing, i+1))
		}
		set[facing] = refs
	}
	return set
}

// Frame returns the sprite for a facing and frame index.
// ok is false when the set has nothing to draw there.
func (s SpriteSet) Frame(f Facing, index int) (core.SpriteRef, bool) {
	frames := s[f]
	if index < 0 || index >= len(frames) || frames[index] == "" {
		return "", false
	}
	return frames[index], true
}

// Character is one player-controlled walker.
type Character struct {
	ID       string
	Label    string
	Box      core.Box
	Facing   Facing
	Controls Controls
	Sprites  SpriteSet

	frameIndex    int
	frameTimer    int
	frameInterval int
}

// NewCharacter creates a character standing still at (x, y), facing down.
func NewCharacter(id, label string, x, y, w, h float64, controls Controls) *Character {
	return &Character{
		ID:            id,
		Label:         label,
		Box:           core.NewBox(x, y, w, h),
		Facing:        FacingDown,
		Controls:      controls,
		Sprites:       NewSpriteSet(id),
		frameInterval: FrameInterval,
	}
}

// FrameIndex returns the current walk-cycle frame.
func (c *Character) FrameIndex() int {
	return c.frameIndex
}

// Center returns the center of the character's box.
func (c *Character) Center() core.Vec {
	return c.Box.Center()
}

// Intent returns the raw direction from the held keys, each axis in {-1, 0, 1}.
// Opposing keys cancel.
func (c *Character) Intent(in core.KeyReader) core.Vec {
	var v core.Vec
	if in.IsPressed(c.Controls.Up) {
		v.Y--
	}
	if in.IsPressed(c.Controls.Down) {
		v.Y++
	}
	if in.IsPressed(c.Controls.Left) {
		v.X--
	}
	if in.IsPressed(c.Controls.Right) {
		v.X++
	}
	return v
}

// Update moves and animates the character for one tick.
// It reports whether the character moved.
func (c *Character) Update(in core.KeyReader) bool {
	intent := c.Intent(in)
	if intent.IsZero() {
		// Idle pose is always the first frame
		c.frameIndex = 0
		return false
	}

	c.Box.Pos = c.Box.Pos.Add(intent.Normalize().Scale(WalkSpeed))
	c.face(intent)

	c.frameTimer++
	if c.frameTimer >= c.frameInterval {
		c.frameTimer = 0
		c.frameIndex++
	}
	c.frameIndex %= c.frameCount()
	return true
}

// face picks the facing from the dominant axis. Ties go vertical,
// so a diagonal always shows the up or down walk cycle.
func (c *Character) face(intent core.Vec) {
	if math.Abs(intent.X) > math.Abs(intent.Y) {
		if intent.X > 0 {
			c.Facing = FacingRight
		} else {
			c.Facing = FacingLeft
		}
		return
	}
	if intent.Y > 0 {
		c.Facing = FacingDown
	} else {
		c.Facing = FacingUp
	}
}

// frameCount is the length of the current facing's sequence, at least 1.
func (c *Character) frameCount() int {
	if n := len(c.Sprites[c.Facing]); n > 0 {
		return n
	}
	return 1
}

// Sprite returns the image for the current pose.
func (c *Character) Sprite() (core.SpriteRef, bool) {
	return c.Sprites.Frame(c.Facing, c.frameIndex)
}

// Portrait returns the idle front-facing image used for the win screen.
func (c *Character) Portrait() core.SpriteRef {
	ref, _ := c.Sprites.Frame(FacingDown, 0)
	return ref
}
