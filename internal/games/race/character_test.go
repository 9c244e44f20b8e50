package race

import (
	"math"
	"testing"

	"github.com/vovakirdan/coin-race/internal/core"
)

const eps = 1e-9

// held returns an input state with the given keys pressed.
func held(keys ...core.Key) *core.InputState {
	in := core.NewInputState()
	for _, k := range keys {
		in.SetPressed(k, true)
	}
	return in
}

func newNeuro() *Character {
	return NewCharacter("neuro", "Neuro", 50, 50, CharacterWidth, CharacterHeight, NeuroControls)
}

func TestMovementNormalization(t *testing.T) {
	tests := []struct {
		name   string
		keys   []core.Key
		dx, dy float64
		facing Facing
	}{
		{"up", []core.Key{"w"}, 0, -5, FacingUp},
		{"down", []core.Key{"s"}, 0, 5, FacingDown},
		{"left", []core.Key{"a"}, -5, 0, FacingLeft},
		{"right", []core.Key{"d"}, 5, 0, FacingRight},
		{"down-right", []core.Key{"s", "d"}, 5 / math.Sqrt2, 5 / math.Sqrt2, FacingDown},
		{"up-left", []core.Key{"w", "a"}, -5 / math.Sqrt2, -5 / math.Sqrt2, FacingUp},
		{"up-right ties go vertical", []core.Key{"w", "d"}, 5 / math.Sqrt2, -5 / math.Sqrt2, FacingUp},
		{"down-left ties go vertical", []core.Key{"s", "a"}, -5 / math.Sqrt2, 5 / math.Sqrt2, FacingDown},
		{"up+down cancel", []core.Key{"w", "s"}, 0, 0, FacingDown},
		{"left+right cancel", []core.Key{"a", "d"}, 0, 0, FacingDown},
		{"up+down+right", []core.Key{"w", "s", "d"}, 5, 0, FacingRight},
		{"all four", []core.Key{"w", "a", "s", "d"}, 0, 0, FacingDown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := newNeuro()
			start := c.Box.Pos

			moved := c.Update(held(tc.keys...))

			d := c.Box.Pos.Sub(start)
			if math.Abs(d.X-tc.dx) > eps || math.Abs(d.Y-tc.dy) > eps {
				t.Errorf("displacement = (%f, %f), expected (%f, %f)", d.X, d.Y, tc.dx, tc.dy)
			}
			if moved {
				if math.Abs(d.Len()-WalkSpeed) > eps {
					t.Errorf("speed = %f, expected %f", d.Len(), WalkSpeed)
				}
			} else if !d.IsZero() {
				t.Errorf("Update() reported no movement but moved by %+v", d)
			}
			if c.Facing != tc.facing {
				t.Errorf("facing = %v, expected %v", c.Facing, tc.facing)
			}
		})
	}
}

func TestOtherPlayersKeysIgnored(t *testing.T) {
	c := newNeuro()
	c.Update(held("up", "left"))

	if c.Box.Pos != (core.Vec{X: 50, Y: 50}) {
		t.Errorf("Neuro moved on arrow keys: %+v", c.Box.Pos)
	}
}

func TestFrameCycle(t *testing.T) {
	c := newNeuro()
	in := held("s")
	frames := len(c.Sprites[FacingDown])

	visits := make([]int, frames)
	for i := 0; i < FrameInterval*frames; i++ {
		c.Update(in)
		visits[c.FrameIndex()]++
	}

	for i, n := range visits {
		if n != FrameInterval {
			t.Errorf("frame %d shown for %d ticks, expected %d", i, n, FrameInterval)
		}
	}
	if c.FrameIndex() != 0 {
		t.Errorf("after a full cycle frame = %d, expected 0", c.FrameIndex())
	}
}

func TestHorizontalCycleHasTwoFrames(t *testing.T) {
	c := newNeuro()
	in := held("d")

	seen := map[int]bool{}
	for i := 0; i < FrameInterval*6; i++ {
		c.Update(in)
		seen[c.FrameIndex()] = true
	}

	if len(seen) != 2 || !seen[0] || !seen[1] {
		t.Errorf("right walk cycle visited %v, expected frames 0 and 1", seen)
	}
}

func TestIdleResetsFrame(t *testing.T) {
	c := newNeuro()
	for i := 0; i < FrameInterval*2+3; i++ {
		c.Update(held("w"))
	}
	if c.FrameIndex() != 2 {
		t.Fatalf("frame = %d, expected 2 before going idle", c.FrameIndex())
	}

	c.Update(held())
	if c.FrameIndex() != 0 {
		t.Errorf("idle frame = %d, expected 0", c.FrameIndex())
	}
	if c.Facing != FacingUp {
		t.Errorf("idle should keep facing, got %v", c.Facing)
	}
}

func TestFacingChangeKeepsFrameValid(t *testing.T) {
	c := newNeuro()
	for i := 0; i < FrameInterval*3+5; i++ {
		c.Update(held("w"))
	}
	if c.FrameIndex() != 3 {
		t.Fatalf("frame = %d, expected 3", c.FrameIndex())
	}

	c.Update(held("d"))
	if c.Facing != FacingRight {
		t.Fatalf("facing = %v, expected right", c.Facing)
	}
	if c.FrameIndex() >= len(c.Sprites[FacingRight]) {
		t.Errorf("frame %d out of range for right-facing sequence", c.FrameIndex())
	}
	if _, ok := c.Sprite(); !ok {
		t.Error("current pose should have a sprite")
	}
}

func TestSpriteSetNaming(t *testing.T) {
	set := NewSpriteSet("evil")

	want := map[Facing]int{FacingUp: 4, FacingDown: 4, FacingLeft: 2, FacingRight: 2}
	for f, n := range want {
		if len(set[f]) != n {
			t.Errorf("%v has %d frames, expected %d", f, len(set[f]), n)
		}
	}

	ref, ok := set.Frame(FacingLeft, 1)
	if !ok || ref != "evil_left_2" {
		t.Errorf("Frame(left, 1) = %q, %v", ref, ok)
	}
	if _, ok := set.Frame(FacingLeft, 2); ok {
		t.Error("Frame past the end should report missing")
	}
}

func TestMissingSpritesDoNotBreakAnimation(t *testing.T) {
	c := newNeuro()
	c.Sprites = SpriteSet{}

	for i := 0; i < 25; i++ {
		c.Update(held("d"))
	}
	if _, ok := c.Sprite(); ok {
		t.Error("empty sprite set should report missing sprite")
	}
	if c.FrameIndex() != 0 {
		t.Errorf("frame = %d, expected 0 with no frames available", c.FrameIndex())
	}
}

func TestNoBoundsClamp(t *testing.T) {
	c := newNeuro()
	for i := 0; i < 100; i++ {
		c.Update(held("a"))
	}
	if c.Box.Pos.X != 50-100*WalkSpeed {
		t.Errorf("x = %f, expected %f", c.Box.Pos.X, 50-100*WalkSpeed)
	}
}
