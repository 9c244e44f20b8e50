package tui

import (
	"math"

	"github.com/vovakirdan/coin-race/internal/core"
)

// TerminalSurface draws canvas-space rectangles onto a cell Screen.
// Canvas coordinates are scaled to the screen, so the whole canvas always
// fits no matter the terminal size. Anything off the canvas is clipped.
type TerminalSurface struct {
	screen  *core.Screen
	canvasW float64
	canvasH float64
	sheet   SpriteSheet

	missing   map[core.SpriteRef]bool
	onMissing func(core.SpriteRef)
}

// NewTerminalSurface creates a surface mapping a canvasW x canvasH canvas
// onto screen.
func NewTerminalSurface(screen *core.Screen, canvasW, canvasH float64, sheet SpriteSheet) *TerminalSurface {
	return &TerminalSurface{
		screen:  screen,
		canvasW: canvasW,
		canvasH: canvasH,
		sheet:   sheet,
		missing: make(map[core.SpriteRef]bool),
	}
}

// OnMissing registers fn to be called the first time an unknown sprite is drawn.
func (s *TerminalSurface) OnMissing(fn func(core.SpriteRef)) {
	s.onMissing = fn
}

// scale returns cells per canvas unit on each axis.
func (s *TerminalSurface) scale() (sx, sy float64) {
	if s.canvasW <= 0 || s.canvasH <= 0 {
		return 0, 0
	}
	return float64(s.screen.Width()) / s.canvasW, float64(s.screen.Height()) / s.canvasH
}

// cellRect converts a canvas rectangle to a cell rectangle clipped to the screen.
func (s *TerminalSurface) cellRect(x, y, w, h float64) (cx, cy, cw, ch int) {
	sx, sy := s.scale()
	sw, sh := s.screen.Width(), s.screen.Height()

	x0 := core.Clamp(int(math.Floor(x*sx)), 0, sw)
	y0 := core.Clamp(int(math.Floor(y*sy)), 0, sh)
	x1 := core.Clamp(int(math.Ceil((x+w)*sx)), 0, sw)
	y1 := core.Clamp(int(math.Ceil((y+h)*sy)), 0, sh)
	return x0, y0, x1 - x0, y1 - y0
}

// ClearRect blanks the cells covering the canvas rectangle.
func (s *TerminalSurface) ClearRect(x, y, w, h float64) {
	cx, cy, cw, ch := s.cellRect(x, y, w, h)
	s.screen.ClearArea(cx, cy, cw, ch)
}

// DrawImage stamps the glyph for ref, centered on the canvas rectangle.
// Unknown references draw nothing.
func (s *TerminalSurface) DrawImage(ref core.SpriteRef, x, y, w, h float64) {
	g, ok := s.sheet[ref]
	if !ok {
		s.reportMissing(ref)
		return
	}

	if g.Tile {
		s.tile(g, x, y, w, h)
		return
	}

	sx, sy := s.scale()
	gw, gh := g.Size()
	centerX := int(math.Floor((x + w/2) * sx))
	centerY := int(math.Floor((y + h/2) * sy))
	s.stamp(g, centerX-gw/2, centerY-gh/2)
}

// stamp writes the glyph's visible runes with their top-left at (left, top).
func (s *TerminalSurface) stamp(g Glyph, left, top int) {
	for row, line := range g.Lines {
		col := 0
		for _, r := range line {
			if r != ' ' {
				s.screen.SetCell(left+col, top+row, core.Cell{Rune: r, Color: g.Color})
			}
			col++
		}
	}
}

// tile repeats the glyph over the rectangle, anchored at screen origin so
// the pattern does not shift when the rectangle does.
func (s *TerminalSurface) tile(g Glyph, x, y, w, h float64) {
	gw, gh := g.Size()
	if gw == 0 || gh == 0 {
		return
	}
	lines := make([][]rune, gh)
	for i, line := range g.Lines {
		lines[i] = []rune(line)
	}

	cx, cy, cw, ch := s.cellRect(x, y, w, h)
	for row := cy; row < cy+ch; row++ {
		line := lines[row%gh]
		for col := cx; col < cx+cw; col++ {
			i := col % gw
			if i >= len(line) || line[i] == ' ' {
				continue
			}
			s.screen.SetCell(col, row, core.Cell{Rune: line[i], Color: g.Color})
		}
	}
}

func (s *TerminalSurface) reportMissing(ref core.SpriteRef) {
	if s.missing[ref] {
		return
	}
	s.missing[ref] = true
	if s.onMissing != nil {
		s.onMissing(ref)
	}
}
