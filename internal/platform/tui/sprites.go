package tui

import (
	"fmt"

	"github.com/vovakirdan/coin-race/internal/core"
)

// Glyph is the terminal rendition of one sprite: a block of text lines.
// Spaces are transparent. A tiled glyph repeats across the whole target
// rectangle instead of being stamped once at its center.
type Glyph struct {
	Lines []string
	Color core.Color
	Tile  bool
}

// Size returns the glyph's width and height in cells.
func (g Glyph) Size() (w, h int) {
	for _, line := range g.Lines {
		if n := len([]rune(line)); n > w {
			w = n
		}
	}
	return w, len(g.Lines)
}

// SpriteSheet maps sprite references to glyphs.
type SpriteSheet map[core.SpriteRef]Glyph

// Walk-cycle art shared by both characters. Only the head differs.
var (
	bodyDown = [][2]string{
		{"/||\\", " /\\ "},
		{"/||\\", " |\\ "},
		{"\\||/", " /\\ "},
		{"/||\\", " /| "},
	}
	bodyUp = [][2]string{
		{"/||\\", " /\\ "},
		{"/||\\", " /| "},
		{"\\||/", " /\\ "},
		{"/||\\", " |\\ "},
	}
	bodyLeft = [][2]string{
		{" ||\\", " /\\ "},
		{" ||\\", " || "},
	}
	bodyRight = [][2]string{
		{"/|| ", " /\\ "},
		{"/|| ", " || "},
	}
)

// walker describes how one character looks from each side.
type walker struct {
	id    string
	color core.Color
	front string // facing the viewer
	back  string
	left  string
	right string
}

var walkers = []walker{
	{id: "neuro", color: core.ColorCyan, front: " () ", back: " [] ", left: " <) ", right: " (> "},
	{id: "evil", color: core.ColorMagenta, front: " {} ", back: " ## ", left: " <} ", right: " {> "},
}

// DefaultSheet returns glyphs for every sprite the race draws.
func DefaultSheet() SpriteSheet {
	sheet := SpriteSheet{}
	sheet["coin"] = Glyph{Lines: []string{"($)"}, Color: core.ColorYellow}
	sheet["background"] = Glyph{
		Lines: []string{
			".   ,     ",
			"     '   .",
			"  ,    .  ",
		},
		Color: core.ColorGreen,
		Tile:  true,
	}
	for _, w := range walkers {
		w.addTo(sheet)
	}
	return sheet
}

func (w walker) addTo(sheet SpriteSheet) {
	add := func(facing, head string, bodies [][2]string) {
		for i, body := range bodies {
			ref := core.SpriteRef(fmt.Sprintf("%s_%s_%d", w.id, facing, i+1))
			sheet[ref] = Glyph{
				Lines: []string{head, body[0], body[1]},
				Color: w.color,
			}
		}
	}
	add("down", w.front, bodyDown)
	add("up", w.back, bodyUp)
	add("left", w.left, bodyLeft)
	add("right", w.right, bodyRight)
}
