package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/salvo/internal/board"
	"github.com/samdwyer/salvo/internal/gamedata"
)

// glyph is a rune and the style it is drawn with.
type glyph struct {
	r     rune
	style tcell.Style
}

// Theme maps cell states to glyphs and colors.
type Theme struct {
	water, ship, hit, miss, fog glyph

	Title  tcell.Style
	Labels tcell.Style
}

// NewTheme builds a theme from loaded theme data. Missing cell styles
// fall back to plain ASCII.
func NewTheme(def *gamedata.ThemeDef) Theme {
	pick := func(id string, fallback rune) glyph {
		if c := def.Cell(id); c != nil {
			return glyph{r: c.GlyphRune(), style: tcell.StyleDefault.Foreground(c.TCellColor())}
		}
		return glyph{r: fallback, style: tcell.StyleDefault}
	}

	return Theme{
		water:  pick(gamedata.CellWater, '~'),
		ship:   pick(gamedata.CellShip, '#'),
		hit:    pick(gamedata.CellHit, 'X'),
		miss:   pick(gamedata.CellMiss, 'o'),
		fog:    pick(gamedata.CellFog, ' '),
		Title:  styleFromHex(def.Title).Bold(true),
		Labels: styleFromHex(def.Labels),
	}
}

// DefaultTheme loads the embedded theme. It falls back to an empty
// definition (ASCII glyphs) if the theme cannot be loaded.
func DefaultTheme() Theme {
	def, err := gamedata.LoadTheme()
	if err != nil {
		def = &gamedata.ThemeDef{}
	}
	return NewTheme(def)
}

// Glyph returns how a cell is drawn. Unless reveal is set, intact ship
// parts look like unexplored water.
func (t Theme) Glyph(c board.Cell, reveal bool) (rune, tcell.Style) {
	var g glyph
	switch {
	case c == board.CellHit:
		g = t.hit
	case c == board.CellMiss:
		g = t.miss
	case !reveal:
		g = t.fog
	case c == board.CellShip:
		g = t.ship
	default:
		g = t.water
	}
	return g.r, g.style
}

func styleFromHex(hex string) tcell.Style {
	color, err := gamedata.ParseHexColor(hex)
	if err != nil {
		return tcell.StyleDefault.Foreground(tcell.ColorWhite)
	}
	return tcell.StyleDefault.Foreground(color)
}
