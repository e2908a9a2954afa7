package gamedata

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Cell style identifiers used in theme.json.
const (
	CellWater = "water"
	CellShip  = "ship"
	CellHit   = "hit"
	CellMiss  = "miss"
	CellFog   = "fog" // Unrevealed square on the opponent's board
)

// CellStyleDef defines how one kind of grid square is drawn.
type CellStyleDef struct {
	ID    string `json:"id"`
	Glyph string `json:"glyph"` // Single character, may be multi-byte UTF-8
	Color string `json:"color"` // Hex color code (e.g., "#FF0000")
}

// GlyphRune returns the glyph as a rune for rendering.
func (c *CellStyleDef) GlyphRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Glyph)
	if r == utf8.RuneError {
		return '?'
	}
	return r
}

// TCellColor returns the color as a tcell.Color.
func (c *CellStyleDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(c.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// ThemeDef represents the structure of theme.json.
type ThemeDef struct {
	Title  string         `json:"title"`  // Hex color for board titles
	Labels string         `json:"labels"` // Hex color for row/column numbers
	Cells  []CellStyleDef `json:"cells"`
}

// LoadTheme loads the display theme from the embedded theme.json file.
func LoadTheme() (*ThemeDef, error) {
	theme, err := Load[ThemeDef]("theme.json")
	if err != nil {
		return nil, err
	}
	return &theme, nil
}

// Cell returns the style definition with the given ID, or nil if not found.
func (t *ThemeDef) Cell(id string) *CellStyleDef {
	for i := range t.Cells {
		if t.Cells[i].ID == id {
			return &t.Cells[i]
		}
	}
	return nil
}
