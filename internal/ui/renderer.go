package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/salvo/internal/board"
)

// Screen layout. Each grid square is three columns wide.
const (
	PlayerBoardX   = 0
	OpponentBoardX = 40

	titleY   = 0
	headerY  = 1
	gridY    = 2
	afloatY  = gridY + board.Size
	statusY  = afloatY + 2
	promptY  = statusY + 2
	problemY = promptY + 1
	hintY    = problemY + 2

	labelWidth = 3
	cellWidth  = 3
)

// Tone selects the color of the status line.
type Tone int

const (
	ToneInfo Tone = iota
	ToneHit
	ToneMiss
	ToneWin
	ToneLoss
)

// View is everything the renderer needs for one frame.
type View struct {
	Player         board.Grid
	Opponent       board.Grid
	PlayerAfloat   int
	OpponentAfloat int

	Status string
	Tone   Tone
	Prompt string // Prompt text including any typed input
	Error  string // Shown below the prompt, e.g. rejected input
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
	theme  Theme
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, theme Theme) *Renderer {
	return &Renderer{screen: screen, theme: theme}
}

// Render draws both boards and the message lines. The player's ships are
// revealed; the opponent's are not.
func (r *Renderer) Render(v View) {
	r.screen.Clear()

	r.drawBoard(PlayerBoardX, "Your Board", &v.Player, true, v.PlayerAfloat)
	r.drawBoard(OpponentBoardX, "Opponent's Board", &v.Opponent, false, v.OpponentAfloat)

	r.screen.DrawText(0, statusY, v.Status, toneStyle(v.Tone))
	r.screen.DrawText(0, promptY, v.Prompt, tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))
	r.screen.DrawText(0, problemY, v.Error, tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true))
	r.screen.DrawText(0, hintY, "Esc or q to quit", r.theme.Labels)

	r.screen.Show()
}

// CellPosition returns the screen position of a grid square for a board
// drawn at originX.
func CellPosition(originX int, c board.Coord) (x, y int) {
	return originX + labelWidth + c.Col*cellWidth + 1, gridY + c.Row
}

func (r *Renderer) drawBoard(originX int, title string, grid *board.Grid, reveal bool, afloat int) {
	r.screen.DrawText(originX, titleY, title, r.theme.Title)

	for col := 0; col < board.Size; col++ {
		x, _ := CellPosition(originX, board.C(0, col))
		r.screen.DrawText(x, headerY, fmt.Sprint(col), r.theme.Labels)
	}

	for row := 0; row < board.Size; row++ {
		r.screen.DrawText(originX, gridY+row, fmt.Sprintf("%2d", row), r.theme.Labels)
		for col := 0; col < board.Size; col++ {
			c := board.C(row, col)
			ch, style := r.theme.Glyph(grid.At(c), reveal)
			x, y := CellPosition(originX, c)
			r.screen.SetContent(x, y, ch, style)
		}
	}

	r.screen.DrawText(originX, afloatY, fmt.Sprintf("Ships afloat: %d", afloat), r.theme.Labels)
}

// toneStyle returns the status line style for a tone.
func toneStyle(t Tone) tcell.Style {
	switch t {
	case ToneHit:
		return tcell.StyleDefault.Foreground(tcell.ColorRed)
	case ToneMiss:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkCyan)
	case ToneWin:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	case ToneLoss:
		return tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorWhite)
	}
}
