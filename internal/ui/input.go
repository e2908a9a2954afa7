package ui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/salvo/internal/board"
)

var (
	// ErrQuit is returned when the player asks to leave the game.
	ErrQuit = errors.New("player quit")
	// ErrInvalidCoord is returned by ParseCoord for malformed input.
	ErrInvalidCoord = errors.New("invalid coordinate")
)

// ParseCoord parses "row,col" or "row col" into a coordinate on the board.
func ParseCoord(text string) (board.Coord, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields) != 2 {
		return board.Coord{}, fmt.Errorf("%w: want 2 numbers, got %d", ErrInvalidCoord, len(fields))
	}

	var nums [2]int
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return board.Coord{}, fmt.Errorf("%w: %q is not a number", ErrInvalidCoord, f)
		}
		if n < 0 || n >= board.Size {
			return board.Coord{}, fmt.Errorf("%w: %d is outside 0-%d", ErrInvalidCoord, n, board.Size-1)
		}
		nums[i] = n
	}
	return board.C(nums[0], nums[1]), nil
}

// KeyboardSource reads target coordinates typed by the player.
// Malformed lines are rejected and the player is asked again.
type KeyboardSource struct {
	screen *Screen
	echo   func(input, problem string)
}

// NewKeyboardSource creates a keyboard move source. echo is called before
// each keystroke is read so the caller can redraw the prompt; it may be nil.
func NewKeyboardSource(screen *Screen, echo func(input, problem string)) *KeyboardSource {
	if echo == nil {
		echo = func(string, string) {}
	}
	return &KeyboardSource{screen: screen, echo: echo}
}

// NextMove blocks until the player enters a valid coordinate.
func (k *KeyboardSource) NextMove(ctx context.Context) (board.Coord, error) {
	problem := ""
	for {
		line, err := k.readLine(ctx, problem)
		if err != nil {
			return board.Coord{}, err
		}
		c, err := ParseCoord(line)
		if err == nil {
			return c, nil
		}
		problem = "Invalid input. Please enter row and column numbers separated by a comma."
	}
}

// WaitForKey blocks until any key is pressed. Quit keys return ErrQuit.
func (k *KeyboardSource) WaitForKey(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		switch ev := k.screen.PollEvent().(type) {
		case nil:
			return ErrQuit
		case *tcell.EventResize:
			k.screen.Sync()
		case *tcell.EventKey:
			if isQuitKey(ev) {
				return ErrQuit
			}
			return nil
		}
	}
}

// readLine collects runes until Enter.
func (k *KeyboardSource) readLine(ctx context.Context, problem string) (string, error) {
	var buf []rune
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		k.echo(string(buf), problem)

		switch ev := k.screen.PollEvent().(type) {
		case nil:
			// Screen was finalized
			return "", ErrQuit
		case *tcell.EventResize:
			k.screen.Sync()
		case *tcell.EventKey:
			if isQuitKey(ev) {
				return "", ErrQuit
			}
			switch ev.Key() {
			case tcell.KeyEnter:
				return string(buf), nil
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				if len(buf) > 0 {
					buf = buf[:len(buf)-1]
				}
			case tcell.KeyRune:
				buf = append(buf, ev.Rune())
			}
		}
	}
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
