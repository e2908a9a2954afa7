package game

import (
	"context"
	"math/rand"

	"github.com/samdwyer/salvo/internal/board"
)

// MoveSource supplies the next coordinate to fire at.
// Implementations must only return coordinates on the board; malformed input
// is handled inside the source. An error ends the match.
type MoveSource interface {
	NextMove(ctx context.Context) (board.Coord, error)
}

// MoveSourceFunc adapts a function to the MoveSource interface.
type MoveSourceFunc func(ctx context.Context) (board.Coord, error)

// NextMove calls f(ctx).
func (f MoveSourceFunc) NextMove(ctx context.Context) (board.Coord, error) {
	return f(ctx)
}

// RandomSource fires at uniformly random squares. It keeps no memory of
// earlier shots and may target squares that are already resolved.
type RandomSource struct {
	rng *rand.Rand
}

// NewRandomSource creates a random move source.
func NewRandomSource(rng *rand.Rand) *RandomSource {
	return &RandomSource{rng: rng}
}

// NextMove returns a random coordinate.
func (s *RandomSource) NextMove(ctx context.Context) (board.Coord, error) {
	if err := ctx.Err(); err != nil {
		return board.Coord{}, err
	}
	return board.C(s.rng.Intn(board.Size), s.rng.Intn(board.Size)), nil
}
