package board

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// maxRandomAttempts bounds the random placement trials before falling back
// to a scan of every valid position.
const maxRandomAttempts = 200

// ErrCannotPlace is returned when a ship run leaves the board or overlaps
// another ship.
var ErrCannotPlace = errors.New("ship cannot be placed")

// Board holds one side's grid and fleet.
type Board struct {
	grid  Grid
	parts []Coord
	ships []*Ship
	rng   *rand.Rand
}

// Report describes a resolved shot in more detail than Outcome.
type Report struct {
	Target  Coord
	Outcome Outcome
	Repeat  bool  // Target had already been fired upon; Outcome is Miss
	Sunk    *Ship // Ship whose last intact part was struck by this shot
}

// New creates an empty board. A nil rng uses a time-seeded source.
func New(rng *rand.Rand) *Board {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Board{
		parts: make([]Coord, 0),
		ships: make([]*Ship, 0),
		rng:   rng,
	}
}

// PlaceShip places an unnamed ship of the given size at a random position.
func (b *Board) PlaceShip(size int) *Ship {
	return b.PlaceNamedShip("", size)
}

// PlaceNamedShip places a ship at a random row, column and orientation.
// Panics if no valid run exists.
func (b *Board) PlaceNamedShip(name string, size int) *Ship {
	ship, err := b.PlaceRandom(name, size)
	if err != nil {
		panic(fmt.Sprintf("board: %v", err))
	}
	return ship
}

// PlaceRandom places a ship at a random row, column and orientation.
// Random trials are retried until a free run is found; after
// maxRandomAttempts it picks uniformly among all valid runs instead, so the
// call always terminates. Returns ErrCannotPlace and leaves the board
// unchanged if no valid run exists.
func (b *Board) PlaceRandom(name string, size int) (*Ship, error) {
	for i := 0; i < maxRandomAttempts; i++ {
		row := b.rng.Intn(Size)
		col := b.rng.Intn(Size)
		horizontal := b.rng.Intn(2) == 0
		if b.CanPlace(row, col, size, horizontal) {
			return b.put(name, C(row, col), size, horizontal), nil
		}
	}

	candidates := b.validPlacements(size)
	if len(candidates) == 0 {
		return nil, fmt.Errorf("no room for ship of size %d: %w", size, ErrCannotPlace)
	}
	p := candidates[b.rng.Intn(len(candidates))]
	return b.put(name, p.origin, size, p.horizontal), nil
}

// Place puts a ship at an exact position.
func (b *Board) Place(name string, origin Coord, size int, horizontal bool) (*Ship, error) {
	if !b.CanPlace(origin.Row, origin.Col, size, horizontal) {
		return nil, fmt.Errorf("size %d at %v (horizontal=%t): %w", size, origin, horizontal, ErrCannotPlace)
	}
	return b.put(name, origin, size, horizontal), nil
}

// CanPlace returns true if a run of size cells starting at (row, col) lies on
// the board and covers only empty cells.
func (b *Board) CanPlace(row, col, size int, horizontal bool) bool {
	if size < 1 || row < 0 || col < 0 {
		return false
	}
	if horizontal {
		if row >= Size || col+size > Size {
			return false
		}
	} else if col >= Size || row+size > Size {
		return false
	}

	origin := C(row, col)
	for i := 0; i < size; i++ {
		if b.grid.At(origin.offset(i, horizontal)) != CellEmpty {
			return false
		}
	}
	return true
}

// Fire shoots at (row, col) and returns the outcome. Firing at a cell that
// was already resolved reports Miss and changes nothing.
// Panics if the coordinate is off the board.
func (b *Board) Fire(row, col int) Outcome {
	return b.Strike(C(row, col)).Outcome
}

// Strike shoots at the target and returns a full report.
// Panics if the target is off the board.
func (b *Board) Strike(target Coord) Report {
	b.mustBeOnBoard(target)

	report := Report{Target: target, Outcome: Miss}
	switch cell := b.grid.At(target); {
	case cell.IsResolved():
		report.Repeat = true
	case cell == CellEmpty:
		b.grid[target.Row][target.Col] = CellMiss
	case cell == CellShip:
		b.grid[target.Row][target.Col] = CellHit
		report.Outcome = Hit
		if s := b.shipAt(target); s != nil && b.IsSunk(s) {
			report.Sunk = s
		}
	}
	return report
}

// IsDestroyed returns true if every ship part has been hit.
func (b *Board) IsDestroyed() bool {
	for _, p := range b.parts {
		if b.grid.At(p) != CellHit {
			return false
		}
	}
	return true
}

// IsSunk returns true if every part of the ship has been hit.
func (b *Board) IsSunk(s *Ship) bool {
	return s.hitCount(&b.grid) == len(s.Parts)
}

// Cell returns the state of the cell at (row, col).
// Panics if the coordinate is off the board.
func (b *Board) Cell(row, col int) Cell {
	c := C(row, col)
	b.mustBeOnBoard(c)
	return b.grid.At(c)
}

// Snapshot returns a copy of the grid.
func (b *Board) Snapshot() Grid {
	return b.grid
}

// Ships returns a copy of the placed ships in placement order.
func (b *Board) Ships() []*Ship {
	ships := make([]*Ship, len(b.ships))
	copy(ships, b.ships)
	return ships
}

// ShipParts returns a copy of every coordinate occupied by a ship.
func (b *Board) ShipParts() []Coord {
	parts := make([]Coord, len(b.parts))
	copy(parts, b.parts)
	return parts
}

// Remaining returns the number of ships not yet sunk.
func (b *Board) Remaining() int {
	count := 0
	for _, s := range b.ships {
		if !b.IsSunk(s) {
			count++
		}
	}
	return count
}

// put marks a run as ship parts. The caller has already checked CanPlace.
func (b *Board) put(name string, origin Coord, size int, horizontal bool) *Ship {
	ship := &Ship{
		Name:       name,
		Size:       size,
		Horizontal: horizontal,
		Parts:      make([]Coord, 0, size),
	}
	for i := 0; i < size; i++ {
		c := origin.offset(i, horizontal)
		b.grid[c.Row][c.Col] = CellShip
		b.parts = append(b.parts, c)
		ship.Parts = append(ship.Parts, c)
	}
	b.ships = append(b.ships, ship)
	return ship
}

// placement is a candidate ship position.
type placement struct {
	origin     Coord
	horizontal bool
}

// validPlacements lists every position where a ship of the given size fits.
func (b *Board) validPlacements(size int) []placement {
	var out []placement
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			for _, horizontal := range []bool{true, false} {
				if b.CanPlace(row, col, size, horizontal) {
					out = append(out, placement{origin: C(row, col), horizontal: horizontal})
				}
			}
		}
	}
	return out
}

// shipAt returns the ship occupying c, or nil.
func (b *Board) shipAt(c Coord) *Ship {
	for _, s := range b.ships {
		if s.Occupies(c) {
			return s
		}
	}
	return nil
}

func (b *Board) mustBeOnBoard(c Coord) {
	if !c.Valid() {
		panic(fmt.Sprintf("board: coordinate %v is off the %dx%d board", c, Size, Size))
	}
}
