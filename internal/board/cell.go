// Package board provides the battleship grid, fleet placement and shot resolution.
package board

// Cell represents the state of a single grid square.
type Cell int

const (
	// CellEmpty is open water that has not been fired upon.
	CellEmpty Cell = iota
	// CellShip holds an intact ship part.
	CellShip
	// CellHit is a ship part that has been struck.
	CellHit
	// CellMiss is open water that has been fired upon.
	CellMiss
)

// String returns a human-readable cell name.
func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellShip:
		return "ship"
	case CellHit:
		return "hit"
	case CellMiss:
		return "miss"
	default:
		return "unknown"
	}
}

// IsResolved returns true once the cell has been fired upon.
// Resolved cells never change again.
func (c Cell) IsResolved() bool {
	return c == CellHit || c == CellMiss
}

// Outcome is the result of firing at a cell.
type Outcome int

const (
	// Miss means no intact ship part was at the target.
	Miss Outcome = iota
	// Hit means an intact ship part was struck.
	Hit
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case Miss:
		return "miss"
	case Hit:
		return "hit"
	default:
		return "unknown"
	}
}
