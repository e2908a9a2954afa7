package board

// Ship is a contiguous run of ship parts placed during setup.
type Ship struct {
	Name       string
	Size       int
	Horizontal bool
	Parts      []Coord
}

// Origin returns the first (top-left) part of the ship.
func (s *Ship) Origin() Coord {
	return s.Parts[0]
}

// Occupies returns true if the ship has a part at the given coordinate.
func (s *Ship) Occupies(c Coord) bool {
	for _, p := range s.Parts {
		if p == c {
			return true
		}
	}
	return false
}

// hitCount returns how many of the ship's parts are hit on the given grid.
func (s *Ship) hitCount(g *Grid) int {
	n := 0
	for _, p := range s.Parts {
		if g.At(p) == CellHit {
			n++
		}
	}
	return n
}
