package board

import "fmt"

// Size is the side length of every board.
const Size = 10

// Coord identifies a grid square by row and column.
type Coord struct {
	Row int
	Col int
}

// C is a convenience constructor for Coord.
func C(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// Valid returns true if the coordinate lies on the board.
func (c Coord) Valid() bool {
	return c.Row >= 0 && c.Row < Size && c.Col >= 0 && c.Col < Size
}

// String returns the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// offset returns the i-th square of a run starting at c.
func (c Coord) offset(i int, horizontal bool) Coord {
	if horizontal {
		return Coord{Row: c.Row, Col: c.Col + i}
	}
	return Coord{Row: c.Row + i, Col: c.Col}
}

// Grid is a full snapshot of cell states, indexed [row][col].
type Grid [Size][Size]Cell

// At returns the cell at the given coordinate.
func (g *Grid) At(c Coord) Cell {
	return g[c.Row][c.Col]
}

// Count returns how many cells hold the given state.
func (g *Grid) Count(state Cell) int {
	n := 0
	for r := range g {
		for c := range g[r] {
			if g[r][c] == state {
				n++
			}
		}
	}
	return n
}
