package gamedata

import (
	"errors"
	"fmt"
	"io/fs"
)

// ShipDef defines one ship of the fleet loaded from JSON.
type ShipDef struct {
	ID   string `json:"id"`   // Unique identifier (e.g., "carrier")
	Name string `json:"name"` // Display name (e.g., "Aircraft Carrier")
	Size int    `json:"size"` // Number of grid squares the ship occupies
}

// FleetFile represents the structure of fleet.json.
type FleetFile struct {
	Ships []ShipDef `json:"ships"`
}

// Fleet is an ordered list of ships to place on a board.
// Ships are placed in list order, largest first in the default fleet.
type Fleet []ShipDef

// LoadFleet loads the default fleet from the embedded fleet.json file.
func LoadFleet() (Fleet, error) {
	return LoadFleetFS(dataFS, "fleet.json")
}

// LoadFleetFS loads a fleet definition from a file in fsys.
func LoadFleetFS(fsys fs.FS, filename string) (Fleet, error) {
	file, err := LoadFS[FleetFile](fsys, filename)
	if err != nil {
		return nil, err
	}
	if len(file.Ships) == 0 {
		return nil, fmt.Errorf("no ships loaded from %s", filename)
	}
	return Fleet(file.Ships), nil
}

// MustLoadFleet loads the default fleet, panicking on error.
func MustLoadFleet() Fleet {
	fleet, err := LoadFleet()
	if err != nil {
		panic(err)
	}
	return fleet
}

// Sizes returns the ship sizes in placement order.
func (f Fleet) Sizes() []int {
	sizes := make([]int, len(f))
	for i, s := range f {
		sizes[i] = s.Size
	}
	return sizes
}

// TotalParts returns the number of grid squares the whole fleet covers.
func (f Fleet) TotalParts() int {
	total := 0
	for _, s := range f {
		total += s.Size
	}
	return total
}

// Validate checks that every ship fits on a board with the given side length.
func (f Fleet) Validate(boardSize int) error {
	if len(f) == 0 {
		return errors.New("fleet is empty")
	}
	for _, s := range f {
		if s.Size < 1 || s.Size > boardSize {
			return fmt.Errorf("ship %q has size %d, want 1..%d", s.ID, s.Size, boardSize)
		}
	}
	if f.TotalParts() > boardSize*boardSize {
		return fmt.Errorf("fleet covers %d squares, board has %d", f.TotalParts(), boardSize*boardSize)
	}
	return nil
}
