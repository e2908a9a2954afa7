package game

import (
	"math/rand"
	"time"

	"github.com/samdwyer/salvo/internal/gamedata"
)

// Random streams derived from the seed, so each consumer gets its own sequence.
const (
	streamPlayerBoard int64 = iota + 1
	streamOpponentBoard
	streamOpponentMoves
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible fleet placement
	// and opponent moves. A seed of 0 means a random seed will be generated.
	Seed int64

	// Fleet lists the ships placed on each board. Nil means the embedded default fleet.
	Fleet gamedata.Fleet
}

// DefaultConfig returns a Config with a random seed and the default fleet.
func DefaultConfig() Config {
	return Config{Fleet: gamedata.MustLoadFleet()}
}

// RNG returns a random source for the given stream. Nearby seeds and
// streams map to unrelated source seeds.
func (c Config) RNG(stream int64) *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(mixSeed(seed, stream)))
}

// mixSeed combines a seed and a stream with the splitmix64 finalizer.
func mixSeed(seed, stream int64) int64 {
	z := uint64(seed) + uint64(stream)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return int64(z ^ (z >> 31))
}

// fleet returns the configured fleet, falling back to the embedded default.
func (c Config) fleet() gamedata.Fleet {
	if len(c.Fleet) == 0 {
		return gamedata.MustLoadFleet()
	}
	return c.Fleet
}
