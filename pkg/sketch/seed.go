package sketch

import (
	"math/rand/v2"
	"time"
)

// ResolveSeed returns the pinned seed when the caller supplied one, otherwise
// a seed derived from wall-clock time at millisecond resolution. Unpinned
// runs are non-reproducible; pinned runs reproduce byte for byte.
func ResolveSeed(pinned *uint64) uint64 {
	if pinned != nil {
		return *pinned
	}
	return uint64(time.Now().UnixMilli())
}

// NewRand creates the trial's generator from its seed. The generator is the
// trial's sole entropy source and is never shared across trials.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}
