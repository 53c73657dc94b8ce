package generator

import (
	"fmt"
	"math"
)

// Int returns a uniform integer in [min, max].
func (g *Generator) Int(min, max int64) (int64, error) {
	if min >= max {
		return 0, fmt.Errorf("%w: got min %d, max %d", ErrInvalidRange, min, max)
	}
	span := uint64(max) - uint64(min)
	if span == math.MaxUint64 {
		return int64(g.src.Uint64()), nil
	}
	return int64(uint64(min) + g.src.Uint64N(span+1)), nil
}
