// Package safe provides numeric conversions and arithmetic with overflow checks.
package safe

import (
	"fmt"
	"math/bits"
)

// Uint64 converts a signed or unsigned integer to uint64, rejecting negatives.
func Uint64[T ~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64](v T) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("value %d out of uint64 range", v)
	}
	return uint64(v), nil
}

// AddUint64 returns a+b or an error when the sum wraps.
func AddUint64(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, fmt.Errorf("%d + %d overflows uint64", a, b)
	}
	return sum, nil
}
