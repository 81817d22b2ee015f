package numeric

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Gcd returns the greatest common divisor of a and b by Euclid's algorithm.
// Gcd(a, 0) == a. For negative inputs the sign follows Go's % operator.
func Gcd[T constraints.Integer](a, b T) T {
	if b == 0 {
		return a
	}
	return Gcd(b, a%b)
}

// Lcm returns |a*b| / Gcd(a, b). At least one argument must be non-zero.
func Lcm[T constraints.Integer](a, b T) T {
	return abs(a*b) / Gcd(a, b)
}

// LcmOf folds Lcm over values starting from 1. It returns 1 for no values.
func LcmOf[T constraints.Integer](values ...T) T {
	result := T(1)
	for _, v := range values {
		result = Lcm(result, v)
	}
	return result
}

// Triangular returns the sum of the integers in [start, end].
// It panics if start > end.
func Triangular(start, end uint64) uint64 {
	if start > end {
		panic(fmt.Sprintf("numeric: Triangular start %d exceeds end %d", start, end))
	}
	if start == 0 {
		return end * (end + 1) / 2
	}
	return Triangular(0, end) - Triangular(0, start-1)
}

func abs[T constraints.Integer](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
