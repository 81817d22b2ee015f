// Package numeric holds the small integer helpers that keep turning up in
// grid puzzles: greatest common divisor, least common multiple and ranged
// triangular sums.
//
// Gcd, Lcm and LcmOf are generic over golang.org/x/exp/constraints.Integer.
// Triangular works on uint64 and treats start > end as a programming error.
//
// Panics:
//
//   - Lcm(0, 0) divides by zero.
//   - Triangular(start, end) with start > end.
package numeric
