// Package geom provides the value types used to address and walk a 2D grid:
// an integer vector Position plus the Direction and Move compass enums.
//
// What:
//
//   - Position is a signed (X, Y) pair where X indexes rows and Y indexes
//     columns. It is comparable, so it works as a map key, and totally
//     ordered through Compare (X first, then Y).
//   - Add, Sub, Scale and Wrap are pure; every call returns a new value.
//   - Direction (North, East, South, West) decodes from '^', '>', 'v', '<',
//     turns clockwise and yields a unit step.
//   - Move (Up, Down, Left, Right) yields the same unit steps without any
//     turning relation.
//
// Wrap:
//
//	size.Wrap(p) reduces p into [0,size.X)×[0,size.Y) using Euclidean
//	remainder. The receiver supplies the divisors and the argument the
//	dividends, so the result is never negative for positive sizes.
//
// Errors:
//
//   - ErrUnknownDirection: ParseDirection was given a rune outside '^','>','v','<'.
//
// Complexity: every operation is O(1).
package geom
