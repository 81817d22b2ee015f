package geom

import (
	"fmt"
	"iter"
)

// Direction is a compass facing. The ordinal values are stable.
type Direction uint8

const (
	// North faces up: one row towards zero.
	North Direction = iota
	// East faces right: one column away from zero.
	East
	// South faces down: one row away from zero.
	South
	// West faces left: one column towards zero.
	West
)

var directionRunes = [...]rune{North: '^', East: '>', South: 'v', West: '<'}

var directionNames = [...]string{North: "North", East: "East", South: "South", West: "West"}

// ParseDirection decodes '^', '>', 'v' and '<' into North, East, South and
// West. Any other rune yields ErrUnknownDirection.
func ParseDirection(r rune) (Direction, error) {
	switch r {
	case '^':
		return North, nil
	case '>':
		return East, nil
	case 'v':
		return South, nil
	case '<':
		return West, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, r)
}

// Directions yields North, East, South and West once each, in ordinal order.
func Directions() iter.Seq[Direction] {
	return func(yield func(Direction) bool) {
		for d := North; d <= West; d++ {
			if !yield(d) {
				return
			}
		}
	}
}

// Valid reports whether d is one of the four declared directions.
func (d Direction) Valid() bool {
	return d <= West
}

// Advance returns the unit step for d as (rowDelta, colDelta).
func (d Direction) Advance() (rowDelta, colDelta int) {
	switch d {
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	case West:
		return 0, -1
	}
	return 0, 0
}

// AdvanceBy returns the unit step for d as a Position.
func (d Direction) AdvanceBy() Position {
	dr, dc := d.Advance()
	return Position{X: int64(dr), Y: int64(dc)}
}

// Turn returns the direction 90° clockwise from d.
func (d Direction) Turn() Direction {
	switch d {
	case North:
		return East
	case East:
		return South
	case South:
		return West
	case West:
		return North
	}
	return d
}

// Rune returns the character ParseDirection maps to d, or '?' if d is invalid.
func (d Direction) Rune() rune {
	if !d.Valid() {
		return '?'
	}
	return directionRunes[d]
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return directionNames[d]
}
