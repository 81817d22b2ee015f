package geom

import "fmt"

// Move is a step on a grid with no notion of facing.
type Move uint8

const (
	Up Move = iota
	Down
	Left
	Right
)

// AdvanceBy returns the unit step for m. The mapping matches Direction:
// Up=North, Right=East, Down=South, Left=West.
func (m Move) AdvanceBy() Position {
	switch m {
	case Up:
		return Position{X: -1, Y: 0}
	case Right:
		return Position{X: 0, Y: 1}
	case Down:
		return Position{X: 1, Y: 0}
	case Left:
		return Position{X: 0, Y: -1}
	}
	return Origin
}

func (m Move) String() string {
	switch m {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	}
	return fmt.Sprintf("Move(%d)", uint8(m))
}
