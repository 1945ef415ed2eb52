package board

import "fmt"

// Axis is one of the two directions a word can run in. There are exactly
// two valid values; any other step vector is not an axis.
type Axis uint8

const (
	Across Axis = iota
	Down
)

func (a Axis) String() string {
	switch a {
	case Across:
		return "across"
	case Down:
		return "down"
	}
	return "none"
}

// Step returns the unit step for this axis.
func (a Axis) Step() Position {
	if a == Down {
		return Position{X: 0, Y: 1}
	}
	return Position{X: 1, Y: 0}
}

// Opposite returns the unit step pointing the other way along this axis.
func (a Axis) Opposite() Position {
	if a == Down {
		return Position{X: 0, Y: -1}
	}
	return Position{X: -1, Y: 0}
}

// Orthogonal returns the other axis.
func (a Axis) Orthogonal() Axis {
	if a == Down {
		return Across
	}
	return Down
}

// Valid reports whether a holds one of the two axis values. Values forged
// by conversion fail this check.
func (a Axis) Valid() bool {
	return a == Across || a == Down
}

// AxisFromStep maps a step vector back to its axis. Only the two exact
// unit steps are accepted.
func AxisFromStep(step Position) (Axis, error) {
	switch step {
	case (Position{X: 1, Y: 0}):
		return Across, nil
	case (Position{X: 0, Y: 1}):
		return Down, nil
	}
	return 0, fmt.Errorf("step %v: %w", step, ErrInvalidAxis)
}
