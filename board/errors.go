package board

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPosition is returned when an operation requires an
	// on-board coordinate and gets one outside the bounds.
	ErrInvalidPosition = errors.New("position is not on the board")
	// ErrEmptyAnchor is returned when pattern generation is requested
	// at a position with no placed tile.
	ErrEmptyAnchor = errors.New("no tile at anchor position")
	// ErrInvalidAxis is returned for a step vector that is not one of
	// the two canonical unit steps.
	ErrInvalidAxis = errors.New("not an axis")
	// ErrInvalidWordShape is returned when tiles do not form a single
	// contiguous run of at least two tiles along one axis.
	ErrInvalidWordShape = errors.New("tiles do not form a word")
)

// LetterMismatchError is returned when a tile is placed on a square that
// already holds a different letter. It carries both tiles so callers can
// report the conflict.
type LetterMismatchError struct {
	Placed   Tile
	Existing Tile
}

func (e *LetterMismatchError) Error() string {
	return fmt.Sprintf("tile letter does not match board letter: %v %v",
		e.Existing, e.Placed)
}
