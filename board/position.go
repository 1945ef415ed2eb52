package board

import "fmt"

// Position is a board coordinate. X is the column, Y is the row.
type Position struct {
	X int
	Y int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Plus returns the position offset by o.
func (p Position) Plus(o Position) Position {
	return Position{X: p.X + o.X, Y: p.Y + o.Y}
}

// Minus returns the componentwise difference p - o.
func (p Position) Minus(o Position) Position {
	return Position{X: p.X - o.X, Y: p.Y - o.Y}
}

// Scaled returns the position with both components multiplied by n.
func (p Position) Scaled(n int) Position {
	return Position{X: p.X * n, Y: p.Y * n}
}
