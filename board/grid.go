package board

import (
	"sort"
	"strings"
)

// Grid is the state of the board: a sparse mapping from positions to
// placed tiles, bounded by a height and width. It is the only mutable
// shared state in the system; callers that mutate it must have
// exclusive access relative to any in-flight search.
type Grid struct {
	height int
	width  int
	tiles  map[Position]Tile
}

// NewGrid creates an empty grid with the given bounds.
func NewGrid(height, width int) *Grid {
	return &Grid{
		height: height,
		width:  width,
		tiles:  make(map[Position]Tile),
	}
}

// Seed describes one word of a starting board state.
type Seed struct {
	Word  string
	Start Position
	Axis  Axis
}

// SeedGrid creates a grid and places the seed words on it, in order.
func SeedGrid(height, width int, seeds []Seed) (*Grid, error) {
	g := NewGrid(height, width)
	for _, s := range seeds {
		w, err := MakeWord(s.Word, s.Start, s.Axis)
		if err != nil {
			return nil, err
		}
		if err := g.PlaceWord(w); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func (g *Grid) Height() int { return g.height }
func (g *Grid) Width() int  { return g.width }

// Contains reports whether pos is on the board. The upper bound is
// inclusive, matching the original board semantics; see DESIGN.md.
func (g *Grid) Contains(pos Position) bool {
	return pos.X >= 0 && pos.X <= g.width &&
		pos.Y >= 0 && pos.Y <= g.height
}

// Get returns the tile at pos, if any. It does not check bounds.
func (g *Grid) Get(pos Position) (Tile, bool) {
	t, ok := g.tiles[pos]
	return t, ok
}

// Occupied reports whether a tile has been placed at pos.
func (g *Grid) Occupied(pos Position) bool {
	_, ok := g.tiles[pos]
	return ok
}

// Remove deletes the tile at pos. Removing an empty square is a no-op.
func (g *Grid) Remove(pos Position) {
	delete(g.tiles, pos)
}

// PlaceTile puts a single tile on the board, overwriting any tile
// already there. The position must be on the board.
func (g *Grid) PlaceTile(t Tile) error {
	if !g.Contains(t.Pos) {
		return ErrInvalidPosition
	}
	g.tiles[t.Pos] = t
	return nil
}

// PlaceWord places every tile of w. A square already holding the same
// letter is left alone; a square holding a different letter fails with
// a LetterMismatchError. Tiles written before the failing one stay on
// the board.
func (g *Grid) PlaceWord(w Word) error {
	for _, t := range w.tiles {
		if existing, ok := g.tiles[t.Pos]; ok {
			if existing.Letter != t.Letter {
				return &LetterMismatchError{Placed: t, Existing: existing}
			}
			continue
		}
		if err := g.PlaceTile(t); err != nil {
			return err
		}
	}
	return nil
}

// TileCount returns the number of placed tiles.
func (g *Grid) TileCount() int {
	return len(g.tiles)
}

// OccupiedPositions returns every position holding a tile, in
// column-major order (all of column 0 top to bottom, then column 1,
// and so on). The order is deterministic so search results are too.
func (g *Grid) OccupiedPositions() []Position {
	ps := make([]Position, 0, len(g.tiles))
	for p := range g.tiles {
		ps = append(ps, p)
	}
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].X != ps[j].X {
			return ps[i].X < ps[j].X
		}
		return ps[i].Y < ps[j].Y
	})
	return ps
}

// String renders the grid for terminal display.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.WriteString("   ")
	for x := 0; x <= g.width; x++ {
		sb.WriteByte(byte('a' + x%26))
		sb.WriteByte(' ')
	}
	sb.WriteByte('\n')
	for y := 0; y <= g.height; y++ {
		sb.WriteString(padNum(y))
		for x := 0; x <= g.width; x++ {
			if t, ok := g.tiles[Position{X: x, Y: y}]; ok {
				sb.WriteByte(t.Letter)
			} else {
				sb.WriteByte('.')
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func padNum(n int) string {
	if n < 10 {
		return " " + string(byte('0'+n)) + " "
	}
	return string(byte('0'+n/10)) + string(byte('0'+n%10)) + " "
}
