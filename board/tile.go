package board

import "fmt"

// Placeholder marks a tile whose letter has not been decided yet. It is
// the letter used for pattern positions to be filled from the rack.
const Placeholder byte = '_'

// Tile is a letter at a position. No alphabet checking is done here;
// the lexicon decides what letters mean.
type Tile struct {
	Pos    Position
	Letter byte
}

func (t Tile) String() string {
	return fmt.Sprintf("<%v %q>", t.Pos, string(t.Letter))
}

// IsPlaceholder reports whether this tile's letter is still to be filled.
func (t Tile) IsPlaceholder() bool {
	return t.Letter == Placeholder
}

// Word is a validated, ordered run of tiles along a single axis. The
// axis is inferred from the first pair of tiles at construction and
// enforced for the rest; a Word is immutable afterwards.
type Word struct {
	tiles []Tile
	axis  Axis
}

// NewWord validates tiles and returns a Word. Fewer than two tiles, a
// non-axis step between the first pair, or any later pair stepping
// differently all fail with ErrInvalidWordShape.
func NewWord(tiles []Tile) (Word, error) {
	if len(tiles) < 2 {
		return Word{}, fmt.Errorf("%w: need at least two tiles, got %d",
			ErrInvalidWordShape, len(tiles))
	}
	axis, err := AxisFromStep(tiles[1].Pos.Minus(tiles[0].Pos))
	if err != nil {
		return Word{}, fmt.Errorf("%w: first step is not along an axis",
			ErrInvalidWordShape)
	}
	step := axis.Step()
	for i := 2; i < len(tiles); i++ {
		if tiles[i].Pos.Minus(tiles[i-1].Pos) != step {
			return Word{}, fmt.Errorf("%w: tile %d breaks the %v run",
				ErrInvalidWordShape, i, axis)
		}
	}
	cp := make([]Tile, len(tiles))
	copy(cp, tiles)
	return Word{tiles: cp, axis: axis}, nil
}

// MakeWord lays the letters of s out from start along axis and returns
// the resulting Word.
func MakeWord(s string, start Position, axis Axis) (Word, error) {
	tiles := make([]Tile, 0, len(s))
	cur := start
	for i := 0; i < len(s); i++ {
		tiles = append(tiles, Tile{Pos: cur, Letter: s[i]})
		cur = cur.Plus(axis.Step())
	}
	return NewWord(tiles)
}

// Tiles returns a copy of the word's tiles.
func (w Word) Tiles() []Tile {
	cp := make([]Tile, len(w.tiles))
	copy(cp, w.tiles)
	return cp
}

// Tile returns the i-th tile.
func (w Word) Tile(i int) Tile {
	return w.tiles[i]
}

func (w Word) Len() int {
	return len(w.tiles)
}

func (w Word) Axis() Axis {
	return w.axis
}

// String returns the joined letters of the word.
func (w Word) String() string {
	b := make([]byte, len(w.tiles))
	for i, t := range w.tiles {
		b[i] = t.Letter
	}
	return string(b)
}
