// Package pattern enumerates the partially-fixed letter sequences
// ("patterns") reachable from an occupied board position, for the
// lexicon matcher to fill in.
package pattern

import "github.com/tilewright/tilewright/board"

// Pattern is a candidate slot for a word: a run of tiles where some
// letters are fixed by the board and some are placeholders to be filled
// from the rack. A pattern with no placeholder is fully determined and
// is never emitted by the generator.
type Pattern struct {
	tiles []board.Tile
}

// Tiles returns a copy of the pattern's tiles, in board order.
func (p Pattern) Tiles() []board.Tile {
	cp := make([]board.Tile, len(p.tiles))
	copy(cp, p.tiles)
	return cp
}

func (p Pattern) Len() int {
	return len(p.tiles)
}

// String returns the joined letters, placeholders included, e.g. "c_t".
func (p Pattern) String() string {
	return letterKey(p.tiles)
}

// HasPlaceholder reports whether at least one position is still open.
func (p Pattern) HasPlaceholder() bool {
	for _, t := range p.tiles {
		if t.IsPlaceholder() {
			return true
		}
	}
	return false
}

// Placeholders returns the number of open positions.
func (p Pattern) Placeholders() int {
	n := 0
	for _, t := range p.tiles {
		if t.IsPlaceholder() {
			n++
		}
	}
	return n
}

func letterKey(tiles []board.Tile) string {
	b := make([]byte, len(tiles))
	for i, t := range tiles {
		b[i] = t.Letter
	}
	return string(b)
}
