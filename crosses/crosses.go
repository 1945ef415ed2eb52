// Package crosses computes the orthogonal words a candidate placement
// would form with tiles already on the board.
package crosses

import (
	"fmt"
	"sort"

	"github.com/tilewright/tilewright/board"
)

// Finder computes cross words against one grid. It only reads the grid.
type Finder struct {
	grid *board.Grid
}

func NewFinder(g *board.Grid) *Finder {
	return &Finder{grid: g}
}

// CrossWords returns, for every tile of w that has orthogonal
// neighbors on the board, the full orthogonal word that would exist
// after w is placed. Tiles with no neighbors contribute nothing. The
// caller checks the returned words against the lexicon.
func (f *Finder) CrossWords(w board.Word) ([]string, error) {
	if !w.Axis().Valid() {
		return nil, board.ErrInvalidAxis
	}
	ortho := w.Axis().Orthogonal()
	var words []string
	for _, t := range w.Tiles() {
		cw, err := f.crossAt(t, ortho)
		if err != nil {
			return nil, err
		}
		if cw != "" {
			words = append(words, cw)
		}
	}
	return words, nil
}

// crossAt fans outward from t along axis in both directions, collecting
// board tiles until an empty or off-board square. A run of length one
// means no cross word at this tile.
func (f *Finder) crossAt(t board.Tile, axis board.Axis) (string, error) {
	if !f.grid.Contains(t.Pos) {
		return "", fmt.Errorf("tile %v: %w", t, board.ErrInvalidPosition)
	}
	tiles := []board.Tile{t}
	for _, step := range []board.Position{axis.Step(), axis.Opposite()} {
		cur := t.Pos
		for {
			cur = cur.Plus(step)
			if !f.grid.Contains(cur) {
				break
			}
			bt, ok := f.grid.Get(cur)
			if !ok {
				break
			}
			tiles = append(tiles, bt)
		}
	}
	if len(tiles) == 1 {
		return "", nil
	}
	sort.Slice(tiles, func(i, j int) bool {
		if axis == board.Across {
			return tiles[i].Pos.X < tiles[j].Pos.X
		}
		return tiles[i].Pos.Y < tiles[j].Pos.Y
	})
	letters := make([]byte, len(tiles))
	for i, tl := range tiles {
		letters[i] = tl.Letter
	}
	return string(letters), nil
}
