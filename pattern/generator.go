package pattern

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/tilewright/tilewright/board"
)

// Generator walks outward from anchor tiles to enumerate patterns. It
// only reads the grid; the caller must keep the grid stable for the
// duration of a call.
type Generator struct {
	grid *board.Grid
}

func NewGenerator(g *board.Grid) *Generator {
	return &Generator{grid: g}
}

// A frame is one in-progress sequence in the depth-first walk. The
// walk uses an owned stack of frames instead of call recursion so that
// depth is bounded by the heap, not the goroutine stack.
type frame struct {
	tiles     []board.Tile
	remaining int
}

// Generate enumerates every pattern reachable from anchor along axis
// using at most maxTiles placeholder tiles. One independent search runs
// per placeholder budget 0..maxTiles-1, each with its own memo of
// letter sequences; a sequence seen twice within one budget level is
// not explored again. The same pattern may appear for different budget
// levels; no cross-level dedup is performed.
//
// The anchor must be on the board (board.ErrInvalidPosition) and hold a
// tile (board.ErrEmptyAnchor).
func (gen *Generator) Generate(anchor board.Position, axis board.Axis, maxTiles int) ([]Pattern, error) {
	if !gen.grid.Contains(anchor) {
		return nil, fmt.Errorf("anchor %v: %w", anchor, board.ErrInvalidPosition)
	}
	anchorTile, ok := gen.grid.Get(anchor)
	if !ok {
		return nil, fmt.Errorf("anchor %v: %w", anchor, board.ErrEmptyAnchor)
	}
	if !axis.Valid() {
		return nil, board.ErrInvalidAxis
	}

	var ret []Pattern
	for budget := 0; budget < maxTiles; budget++ {
		ret = append(ret, gen.explore(anchorTile, axis, budget)...)
	}
	log.Debug().
		Str("anchor", anchor.String()).
		Str("axis", axis.String()).
		Int("max-tiles", maxTiles).
		Int("patterns", len(ret)).
		Msg("generated patterns")
	return ret, nil
}

// explore runs one depth-first search at a fixed placeholder budget.
func (gen *Generator) explore(anchorTile board.Tile, axis board.Axis, budget int) []Pattern {
	var out []Pattern
	seen := make(map[string]struct{})
	stack := []frame{{tiles: []board.Tile{anchorTile}, remaining: budget}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		key := letterKey(f.tiles)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		// Out of placeholder budget: emit if the run grew beyond the
		// anchor and still has something to fill, then stop this branch.
		if f.remaining == 0 && len(f.tiles) > 1 {
			p := Pattern{tiles: f.tiles}
			if p.HasPlaceholder() {
				out = append(out, p)
			}
			continue
		}

		left := f.tiles[0].Pos.Plus(axis.Opposite())
		right := f.tiles[len(f.tiles)-1].Pos.Plus(axis.Step())

		// A tile already sitting on a frontier must be absorbed, at no
		// budget cost, before anything else. Left first; the right
		// frontier is re-examined on the next iteration, so contiguous
		// runs on both sides get absorbed entirely.
		if t, ok := gen.grid.Get(left); ok {
			stack = append(stack, frame{tiles: prepend(t, f.tiles), remaining: f.remaining})
			continue
		}
		if t, ok := gen.grid.Get(right); ok {
			stack = append(stack, frame{tiles: extend(f.tiles, t), remaining: f.remaining})
			continue
		}

		// Both frontiers are empty. Branch into a placeholder on each
		// side that is still on the board, while budget remains.
		if f.remaining <= 0 {
			continue
		}
		if gen.grid.Contains(left) {
			stack = append(stack, frame{
				tiles:     prepend(board.Tile{Pos: left, Letter: board.Placeholder}, f.tiles),
				remaining: f.remaining - 1,
			})
		}
		if gen.grid.Contains(right) {
			stack = append(stack, frame{
				tiles:     extend(f.tiles, board.Tile{Pos: right, Letter: board.Placeholder}),
				remaining: f.remaining - 1,
			})
		}
	}
	return out
}

// prepend and extend always copy; frames must not share backing arrays.

func prepend(t board.Tile, tiles []board.Tile) []board.Tile {
	out := make([]board.Tile, 0, len(tiles)+1)
	out = append(out, t)
	return append(out, tiles...)
}

func extend(tiles []board.Tile, t board.Tile) []board.Tile {
	out := make([]board.Tile, 0, len(tiles)+1)
	out = append(out, tiles...)
	return append(out, t)
}
