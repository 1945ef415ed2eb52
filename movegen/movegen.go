// Package movegen drives the whole-board move search: pattern
// generation per anchor, lexicon matching, cross-word validation and
// scoring, returning a ranked list of legal placements.
package movegen

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/tilewright/tilewright/board"
	"github.com/tilewright/tilewright/crosses"
	"github.com/tilewright/tilewright/lexicon"
	"github.com/tilewright/tilewright/pattern"
	"github.com/tilewright/tilewright/rack"
	"github.com/tilewright/tilewright/scoring"
)

// Placement is one legal candidate: the fully lettered word at its
// board position, with the external scorer's value attached.
type Placement struct {
	Word  board.Word
	Score int
}

// Generator searches one grid. It never mutates the grid; the caller
// must not either while a search is running.
type Generator struct {
	grid     *board.Grid
	lexicon  lexicon.Lexicon
	scorer   scoring.Scorer
	patterns *pattern.Generator
	crosses  *crosses.Finder
	workers  int
}

func NewGenerator(g *board.Grid, lex lexicon.Lexicon, sc scoring.Scorer) *Generator {
	return &Generator{
		grid:     g,
		lexicon:  lex,
		scorer:   sc,
		patterns: pattern.NewGenerator(g),
		crosses:  crosses.NewFinder(g),
		workers:  1,
	}
}

// SetWorkers sets how many anchors are searched concurrently. Anchors
// are independent, so any count is safe; 1 keeps the search fully
// synchronous.
func (gen *Generator) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	gen.workers = n
}

// WordsForAnchor finds every legal placement through the given anchor
// along one axis, with r as the tile budget. The rack is not mutated.
func (gen *Generator) WordsForAnchor(anchor board.Position, axis board.Axis, r *rack.Rack) ([]Placement, error) {
	patterns, err := gen.patterns.Generate(anchor, axis, r.NumTiles())
	if err != nil {
		return nil, err
	}
	var found []Placement
	for _, pat := range patterns {
		tiles := pat.Tiles()
		for _, match := range gen.lexicon.FindMatches(pat.String(), r) {
			placed := make([]board.Tile, len(tiles))
			for i, t := range tiles {
				placed[i] = board.Tile{Pos: t.Pos, Letter: match[i]}
			}
			w, err := board.NewWord(placed)
			if err != nil {
				return nil, err
			}
			crossWords, err := gen.crosses.CrossWords(w)
			if err != nil {
				return nil, err
			}
			if lo.SomeBy(crossWords, func(cw string) bool {
				return !gen.lexicon.HasWord(cw)
			}) {
				continue
			}
			found = append(found, Placement{Word: w, Score: gen.scorer.Score(w)})
		}
	}
	return found, nil
}

type anchorJob struct {
	pos  board.Position
	axis board.Axis
}

// GenAll searches every occupied position on both axes and returns all
// legal placements sorted ascending by score, so the best placement is
// the last element. Anchors that fail position or empty-anchor
// validation are skipped; any other error aborts the search.
func (gen *Generator) GenAll(ctx context.Context, r *rack.Rack) ([]Placement, error) {
	jobs := make(chan anchorJob, gen.workers*2)
	var mu sync.Mutex
	var all []Placement

	g, gctx := errgroup.WithContext(ctx)
	for t := 0; t < gen.workers; t++ {
		g.Go(func() error {
			for j := range jobs {
				found, err := gen.WordsForAnchor(j.pos, j.axis, r)
				if err != nil {
					if errors.Is(err, board.ErrInvalidPosition) ||
						errors.Is(err, board.ErrEmptyAnchor) {
						continue
					}
					return err
				}
				mu.Lock()
				all = append(all, found...)
				mu.Unlock()
			}
			return nil
		})
	}

	positions := gen.grid.OccupiedPositions()
feed:
	for _, pos := range positions {
		for _, axis := range []board.Axis{board.Across, board.Down} {
			select {
			case jobs <- anchorJob{pos: pos, axis: axis}:
			case <-gctx.Done():
				break feed
			}
		}
	}
	close(jobs)

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// a canceled parent context aborts the search even if no worker
	// happened to observe it
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sortPlacements(all)
	log.Debug().
		Int("anchors", len(positions)).
		Int("placements", len(all)).
		Str("rack", r.String()).
		Msg("searched board")
	return all, nil
}

// Best returns the highest-scoring placement, if any.
func (gen *Generator) Best(ctx context.Context, r *rack.Rack) (Placement, bool, error) {
	all, err := gen.GenAll(ctx, r)
	if err != nil {
		return Placement{}, false, err
	}
	if len(all) == 0 {
		return Placement{}, false, nil
	}
	return all[len(all)-1], true, nil
}

// NewTiles returns the tiles of p that are not already on the grid,
// i.e. the ones a player would actually have to put down.
func (gen *Generator) NewTiles(p Placement) []board.Tile {
	return lo.Filter(p.Word.Tiles(), func(t board.Tile, _ int) bool {
		return !gen.grid.Occupied(t.Pos)
	})
}

// sortPlacements orders ascending by score. Ties are broken by word
// and position so concurrent searches always produce the same order.
func sortPlacements(ps []Placement) {
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].Score != ps[j].Score {
			return ps[i].Score < ps[j].Score
		}
		wi, wj := ps[i].Word.String(), ps[j].Word.String()
		if wi != wj {
			return wi < wj
		}
		pi, pj := ps[i].Word.Tile(0).Pos, ps[j].Word.Tile(0).Pos
		if pi.X != pj.X {
			return pi.X < pj.X
		}
		if pi.Y != pj.Y {
			return pi.Y < pj.Y
		}
		return ps[i].Word.Axis() < ps[j].Word.Axis()
	})
}
