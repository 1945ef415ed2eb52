package movegen

import (
	"context"
	"errors"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/tilewright/tilewright/board"
	"github.com/tilewright/tilewright/crosses"
	"github.com/tilewright/tilewright/lexicon"
	"github.com/tilewright/tilewright/rack"
	"github.com/tilewright/tilewright/scoring"
)

func catCornerGrid(t *testing.T) *board.Grid {
	t.Helper()
	g := board.NewGrid(15, 15)
	for _, s := range []struct {
		word  string
		start board.Position
		axis  board.Axis
	}{
		{"cat", board.Position{}, board.Across},
		{"corner", board.Position{}, board.Down},
	} {
		w, err := board.MakeWord(s.word, s.start, s.axis)
		if err != nil {
			t.Fatal(err)
		}
		if err := g.PlaceWord(w); err != nil {
			t.Fatal(err)
		}
	}
	return g
}

func TestGenAllEndToEnd(t *testing.T) {
	is := is.New(t)
	g := catCornerGrid(t)
	lex := lexicon.NewWordList("test", "cat", "corner", "cats", "corners")
	gen := NewGenerator(g, lex, scoring.English())

	all, err := gen.GenAll(context.Background(), rack.FromString("se"))
	is.NoErr(err)

	// "cats" is reachable from each tile of "cat" (3 anchors) and
	// "corners" from each tile of "corner" (6 anchors); duplicates
	// across anchors are expected.
	is.Equal(len(all), 9)
	for _, p := range all[:3] {
		is.Equal(p.Word.String(), "cats")
		is.Equal(p.Score, 6)
	}
	for _, p := range all[3:] {
		is.Equal(p.Word.String(), "corners")
		is.Equal(p.Score, 9)
	}

	best, ok, err := gen.Best(context.Background(), rack.FromString("se"))
	is.NoErr(err)
	is.True(ok)
	is.Equal(best.Word.String(), "corners")
	is.Equal(best.Score, 9)

	// Only the 's' would actually be played.
	is.Equal(gen.NewTiles(best), []board.Tile{
		{Pos: board.Position{X: 0, Y: 6}, Letter: 's'},
	})
}

func TestGenAllParallelMatchesSerial(t *testing.T) {
	is := is.New(t)
	g := catCornerGrid(t)
	lex := lexicon.NewWordList("test", "cat", "corner", "cats", "corners", "at", "an")
	r := rack.FromString("sea")

	serial := NewGenerator(g, lex, scoring.English())
	parallel := NewGenerator(g, lex, scoring.English())
	parallel.SetWorkers(4)

	want, err := serial.GenAll(context.Background(), r)
	is.NoErr(err)
	got, err := parallel.GenAll(context.Background(), r)
	is.NoErr(err)
	is.Equal(got, want)
}

func TestCrossWordRejection(t *testing.T) {
	is := is.New(t)
	g := catCornerGrid(t)

	// "ab" down from the 'a' of "cat" puts its 'b' next to the 'o' of
	// "corner", forming the cross word "ob". With "ob" absent from the
	// lexicon the candidate must be dropped; with it present it sticks.
	anchor := board.Position{X: 1, Y: 0}
	r := rack.FromString("bo")

	strict := NewGenerator(g, lexicon.NewWordList("test", "cat", "corner", "ab"), scoring.English())
	found, err := strict.WordsForAnchor(anchor, board.Down, r)
	is.NoErr(err)
	is.Equal(len(found), 0)

	lenient := NewGenerator(g, lexicon.NewWordList("test", "cat", "corner", "ab", "ob"), scoring.English())
	found, err = lenient.WordsForAnchor(anchor, board.Down, r)
	is.NoErr(err)
	is.Equal(len(found), 1)
	is.Equal(found[0].Word.String(), "ab")
}

// The matcher and the intersection validator cooperating on the
// "pattern with a hole" scenario: the matcher proposes the fill, the
// validator confirms the crossing column is undisturbed.
func TestPatternFillValidation(t *testing.T) {
	is := is.New(t)
	g := board.NewGrid(15, 15)
	w, err := board.MakeWord("corner", board.Position{}, board.Down)
	is.NoErr(err)
	is.NoErr(g.PlaceWord(w))
	is.NoErr(g.PlaceTile(board.Tile{Pos: board.Position{X: 2, Y: 0}, Letter: 't'}))

	lex := lexicon.NewWordList("test", "cat", "corner")
	matches := lex.FindMatches("c_t", rack.FromString("a"))
	is.Equal(matches, []string{"cat"})

	candidate, err := board.MakeWord("cat", board.Position{}, board.Across)
	is.NoErr(err)
	crossWords, err := crosses.NewFinder(g).CrossWords(candidate)
	is.NoErr(err)
	is.Equal(crossWords, []string{"corner"})
	is.True(lex.HasWord(crossWords[0]))
}

type stubScorer struct {
	scores map[string]int
}

func (s stubScorer) Score(w board.Word) int {
	return s.scores[w.String()]
}

func TestRankingAscendingBestLast(t *testing.T) {
	g := catCornerGrid(t)
	lex := lexicon.NewWordList("test", "cat", "corner", "cats", "corners")
	sc := stubScorer{scores: map[string]int{"cats": 9, "corners": 5}}
	gen := NewGenerator(g, lex, sc)

	all, err := gen.GenAll(context.Background(), rack.FromString("se"))
	assert.NoError(t, err)
	assert.NotEmpty(t, all)
	for i := 1; i < len(all); i++ {
		assert.LessOrEqual(t, all[i-1].Score, all[i].Score)
	}
	best := all[len(all)-1]
	assert.Equal(t, "cats", best.Word.String())
	assert.Equal(t, 9, best.Score)
}

func TestWordsForAnchorErrors(t *testing.T) {
	gen := NewGenerator(catCornerGrid(t), lexicon.AcceptAll{}, scoring.English())

	_, err := gen.WordsForAnchor(board.Position{X: 9, Y: 9}, board.Across, rack.FromString("ab"))
	if !errors.Is(err, board.ErrEmptyAnchor) {
		t.Errorf("expected ErrEmptyAnchor, got %v", err)
	}
	_, err = gen.WordsForAnchor(board.Position{X: 99, Y: 9}, board.Across, rack.FromString("ab"))
	if !errors.Is(err, board.ErrInvalidPosition) {
		t.Errorf("expected ErrInvalidPosition, got %v", err)
	}
}

func TestGenAllEmptyRack(t *testing.T) {
	is := is.New(t)
	gen := NewGenerator(catCornerGrid(t), lexicon.AcceptAll{}, scoring.English())
	all, err := gen.GenAll(context.Background(), rack.FromString(""))
	is.NoErr(err)
	is.Equal(len(all), 0)
}
