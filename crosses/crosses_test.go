package crosses

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/tilewright/tilewright/board"
)

func mustWord(t *testing.T, s string, start board.Position, axis board.Axis) board.Word {
	t.Helper()
	w, err := board.MakeWord(s, start, axis)
	if err != nil {
		t.Fatal(err)
	}
	return w
}

func TestNoNeighborsNoCrossWords(t *testing.T) {
	is := is.New(t)
	g := board.NewGrid(15, 15)
	f := NewFinder(g)

	cws, err := f.CrossWords(mustWord(t, "cat", board.Position{X: 5, Y: 5}, board.Across))
	is.NoErr(err)
	is.Equal(len(cws), 0)
}

func TestSingleCrossWord(t *testing.T) {
	is := is.New(t)
	g := board.NewGrid(15, 15)
	is.NoErr(g.PlaceWord(mustWord(t, "ad", board.Position{X: 2, Y: 1}, board.Down)))
	f := NewFinder(g)

	// "box" across on row 0 touches "ad" below its final letter only.
	cws, err := f.CrossWords(mustWord(t, "box", board.Position{}, board.Across))
	is.NoErr(err)
	is.Equal(cws, []string{"xad"})
}

func TestCrossWordThroughSharedTile(t *testing.T) {
	is := is.New(t)
	g := board.NewGrid(15, 15)
	is.NoErr(g.PlaceWord(mustWord(t, "cat", board.Position{}, board.Across)))
	is.NoErr(g.PlaceWord(mustWord(t, "corner", board.Position{}, board.Down)))
	f := NewFinder(g)

	// Re-placing "cat" across: only the shared 'c' has vertical
	// neighbors, and the full column must come back in board order.
	cws, err := f.CrossWords(mustWord(t, "cat", board.Position{}, board.Across))
	is.NoErr(err)
	is.Equal(cws, []string{"corner"})
}

func TestCrossWordsBothSides(t *testing.T) {
	is := is.New(t)
	g := board.NewGrid(15, 15)
	is.NoErr(g.PlaceWord(mustWord(t, "up", board.Position{X: 3, Y: 1}, board.Down)))
	is.NoErr(g.PlaceWord(mustWord(t, "on", board.Position{X: 3, Y: 4}, board.Down)))
	f := NewFinder(g)

	// A tile placed at (3,3) bridges the run above and below it.
	cws, err := f.CrossWords(mustWord(t, "ox", board.Position{X: 2, Y: 3}, board.Across))
	is.NoErr(err)
	is.Equal(cws, []string{"upxon"})
}

func TestCrossWordsOffBoard(t *testing.T) {
	g := board.NewGrid(15, 15)
	f := NewFinder(g)

	_, err := f.CrossWords(mustWord(t, "ab", board.Position{X: 20, Y: 0}, board.Across))
	if !errors.Is(err, board.ErrInvalidPosition) {
		t.Errorf("expected ErrInvalidPosition, got %v", err)
	}
}
