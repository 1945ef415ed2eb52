package shell

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/tilewright/tilewright/board"
	"github.com/tilewright/tilewright/config"
	"github.com/tilewright/tilewright/lexicon"
	"github.com/tilewright/tilewright/rack"
	"github.com/tilewright/tilewright/scoring"
)

func testController(t *testing.T) *ShellController {
	t.Helper()
	store, err := lexicon.OpenStore(filepath.Join(t.TempDir(), "userdict.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	sc := &ShellController{
		cfg: &config.Config{
			BoardHeight:   15,
			BoardWidth:    15,
			RackSize:      7,
			SearchWorkers: 1,
		},
		rack:   rack.FromString(""),
		words:  lexicon.NewWordList("test", "cat", "corner", "cats", "corners"),
		store:  store,
		scorer: scoring.English(),
	}
	sc.setGrid(board.NewGrid(15, 15))
	return sc
}

func TestExecutePlaceAndBest(t *testing.T) {
	is := is.New(t)
	sc := testController(t)
	var out strings.Builder

	is.NoErr(sc.Execute("place cat 0 0 a", &out))
	is.NoErr(sc.Execute("place corner 0 0 d", &out))
	is.NoErr(sc.Execute("rack se", &out))
	out.Reset()
	is.NoErr(sc.Execute("best", &out))
	is.True(strings.Contains(out.String(), "corners"))
	is.True(strings.Contains(out.String(), "for 9"))
}

func TestExecuteRackValidation(t *testing.T) {
	is := is.New(t)
	sc := testController(t)
	var out strings.Builder
	is.True(sc.Execute("rack abcdefgh", &out) != nil) // 8 > max 7
	is.NoErr(sc.Execute("rack random", &out))
	is.Equal(sc.rack.NumTiles(), 7)
}

func TestExecuteTileAndClear(t *testing.T) {
	is := is.New(t)
	sc := testController(t)
	var out strings.Builder
	is.NoErr(sc.Execute("tile q 3 4", &out))
	_, ok := sc.grid.Get(board.Position{X: 3, Y: 4})
	is.True(ok)
	is.NoErr(sc.Execute("clear 3 4", &out))
	is.True(!sc.grid.Occupied(board.Position{X: 3, Y: 4}))
}

func TestExecuteDictionaryEdits(t *testing.T) {
	is := is.New(t)
	sc := testController(t)
	var out strings.Builder
	is.NoErr(sc.Execute("add zebra", &out))
	is.True(sc.words.HasWord("zebra"))
	is.NoErr(sc.Execute("remove cat", &out))
	is.True(!sc.words.HasWord("cat"))

	added, removed, err := sc.store.Words()
	is.NoErr(err)
	is.Equal(added, []string{"zebra"})
	is.Equal(removed, []string{"cat"})
}

func TestExecuteUnknownCommand(t *testing.T) {
	sc := testController(t)
	var out strings.Builder
	if err := sc.Execute("frobnicate", &out); err == nil {
		t.Error("expected an error for an unknown command")
	}
}

func TestExecuteDemoBoard(t *testing.T) {
	is := is.New(t)
	sc := testController(t)
	var out strings.Builder
	is.NoErr(sc.Execute("demo", &out))
	is.Equal(sc.grid.TileCount(), 15)
}
