package lexicon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/tilewright/tilewright/rack"
)

func TestHasWord(t *testing.T) {
	is := is.New(t)
	wl := NewWordList("test", "cat", "Corner", "rent")
	is.True(wl.HasWord("cat"))
	is.True(wl.HasWord("CORNER"))
	is.True(!wl.HasWord("dog"))
}

func TestFindMatches(t *testing.T) {
	wl := NewWordList("test", "cat", "cot", "cut", "can", "bat", "cart")
	testCases := []struct {
		pattern string
		rack    string
		want    []string
	}{
		{"c_t", "aeiou", []string{"cat", "cot", "cut"}},
		{"c_t", "e", nil},
		{"c_t", "a", []string{"cat"}},
		{"_at", "bc", []string{"bat", "cat"}},
		{"ca_", "tn", []string{"can", "cat"}},
		{"____", "crat", []string{"cart"}},
		{"c__", "aa", nil},              // "can"/"cat" both need a non-'a' letter
		{"ca_", "xyz", nil},             // nothing on the rack fits
		{"cat", "xyz", []string{"cat"}}, // fully fixed needs no rack letters
	}
	for _, tc := range testCases {
		got := wl.FindMatches(tc.pattern, rack.FromString(tc.rack))
		assert.Equal(t, tc.want, got, "pattern %q rack %q", tc.pattern, tc.rack)
	}
}

func TestFindMatchesRespectsMultiplicity(t *testing.T) {
	is := is.New(t)
	wl := NewWordList("test", "noon", "neon")
	// "noon" needs two o's; the rack has one.
	is.Equal(wl.FindMatches("n__n", rack.FromString("eo")), []string{"neon"})
	is.Equal(wl.FindMatches("n__n", rack.FromString("oo")), []string{"noon"})
}

func TestLoadAndSave(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "words.txt")
	is.NoErr(os.WriteFile(path, []byte("cat\ncorner\nrent\n"), 0644))

	wl, err := LoadWordList("words.txt", path)
	is.NoErr(err)
	is.Equal(wl.Len(), 3)
	is.True(!wl.Dirty())

	wl.Add("zebra")
	wl.Remove("rent")
	is.True(wl.Dirty())
	is.NoErr(wl.Save())
	is.True(!wl.Dirty())

	data, err := os.ReadFile(path)
	is.NoErr(err)
	is.Equal(string(data), "cat\ncorner\nzebra\n")
}

func TestSaveCleanListIsNoop(t *testing.T) {
	is := is.New(t)
	wl := NewWordList("mem", "cat")
	// not dirty, so the missing backing file never matters
	is.NoErr(wl.Save())
}

func TestAcceptAllFillsFromRack(t *testing.T) {
	is := is.New(t)
	lex := AcceptAll{}
	got := lex.FindMatches("c_t_", rack.FromString("ab"))
	is.Equal(got, []string{"catb"})

	is.Equal(lex.FindMatches("c__", rack.FromString("a")), nil)
	is.True(lex.HasWord("anything"))
}
