package lexicon

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/tilewright/tilewright/board"
	"github.com/tilewright/tilewright/rack"
)

// WordList is a Lexicon backed by a plain set of words, loaded from a
// newline-delimited file. Words are kept lower case. Modifications are
// in-memory until Save writes the list back atomically.
type WordList struct {
	name  string
	path  string
	words map[string]struct{}
	dirty bool
}

// NewWordList builds an in-memory word list; it has no backing file and
// cannot be saved.
func NewWordList(name string, words ...string) *WordList {
	wl := &WordList{name: name, words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		wl.words[strings.ToLower(w)] = struct{}{}
	}
	return wl
}

// LoadWordList reads a word list from path, one word per line.
func LoadWordList(name, path string) (*WordList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	wl := &WordList{name: name, path: path, words: make(map[string]struct{})}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		w := strings.TrimSpace(scanner.Text())
		if w != "" {
			wl.words[strings.ToLower(w)] = struct{}{}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	log.Debug().Str("name", name).Int("words", len(wl.words)).Msg("loaded word list")
	return wl, nil
}

func (wl *WordList) Name() string {
	return wl.name
}

func (wl *WordList) Len() int {
	return len(wl.words)
}

func (wl *WordList) HasWord(word string) bool {
	_, ok := wl.words[strings.ToLower(word)]
	return ok
}

// Add puts a word on the list.
func (wl *WordList) Add(word string) {
	word = strings.ToLower(word)
	if _, ok := wl.words[word]; ok {
		return
	}
	wl.words[word] = struct{}{}
	wl.dirty = true
}

// Remove takes a word off the list. Removing an unknown word is a no-op.
func (wl *WordList) Remove(word string) {
	word = strings.ToLower(word)
	if _, ok := wl.words[word]; !ok {
		return
	}
	delete(wl.words, word)
	wl.dirty = true
}

// Dirty reports whether the list has unsaved modifications.
func (wl *WordList) Dirty() bool {
	return wl.dirty
}

// Save writes the sorted list to its backing file if it has been
// modified, going through a temp file and a rename so a crash cannot
// leave a half-written list.
func (wl *WordList) Save() error {
	if !wl.dirty {
		return nil
	}
	if wl.path == "" {
		return fmt.Errorf("word list %q has no backing file", wl.name)
	}
	tmp := wl.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	sorted := make([]string, 0, len(wl.words))
	for w := range wl.words {
		sorted = append(sorted, w)
	}
	sort.Strings(sorted)
	bw := bufio.NewWriter(f)
	for _, w := range sorted {
		fmt.Fprintln(bw, w)
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp, wl.path); err != nil {
		return err
	}
	wl.dirty = false
	return nil
}

// FindMatches scans the list for words that fit the pattern. This is a
// straight scan over same-length words, not an indexed lookup.
func (wl *WordList) FindMatches(pattern string, r *rack.Rack) []string {
	var matches []string
	for w := range wl.words {
		if matchesPattern(w, pattern, r) {
			matches = append(matches, w)
		}
	}
	sort.Strings(matches)
	return matches
}

func matchesPattern(word, pattern string, r *rack.Rack) bool {
	if len(word) != len(pattern) {
		return false
	}
	cp := r.Copy()
	for i := 0; i < len(pattern); i++ {
		if pattern[i] == board.Placeholder {
			if !cp.Has(word[i]) {
				return false
			}
			cp.Take(word[i])
			continue
		}
		if word[i] != pattern[i] {
			return false
		}
	}
	return true
}
