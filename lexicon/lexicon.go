// Package lexicon manages word lists and answers the two questions the
// search core asks of them: is this a word, and which words fit a
// partially-fixed pattern given the letters on a rack.
package lexicon

import (
	"github.com/tilewright/tilewright/board"
	"github.com/tilewright/tilewright/rack"
)

// Lexicon is the boundary the move search depends on.
type Lexicon interface {
	Name() string
	HasWord(word string) bool
	// FindMatches returns every word that fits pattern: fixed positions
	// must match exactly, and each placeholder must be fillable from r
	// without exceeding its letter counts. r is not mutated.
	FindMatches(pattern string, r *rack.Rack) []string
}

// AcceptAll recognizes everything. Useful in tests and benchmarks.
type AcceptAll struct{}

func (AcceptAll) Name() string { return "AcceptAll" }

func (AcceptAll) HasWord(word string) bool { return true }

func (AcceptAll) FindMatches(pattern string, r *rack.Rack) []string {
	// With nothing to consult there is exactly one plausible answer:
	// the pattern with each placeholder filled by some rack letter.
	cp := r.Copy()
	out := []byte(pattern)
	for i := 0; i < len(out); i++ {
		if out[i] != board.Placeholder {
			continue
		}
		filled := false
		for c := byte('a'); c <= 'z'; c++ {
			if cp.Has(c) {
				cp.Take(c)
				out[i] = c
				filled = true
				break
			}
		}
		if !filled {
			return nil
		}
	}
	return []string{string(out)}
}
