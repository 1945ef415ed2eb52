// Package rack represents the letters a player has available to fill
// pattern placeholders. The search core treats a rack as a read-only
// budget; it copies before consuming.
package rack

import (
	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"
)

// MaxSize is the canonical rack capacity.
const MaxSize = 7

// Rack is a multiset of lower-case letters, stored as per-letter counts.
type Rack struct {
	counts     [26]int
	numLetters int
}

// FromString builds a rack from a string of letters. Characters outside
// a-z are logged and skipped.
func FromString(letters string) *Rack {
	r := &Rack{}
	for i := 0; i < len(letters); i++ {
		c := letters[i]
		if c < 'a' || c > 'z' {
			log.Error().Str("char", string(c)).Msg("rack has an illegal character")
			continue
		}
		r.Add(c)
	}
	return r
}

// Random draws n uniformly random letters.
func Random(n int) *Rack {
	r := &Rack{}
	for i := 0; i < n; i++ {
		r.Add(byte('a' + frand.Intn(26)))
	}
	return r
}

// Copy returns a deep copy of this rack.
func (r *Rack) Copy() *Rack {
	n := &Rack{numLetters: r.numLetters}
	n.counts = r.counts
	return n
}

// Has reports whether at least one of letter is on the rack.
func (r *Rack) Has(letter byte) bool {
	if letter < 'a' || letter > 'z' {
		return false
	}
	return r.counts[letter-'a'] > 0
}

// Count returns how many of letter are on the rack.
func (r *Rack) Count(letter byte) int {
	if letter < 'a' || letter > 'z' {
		return 0
	}
	return r.counts[letter-'a']
}

// Take removes one of letter. It is the caller's job to check Has
// first; taking an absent letter drives the count negative.
func (r *Rack) Take(letter byte) {
	r.counts[letter-'a']--
	r.numLetters--
}

// Add puts one of letter on the rack.
func (r *Rack) Add(letter byte) {
	r.counts[letter-'a']++
	r.numLetters++
}

// NumTiles returns the number of letters on the rack.
func (r *Rack) NumTiles() int {
	return r.numLetters
}

func (r *Rack) Empty() bool {
	return r.numLetters == 0
}

// String returns the rack's letters in alphabetical order.
func (r *Rack) String() string {
	out := make([]byte, 0, r.numLetters)
	for i, ct := range r.counts {
		for j := 0; j < ct; j++ {
			out = append(out, byte('a'+i))
		}
	}
	return string(out)
}
