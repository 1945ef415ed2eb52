// Package scoring ranks candidate placements. The search core treats
// the score as an opaque total order; this package supplies the default
// per-letter implementation.
package scoring

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tilewright/tilewright/board"
)

// Scorer assigns a numeric value to a placed word. Higher is better.
type Scorer interface {
	Score(w board.Word) int
}

// LetterValues scores a word as the sum of its letter values.
// Placeholder or unknown letters count zero.
type LetterValues struct {
	values [26]int
}

// English returns the standard English letter values.
func English() *LetterValues {
	lv := &LetterValues{}
	for letters, value := range map[string]int{
		"aeilnorstu": 1,
		"dg":         2,
		"bcmp":       3,
		"fhvwy":      4,
		"k":          5,
		"jx":         8,
		"qz":         10,
	} {
		for i := 0; i < len(letters); i++ {
			lv.values[letters[i]-'a'] = value
		}
	}
	return lv
}

// FromYAML reads a letter-to-value mapping, e.g.
//
//	a: 1
//	b: 3
//
// Letters absent from the mapping score zero.
func FromYAML(r io.Reader) (*LetterValues, error) {
	var m map[string]int
	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("parse letter values: %w", err)
	}
	lv := &LetterValues{}
	for k, v := range m {
		if len(k) != 1 || k[0] < 'a' || k[0] > 'z' {
			return nil, fmt.Errorf("letter values: bad key %q", k)
		}
		lv.values[k[0]-'a'] = v
	}
	return lv, nil
}

// FromYAMLFile reads a letter-value mapping from a file.
func FromYAMLFile(path string) (*LetterValues, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return FromYAML(f)
}

func (lv *LetterValues) Score(w board.Word) int {
	total := 0
	for _, t := range w.Tiles() {
		if t.Letter >= 'a' && t.Letter <= 'z' {
			total += lv.values[t.Letter-'a']
		}
	}
	return total
}
