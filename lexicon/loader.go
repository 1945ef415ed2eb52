package lexicon

import (
	"fmt"
	"path/filepath"

	lru "github.com/hashicorp/golang-lru"
	"github.com/rs/zerolog/log"

	"github.com/tilewright/tilewright/config"
)

const loaderCacheSize = 8

// Loader loads word lists by name from the configured lexicon
// directory and caches them. It is an explicitly owned object passed
// to whoever needs lexica; there is no process-global registry.
type Loader struct {
	cfg   *config.Config
	cache *lru.Cache
	store *Store
}

// NewLoader creates a loader. store may be nil; if present, the user
// dictionary is merged into every loaded list.
func NewLoader(cfg *config.Config, store *Store) (*Loader, error) {
	cache, err := lru.New(loaderCacheSize)
	if err != nil {
		return nil, err
	}
	return &Loader{cfg: cfg, cache: cache, store: store}, nil
}

// Load returns the word list with the given file name, reading it from
// disk on the first request.
func (l *Loader) Load(name string) (*WordList, error) {
	if cached, ok := l.cache.Get(name); ok {
		log.Debug().Str("name", name).Msg("word list cache hit")
		return cached.(*WordList), nil
	}
	wl, err := LoadWordList(name, filepath.Join(l.cfg.LexiconPath, name))
	if err != nil {
		return nil, fmt.Errorf("load lexicon %q: %w", name, err)
	}
	if l.store != nil {
		if err := l.applyStore(wl); err != nil {
			return nil, err
		}
	}
	l.cache.Add(name, wl)
	return wl, nil
}

// Default returns the configured default word list.
func (l *Loader) Default() (*WordList, error) {
	return l.Load(l.cfg.DefaultLexicon)
}

// applyStore folds the user dictionary into wl: manually added words
// join the list, manually removed ones leave it. The dirty flag is
// restored so the merge alone never triggers a writeback.
func (l *Loader) applyStore(wl *WordList) error {
	added, removed, err := l.store.Words()
	if err != nil {
		return fmt.Errorf("apply user dictionary: %w", err)
	}
	for _, w := range added {
		wl.Add(w)
	}
	for _, w := range removed {
		wl.Remove(w)
	}
	wl.dirty = false
	log.Debug().
		Str("name", wl.Name()).
		Int("added", len(added)).
		Int("removed", len(removed)).
		Msg("merged user dictionary")
	return nil
}
