package lexicon

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

const storeSchema = `
CREATE TABLE IF NOT EXISTS words (
	word    TEXT PRIMARY KEY,
	removed INTEGER NOT NULL DEFAULT 0
);`

// Store is the user dictionary: words manually added to or removed
// from the word lists, persisted in a SQLite database so the edits
// survive across sessions.
type Store struct {
	db *sql.DB
}

// OpenStore opens (creating if needed) the user dictionary at path.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open user dictionary: %w", err)
	}
	if _, err := db.Exec(storeSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init user dictionary: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// AddWord records word as manually added, overriding a prior removal.
func (s *Store) AddWord(word string) error {
	_, err := s.db.Exec(
		`INSERT INTO words (word, removed) VALUES (?, 0)
		 ON CONFLICT(word) DO UPDATE SET removed = 0`,
		strings.ToLower(word))
	return err
}

// RemoveWord records word as manually removed, overriding a prior add.
func (s *Store) RemoveWord(word string) error {
	_, err := s.db.Exec(
		`INSERT INTO words (word, removed) VALUES (?, 1)
		 ON CONFLICT(word) DO UPDATE SET removed = 1`,
		strings.ToLower(word))
	return err
}

// Words returns the accumulated edits, added and removed separately.
func (s *Store) Words() (added, removed []string, err error) {
	rows, err := s.db.Query(`SELECT word, removed FROM words ORDER BY word`)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var w string
		var rm int
		if err := rows.Scan(&w, &rm); err != nil {
			return nil, nil, err
		}
		if rm == 1 {
			removed = append(removed, w)
		} else {
			added = append(added, w)
		}
	}
	return added, removed, rows.Err()
}
