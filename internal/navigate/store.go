// Package navigate stores the quick-navigation URLs shown by the
// script filter and the domain/id substitution rules applied to them.
//
// Stored URLs may contain the placeholders {var:domain} and {var:id},
// filled in from the frontmost browser tab or a typed id at invocation
// time.
package navigate

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/kosiew/magpie/internal/alfred"
	"github.com/kosiew/magpie/internal/sqlutil"
)

// ErrNotFound indicates the URL is not in the store.
var ErrNotFound = errors.New("url not found")

// Store is the SQLite-backed path store.
type Store struct {
	db *sql.DB
}

// Open opens or creates the store at path, creating parent directories
// as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	const schema = `
CREATE TABLE IF NOT EXISTS paths (
    url         TEXT PRIMARY KEY,
    description TEXT NOT NULL,
    position    INTEGER NOT NULL
);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize store: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Count returns the number of stored paths.
func (s *Store) Count() (int, error) {
	return sqlutil.QueryCount(s.db, `SELECT COUNT(*) FROM paths`)
}

// Add stores a new URL and returns the new path count.
func (s *Store) Add(url, description string) (int, error) {
	_, err := s.db.Exec(
		`INSERT INTO paths (url, description, position)
		 VALUES (?, ?, (SELECT COALESCE(MAX(position), 0) + 1 FROM paths))`,
		url, description,
	)
	if err != nil {
		return 0, fmt.Errorf("add path: %w", err)
	}
	return s.Count()
}

// Delete removes a URL and returns the remaining path count.
func (s *Store) Delete(url string) (int, error) {
	res, err := s.db.Exec(`DELETE FROM paths WHERE url = ?`, url)
	if err != nil {
		return 0, fmt.Errorf("delete path: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return 0, ErrNotFound
	}
	return s.Count()
}

// Update replaces the description of an existing URL and returns the
// path count.
func (s *Store) Update(url, description string) (int, error) {
	res, err := s.db.Exec(`UPDATE paths SET description = ? WHERE url = ?`, description, url)
	if err != nil {
		return 0, fmt.Errorf("update path: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return 0, ErrNotFound
	}
	return s.Count()
}

// Description returns the stored description for a URL.
func (s *Store) Description(url string) (string, error) {
	var desc string
	err := s.db.QueryRow(`SELECT description FROM paths WHERE url = ?`, url).Scan(&desc)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("lookup description: %w", err)
	}
	return desc, nil
}

// Filter returns the script-filter items whose description contains
// query, case-insensitively, in insertion order. An empty query matches
// everything.
func (s *Store) Filter(query string) ([]alfred.Item, error) {
	rows, err := s.db.Query(`SELECT url, description FROM paths ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list paths: %w", err)
	}

	query = strings.ToLower(query)
	items, err := sqlutil.ScanRows(rows, func(rows *sql.Rows) (alfred.Item, error) {
		var url, desc string
		if err := rows.Scan(&url, &desc); err != nil {
			return alfred.Item{}, err
		}
		return alfred.Item{
			Title:    desc,
			Subtitle: desc,
			Arg:      url,
			Vars:     map[string]string{"url": url},
		}, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan paths: %w", err)
	}

	if query == "" {
		return items, nil
	}
	var matched []alfred.Item
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Title), query) {
			matched = append(matched, it)
		}
	}
	return matched, nil
}

// legacyFile is the paths.json layout of the original workflow.
type legacyFile struct {
	Items []struct {
		Title string `json:"title"`
		URL   string `json:"url"`
		Arg   string `json:"arg"`
	} `json:"items"`
}

// ImportJSON loads entries from a legacy paths.json, skipping URLs
// already present, and returns the number imported.
func (s *Store) ImportJSON(r io.Reader) (int, error) {
	var legacy legacyFile
	if err := json.NewDecoder(r).Decode(&legacy); err != nil {
		return 0, fmt.Errorf("decode legacy paths: %w", err)
	}

	imported := 0
	for _, it := range legacy.Items {
		url := it.URL
		if url == "" {
			url = it.Arg
		}
		if url == "" {
			continue
		}
		res, err := s.db.Exec(
			`INSERT OR IGNORE INTO paths (url, description, position)
			 VALUES (?, ?, (SELECT COALESCE(MAX(position), 0) + 1 FROM paths))`,
			url, it.Title,
		)
		if err != nil {
			return imported, fmt.Errorf("import path %q: %w", url, err)
		}
		if n, err := res.RowsAffected(); err == nil && n > 0 {
			imported++
		}
	}
	return imported, nil
}
