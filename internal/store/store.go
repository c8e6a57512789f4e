// Package store owns the server's mutable state: notes, catalogs and
// catalog items. The backing database is an in-memory SQLite instance, so
// everything is lost on process exit.
package store

import (
	"database/sql"
	"encoding/json"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

type Note struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

type Catalog struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type CatalogItem struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Attributes  map[string]any `json:"attributes"`
}

type Store struct {
	db *sql.DB
	mu sync.Mutex

	notesChanged func()
}

// Open creates the in-memory database and its schema. A ":memory:" DSN
// gives every pooled connection its own database, so the pool is pinned
// to a single connection.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS notes (
		name TEXT PRIMARY KEY,
		content TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS catalogs (
		name TEXT PRIMARY KEY,
		description TEXT NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS catalog_items (
		catalog_name TEXT NOT NULL REFERENCES catalogs(name),
		item_id TEXT NOT NULL,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		attributes TEXT NOT NULL DEFAULT '{}',
		PRIMARY KEY (catalog_name, item_id)
	);
	`

	for _, stmt := range strings.Split(schema, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// OnNotesChanged registers the observer invoked after every note write.
// The transport uses it to announce a changed resource list.
func (s *Store) OnNotesChanged(fn func()) {
	s.mu.Lock()
	s.notesChanged = fn
	s.mu.Unlock()
}

// AddNote inserts or overwrites a note. Re-adding an existing name keeps
// its position in the listing order.
func (s *Store) AddNote(name, content string) error {
	s.mu.Lock()
	_, err := s.db.Exec(
		`INSERT INTO notes (name, content) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET content = excluded.content`,
		name, content,
	)
	changed := s.notesChanged
	s.mu.Unlock()

	if err != nil {
		return err
	}
	if changed != nil {
		changed()
	}
	return nil
}

// ListNotes returns all notes in insertion order.
func (s *Store) ListNotes() ([]Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query("SELECT name, content FROM notes ORDER BY rowid")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []Note
	for rows.Next() {
		var n Note
		if err := rows.Scan(&n.Name, &n.Content); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func (s *Store) GetNote(name string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var content string
	err := s.db.QueryRow("SELECT content FROM notes WHERE name = ?", name).Scan(&content)
	if err == sql.ErrNoRows {
		return "", &NotFoundError{Entity: "Note", Name: name}
	}
	if err != nil {
		return "", err
	}
	return content, nil
}

func (s *Store) CreateCatalog(name, description string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var exists bool
	err := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM catalogs WHERE name = ?)", name).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return &ConflictError{Entity: "Catalog", Name: name}
	}

	_, err = s.db.Exec(
		"INSERT INTO catalogs (name, description, created_at) VALUES (?, ?, ?)",
		name, description, time.Now().UTC(),
	)
	return err
}

// ListCatalogs returns all catalogs in creation order.
func (s *Store) ListCatalogs() ([]Catalog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query("SELECT name, description, created_at FROM catalogs ORDER BY rowid")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var catalogs []Catalog
	for rows.Next() {
		var c Catalog
		if err := rows.Scan(&c.Name, &c.Description, &c.CreatedAt); err != nil {
			return nil, err
		}
		catalogs = append(catalogs, c)
	}
	return catalogs, rows.Err()
}

func (s *Store) CreateCatalogItem(catalogName, itemID, name, description string, attributes map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireCatalog(catalogName); err != nil {
		return err
	}

	var exists bool
	err := s.db.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM catalog_items WHERE catalog_name = ? AND item_id = ?)",
		catalogName, itemID,
	).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return &ConflictError{Entity: "Item", Name: itemID, Catalog: catalogName}
	}

	if attributes == nil {
		attributes = map[string]any{}
	}
	attrsJSON, err := json.Marshal(attributes)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(
		"INSERT INTO catalog_items (catalog_name, item_id, name, description, attributes) VALUES (?, ?, ?, ?, ?)",
		catalogName, itemID, name, description, string(attrsJSON),
	)
	return err
}

// ListCatalogItems returns a catalog's items in insertion order.
func (s *Store) ListCatalogItems(catalogName string) ([]CatalogItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireCatalog(catalogName); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(
		"SELECT item_id, name, description, attributes FROM catalog_items WHERE catalog_name = ? ORDER BY rowid",
		catalogName,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []CatalogItem
	for rows.Next() {
		var it CatalogItem
		var attrsJSON string
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &attrsJSON); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(attrsJSON), &it.Attributes); err != nil {
			it.Attributes = map[string]any{}
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *Store) requireCatalog(name string) error {
	var exists bool
	err := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM catalogs WHERE name = ?)", name).Scan(&exists)
	if err != nil {
		return err
	}
	if !exists {
		return &NotFoundError{Entity: "Catalog", Name: name}
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
