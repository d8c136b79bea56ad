package docstore

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// ErrNotFound is returned by Get when no document exists at the given id.
var ErrNotFound = errors.New("document not found")

// ReadError wraps a transport-level failure while reading a path.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string { return "read " + e.Path + ": " + e.Err.Error() }
func (e *ReadError) Unwrap() error { return e.Err }

// WriteError wraps a transport-level failure while writing a path.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string { return "write " + e.Path + ": " + e.Err.Error() }
func (e *WriteError) Unwrap() error { return e.Err }

// Document is one schemaless record addressed by (path, id).
type Document struct {
	ID   string
	Body map[string]interface{}
}

// documentRow is the persisted form: the body is stored as a JSON blob so
// collections stay schemaless, exactly as the document-store contract wants.
type documentRow struct {
	Path  string `gorm:"primaryKey"`
	DocID string `gorm:"primaryKey"`
	Body  string
}

func (documentRow) TableName() string { return "documents" }

// Store is an embedded, path-addressed document store with snapshot
// listeners. Writes notify subscribers of the touched paths after they
// commit.
type Store struct {
	db  *gorm.DB
	hub *hub
}

// Open connects the backing database and migrates the document table.
// Use ":memory:" for an ephemeral store.
func Open(dbPath string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open document store: %w", err)
	}
	if err := db.AutoMigrate(&documentRow{}); err != nil {
		return nil, fmt.Errorf("migrate document store: %w", err)
	}
	return &Store{db: db, hub: newHub()}, nil
}

// List returns every document at path. Order is whatever the store gives
// back; callers that need a stable order sort themselves.
func (s *Store) List(path string) ([]Document, error) {
	var rows []documentRow
	if err := s.db.Where("path = ?", path).Find(&rows).Error; err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	docs := make([]Document, 0, len(rows))
	for _, row := range rows {
		doc, err := row.decode()
		if err != nil {
			return nil, &ReadError{Path: path, Err: err}
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// Get returns a single document, or ErrNotFound.
func (s *Store) Get(path, id string) (Document, error) {
	var row documentRow
	err := s.db.Where("path = ? AND doc_id = ?", path, id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Document{}, ErrNotFound
	}
	if err != nil {
		return Document{}, &ReadError{Path: path, Err: err}
	}
	return row.decode()
}

// Create inserts a document with a server-assigned id and returns it.
func (s *Store) Create(path string, body map[string]interface{}) (string, error) {
	id := newDocID()
	row, err := encodeRow(path, id, body)
	if err != nil {
		return "", &WriteError{Path: path, Err: err}
	}
	if err := s.db.Create(&row).Error; err != nil {
		return "", &WriteError{Path: path, Err: err}
	}
	s.hub.notify(s, path)
	return id, nil
}

// Set writes the full document body, creating or overwriting it.
func (s *Store) Set(path, id string, body map[string]interface{}) error {
	row, err := encodeRow(path, id, body)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error; err != nil {
		return &WriteError{Path: path, Err: err}
	}
	s.hub.notify(s, path)
	return nil
}

// Patch merge-patches the document: only the keys present in partial are
// touched, every other field keeps its stored value. Patching an absent
// document creates it from the partial.
func (s *Store) Patch(path, id string, partial map[string]interface{}) error {
	merged, err := s.mergedBody(path, id, partial)
	if err != nil {
		return err
	}
	return s.Set(path, id, merged)
}

// Delete removes the document. Deleting a nonexistent id is not an error.
func (s *Store) Delete(path, id string) error {
	if err := s.db.Where("path = ? AND doc_id = ?", path, id).Delete(&documentRow{}).Error; err != nil {
		return &WriteError{Path: path, Err: err}
	}
	s.hub.notify(s, path)
	return nil
}

// Subscribe registers a snapshot listener on path. The callback receives the
// full current document list immediately and again after every committed
// write that touches the path. The returned func stops delivery; it is safe
// to call more than once but must be called at least once or the listener
// lives for the rest of the process.
func (s *Store) Subscribe(path string, fn func([]Document)) (func(), error) {
	docs, err := s.List(path)
	if err != nil {
		return nil, err
	}
	cancel := s.hub.add(path, fn)
	fn(docs)
	return cancel, nil
}

func (s *Store) mergedBody(path, id string, partial map[string]interface{}) (map[string]interface{}, error) {
	existing, err := s.Get(path, id)
	if errors.Is(err, ErrNotFound) {
		return partial, nil
	}
	if err != nil {
		return nil, err
	}
	for k, v := range partial {
		existing.Body[k] = v
	}
	return existing.Body, nil
}

func (row documentRow) decode() (Document, error) {
	body := map[string]interface{}{}
	if err := json.Unmarshal([]byte(row.Body), &body); err != nil {
		return Document{}, fmt.Errorf("decode document %s/%s: %w", row.Path, row.DocID, err)
	}
	return Document{ID: row.DocID, Body: body}, nil
}

func newDocID() string { return uuid.NewString() }

func encodeRow(path, id string, body map[string]interface{}) (documentRow, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return documentRow{}, err
	}
	return documentRow{Path: path, DocID: id, Body: string(raw)}, nil
}
