// Package data is the typed data-access layer over the document store.
// Every function is parameterized by the owning tenant id; no operation can
// see another tenant's documents because every path it builds is scoped.
package data

import (
	"encoding/json"
	"fmt"

	"restaurant-saas-api/docstore"
)

// Service exposes per-entity CRUD and change subscriptions. It does not
// retry and does not swallow errors; callers decide what a failure means.
type Service struct {
	store *docstore.Store
}

func NewService(store *docstore.Store) *Service {
	return &Service{store: store}
}

// Store exposes the underlying document store for layers that need raw
// path access (the platform registry's cascade delete).
func (s *Service) Store() *docstore.Store {
	return s.store
}

// docBody converts an entity to a document body. The id never lives inside
// the body; it is the document's address.
func docBody(v interface{}) (map[string]interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode entity: %w", err)
	}
	body := map[string]interface{}{}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("encode entity: %w", err)
	}
	delete(body, "id")
	return body, nil
}

// decodeDoc hydrates an entity from a document, injecting the document id.
func decodeDoc(doc docstore.Document, out interface{}) error {
	doc.Body["id"] = doc.ID
	raw, err := json.Marshal(doc.Body)
	if err != nil {
		return fmt.Errorf("decode document %s: %w", doc.ID, err)
	}
	return json.Unmarshal(raw, out)
}
