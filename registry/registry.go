// Package registry manages the set of tenant restaurants for the platform
// operator: creating, updating and cascading-deleting whole tenants.
package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"restaurant-saas-api/docstore"
	"restaurant-saas-api/models"
)

// ErrTenantExists is returned when creating a tenant whose slug is taken.
var ErrTenantExists = errors.New("tenant already exists")

// Registry is the platform-level view over the tenant set.
type Registry struct {
	store *docstore.Store
}

func New(store *docstore.Store) *Registry {
	return &Registry{store: store}
}

// ListAll enumerates the tenant index and fetches each tenant's info
// document. An index entry with no info document is skipped: it is a
// tenant that never finished provisioning, not an error.
func (r *Registry) ListAll() ([]models.Restaurant, error) {
	entries, err := r.store.List(docstore.TenantIndexPath())
	if err != nil {
		return nil, err
	}
	restaurants := make([]models.Restaurant, 0, len(entries))
	for _, entry := range entries {
		restaurant, err := r.Get(entry.ID)
		if err != nil {
			return nil, err
		}
		if restaurant == nil {
			continue
		}
		restaurants = append(restaurants, *restaurant)
	}
	return restaurants, nil
}

// Get returns the tenant record, or nil when no such tenant exists. A read
// failure is returned as an error, not conflated with absence.
func (r *Registry) Get(tenantID string) (*models.Restaurant, error) {
	doc, err := r.store.Get(docstore.TenantInfoPath(tenantID), tenantID)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var restaurant models.Restaurant
	doc.Body["id"] = doc.ID
	raw, err := json.Marshal(doc.Body)
	if err != nil {
		return nil, fmt.Errorf("decode tenant %s: %w", tenantID, err)
	}
	if err := json.Unmarshal(raw, &restaurant); err != nil {
		return nil, fmt.Errorf("decode tenant %s: %w", tenantID, err)
	}
	return &restaurant, nil
}

// Create provisions a new tenant. The slug IS the tenant id; there is no
// separate id generation. The index entry, the info document and the four
// default categories are written in one atomic batch.
func (r *Registry) Create(restaurant models.Restaurant) (string, error) {
	tenantID := restaurant.Slug
	if tenantID == "" {
		return "", errors.New("tenant slug is required")
	}
	existing, err := r.Get(tenantID)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", ErrTenantExists
	}

	now := time.Now().Format(time.RFC3339)
	restaurant.ID = tenantID
	restaurant.CreatedAt = now
	restaurant.UpdatedAt = now

	body, err := encodeRestaurant(restaurant)
	if err != nil {
		return "", err
	}

	batch := r.store.Batch().
		Set(docstore.TenantIndexPath(), tenantID, map[string]interface{}{"slug": tenantID}).
		Set(docstore.TenantInfoPath(tenantID), tenantID, body)
	for _, category := range models.DefaultCategories {
		batch.Create(docstore.TenantPath(tenantID, docstore.CollectionCategories), map[string]interface{}{
			"name":  category.Name,
			"order": category.Order,
		})
	}
	if err := batch.Commit(); err != nil {
		return "", err
	}

	log.Printf("tenant %s provisioned", tenantID)
	return tenantID, nil
}

// Update merge-patches the tenant record, always re-stamping updatedAt.
// The id is immutable and silently dropped from the patch if supplied.
func (r *Registry) Update(tenantID string, partial map[string]interface{}) error {
	delete(partial, "id")
	delete(partial, "createdAt")
	partial["updatedAt"] = time.Now().Format(time.RFC3339)
	return r.store.Patch(docstore.TenantInfoPath(tenantID), tenantID, partial)
}

// Delete removes the tenant and everything under it: every document of the
// six sub-collections, the info document and the index entry, committed as
// one batch so a partial cascade is never left behind.
func (r *Registry) Delete(tenantID string) error {
	batch := r.store.Batch()
	for _, collection := range docstore.TenantCollections {
		path := docstore.TenantPath(tenantID, collection)
		docs, err := r.store.List(path)
		if err != nil {
			return err
		}
		for _, doc := range docs {
			batch.Delete(path, doc.ID)
		}
	}
	batch.Delete(docstore.TenantInfoPath(tenantID), tenantID)
	batch.Delete(docstore.TenantIndexPath(), tenantID)
	if err := batch.Commit(); err != nil {
		return err
	}

	log.Printf("tenant %s deleted", tenantID)
	return nil
}

// SubscribeAll mirrors ListAll reactively: every index change triggers a
// full re-fetch of every tenant's record. Cost is O(tenant count) per
// change, which is fine at the scale this platform runs at.
func (r *Registry) SubscribeAll(fn func([]models.Restaurant)) (func(), error) {
	return r.store.Subscribe(docstore.TenantIndexPath(), func([]docstore.Document) {
		restaurants, err := r.ListAll()
		if err != nil {
			log.Printf("tenant index snapshot: %v", err)
			return
		}
		fn(restaurants)
	})
}

func encodeRestaurant(restaurant models.Restaurant) (map[string]interface{}, error) {
	raw, err := json.Marshal(restaurant)
	if err != nil {
		return nil, fmt.Errorf("encode tenant %s: %w", restaurant.ID, err)
	}
	body := map[string]interface{}{}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("encode tenant %s: %w", restaurant.ID, err)
	}
	delete(body, "id")
	return body, nil
}
