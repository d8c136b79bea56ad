package data

import (
	"errors"
	"log"

	"restaurant-saas-api/docstore"
	"restaurant-saas-api/models"
)

// Settings is a singleton document per tenant at a fixed id, so these
// operations address it directly instead of taking a document id.

// Settings returns the tenant's settings, or nil when never provisioned.
func (s *Service) Settings(tenantID string) (*models.RestaurantSettings, error) {
	doc, err := s.store.Get(docstore.TenantPath(tenantID, docstore.CollectionSettings), docstore.SettingsDocID)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var settings models.RestaurantSettings
	if err := decodeDoc(doc, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// UpdateSettings merge-patches the named fields, creating the document if
// it does not exist yet.
func (s *Service) UpdateSettings(tenantID string, partial map[string]interface{}) error {
	return s.store.Patch(docstore.TenantPath(tenantID, docstore.CollectionSettings), docstore.SettingsDocID, partial)
}

// InitializeSettings writes the full settings document unconditionally.
// Only the first-time provisioning path calls this; anything later would
// clobber admin edits.
func (s *Service) InitializeSettings(tenantID string, settings models.RestaurantSettings) error {
	body, err := docBody(settings)
	if err != nil {
		return err
	}
	return s.store.Set(docstore.TenantPath(tenantID, docstore.CollectionSettings), docstore.SettingsDocID, body)
}

// SubscribeSettings delivers the settings document on every change, or nil
// while it does not exist.
func (s *Service) SubscribeSettings(tenantID string, fn func(*models.RestaurantSettings)) (func(), error) {
	return s.store.Subscribe(docstore.TenantPath(tenantID, docstore.CollectionSettings), func(docs []docstore.Document) {
		for _, doc := range docs {
			if doc.ID != docstore.SettingsDocID {
				continue
			}
			var settings models.RestaurantSettings
			if err := decodeDoc(doc, &settings); err != nil {
				log.Printf("settings snapshot for tenant %s: %v", tenantID, err)
				return
			}
			fn(&settings)
			return
		}
		fn(nil)
	})
}
