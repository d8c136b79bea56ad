package data

import (
	"log"
	"sort"

	"restaurant-saas-api/docstore"
	"restaurant-saas-api/models"
)

// ── Menu items ──────────────────────────────────────────────────────────────

// MenuItems returns every menu item of the tenant, in store order.
func (s *Service) MenuItems(tenantID string) ([]models.MenuItem, error) {
	docs, err := s.store.List(docstore.TenantPath(tenantID, docstore.CollectionMenuItems))
	if err != nil {
		return nil, err
	}
	return decodeMenuItems(docs)
}

// AddMenuItem inserts a menu item and returns its new id.
func (s *Service) AddMenuItem(tenantID string, item models.MenuItem) (string, error) {
	body, err := docBody(item)
	if err != nil {
		return "", err
	}
	return s.store.Create(docstore.TenantPath(tenantID, docstore.CollectionMenuItems), body)
}

// UpdateMenuItem merge-patches the named fields only; omitted fields keep
// their stored values.
func (s *Service) UpdateMenuItem(tenantID, id string, partial map[string]interface{}) error {
	return s.store.Patch(docstore.TenantPath(tenantID, docstore.CollectionMenuItems), id, partial)
}

// DeleteMenuItem removes the item. Deleting an unknown id is a no-op.
func (s *Service) DeleteMenuItem(tenantID, id string) error {
	return s.store.Delete(docstore.TenantPath(tenantID, docstore.CollectionMenuItems), id)
}

// SubscribeMenuItems delivers the full menu on every change, starting with
// the current state. The returned func stops delivery.
func (s *Service) SubscribeMenuItems(tenantID string, fn func([]models.MenuItem)) (func(), error) {
	return s.store.Subscribe(docstore.TenantPath(tenantID, docstore.CollectionMenuItems), func(docs []docstore.Document) {
		items, err := decodeMenuItems(docs)
		if err != nil {
			log.Printf("menu snapshot for tenant %s: %v", tenantID, err)
			return
		}
		fn(items)
	})
}

func decodeMenuItems(docs []docstore.Document) ([]models.MenuItem, error) {
	items := make([]models.MenuItem, 0, len(docs))
	for _, doc := range docs {
		var item models.MenuItem
		if err := decodeDoc(doc, &item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// ── Categories ──────────────────────────────────────────────────────────────

// Categories returns the tenant's categories sorted by display order.
func (s *Service) Categories(tenantID string) ([]models.Category, error) {
	docs, err := s.store.List(docstore.TenantPath(tenantID, docstore.CollectionCategories))
	if err != nil {
		return nil, err
	}
	return decodeCategories(docs)
}

// AddCategory inserts a category and returns its new id.
func (s *Service) AddCategory(tenantID string, category models.Category) (string, error) {
	body, err := docBody(category)
	if err != nil {
		return "", err
	}
	return s.store.Create(docstore.TenantPath(tenantID, docstore.CollectionCategories), body)
}

// UpdateCategory merge-patches the named fields only.
func (s *Service) UpdateCategory(tenantID, id string, partial map[string]interface{}) error {
	return s.store.Patch(docstore.TenantPath(tenantID, docstore.CollectionCategories), id, partial)
}

// DeleteCategory removes the category. Menu items referencing it keep their
// dangling reference; the reference was never enforced.
func (s *Service) DeleteCategory(tenantID, id string) error {
	return s.store.Delete(docstore.TenantPath(tenantID, docstore.CollectionCategories), id)
}

// SubscribeCategories delivers the sorted category list on every change.
func (s *Service) SubscribeCategories(tenantID string, fn func([]models.Category)) (func(), error) {
	return s.store.Subscribe(docstore.TenantPath(tenantID, docstore.CollectionCategories), func(docs []docstore.Document) {
		categories, err := decodeCategories(docs)
		if err != nil {
			log.Printf("category snapshot for tenant %s: %v", tenantID, err)
			return
		}
		fn(categories)
	})
}

func decodeCategories(docs []docstore.Document) ([]models.Category, error) {
	categories := make([]models.Category, 0, len(docs))
	for _, doc := range docs {
		var category models.Category
		if err := decodeDoc(doc, &category); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Order < categories[j].Order
	})
	return categories, nil
}
