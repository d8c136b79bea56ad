package registry

import (
	"errors"
	"testing"

	"restaurant-saas-api/docstore"
	"restaurant-saas-api/models"
)

func newTestRegistry(t *testing.T) (*Registry, *docstore.Store) {
	t.Helper()
	store, err := docstore.Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return New(store), store
}

func demoRestaurant(slug string) models.Restaurant {
	return models.Restaurant{
		Slug:         slug,
		Name:         "Spice Garden",
		Address:      "12 Curry Lane",
		Phone:        "+91 9876543210",
		Whatsapp:     "+91 9876543210",
		Email:        "owner@spicegarden.example",
		OpeningHours: "11:00 AM - 11:00 PM",
		IsOpen:       true,
		Cuisine:      []string{"Indian"},
	}
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	reg, _ := newTestRegistry(t)

	id, err := reg.Create(demoRestaurant("spice-garden"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id != "spice-garden" {
		t.Fatalf("id = %q, the slug must be the tenant id", id)
	}

	got, err := reg.Get("spice-garden")
	if err != nil {
		t.Fatal(err)
	}
	if got == nil {
		t.Fatal("get returned nil after create")
	}
	if got.ID != "spice-garden" || got.Name != "Spice Garden" || got.Email != "owner@spicegarden.example" {
		t.Errorf("round-trip mismatch: %+v", got)
	}
	if got.CreatedAt == "" || got.UpdatedAt == "" {
		t.Error("timestamps not stamped")
	}
	if len(got.Cuisine) != 1 || got.Cuisine[0] != "Indian" {
		t.Errorf("cuisine = %v", got.Cuisine)
	}
}

func TestCreateSeedsDefaultCategories(t *testing.T) {
	reg, store := newTestRegistry(t)

	if _, err := reg.Create(demoRestaurant("spice-garden")); err != nil {
		t.Fatal(err)
	}

	docs, err := store.List(docstore.TenantPath("spice-garden", docstore.CollectionCategories))
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != len(models.DefaultCategories) {
		t.Fatalf("seeded %d categories, want %d", len(docs), len(models.DefaultCategories))
	}
}

func TestCreateRejectsDuplicateSlug(t *testing.T) {
	reg, _ := newTestRegistry(t)

	if _, err := reg.Create(demoRestaurant("spice-garden")); err != nil {
		t.Fatal(err)
	}
	_, err := reg.Create(demoRestaurant("spice-garden"))
	if !errors.Is(err, ErrTenantExists) {
		t.Fatalf("err = %v, want ErrTenantExists", err)
	}
}

func TestGetUnknownTenantIsNilNotError(t *testing.T) {
	reg, _ := newTestRegistry(t)
	got, err := reg.Get("nope")
	if err != nil {
		t.Fatalf("err = %v, want nil", err)
	}
	if got != nil {
		t.Fatalf("got = %+v, want nil", got)
	}
}

func TestUpdateMergePatchesAndRestamps(t *testing.T) {
	reg, _ := newTestRegistry(t)
	if _, err := reg.Create(demoRestaurant("spice-garden")); err != nil {
		t.Fatal(err)
	}
	before, err := reg.Get("spice-garden")
	if err != nil {
		t.Fatal(err)
	}

	err = reg.Update("spice-garden", map[string]interface{}{
		"isOpen": false,
		"id":     "evil-rename", // immutable, must be dropped
	})
	if err != nil {
		t.Fatal(err)
	}

	after, err := reg.Get("spice-garden")
	if err != nil {
		t.Fatal(err)
	}
	if after == nil {
		t.Fatal("tenant vanished after update")
	}
	if after.IsOpen {
		t.Error("isOpen not patched")
	}
	if after.Name != before.Name || after.Phone != before.Phone {
		t.Error("unrelated fields changed")
	}
	if after.CreatedAt != before.CreatedAt {
		t.Error("createdAt must never change")
	}
	if after.UpdatedAt == "" {
		t.Error("updatedAt not re-stamped")
	}
	if after.ID != "spice-garden" {
		t.Errorf("id mutated to %q", after.ID)
	}
}

func TestDeleteCascadesEverything(t *testing.T) {
	reg, store := newTestRegistry(t)
	if _, err := reg.Create(demoRestaurant("spice-garden")); err != nil {
		t.Fatal(err)
	}

	// Put a document in every sub-collection.
	for _, collection := range docstore.TenantCollections {
		if _, err := store.Create(docstore.TenantPath("spice-garden", collection), map[string]interface{}{"x": 1.0}); err != nil {
			t.Fatal(err)
		}
	}

	if err := reg.Delete("spice-garden"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	got, err := reg.Get("spice-garden")
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Fatal("tenant record survived delete")
	}
	for _, collection := range docstore.TenantCollections {
		docs, err := store.List(docstore.TenantPath("spice-garden", collection))
		if err != nil {
			t.Fatal(err)
		}
		if len(docs) != 0 {
			t.Errorf("%s not empty after cascade: %d docs", collection, len(docs))
		}
	}
	entries, err := store.List(docstore.TenantIndexPath())
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Error("index entry survived delete")
	}
}

func TestListAllSkipsUnprovisionedIndexEntries(t *testing.T) {
	reg, store := newTestRegistry(t)
	if _, err := reg.Create(demoRestaurant("spice-garden")); err != nil {
		t.Fatal(err)
	}
	// An index entry with no info document: not yet provisioned, not an error.
	if err := store.Set(docstore.TenantIndexPath(), "ghost", map[string]interface{}{"slug": "ghost"}); err != nil {
		t.Fatal(err)
	}

	restaurants, err := reg.ListAll()
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(restaurants) != 1 {
		t.Fatalf("len = %d, want 1 (ghost skipped)", len(restaurants))
	}
	if restaurants[0].ID != "spice-garden" {
		t.Errorf("restaurants[0].ID = %q", restaurants[0].ID)
	}
}

func TestSubscribeAllTracksTenantSet(t *testing.T) {
	reg, _ := newTestRegistry(t)

	var last []models.Restaurant
	unsub, err := reg.SubscribeAll(func(restaurants []models.Restaurant) {
		last = restaurants
	})
	if err != nil {
		t.Fatal(err)
	}
	defer unsub()

	if len(last) != 0 {
		t.Fatalf("initial snapshot = %v, want empty", last)
	}

	if _, err := reg.Create(demoRestaurant("spice-garden")); err != nil {
		t.Fatal(err)
	}
	if len(last) != 1 || last[0].ID != "spice-garden" {
		t.Fatalf("snapshot after create = %+v", last)
	}

	if err := reg.Delete("spice-garden"); err != nil {
		t.Fatal(err)
	}
	if len(last) != 0 {
		t.Fatalf("snapshot after delete = %+v", last)
	}
}
