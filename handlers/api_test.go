package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"restaurant-saas-api/config"
	"restaurant-saas-api/docstore"
	"restaurant-saas-api/handlers"
	"restaurant-saas-api/routes"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := docstore.Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	handlers.Init(store)

	config.JWTSecret = []byte("test-secret")
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	config.AdminPasswordHash = hash
	config.SuperAdminPasswordHash = hash
	config.App = &config.Config{
		AdminUsername:   "admin",
		SuperAdminEmail: "admin@restaurantsaas.com",
	}

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	resp := map[string]interface{}{}
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
	}
	return w, resp
}

func superAdminToken(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w, resp := doJSON(t, r, http.MethodPost, "/api/auth/super-admin/login", "", gin.H{
		"email":    "admin@restaurantsaas.com",
		"password": "admin123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("super-admin login: %d %s", w.Code, w.Body.String())
	}
	return resp["token"].(string)
}

func adminToken(t *testing.T, r *gin.Engine, restaurantID string) string {
	t.Helper()
	w, resp := doJSON(t, r, http.MethodPost, "/api/auth/admin/login", "", gin.H{
		"username":     "admin",
		"password":     "admin123",
		"restaurantId": restaurantID,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("admin login: %d %s", w.Code, w.Body.String())
	}
	return resp["token"].(string)
}

func createRestaurant(t *testing.T, r *gin.Engine, token, slug string) {
	t.Helper()
	w, _ := doJSON(t, r, http.MethodPost, "/api/super-admin/restaurants", token, gin.H{
		"name":    "Spice Garden",
		"slug":    slug,
		"email":   "owner@spicegarden.example",
		"phone":   "+91 9876543210",
		"address": "12 Curry Lane",
		"cuisine": []string{"Indian"},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create restaurant: %d %s", w.Code, w.Body.String())
	}
}

func TestTenantProvisioningAndPublicBrowsing(t *testing.T) {
	r := setupRouter(t)
	token := superAdminToken(t, r)
	createRestaurant(t, r, token, "spice-garden")

	w, resp := doJSON(t, r, http.MethodGet, "/api/r/spice-garden", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("public get: %d %s", w.Code, w.Body.String())
	}
	restaurant := resp["restaurant"].(map[string]interface{})
	if restaurant["id"] != "spice-garden" || restaurant["name"] != "Spice Garden" {
		t.Errorf("restaurant = %v", restaurant)
	}

	// First menu read mounts the tenant store and seeds the default catalog.
	w, resp = doJSON(t, r, http.MethodGet, "/api/r/spice-garden/menu", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("menu: %d %s", w.Code, w.Body.String())
	}
	if resp["count"].(float64) == 0 {
		t.Error("menu empty, default catalog not seeded")
	}

	w, resp = doJSON(t, r, http.MethodGet, "/api/r/spice-garden/categories", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("categories: %d", w.Code)
	}
	categories := resp["categories"].([]interface{})
	prev := -1 << 30
	for _, raw := range categories {
		order := int(raw.(map[string]interface{})["order"].(float64))
		if order < prev {
			t.Fatalf("categories not sorted by order: %v", categories)
		}
		prev = order
	}
}

func TestUnknownSlugIs404(t *testing.T) {
	r := setupRouter(t)
	w, _ := doJSON(t, r, http.MethodGet, "/api/r/nope", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("code = %d, want 404", w.Code)
	}
}

func TestAdminLoginRejectsUnknownRestaurant(t *testing.T) {
	r := setupRouter(t)
	w, _ := doJSON(t, r, http.MethodPost, "/api/auth/admin/login", "", gin.H{
		"username":     "admin",
		"password":     "admin123",
		"restaurantId": "nope",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("code = %d, want 401", w.Code)
	}
}

func TestAuthGating(t *testing.T) {
	r := setupRouter(t)
	superToken := superAdminToken(t, r)
	createRestaurant(t, r, superToken, "spice-garden")
	tenantToken := adminToken(t, r, "spice-garden")

	// No token at all.
	w, _ := doJSON(t, r, http.MethodGet, "/api/admin/orders", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("no token: %d, want 401", w.Code)
	}

	// A tenant-admin session cannot reach the platform surface.
	w, _ = doJSON(t, r, http.MethodGet, "/api/super-admin/restaurants", tenantToken, nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("tenant token on platform route: %d, want 403", w.Code)
	}

	// And the platform session is not a tenant admin.
	w, _ = doJSON(t, r, http.MethodGet, "/api/admin/orders", superToken, nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("super-admin token on tenant route: %d, want 403", w.Code)
	}
}

func TestOrderEndToEnd(t *testing.T) {
	r := setupRouter(t)
	superToken := superAdminToken(t, r)
	createRestaurant(t, r, superToken, "spice-garden")

	w, resp := doJSON(t, r, http.MethodPost, "/api/r/spice-garden/orders", "", gin.H{
		"customerName":  "Asha",
		"customerPhone": "+91 9000000000",
		"orderType":     "takeaway",
		"items": []gin.H{
			{"id": "m1", "name": "Butter Chicken", "quantity": 2, "price": 350},
		},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("place order: %d %s", w.Code, w.Body.String())
	}
	if resp["total"].(float64) != 700 {
		t.Errorf("total = %v, want 700", resp["total"])
	}
	orderID := resp["id"].(string)

	tenantToken := adminToken(t, r, "spice-garden")
	w, resp = doJSON(t, r, http.MethodGet, "/api/admin/orders", tenantToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list orders: %d", w.Code)
	}
	orders := resp["orders"].([]interface{})
	if len(orders) != 1 {
		t.Fatalf("orders = %d, want 1", len(orders))
	}
	if orders[0].(map[string]interface{})["status"] != "new" {
		t.Errorf("order status = %v, want new", orders[0].(map[string]interface{})["status"])
	}

	w, _ = doJSON(t, r, http.MethodPut, "/api/admin/orders/"+orderID+"/status", tenantToken, gin.H{"status": "preparing"})
	if w.Code != http.StatusOK {
		t.Fatalf("update status: %d %s", w.Code, w.Body.String())
	}

	// Lifecycle violation: an order never goes back to new.
	w, _ = doJSON(t, r, http.MethodPut, "/api/admin/orders/"+orderID+"/status", tenantToken, gin.H{"status": "new"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("backwards transition: %d, want 400", w.Code)
	}
}

func TestPlaceOrderValidation(t *testing.T) {
	r := setupRouter(t)
	token := superAdminToken(t, r)
	createRestaurant(t, r, token, "spice-garden")

	w, _ := doJSON(t, r, http.MethodPost, "/api/r/spice-garden/orders", "", gin.H{
		"customerName":  "Asha",
		"customerPhone": "+91 9000000000",
		"orderType":     "takeaway",
		"items":         []gin.H{},
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("empty items: %d, want 400", w.Code)
	}
}

func TestReservationEndToEnd(t *testing.T) {
	r := setupRouter(t)
	superToken := superAdminToken(t, r)
	createRestaurant(t, r, superToken, "spice-garden")

	w, resp := doJSON(t, r, http.MethodPost, "/api/r/spice-garden/reservations", "", gin.H{
		"customerName":   "Ravi",
		"customerPhone":  "+91 9111111111",
		"date":           "2026-09-01",
		"time":           "19:30",
		"numberOfPeople": 4,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create reservation: %d %s", w.Code, w.Body.String())
	}
	reservationID := resp["id"].(string)

	tenantToken := adminToken(t, r, "spice-garden")
	w, resp = doJSON(t, r, http.MethodGet, "/api/admin/reservations", tenantToken, nil)
	if w.Code != http.StatusOK {
		t.Fatal(w.Code)
	}
	reservations := resp["reservations"].([]interface{})
	if len(reservations) != 1 || reservations[0].(map[string]interface{})["status"] != "pending" {
		t.Fatalf("reservations = %v, want one pending", reservations)
	}

	w, _ = doJSON(t, r, http.MethodPut, "/api/admin/reservations/"+reservationID+"/status", tenantToken, gin.H{"status": "confirmed"})
	if w.Code != http.StatusOK {
		t.Fatalf("confirm: %d %s", w.Code, w.Body.String())
	}

	w, _ = doJSON(t, r, http.MethodPut, "/api/admin/reservations/"+reservationID+"/status", tenantToken, gin.H{"status": "pending"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("confirmed -> pending: %d, want 400", w.Code)
	}
}

func TestMenuAdminCRUDAndMergePatch(t *testing.T) {
	r := setupRouter(t)
	superToken := superAdminToken(t, r)
	createRestaurant(t, r, superToken, "spice-garden")
	tenantToken := adminToken(t, r, "spice-garden")

	w, resp := doJSON(t, r, http.MethodPost, "/api/admin/menu", tenantToken, gin.H{
		"name":        "Masala Dosa",
		"description": "Crisp rice crepe with spiced potato",
		"price":       150,
		"isVeg":       true,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("add item: %d %s", w.Code, w.Body.String())
	}
	itemID := resp["id"].(string)

	// Patch one field; everything else must survive.
	w, _ = doJSON(t, r, http.MethodPut, "/api/admin/menu/"+itemID, tenantToken, gin.H{"isAvailable": false})
	if w.Code != http.StatusOK {
		t.Fatalf("patch: %d %s", w.Code, w.Body.String())
	}

	w, resp = doJSON(t, r, http.MethodGet, "/api/admin/menu", tenantToken, nil)
	if w.Code != http.StatusOK {
		t.Fatal(w.Code)
	}
	var found map[string]interface{}
	for _, raw := range resp["menu"].([]interface{}) {
		item := raw.(map[string]interface{})
		if item["id"] == itemID {
			found = item
		}
	}
	if found == nil {
		t.Fatal("added item not in menu")
	}
	if found["isAvailable"] != false {
		t.Error("isAvailable not patched")
	}
	if found["name"] != "Masala Dosa" || found["price"].(float64) != 150 {
		t.Errorf("merge-patch clobbered fields: %v", found)
	}

	w, _ = doJSON(t, r, http.MethodDelete, "/api/admin/menu/"+itemID, tenantToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: %d", w.Code)
	}
}

func TestSettingsMergePatch(t *testing.T) {
	r := setupRouter(t)
	superToken := superAdminToken(t, r)
	createRestaurant(t, r, superToken, "spice-garden")
	tenantToken := adminToken(t, r, "spice-garden")

	// Mount the tenant store so defaults are provisioned.
	w, _ := doJSON(t, r, http.MethodGet, "/api/admin/settings", tenantToken, nil)
	if w.Code != http.StatusOK {
		t.Fatal(w.Code)
	}

	w, _ = doJSON(t, r, http.MethodPut, "/api/admin/settings", tenantToken, gin.H{"isOpen": false})
	if w.Code != http.StatusOK {
		t.Fatalf("patch settings: %d %s", w.Code, w.Body.String())
	}

	w, resp := doJSON(t, r, http.MethodGet, "/api/admin/settings", tenantToken, nil)
	if w.Code != http.StatusOK {
		t.Fatal(w.Code)
	}
	settings := resp["settings"].(map[string]interface{})
	if settings["isOpen"] != false {
		t.Error("isOpen not patched")
	}
	if settings["phone"] == "" {
		t.Error("unrelated settings field lost")
	}
}

func TestCascadeDeleteRemovesTenant(t *testing.T) {
	r := setupRouter(t)
	token := superAdminToken(t, r)
	createRestaurant(t, r, token, "spice-garden")

	// Generate tenant data first.
	w, _ := doJSON(t, r, http.MethodGet, "/api/r/spice-garden/menu", "", nil)
	if w.Code != http.StatusOK {
		t.Fatal(w.Code)
	}
	w, _ = doJSON(t, r, http.MethodPost, "/api/r/spice-garden/feedback", "", gin.H{
		"rating": 5, "comment": "lovely",
	})
	if w.Code != http.StatusCreated {
		t.Fatal(w.Code)
	}

	w, _ = doJSON(t, r, http.MethodDelete, "/api/super-admin/restaurants/spice-garden", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: %d %s", w.Code, w.Body.String())
	}

	w, _ = doJSON(t, r, http.MethodGet, "/api/r/spice-garden", "", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("tenant still resolvable after delete: %d", w.Code)
	}

	w, resp := doJSON(t, r, http.MethodGet, "/api/super-admin/restaurants", token, nil)
	if w.Code != http.StatusOK {
		t.Fatal(w.Code)
	}
	if resp["count"].(float64) != 0 {
		t.Errorf("count = %v after delete, want 0", resp["count"])
	}
}

func TestDuplicateSlugConflict(t *testing.T) {
	r := setupRouter(t)
	token := superAdminToken(t, r)
	createRestaurant(t, r, token, "spice-garden")

	w, _ := doJSON(t, r, http.MethodPost, "/api/super-admin/restaurants", token, gin.H{
		"name":    "Copycat",
		"slug":    "spice-garden",
		"email":   "copy@cat.example",
		"phone":   "+91 9333333333",
		"address": "Elsewhere",
	})
	if w.Code != http.StatusConflict {
		t.Errorf("duplicate slug: %d, want 409", w.Code)
	}
}
