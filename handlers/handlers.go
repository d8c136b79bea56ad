package handlers

import (
	"net/http"
	"sync"

	"restaurant-saas-api/data"
	"restaurant-saas-api/docstore"
	"restaurant-saas-api/models"
	"restaurant-saas-api/registry"
	"restaurant-saas-api/tenantstore"

	"github.com/gin-gonic/gin"
)

var (
	svc *data.Service
	reg *registry.Registry

	tenantsMu    sync.Mutex
	tenantStores map[string]*tenantstore.Store
)

// Init wires the handler layer to the document store. Call once at boot.
func Init(store *docstore.Store) {
	svc = data.NewService(store)
	reg = registry.New(store)
	tenantStores = map[string]*tenantstore.Store{}
}

// tenantStoreFor returns the live store for a tenant, activating it on
// first use. At most one store instance exists per tenant id per process.
func tenantStoreFor(tenantID string) *tenantstore.Store {
	tenantsMu.Lock()
	defer tenantsMu.Unlock()
	if s, ok := tenantStores[tenantID]; ok {
		return s
	}
	s := tenantstore.Activate(svc, tenantID)
	tenantStores[tenantID] = s
	return s
}

// releaseTenantStore tears down the tenant's live store, closing its
// subscriptions. Called when a tenant is deleted.
func releaseTenantStore(tenantID string) {
	tenantsMu.Lock()
	defer tenantsMu.Unlock()
	if s, ok := tenantStores[tenantID]; ok {
		s.Close()
		delete(tenantStores, tenantID)
	}
}

// resolveTenant looks up the restaurant for the :slug route param. A clean
// miss is 404; a store failure is 503, so a flaky backend never reads as
// "this restaurant does not exist".
func resolveTenant(c *gin.Context) (*models.Restaurant, bool) {
	slug := c.Param("slug")
	restaurant, err := reg.Get(slug)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Restaurant lookup failed, try again shortly"})
		return nil, false
	}
	if restaurant == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return nil, false
	}
	return restaurant, true
}
