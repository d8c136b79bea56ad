package docstore

// Logical collection names under each tenant. These match the document
// paths the platform has always used; changing one orphans existing data.
const (
	CollectionMenuItems    = "menuItems"
	CollectionCategories   = "categories"
	CollectionOrders       = "orders"
	CollectionReservations = "reservations"
	CollectionFeedbacks    = "feedbacks"
	CollectionSettings     = "settings"
)

// SettingsDocID is the fixed id of the per-tenant settings singleton.
const SettingsDocID = "restaurant-settings"

// TenantCollections lists every sub-collection a tenant owns, in the order
// the cascading delete walks them.
var TenantCollections = []string{
	CollectionMenuItems,
	CollectionCategories,
	CollectionOrders,
	CollectionReservations,
	CollectionFeedbacks,
	CollectionSettings,
}

// TenantPath resolves the storage location of one tenant collection.
func TenantPath(tenantID, collection string) string {
	return "tenants/" + tenantID + "/" + collection
}

// TenantInfoPath resolves the location of the tenant record itself. It is a
// fixed sub-path so that a tenant's existence check is decoupled from its
// sub-collections.
func TenantInfoPath(tenantID string) string {
	return "tenants/" + tenantID + "/info"
}

// TenantIndexPath resolves the top-level tenant index, used only to
// enumerate existing tenants.
func TenantIndexPath() string {
	return "tenants"
}
