package handlers

import (
	"errors"
	"net/http"

	"restaurant-saas-api/docstore"
	"restaurant-saas-api/lifecycle"
	"restaurant-saas-api/middleware"
	"restaurant-saas-api/models"

	"github.com/gin-gonic/gin"
)

// Tenant-admin surface. The session token carries the tenant id; nothing
// here takes a slug from the URL, so an admin can only ever touch their
// own restaurant.

// ── Menu management ─────────────────────────────────────────────────────────

type CreateMenuItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Category    string  `json:"category"`
	IsVeg       bool    `json:"isVeg"`
	Image       string  `json:"image"`
}

// AddMenuItem adds a new item to the admin's menu
func AddMenuItem(c *gin.Context) {
	tenantID := middleware.GetTenantID(c)

	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ts := tenantStoreFor(tenantID)
	id, err := ts.AddMenuItem(models.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		IsVeg:       req.IsVeg,
		Image:       req.Image,
		IsAvailable: true,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add menu item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Menu item added", "id": id})
}

// UpdateMenuItem merge-patches a menu item; omitted fields stay untouched
func UpdateMenuItem(c *gin.Context) {
	tenantID := middleware.GetTenantID(c)
	itemID := c.Param("itemId")

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Only allow safe fields
	allowed := map[string]bool{"name": true, "description": true, "price": true, "category": true, "isVeg": true, "isAvailable": true, "image": true}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}

	ts := tenantStoreFor(tenantID)
	if err := ts.UpdateMenuItem(itemID, update); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item updated"})
}

// DeleteMenuItem removes a menu item
func DeleteMenuItem(c *gin.Context) {
	tenantID := middleware.GetTenantID(c)
	ts := tenantStoreFor(tenantID)
	if err := ts.DeleteMenuItem(c.Param("itemId")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}

// AdminGetMenu returns the full menu including unavailable items
func AdminGetMenu(c *gin.Context) {
	ts := tenantStoreFor(middleware.GetTenantID(c))
	items := ts.MenuItems()
	c.JSON(http.StatusOK, gin.H{"count": len(items), "menu": items})
}

// ── Category management ─────────────────────────────────────────────────────

type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required"`
	Order int    `json:"order" binding:"required,min=1"`
}

// AddCategory adds a display category
func AddCategory(c *gin.Context) {
	tenantID := middleware.GetTenantID(c)

	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ts := tenantStoreFor(tenantID)
	id, err := ts.AddCategory(models.Category{Name: req.Name, Order: req.Order})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add category"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Category added", "id": id})
}

// UpdateCategory merge-patches a category's name or display order
func UpdateCategory(c *gin.Context) {
	tenantID := middleware.GetTenantID(c)

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	allowed := map[string]bool{"name": true, "order": true}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}

	ts := tenantStoreFor(tenantID)
	if err := ts.UpdateCategory(c.Param("categoryId"), update); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category updated"})
}

// DeleteCategory removes a category. Menu items keep their reference; the
// platform never enforced it.
func DeleteCategory(c *gin.Context) {
	tenantID := middleware.GetTenantID(c)
	ts := tenantStoreFor(tenantID)
	if err := ts.DeleteCategory(c.Param("categoryId")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}

// AdminGetCategories returns the tenant's categories in display order
func AdminGetCategories(c *gin.Context) {
	ts := tenantStoreFor(middleware.GetTenantID(c))
	categories := ts.Categories()
	c.JSON(http.StatusOK, gin.H{"count": len(categories), "categories": categories})
}

// ── Order management ────────────────────────────────────────────────────────

// GetOrders returns all orders for the admin's restaurant
func GetOrders(c *gin.Context) {
	ts := tenantStoreFor(middleware.GetTenantID(c))
	orders := ts.Orders()
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateOrderStatus moves an order through its lifecycle
func UpdateOrderStatus(c *gin.Context) {
	tenantID := middleware.GetTenantID(c)
	orderID := c.Param("id")

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !lifecycle.ValidOrderStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status. Must be: new, preparing, or completed"})
		return
	}

	order, err := svc.Order(tenantID, orderID)
	if errors.Is(err, docstore.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load order"})
		return
	}

	if err := lifecycle.CanTransitionOrder(order.Status, req.Status); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ts := tenantStoreFor(tenantID)
	if err := ts.UpdateOrderStatus(orderID, req.Status); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order status updated", "status": req.Status})
}

// ── Reservation management ──────────────────────────────────────────────────

// GetReservations returns all reservations for the admin's restaurant
func GetReservations(c *gin.Context) {
	ts := tenantStoreFor(middleware.GetTenantID(c))
	reservations := ts.Reservations()
	c.JSON(http.StatusOK, gin.H{"count": len(reservations), "reservations": reservations})
}

type UpdateReservationStatusRequest struct {
	Status models.ReservationStatus `json:"status" binding:"required"`
}

// UpdateReservationStatus confirms or cancels a reservation
func UpdateReservationStatus(c *gin.Context) {
	tenantID := middleware.GetTenantID(c)
	reservationID := c.Param("id")

	var req UpdateReservationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !lifecycle.ValidReservationStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status. Must be: pending, confirmed, or cancelled"})
		return
	}

	reservation, err := svc.Reservation(tenantID, reservationID)
	if errors.Is(err, docstore.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reservation"})
		return
	}

	if err := lifecycle.CanTransitionReservation(reservation.Status, req.Status); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ts := tenantStoreFor(tenantID)
	if err := ts.UpdateReservationStatus(reservationID, req.Status); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update reservation status"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reservation status updated", "status": req.Status})
}

// ── Feedback & settings ─────────────────────────────────────────────────────

// AdminGetFeedback returns the tenant's feedback list
func AdminGetFeedback(c *gin.Context) {
	ts := tenantStoreFor(middleware.GetTenantID(c))
	feedbacks := ts.Feedbacks()
	c.JSON(http.StatusOK, gin.H{"count": len(feedbacks), "feedbacks": feedbacks})
}

// GetSettings returns the tenant's settings document
func GetSettings(c *gin.Context) {
	ts := tenantStoreFor(middleware.GetTenantID(c))
	c.JSON(http.StatusOK, gin.H{"settings": ts.Settings()})
}

// UpdateSettings merge-patches the settings document; fields not present
// in the request are never touched
func UpdateSettings(c *gin.Context) {
	tenantID := middleware.GetTenantID(c)

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	allowed := map[string]bool{"name": true, "address": true, "phone": true, "whatsapp": true, "openingHours": true, "isOpen": true, "cuisine": true, "rating": true}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}

	ts := tenantStoreFor(tenantID)
	if err := ts.UpdateSettings(update); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Settings updated"})
}
