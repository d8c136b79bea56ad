package handlers

import (
	"errors"
	"net/http"

	"restaurant-saas-api/models"
	"restaurant-saas-api/registry"

	"github.com/gin-gonic/gin"
)

// Platform-operator surface: CRUD over the tenant set itself.

// SuperAdminListRestaurants returns every provisioned tenant
func SuperAdminListRestaurants(c *gin.Context) {
	restaurants, err := reg.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list restaurants"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(restaurants), "restaurants": restaurants})
}

// SuperAdminGetRestaurant returns one tenant record
func SuperAdminGetRestaurant(c *gin.Context) {
	restaurant, err := reg.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load restaurant"})
		return
	}
	if restaurant == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

type CreateRestaurantRequest struct {
	Name         string   `json:"name" binding:"required"`
	Slug         string   `json:"slug" binding:"required"`
	Email        string   `json:"email" binding:"required,email"`
	Phone        string   `json:"phone" binding:"required"`
	Whatsapp     string   `json:"whatsapp"`
	Address      string   `json:"address" binding:"required"`
	OpeningHours string   `json:"openingHours"`
	Cuisine      []string `json:"cuisine"`
	Description  string   `json:"description"`
	IsOpen       *bool    `json:"isOpen"`
}

// SuperAdminCreateRestaurant provisions a new tenant. The slug becomes the
// tenant id and cannot be changed afterwards.
func SuperAdminCreateRestaurant(c *gin.Context) {
	var req CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	isOpen := true
	if req.IsOpen != nil {
		isOpen = *req.IsOpen
	}
	openingHours := req.OpeningHours
	if openingHours == "" {
		openingHours = "11:00 AM - 11:00 PM"
	}

	id, err := reg.Create(models.Restaurant{
		Slug:         req.Slug,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Whatsapp:     req.Whatsapp,
		Address:      req.Address,
		OpeningHours: openingHours,
		Cuisine:      req.Cuisine,
		Description:  req.Description,
		IsOpen:       isOpen,
	})
	if errors.Is(err, registry.ErrTenantExists) {
		c.JSON(http.StatusConflict, gin.H{"error": "A restaurant with this slug already exists"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create restaurant"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Restaurant created", "id": id})
}

// SuperAdminUpdateRestaurant merge-patches a tenant record
func SuperAdminUpdateRestaurant(c *gin.Context) {
	tenantID := c.Param("id")

	restaurant, err := reg.Get(tenantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load restaurant"})
		return
	}
	if restaurant == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// Only allow safe fields; the slug/id is immutable once created
	allowed := map[string]bool{"name": true, "email": true, "phone": true, "whatsapp": true, "address": true, "openingHours": true, "cuisine": true, "description": true, "isOpen": true, "rating": true, "logo": true, "coverImage": true}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}

	if err := reg.Update(tenantID, update); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update restaurant"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Restaurant updated"})
}

// SuperAdminDeleteRestaurant removes a tenant and all its data in one
// atomic cascade, then tears down its live store.
func SuperAdminDeleteRestaurant(c *gin.Context) {
	tenantID := c.Param("id")

	restaurant, err := reg.Get(tenantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load restaurant"})
		return
	}
	if restaurant == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	if err := reg.Delete(tenantID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete restaurant"})
		return
	}
	releaseTenantStore(tenantID)

	c.JSON(http.StatusOK, gin.H{"message": "Restaurant and all its data deleted"})
}
