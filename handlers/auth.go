package handlers

import (
	"net/http"

	"restaurant-saas-api/config"
	"restaurant-saas-api/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type AdminLoginRequest struct {
	Username     string `json:"username" binding:"required"`
	Password     string `json:"password" binding:"required"`
	RestaurantID string `json:"restaurantId" binding:"required"`
}

type SuperAdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AdminLogin authenticates a tenant administrator and returns a session
// token scoped to their restaurant.
func AdminLogin(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Username != config.App.AdminUsername ||
		bcrypt.CompareHashAndPassword(config.AdminPasswordHash, []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	// The token is only issued for a restaurant that actually exists.
	restaurant, err := reg.Get(req.RestaurantID)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Restaurant lookup failed, try again shortly"})
		return
	}
	if restaurant == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unknown restaurant"})
		return
	}

	token, err := middleware.GenerateToken(middleware.RoleAdmin, restaurant.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Login successful",
		"token":        token,
		"role":         middleware.RoleAdmin,
		"restaurantId": restaurant.ID,
	})
}

// SuperAdminLogin authenticates the platform operator.
func SuperAdminLogin(c *gin.Context) {
	var req SuperAdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Email != config.App.SuperAdminEmail ||
		bcrypt.CompareHashAndPassword(config.SuperAdminPasswordHash, []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := middleware.GenerateToken(middleware.RoleSuperAdmin, "")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"role":    middleware.RoleSuperAdmin,
	})
}
