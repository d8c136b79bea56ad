package handlers

import (
	"net/http"

	"restaurant-saas-api/models"

	"github.com/gin-gonic/gin"
)

// GetRestaurant returns the public tenant record for a slug
func GetRestaurant(c *gin.Context) {
	restaurant, ok := resolveTenant(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

// GetMenu returns the tenant's menu (public)
func GetMenu(c *gin.Context) {
	restaurant, ok := resolveTenant(c)
	if !ok {
		return
	}
	ts := tenantStoreFor(restaurant.ID)
	items := ts.MenuItems()

	// Filter by category or veg, same query params the menu page sends
	category := c.Query("category")
	vegOnly := c.Query("is_veg") == "true"
	availableOnly := c.Query("available") == "true"

	filtered := make([]models.MenuItem, 0, len(items))
	for _, item := range items {
		if category != "" && item.Category != category {
			continue
		}
		if vegOnly && !item.IsVeg {
			continue
		}
		if availableOnly && !item.IsAvailable {
			continue
		}
		filtered = append(filtered, item)
	}

	c.JSON(http.StatusOK, gin.H{
		"restaurant": restaurant.Name,
		"count":      len(filtered),
		"menu":       filtered,
	})
}

// GetCategories returns the tenant's categories in display order (public)
func GetCategories(c *gin.Context) {
	restaurant, ok := resolveTenant(c)
	if !ok {
		return
	}
	ts := tenantStoreFor(restaurant.ID)
	categories := ts.Categories()
	c.JSON(http.StatusOK, gin.H{"count": len(categories), "categories": categories})
}

// GetPublicSettings returns the tenant's display settings (public)
func GetPublicSettings(c *gin.Context) {
	restaurant, ok := resolveTenant(c)
	if !ok {
		return
	}
	ts := tenantStoreFor(restaurant.ID)
	c.JSON(http.StatusOK, gin.H{"settings": ts.Settings()})
}

type PlaceOrderRequest struct {
	CustomerName  string           `json:"customerName" binding:"required"`
	CustomerPhone string           `json:"customerPhone" binding:"required"`
	OrderType     models.OrderType `json:"orderType" binding:"required,oneof=dine-in takeaway"`
	TableNumber   string           `json:"tableNumber"`
	Notes         string           `json:"notes"`
	Items         []struct {
		ID       string  `json:"id" binding:"required"`
		Name     string  `json:"name" binding:"required"`
		Quantity int     `json:"quantity" binding:"required,min=1"`
		Price    float64 `json:"price" binding:"required,gt=0"`
	} `json:"items" binding:"required,min=1"`
}

// PlaceOrder creates a new order for the tenant. Status and createdAt are
// stamped server-side; the caller cannot supply either.
func PlaceOrder(c *gin.Context) {
	restaurant, ok := resolveTenant(c)
	if !ok {
		return
	}
	if !restaurant.IsOpen {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Restaurant is currently closed"})
		return
	}

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var items []models.OrderItem
	var total float64
	for _, reqItem := range req.Items {
		total += reqItem.Price * float64(reqItem.Quantity)
		items = append(items, models.OrderItem{
			ID:       reqItem.ID,
			Name:     reqItem.Name,
			Quantity: reqItem.Quantity,
			Price:    reqItem.Price,
		})
	}

	ts := tenantStoreFor(restaurant.ID)
	id, err := ts.AddOrder(models.Order{
		Items:         items,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		OrderType:     req.OrderType,
		TableNumber:   req.TableNumber,
		Notes:         req.Notes,
		Total:         total,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"id":      id,
		"total":   total,
	})
}

type CreateReservationRequest struct {
	CustomerName   string `json:"customerName" binding:"required"`
	CustomerPhone  string `json:"customerPhone" binding:"required"`
	Date           string `json:"date" binding:"required"`
	Time           string `json:"time" binding:"required"`
	NumberOfPeople int    `json:"numberOfPeople" binding:"required,min=1"`
}

// CreateReservation books a table. Every reservation starts pending.
func CreateReservation(c *gin.Context) {
	restaurant, ok := resolveTenant(c)
	if !ok {
		return
	}

	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ts := tenantStoreFor(restaurant.ID)
	id, err := ts.AddReservation(models.Reservation{
		CustomerName:   req.CustomerName,
		CustomerPhone:  req.CustomerPhone,
		Date:           req.Date,
		Time:           req.Time,
		NumberOfPeople: req.NumberOfPeople,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reservation"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Reservation requested", "id": id})
}

type CreateFeedbackRequest struct {
	Rating       int    `json:"rating" binding:"required,min=1,max=5"`
	Comment      string `json:"comment" binding:"required"`
	CustomerName string `json:"customerName"`
}

// CreateFeedback records customer feedback. Append-only: there is no way
// to edit or remove it afterwards.
func CreateFeedback(c *gin.Context) {
	restaurant, ok := resolveTenant(c)
	if !ok {
		return
	}

	var req CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ts := tenantStoreFor(restaurant.ID)
	id, err := ts.AddFeedback(models.Feedback{
		Rating:       req.Rating,
		Comment:      req.Comment,
		CustomerName: req.CustomerName,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit feedback"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Thanks for your feedback", "id": id})
}

// ListFeedback returns the tenant's feedback wall (public)
func ListFeedback(c *gin.Context) {
	restaurant, ok := resolveTenant(c)
	if !ok {
		return
	}
	ts := tenantStoreFor(restaurant.ID)
	feedbacks := ts.Feedbacks()
	c.JSON(http.StatusOK, gin.H{"count": len(feedbacks), "feedbacks": feedbacks})
}
