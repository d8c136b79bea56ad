package handlers

import (
	"io"
	"net/http"

	"restaurant-saas-api/models"

	"github.com/gin-gonic/gin"
)

// Server-sent events: each message carries the full current state of one
// collection, the same wholesale snapshots the subscription layer delivers
// internally. Clients re-render from the latest message; there are no diffs.

type event struct {
	name    string
	payload interface{}
}

// TenantEvents streams live snapshots of every collection of one tenant.
// The first six messages are the current state; after that, one message per
// change. The stream ends when the client disconnects, which releases all
// six listeners.
func TenantEvents(c *gin.Context) {
	restaurant, ok := resolveTenant(c)
	if !ok {
		return
	}
	tenantID := restaurant.ID

	events := make(chan event, 64)
	send := func(name string, payload interface{}) {
		select {
		case events <- event{name: name, payload: payload}:
		default:
			// client is too far behind; the next change resends full state anyway
		}
	}

	var unsubs []func()
	cleanup := func() {
		for _, unsub := range unsubs {
			unsub()
		}
	}

	subscribeAll := func() error {
		unsub, err := svc.SubscribeMenuItems(tenantID, func(items []models.MenuItem) {
			send("menuItems", items)
		})
		if err != nil {
			return err
		}
		unsubs = append(unsubs, unsub)

		unsub, err = svc.SubscribeCategories(tenantID, func(categories []models.Category) {
			send("categories", categories)
		})
		if err != nil {
			return err
		}
		unsubs = append(unsubs, unsub)

		unsub, err = svc.SubscribeOrders(tenantID, func(orders []models.Order) {
			send("orders", orders)
		})
		if err != nil {
			return err
		}
		unsubs = append(unsubs, unsub)

		unsub, err = svc.SubscribeReservations(tenantID, func(reservations []models.Reservation) {
			send("reservations", reservations)
		})
		if err != nil {
			return err
		}
		unsubs = append(unsubs, unsub)

		unsub, err = svc.SubscribeFeedbacks(tenantID, func(feedbacks []models.Feedback) {
			send("feedbacks", feedbacks)
		})
		if err != nil {
			return err
		}
		unsubs = append(unsubs, unsub)

		unsub, err = svc.SubscribeSettings(tenantID, func(settings *models.RestaurantSettings) {
			send("settings", settings)
		})
		if err != nil {
			return err
		}
		unsubs = append(unsubs, unsub)
		return nil
	}

	if err := subscribeAll(); err != nil {
		cleanup()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open event stream"})
		return
	}
	defer cleanup()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Stream(func(w io.Writer) bool {
		select {
		case ev := <-events:
			c.SSEvent(ev.name, ev.payload)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

// PlatformEvents streams the tenant set for the operator dashboard.
func PlatformEvents(c *gin.Context) {
	events := make(chan event, 16)
	unsub, err := reg.SubscribeAll(func(restaurants []models.Restaurant) {
		select {
		case events <- event{name: "restaurants", payload: restaurants}:
		default:
		}
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open event stream"})
		return
	}
	defer unsub()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Stream(func(w io.Writer) bool {
		select {
		case ev := <-events:
			c.SSEvent(ev.name, ev.payload)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
