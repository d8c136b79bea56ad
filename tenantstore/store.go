// Package tenantstore owns the live, in-memory view of one tenant's data
// for as long as that tenant context is mounted. It provisions defaults on
// first use, keeps six subscriptions open, and tears them down on Close.
package tenantstore

import (
	"log"
	"sync"

	"restaurant-saas-api/data"
	"restaurant-saas-api/models"
)

// Store is the reactive state of a single tenant. All reads return copies;
// subscription callbacks replace each collection wholesale.
type Store struct {
	svc      *data.Service
	tenantID string

	mu           sync.RWMutex
	menuItems    []models.MenuItem
	categories   []models.Category
	orders       []models.Order
	reservations []models.Reservation
	feedbacks    []models.Feedback
	settings     models.RestaurantSettings
	loaded       bool

	unsubs    []func()
	closeOnce sync.Once
}

// Activate builds the store for tenantID: provisions settings if absent,
// opens the live subscriptions, and seeds the default catalog when the
// tenant has no menu or categories yet. It never blocks the caller on a
// failure; if provisioning breaks, the store falls back to the built-in
// defaults and reports loaded anyway.
func Activate(svc *data.Service, tenantID string) *Store {
	s := &Store{
		svc:      svc,
		tenantID: tenantID,
		settings: models.DefaultSettings,
	}

	if err := s.initialize(); err != nil {
		log.Printf("tenant %s: initialization failed, serving built-in defaults: %v", tenantID, err)
		s.mu.Lock()
		s.menuItems = append([]models.MenuItem(nil), models.DefaultMenuItems...)
		s.categories = append([]models.Category(nil), models.DefaultCategories...)
		s.settings = models.DefaultSettings
		s.loaded = true
		s.mu.Unlock()
		return s
	}

	s.mu.Lock()
	s.loaded = true
	s.mu.Unlock()
	return s
}

func (s *Store) initialize() error {
	// One-time provisioning guard: only write defaults when no settings
	// document exists, so admin edits survive every later activation.
	settings, err := s.svc.Settings(s.tenantID)
	if err != nil {
		return err
	}
	if settings == nil {
		if err := s.svc.InitializeSettings(s.tenantID, models.DefaultSettings); err != nil {
			return err
		}
	}

	if err := s.openSubscriptions(); err != nil {
		return err
	}

	// Seed the default catalog per empty collection. Orders, reservations
	// and feedback legitimately start empty and are never seeded.
	items, err := s.svc.MenuItems(s.tenantID)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		for _, item := range models.DefaultMenuItems {
			if _, err := s.svc.AddMenuItem(s.tenantID, item); err != nil {
				return err
			}
		}
	}

	categories, err := s.svc.Categories(s.tenantID)
	if err != nil {
		return err
	}
	if len(categories) == 0 {
		for _, category := range models.DefaultCategories {
			if _, err := s.svc.AddCategory(s.tenantID, category); err != nil {
				return err
			}
		}
	}

	return nil
}

func (s *Store) openSubscriptions() error {
	unsubMenu, err := s.svc.SubscribeMenuItems(s.tenantID, func(items []models.MenuItem) {
		s.mu.Lock()
		s.menuItems = items
		s.mu.Unlock()
	})
	if err != nil {
		return err
	}
	s.unsubs = append(s.unsubs, unsubMenu)

	unsubCategories, err := s.svc.SubscribeCategories(s.tenantID, func(categories []models.Category) {
		s.mu.Lock()
		s.categories = categories
		s.mu.Unlock()
	})
	if err != nil {
		return err
	}
	s.unsubs = append(s.unsubs, unsubCategories)

	unsubOrders, err := s.svc.SubscribeOrders(s.tenantID, func(orders []models.Order) {
		s.mu.Lock()
		s.orders = orders
		s.mu.Unlock()
	})
	if err != nil {
		return err
	}
	s.unsubs = append(s.unsubs, unsubOrders)

	unsubReservations, err := s.svc.SubscribeReservations(s.tenantID, func(reservations []models.Reservation) {
		s.mu.Lock()
		s.reservations = reservations
		s.mu.Unlock()
	})
	if err != nil {
		return err
	}
	s.unsubs = append(s.unsubs, unsubReservations)

	unsubFeedbacks, err := s.svc.SubscribeFeedbacks(s.tenantID, func(feedbacks []models.Feedback) {
		s.mu.Lock()
		s.feedbacks = feedbacks
		s.mu.Unlock()
	})
	if err != nil {
		return err
	}
	s.unsubs = append(s.unsubs, unsubFeedbacks)

	unsubSettings, err := s.svc.SubscribeSettings(s.tenantID, func(settings *models.RestaurantSettings) {
		if settings == nil {
			return
		}
		s.mu.Lock()
		s.settings = *settings
		s.mu.Unlock()
	})
	if err != nil {
		return err
	}
	s.unsubs = append(s.unsubs, unsubSettings)

	return nil
}

// Close releases every open subscription. Safe to call more than once.
func (s *Store) Close() {
	s.closeOnce.Do(func() {
		for _, unsub := range s.unsubs {
			unsub()
		}
		s.unsubs = nil
	})
}

// TenantID returns the tenant this store is bound to.
func (s *Store) TenantID() string { return s.tenantID }

// Loaded reports whether activation finished, successfully or by fallback.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}
