package tenantstore

import "restaurant-saas-api/models"

// Readers get snapshots, never the live slices, so a concurrent
// subscription update cannot mutate data a caller is iterating.

func (s *Store) MenuItems() []models.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.MenuItem(nil), s.menuItems...)
}

func (s *Store) Categories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Category(nil), s.categories...)
}

func (s *Store) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Order(nil), s.orders...)
}

func (s *Store) Reservations() []models.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Reservation(nil), s.reservations...)
}

func (s *Store) Feedbacks() []models.Feedback {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Feedback(nil), s.feedbacks...)
}

func (s *Store) Settings() models.RestaurantSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}
