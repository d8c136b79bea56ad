package tenantstore

import (
	"log"

	"restaurant-saas-api/models"
)

// Every mutation is a pass-through to the data layer scoped to the active
// tenant. Failures are logged and returned: callers get a real error value
// instead of having to infer failure from a subscription that never fires.

func (s *Store) AddMenuItem(item models.MenuItem) (string, error) {
	id, err := s.svc.AddMenuItem(s.tenantID, item)
	if err != nil {
		log.Printf("tenant %s: add menu item: %v", s.tenantID, err)
	}
	return id, err
}

func (s *Store) UpdateMenuItem(id string, partial map[string]interface{}) error {
	err := s.svc.UpdateMenuItem(s.tenantID, id, partial)
	if err != nil {
		log.Printf("tenant %s: update menu item %s: %v", s.tenantID, id, err)
	}
	return err
}

func (s *Store) DeleteMenuItem(id string) error {
	err := s.svc.DeleteMenuItem(s.tenantID, id)
	if err != nil {
		log.Printf("tenant %s: delete menu item %s: %v", s.tenantID, id, err)
	}
	return err
}

func (s *Store) AddCategory(category models.Category) (string, error) {
	id, err := s.svc.AddCategory(s.tenantID, category)
	if err != nil {
		log.Printf("tenant %s: add category: %v", s.tenantID, err)
	}
	return id, err
}

func (s *Store) UpdateCategory(id string, partial map[string]interface{}) error {
	err := s.svc.UpdateCategory(s.tenantID, id, partial)
	if err != nil {
		log.Printf("tenant %s: update category %s: %v", s.tenantID, id, err)
	}
	return err
}

func (s *Store) DeleteCategory(id string) error {
	err := s.svc.DeleteCategory(s.tenantID, id)
	if err != nil {
		log.Printf("tenant %s: delete category %s: %v", s.tenantID, id, err)
	}
	return err
}

func (s *Store) AddOrder(order models.Order) (string, error) {
	id, err := s.svc.AddOrder(s.tenantID, order)
	if err != nil {
		log.Printf("tenant %s: add order: %v", s.tenantID, err)
	}
	return id, err
}

func (s *Store) UpdateOrderStatus(id string, status models.OrderStatus) error {
	err := s.svc.UpdateOrderStatus(s.tenantID, id, status)
	if err != nil {
		log.Printf("tenant %s: update order %s status: %v", s.tenantID, id, err)
	}
	return err
}

func (s *Store) AddReservation(reservation models.Reservation) (string, error) {
	id, err := s.svc.AddReservation(s.tenantID, reservation)
	if err != nil {
		log.Printf("tenant %s: add reservation: %v", s.tenantID, err)
	}
	return id, err
}

func (s *Store) UpdateReservationStatus(id string, status models.ReservationStatus) error {
	err := s.svc.UpdateReservationStatus(s.tenantID, id, status)
	if err != nil {
		log.Printf("tenant %s: update reservation %s status: %v", s.tenantID, id, err)
	}
	return err
}

func (s *Store) AddFeedback(feedback models.Feedback) (string, error) {
	id, err := s.svc.AddFeedback(s.tenantID, feedback)
	if err != nil {
		log.Printf("tenant %s: add feedback: %v", s.tenantID, err)
	}
	return id, err
}

func (s *Store) UpdateSettings(partial map[string]interface{}) error {
	err := s.svc.UpdateSettings(s.tenantID, partial)
	if err != nil {
		log.Printf("tenant %s: update settings: %v", s.tenantID, err)
	}
	return err
}
