package data

import (
	"log"
	"time"

	"restaurant-saas-api/docstore"
	"restaurant-saas-api/models"
)

// Reservations returns every reservation of the tenant.
func (s *Service) Reservations(tenantID string) ([]models.Reservation, error) {
	docs, err := s.store.List(docstore.TenantPath(tenantID, docstore.CollectionReservations))
	if err != nil {
		return nil, err
	}
	return decodeReservations(docs)
}

// AddReservation inserts a new reservation. createdAt is stamped here and
// every reservation starts out pending, whatever the caller supplied.
func (s *Service) AddReservation(tenantID string, reservation models.Reservation) (string, error) {
	reservation.CreatedAt = time.Now().Format(time.RFC3339)
	reservation.Status = models.ReservationStatusPending
	body, err := docBody(reservation)
	if err != nil {
		return "", err
	}
	return s.store.Create(docstore.TenantPath(tenantID, docstore.CollectionReservations), body)
}

// Reservation returns one reservation, or docstore.ErrNotFound.
func (s *Service) Reservation(tenantID, id string) (models.Reservation, error) {
	doc, err := s.store.Get(docstore.TenantPath(tenantID, docstore.CollectionReservations), id)
	if err != nil {
		return models.Reservation{}, err
	}
	var reservation models.Reservation
	if err := decodeDoc(doc, &reservation); err != nil {
		return models.Reservation{}, err
	}
	return reservation, nil
}

// UpdateReservationStatus patches only the status field.
func (s *Service) UpdateReservationStatus(tenantID, id string, status models.ReservationStatus) error {
	return s.store.Patch(docstore.TenantPath(tenantID, docstore.CollectionReservations), id, map[string]interface{}{
		"status": string(status),
	})
}

// SubscribeReservations delivers the full reservation list on every change.
func (s *Service) SubscribeReservations(tenantID string, fn func([]models.Reservation)) (func(), error) {
	return s.store.Subscribe(docstore.TenantPath(tenantID, docstore.CollectionReservations), func(docs []docstore.Document) {
		reservations, err := decodeReservations(docs)
		if err != nil {
			log.Printf("reservation snapshot for tenant %s: %v", tenantID, err)
			return
		}
		fn(reservations)
	})
}

func decodeReservations(docs []docstore.Document) ([]models.Reservation, error) {
	reservations := make([]models.Reservation, 0, len(docs))
	for _, doc := range docs {
		var reservation models.Reservation
		if err := decodeDoc(doc, &reservation); err != nil {
			return nil, err
		}
		reservations = append(reservations, reservation)
	}
	return reservations, nil
}
