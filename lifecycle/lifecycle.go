// Package lifecycle defines the valid status transitions for orders and
// reservations. Admin handlers consult it before patching a status so a
// completed order can never drift back to the kitchen.
package lifecycle

import (
	"errors"

	"restaurant-saas-api/models"
)

// validOrderTransitions is the authoritative order lifecycle definition
var validOrderTransitions = map[models.OrderStatus][]models.OrderStatus{
	models.OrderStatusNew:       {models.OrderStatusPreparing, models.OrderStatusCompleted},
	models.OrderStatusPreparing: {models.OrderStatusCompleted},
	models.OrderStatusCompleted: {},
}

// validReservationTransitions is the authoritative reservation lifecycle definition
var validReservationTransitions = map[models.ReservationStatus][]models.ReservationStatus{
	models.ReservationStatusPending:   {models.ReservationStatusConfirmed, models.ReservationStatusCancelled},
	models.ReservationStatusConfirmed: {models.ReservationStatusCancelled},
	models.ReservationStatusCancelled: {},
}

// ValidOrderStatus reports whether s names a known order status.
func ValidOrderStatus(s models.OrderStatus) bool {
	_, ok := validOrderTransitions[s]
	return ok
}

// ValidReservationStatus reports whether s names a known reservation status.
func ValidReservationStatus(s models.ReservationStatus) bool {
	_, ok := validReservationTransitions[s]
	return ok
}

// CanTransitionOrder checks whether an order may move from one status to another
func CanTransitionOrder(from, to models.OrderStatus) error {
	for _, next := range validOrderTransitions[from] {
		if next == to {
			return nil
		}
	}
	return errors.New(
		"invalid transition: " + string(from) + " -> " + string(to) +
			". Valid next statuses from " + string(from) + " are: " + describeOrderNext(from),
	)
}

// CanTransitionReservation checks whether a reservation may move from one status to another
func CanTransitionReservation(from, to models.ReservationStatus) error {
	for _, next := range validReservationTransitions[from] {
		if next == to {
			return nil
		}
	}
	return errors.New(
		"invalid transition: " + string(from) + " -> " + string(to) +
			". Valid next statuses from " + string(from) + " are: " + describeReservationNext(from),
	)
}

func describeOrderNext(from models.OrderStatus) string {
	nexts := validOrderTransitions[from]
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

func describeReservationNext(from models.ReservationStatus) string {
	nexts := validReservationTransitions[from]
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}
