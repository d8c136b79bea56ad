package models

// ReservationStatus represents all possible states of a table reservation
type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

type Reservation struct {
	ID             string            `json:"id"`
	CustomerName   string            `json:"customerName"`
	CustomerPhone  string            `json:"customerPhone"`
	Date           string            `json:"date"`
	Time           string            `json:"time"`
	NumberOfPeople int               `json:"numberOfPeople"`
	Status         ReservationStatus `json:"status"`
	CreatedAt      string            `json:"createdAt"`
}

// Feedback is append-only: customers leave it, nobody edits it.
type Feedback struct {
	ID           string `json:"id"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
	CustomerName string `json:"customerName,omitempty"`
	CreatedAt    string `json:"createdAt"`
}
