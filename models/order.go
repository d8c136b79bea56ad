package models

// OrderStatus represents the kitchen-side lifecycle of a dine-in or
// takeaway order
type OrderStatus string

const (
	OrderStatusNew       OrderStatus = "new"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusCompleted OrderStatus = "completed"
)

// OrderType distinguishes how the customer receives the order
type OrderType string

const (
	OrderTypeDineIn   OrderType = "dine-in"
	OrderTypeTakeaway OrderType = "takeaway"
)

type Order struct {
	ID            string      `json:"id"`
	Items         []OrderItem `json:"items"`
	CustomerName  string      `json:"customerName"`
	CustomerPhone string      `json:"customerPhone"`
	OrderType     OrderType   `json:"orderType"`
	TableNumber   string      `json:"tableNumber,omitempty"`
	Notes         string      `json:"notes,omitempty"`
	Total         float64     `json:"total"`
	Status        OrderStatus `json:"status"`
	CreatedAt     string      `json:"createdAt"`
}

type OrderItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"` // snapshot name at time of order
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"` // snapshot price at time of order
}
