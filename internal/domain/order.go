package domain

import "time"

// OrderStatusPlaced is the only status this service ever writes;
// orders are write-once and never read back.
const OrderStatusPlaced = "placed"

type Order struct {
	User          string     `json:"user"`
	Items         []CartLine `json:"items"`
	TotalAmount   float64    `json:"totalAmount"`
	PaymentMethod string     `json:"paymentMethod"`
	OrderDate     time.Time  `json:"orderDate"`
	Status        string     `json:"status"`
}
