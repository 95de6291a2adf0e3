package models

// Order status lifecycle. Only the pending -> paid transition is driven by
// this service; shipped/completed are reserved for fulfilment tooling.
const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusShipped   = "shipped"
	OrderStatusCompleted = "completed"
)

// GuestEmail is recorded when a checkout carries no customer email.
const GuestEmail = "guest@example.com"

// Order is a persisted record of a checkout attempt. TotalAmount is always
// computed server-side from catalog prices, never taken from the client.
type Order struct {
	ID               string     `json:"id" bson:"_id"`
	Items            []CartItem `json:"items" bson:"items"`
	TotalAmount      float64    `json:"total_amount" bson:"total_amount"`
	CustomerEmail    string     `json:"customer_email" bson:"customer_email"`
	Status           string     `json:"status" bson:"status"`
	PaymentSessionID string     `json:"payment_session_id,omitempty" bson:"payment_session_id,omitempty"`
}
