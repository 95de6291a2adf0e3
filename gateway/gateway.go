package gateway

import "context"

// LineItem is one payable position of a checkout session. UnitAmount is in
// minor currency units (cents).
type LineItem struct {
	Name        string
	Description string
	ImageURL    string
	UnitAmount  int64
	Quantity    int64
}

// CreateSessionParams carries everything the provider needs to open a
// checkout session.
type CreateSessionParams struct {
	LineItems  []LineItem
	SuccessURL string
	CancelURL  string
	Metadata   map[string]string
}

// Session is the provider's handle for one checkout attempt.
type Session struct {
	ID  string `json:"session_id"`
	URL string `json:"session_url"`
}

// SessionStatus reports the lifecycle and payment state of a session, e.g.
// status "complete" with payment_status "paid".
type SessionStatus struct {
	ID            string `json:"session_id"`
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
}

// PaymentStatusPaid is the provider's terminal paid state.
const PaymentStatusPaid = "paid"

// CheckoutGateway defines the payment provider integration. The provider is
// treated as the source of truth for payment state; this service never
// verifies payment through another channel.
type CheckoutGateway interface {
	CreateSession(ctx context.Context, params CreateSessionParams) (*Session, error)
	GetSessionStatus(ctx context.Context, sessionID string) (*SessionStatus, error)
}
