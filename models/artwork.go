package models

// Availability values for an artwork.
const (
	AvailabilityAvailable = "available"
	AvailabilitySold      = "sold"
)

// Artwork is a catalog piece. Records are seeded at startup and never
// updated through the API.
type Artwork struct {
	ID           string  `json:"id" bson:"_id"`
	Title        string  `json:"title" bson:"title"`
	Price        float64 `json:"price" bson:"price"`
	Medium       string  `json:"medium" bson:"medium"`
	Size         string  `json:"size" bson:"size"`
	YearCreated  int     `json:"year_created" bson:"year_created"`
	Description  string  `json:"description" bson:"description"`
	ImageURL     string  `json:"image_url" bson:"image_url"`
	Category     string  `json:"category" bson:"category"`
	Availability string  `json:"availability" bson:"availability"`
}

// ArtworkFilter holds the optional equality filters for catalog listing.
// Empty fields mean no restriction.
type ArtworkFilter struct {
	Category     string
	Availability string
}

// CartItem is a client-submitted (artwork, quantity) pair. Carts are never
// persisted; items are validated per request and embedded into orders.
type CartItem struct {
	ArtworkID string `json:"artwork_id" bson:"artwork_id" binding:"required"`
	Quantity  int    `json:"quantity" bson:"quantity" binding:"required,min=1"`
}

// CheckoutRequest is the body of POST /api/checkout/create-session.
type CheckoutRequest struct {
	Items         []CartItem `json:"items" binding:"required,min=1,dive"`
	CustomerEmail string     `json:"customer_email" binding:"omitempty,email"`
}
