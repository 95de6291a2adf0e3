package repository

import (
	"context"

	"github.com/haresh-sai06/Art-Webpage/models"
)

// ArtworkRepository defines catalog data access. The interface uses plain Go
// types (no mongo-driver types) so tests and future adapters can swap the
// backing store.
type ArtworkRepository interface {
	// Find returns artworks matching every supplied filter field, in
	// insertion order. A zero filter returns the whole catalog.
	Find(ctx context.Context, filter models.ArtworkFilter) ([]models.Artwork, error)
	// FindByID returns ErrNotFound when no artwork has the given id.
	FindByID(ctx context.Context, id string) (*models.Artwork, error)
	// FindFeatured returns up to limit available artworks in store order.
	FindFeatured(ctx context.Context, limit int) ([]models.Artwork, error)
	// SeedIfEmpty inserts the given artworks only when the collection
	// holds no documents.
	SeedIfEmpty(ctx context.Context, artworks []models.Artwork) error
}

// OrderRepository defines order data access.
type OrderRepository interface {
	Insert(ctx context.Context, order *models.Order) error
	// FindByID returns ErrNotFound when no order has the given id.
	FindByID(ctx context.Context, id string) (*models.Order, error)
	FindAll(ctx context.Context) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
