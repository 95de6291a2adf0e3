package services_test

import (
	"context"
	"errors"

	"github.com/haresh-sai06/Art-Webpage/gateway"
	"github.com/haresh-sai06/Art-Webpage/models"
	"github.com/haresh-sai06/Art-Webpage/repository"
)

// ---- in-memory artwork repository ----

type fakeArtworkRepo struct {
	artworks []models.Artwork
	findErr  error
}

func (f *fakeArtworkRepo) Find(ctx context.Context, filter models.ArtworkFilter) ([]models.Artwork, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	var out []models.Artwork
	for _, a := range f.artworks {
		if filter.Category != "" && a.Category != filter.Category {
			continue
		}
		if filter.Availability != "" && a.Availability != filter.Availability {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeArtworkRepo) FindByID(ctx context.Context, id string) (*models.Artwork, error) {
	for i := range f.artworks {
		if f.artworks[i].ID == id {
			return &f.artworks[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeArtworkRepo) FindFeatured(ctx context.Context, limit int) ([]models.Artwork, error) {
	var out []models.Artwork
	for _, a := range f.artworks {
		if a.Availability != models.AvailabilityAvailable {
			continue
		}
		out = append(out, a)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeArtworkRepo) SeedIfEmpty(ctx context.Context, artworks []models.Artwork) error {
	if len(f.artworks) == 0 {
		f.artworks = append(f.artworks, artworks...)
	}
	return nil
}

// ---- in-memory order repository ----

type fakeOrderRepo struct {
	orders    []models.Order
	insertErr error
}

func (f *fakeOrderRepo) Insert(ctx context.Context, order *models.Order) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.orders = append(f.orders, *order)
	return nil
}

func (f *fakeOrderRepo) FindByID(ctx context.Context, id string) (*models.Order, error) {
	for i := range f.orders {
		if f.orders[i].ID == id {
			order := f.orders[i]
			return &order, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeOrderRepo) FindAll(ctx context.Context) ([]models.Order, error) {
	return append([]models.Order(nil), f.orders...), nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, id, status string) error {
	for i := range f.orders {
		if f.orders[i].ID == id {
			f.orders[i].Status = status
			return nil
		}
	}
	return repository.ErrNotFound
}

// ---- fake checkout gateway ----

type fakeGateway struct {
	createErr     error
	statusErr     error
	paymentStatus string

	createCalls  int
	lastParams   gateway.CreateSessionParams
	lastStatusID string
}

func (f *fakeGateway) CreateSession(ctx context.Context, params gateway.CreateSessionParams) (*gateway.Session, error) {
	f.createCalls++
	f.lastParams = params
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &gateway.Session{ID: "cs_test_123", URL: "https://checkout.example.com/cs_test_123"}, nil
}

func (f *fakeGateway) GetSessionStatus(ctx context.Context, sessionID string) (*gateway.SessionStatus, error) {
	f.lastStatusID = sessionID
	if f.statusErr != nil {
		return nil, f.statusErr
	}
	status := "open"
	if f.paymentStatus == gateway.PaymentStatusPaid {
		status = "complete"
	}
	return &gateway.SessionStatus{ID: sessionID, Status: status, PaymentStatus: f.paymentStatus}, nil
}

var errBoom = errors.New("boom")
