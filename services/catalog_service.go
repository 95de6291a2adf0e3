package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/haresh-sai06/Art-Webpage/models"
	"github.com/haresh-sai06/Art-Webpage/repository"
	"go.uber.org/zap"
)

// ServiceError is a typed error with an HTTP status code.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string { return e.Message }

// featuredLimit caps the homepage selection.
const featuredLimit = 3

// CatalogService exposes artwork browsing and cart-item validation.
type CatalogService interface {
	ListArtworks(ctx context.Context, filter models.ArtworkFilter) ([]models.Artwork, *ServiceError)
	GetArtwork(ctx context.Context, id string) (*models.Artwork, *ServiceError)
	FeaturedArtworks(ctx context.Context) ([]models.Artwork, *ServiceError)
	ValidateCartItem(ctx context.Context, item models.CartItem) *ServiceError
}

type catalogServiceImpl struct {
	artworks repository.ArtworkRepository
	logger   *zap.Logger
}

func NewCatalogService(artworks repository.ArtworkRepository, logger *zap.Logger) CatalogService {
	return &catalogServiceImpl{artworks: artworks, logger: logger}
}

func (s *catalogServiceImpl) ListArtworks(ctx context.Context, filter models.ArtworkFilter) ([]models.Artwork, *ServiceError) {
	artworks, err := s.artworks.Find(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to list artworks", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to fetch artworks"}
	}
	return artworks, nil
}

func (s *catalogServiceImpl) GetArtwork(ctx context.Context, id string) (*models.Artwork, *ServiceError) {
	artwork, err := s.artworks.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &ServiceError{StatusCode: http.StatusNotFound, Message: "Artwork not found"}
		}
		s.logger.Error("Failed to fetch artwork", zap.String("artwork_id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to fetch artwork"}
	}
	return artwork, nil
}

func (s *catalogServiceImpl) FeaturedArtworks(ctx context.Context) ([]models.Artwork, *ServiceError) {
	artworks, err := s.artworks.FindFeatured(ctx, featuredLimit)
	if err != nil {
		s.logger.Error("Failed to list featured artworks", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to fetch featured artworks"}
	}
	return artworks, nil
}

// ValidateCartItem confirms the referenced artwork exists. This is the whole
// add-to-cart behavior; carts live on the client until checkout.
func (s *catalogServiceImpl) ValidateCartItem(ctx context.Context, item models.CartItem) *ServiceError {
	_, err := s.artworks.FindByID(ctx, item.ArtworkID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &ServiceError{StatusCode: http.StatusNotFound, Message: "Artwork not found"}
		}
		s.logger.Error("Failed to validate cart item", zap.String("artwork_id", item.ArtworkID), zap.Error(err))
		return &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to validate cart item"}
	}
	return nil
}
