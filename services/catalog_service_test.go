package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/haresh-sai06/Art-Webpage/models"
	"github.com/haresh-sai06/Art-Webpage/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCatalogFixture() (*fakeArtworkRepo, services.CatalogService) {
	repo := &fakeArtworkRepo{artworks: models.SampleArtworks()}
	return repo, services.NewCatalogService(repo, zap.NewNop())
}

func TestListArtworks_FilterCombinations(t *testing.T) {
	_, svc := newCatalogFixture()

	cases := []struct {
		name   string
		filter models.ArtworkFilter
	}{
		{"no filter", models.ArtworkFilter{}},
		{"category only", models.ArtworkFilter{Category: "abstract"}},
		{"availability only", models.ArtworkFilter{Availability: models.AvailabilityAvailable}},
		{"both", models.ArtworkFilter{Category: "landscape", Availability: models.AvailabilityAvailable}},
		{"no match", models.ArtworkFilter{Category: "sculpture"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			artworks, svcErr := svc.ListArtworks(context.Background(), tc.filter)
			require.Nil(t, svcErr)
			for _, a := range artworks {
				if tc.filter.Category != "" {
					assert.Equal(t, tc.filter.Category, a.Category)
				}
				if tc.filter.Availability != "" {
					assert.Equal(t, tc.filter.Availability, a.Availability)
				}
			}
		})
	}
}

func TestListArtworks_NoFilterReturnsWholeCatalog(t *testing.T) {
	repo, svc := newCatalogFixture()

	artworks, svcErr := svc.ListArtworks(context.Background(), models.ArtworkFilter{})
	require.Nil(t, svcErr)
	assert.Len(t, artworks, len(repo.artworks))
}

func TestGetArtwork_ByID(t *testing.T) {
	repo, svc := newCatalogFixture()
	want := repo.artworks[0]

	got, svcErr := svc.GetArtwork(context.Background(), want.ID)
	require.Nil(t, svcErr)
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Title, got.Title)
}

func TestGetArtwork_NotFound(t *testing.T) {
	_, svc := newCatalogFixture()

	got, svcErr := svc.GetArtwork(context.Background(), uuid.NewString())
	require.NotNil(t, svcErr)
	assert.Nil(t, got)
	assert.Equal(t, 404, svcErr.StatusCode)
}

func TestFeaturedArtworks_CapAndAvailability(t *testing.T) {
	repo := &fakeArtworkRepo{artworks: []models.Artwork{
		{ID: uuid.NewString(), Title: "One", Availability: models.AvailabilitySold},
		{ID: uuid.NewString(), Title: "Two", Availability: models.AvailabilityAvailable},
		{ID: uuid.NewString(), Title: "Three", Availability: models.AvailabilityAvailable},
		{ID: uuid.NewString(), Title: "Four", Availability: models.AvailabilityAvailable},
		{ID: uuid.NewString(), Title: "Five", Availability: models.AvailabilityAvailable},
	}}
	svc := services.NewCatalogService(repo, zap.NewNop())

	featured, svcErr := svc.FeaturedArtworks(context.Background())
	require.Nil(t, svcErr)
	assert.LessOrEqual(t, len(featured), 3)
	for _, a := range featured {
		assert.Equal(t, models.AvailabilityAvailable, a.Availability)
	}
	// First three available pieces in store order, not curated
	assert.Equal(t, "Two", featured[0].Title)
	assert.Equal(t, "Three", featured[1].Title)
	assert.Equal(t, "Four", featured[2].Title)
}

func TestValidateCartItem(t *testing.T) {
	repo, svc := newCatalogFixture()

	svcErr := svc.ValidateCartItem(context.Background(), models.CartItem{ArtworkID: repo.artworks[0].ID, Quantity: 1})
	assert.Nil(t, svcErr)

	svcErr = svc.ValidateCartItem(context.Background(), models.CartItem{ArtworkID: uuid.NewString(), Quantity: 1})
	require.NotNil(t, svcErr)
	assert.Equal(t, 404, svcErr.StatusCode)
}
