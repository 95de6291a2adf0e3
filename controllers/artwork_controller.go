package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/haresh-sai06/Art-Webpage/models"
	"github.com/haresh-sai06/Art-Webpage/services"
)

// ArtworkController handles catalog browsing and cart validation.
type ArtworkController struct {
	catalogService services.CatalogService
}

// NewArtworkController creates a new ArtworkController.
func NewArtworkController(svc services.CatalogService) *ArtworkController {
	return &ArtworkController{catalogService: svc}
}

// GetArtworks handles GET /api/artworks?category=&availability=
func (ac *ArtworkController) GetArtworks(ctx *gin.Context) {
	filter := models.ArtworkFilter{
		Category:     ctx.Query("category"),
		Availability: ctx.Query("availability"),
	}

	artworks, svcErr := ac.catalogService.ListArtworks(ctx.Request.Context(), filter)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	if artworks == nil {
		artworks = []models.Artwork{}
	}
	ctx.JSON(http.StatusOK, artworks)
}

// GetArtworkByID handles GET /api/artworks/:id
func (ac *ArtworkController) GetArtworkByID(ctx *gin.Context) {
	artwork, svcErr := ac.catalogService.GetArtwork(ctx.Request.Context(), ctx.Param("id"))
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, artwork)
}

// GetFeaturedArtworks handles GET /api/featured-artworks
func (ac *ArtworkController) GetFeaturedArtworks(ctx *gin.Context) {
	artworks, svcErr := ac.catalogService.FeaturedArtworks(ctx.Request.Context())
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	if artworks == nil {
		artworks = []models.Artwork{}
	}
	ctx.JSON(http.StatusOK, artworks)
}

// AddToCart handles POST /api/cart/add. It only validates that the artwork
// exists; the cart itself stays on the client until checkout.
func (ac *ArtworkController) AddToCart(ctx *gin.Context) {
	var item models.CartItem
	if err := ctx.ShouldBindJSON(&item); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	if svcErr := ac.catalogService.ValidateCartItem(ctx.Request.Context(), item); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Item added to cart", "item": item})
}
