package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/haresh-sai06/Art-Webpage/controllers"
)

// RegisterRoutes sets up the full API surface.
func RegisterRoutes(
	r *gin.Engine,
	ac *controllers.ArtworkController,
	cc *controllers.CheckoutController,
	oc *controllers.OrderController,
) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Artist Portfolio API"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	api := r.Group("/api")
	{
		api.GET("/artworks", ac.GetArtworks)
		api.GET("/artworks/:id", ac.GetArtworkByID)
		api.GET("/featured-artworks", ac.GetFeaturedArtworks)

		api.POST("/cart/add", ac.AddToCart)

		api.POST("/checkout/create-session", cc.CreateSession)
		api.GET("/checkout/session/:id", cc.GetSessionStatus)

		api.POST("/orders/:id/complete", oc.CompleteOrder)
		api.GET("/orders", oc.GetOrders)
	}
}
