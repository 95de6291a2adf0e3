package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/haresh-sai06/Art-Webpage/models"
	"github.com/haresh-sai06/Art-Webpage/services"
)

// OrderController handles order completion and listing.
type OrderController struct {
	checkoutService services.CheckoutService
}

// NewOrderController creates a new OrderController.
func NewOrderController(svc services.CheckoutService) *OrderController {
	return &OrderController{checkoutService: svc}
}

// CompleteOrder handles POST /api/orders/:id/complete
func (oc *OrderController) CompleteOrder(ctx *gin.Context) {
	order, svcErr := oc.checkoutService.CompleteOrder(ctx.Request.Context(), ctx.Param("id"))
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Order completed successfully", "order": order})
}

// GetOrders handles GET /api/orders
func (oc *OrderController) GetOrders(ctx *gin.Context) {
	orders, svcErr := oc.checkoutService.ListOrders(ctx.Request.Context())
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	ctx.JSON(http.StatusOK, orders)
}
