package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/haresh-sai06/Art-Webpage/models"
	"github.com/haresh-sai06/Art-Webpage/services"
)

// CheckoutController handles payment session endpoints.
type CheckoutController struct {
	checkoutService services.CheckoutService
}

// NewCheckoutController creates a new CheckoutController.
func NewCheckoutController(svc services.CheckoutService) *CheckoutController {
	return &CheckoutController{checkoutService: svc}
}

// CreateSession handles POST /api/checkout/create-session
func (cc *CheckoutController) CreateSession(ctx *gin.Context) {
	var req models.CheckoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	result, svcErr := cc.checkoutService.CreateSession(ctx.Request.Context(), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// GetSessionStatus handles GET /api/checkout/session/:id
func (cc *CheckoutController) GetSessionStatus(ctx *gin.Context) {
	status, svcErr := cc.checkoutService.GetSessionStatus(ctx.Request.Context(), ctx.Param("id"))
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, status)
}
