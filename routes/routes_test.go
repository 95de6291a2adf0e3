package routes_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/haresh-sai06/Art-Webpage/controllers"
	"github.com/haresh-sai06/Art-Webpage/routes"
	"github.com/stretchr/testify/assert"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// The root and health handlers never touch the services, so the
	// controllers can be constructed without them here.
	routes.RegisterRoutes(r,
		controllers.NewArtworkController(nil),
		controllers.NewCheckoutController(nil),
		controllers.NewOrderController(nil),
	)
	return r
}

func TestRoot_ReturnsAPIBanner(t *testing.T) {
	r := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Artist Portfolio API"}`, w.Body.String())
}

func TestHealth_ReturnsOK(t *testing.T) {
	r := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"OK"}`, w.Body.String())
}
