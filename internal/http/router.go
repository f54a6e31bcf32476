// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travelpro/internal/http/handlers"
	"travelpro/internal/http/middleware"
	"travelpro/internal/infra"
)

func NewRouter(trip *handlers.TripHandler, verifier infra.TokenVerifier) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(), middleware.Logging())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := r.Group("/api", middleware.Auth(verifier))
	api.POST("/trips/plan", trip.Plan)

	return r
}
