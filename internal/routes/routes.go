package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"inovitaz_backend/internal/handlers"
	"inovitaz_backend/internal/middleware"
)

// Register wires every endpoint onto the engine. Guard middlewares are
// built once here and passed into each handler group.
func Register(engine *gin.Engine, h *handlers.AppHandlers, resolver middleware.UserResolver) {
	authOptional := middleware.AuthOptional(resolver)
	authRequired := middleware.AuthRequired(resolver)
	adminOnly := middleware.AdminOnly(resolver)

	api := engine.Group("/api")
	{
		h.Auth.RegisterRoutes(api, authRequired)
		h.Project.RegisterRoutes(api, authOptional, authRequired)
		h.Payment.RegisterRoutes(api, authRequired)
		h.Coupon.RegisterRoutes(api, authRequired)
		h.Order.RegisterRoutes(api, authRequired)
		h.Review.RegisterRoutes(api, authRequired)
		h.Wishlist.RegisterRoutes(api, authRequired)
		h.Admin.RegisterRoutes(api, adminOnly)

		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"success": true, "message": "ok"})
		})
	}

	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
