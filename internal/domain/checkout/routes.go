package checkout

import "github.com/gin-gonic/gin"

// RegisterRoutes registers checkout under the optional-auth group: the
// endpoint itself decides what an anonymous pay click gets.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.POST("/checkout", h.Pay)
	r.GET("/orders", h.ListOrders)
}
