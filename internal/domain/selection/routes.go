package selection

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the selection endpoints. Sessions are anonymous:
// the client mints an X-Session-ID and keeps it for the page lifetime.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	sel := r.Group("/selection")
	{
		sel.GET("", h.GetState)
		sel.POST("/plan", h.SelectPlan)
		sel.POST("/pack", h.SelectPack)
		sel.POST("/mode", h.SetMode)
		sel.POST("/billing-cycle", h.SetBillingCycle)
		sel.POST("/recommendation/apply", h.ApplyRecommendation)
	}
}
