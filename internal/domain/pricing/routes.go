package pricing

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the public catalog endpoints. No auth required:
// visitors browse prices before signing in.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	p := r.Group("/pricing")
	{
		p.GET("", h.GetPage)
		p.GET("/plans", h.GetPlans)
		p.GET("/packs", h.GetPacks)
		p.GET("/credit-scale", h.GetCreditScale)
		p.GET("/recommendation", h.GetRecommendation)
	}
}
