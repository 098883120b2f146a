package wallet

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the wallet endpoints. All require authentication.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	w := r.Group("/wallet")
	{
		w.GET("", h.GetWallet)
		w.GET("/transactions", h.ListTransactions)
		w.POST("/spend", h.Spend)
	}
}
