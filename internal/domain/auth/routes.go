package auth

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the public auth endpoints. The /me endpoint is
// registered separately behind the auth middleware.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	a := r.Group("/auth")
	{
		a.POST("/register", h.Register)
		a.POST("/login", h.Login)
	}
}

// RegisterProtectedRoutes registers the endpoints that require a valid token.
func RegisterProtectedRoutes(r *gin.RouterGroup, h *Handler) {
	a := r.Group("/auth")
	{
		a.GET("/me", h.Me)
	}
}
