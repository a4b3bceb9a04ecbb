package auth

import "github.com/gin-gonic/gin"

// RegisterPublicRoutes registers the sign-in endpoint.
func RegisterPublicRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/auth/login", handler.Login)
}

// RegisterAdminRoutes registers authenticated account routes.
func RegisterAdminRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/me", handler.Me)
}
