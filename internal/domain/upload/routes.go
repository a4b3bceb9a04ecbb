package upload

import "github.com/gin-gonic/gin"

// RegisterAdminRoutes registers authenticated upload management routes.
func RegisterAdminRoutes(r *gin.RouterGroup, handler *Handler) {
	uploads := r.Group("/uploads")
	{
		uploads.POST("", handler.Upload)
		uploads.GET("", handler.List)
		uploads.DELETE("/:id", handler.Delete)
	}
}
