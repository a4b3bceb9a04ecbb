package visitor

import "github.com/gin-gonic/gin"

// RegisterPublicRoutes registers the public visit logger.
func RegisterPublicRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/visits", handler.LogVisit)
}

// RegisterAdminRoutes registers the staff-only visit listing.
func RegisterAdminRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/visits", handler.ListVisits)
}
