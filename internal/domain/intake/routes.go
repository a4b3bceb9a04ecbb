package intake

import "github.com/gin-gonic/gin"

// RegisterPublicRoutes registers the visitor-facing intake endpoints.
func RegisterPublicRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/intake/form", handler.GetForm)
	r.POST("/intake", handler.Submit)
}
