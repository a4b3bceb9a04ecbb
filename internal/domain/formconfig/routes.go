package formconfig

import "github.com/gin-gonic/gin"

// RegisterAdminRoutes registers the form-config editor routes.
func RegisterAdminRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/form-config", handler.GetConfig)
	r.PUT("/form-config", handler.SaveConfig)
}
