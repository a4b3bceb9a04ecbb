package lead

import "github.com/gin-gonic/gin"

// RegisterAdminRoutes registers staff-only lead routes.
func RegisterAdminRoutes(r *gin.RouterGroup, handler *Handler) {
	leads := r.Group("/leads")
	{
		leads.GET("", handler.ListLeads)
		leads.GET("/stats", handler.GetStats)
		leads.GET("/:id", handler.GetLead)
		leads.PATCH("/:id/status", handler.UpdateStatus)
		leads.PATCH("/:id/classification", handler.UpdateClassification)
		leads.PATCH("/:id/assign", handler.Assign)
		leads.POST("/:id/notes", handler.AddNote)
		leads.POST("/:id/tags/toggle", handler.ToggleTag)
	}
}
