package lead

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Emalachi/lazersolution/internal/pkg/response"
	"github.com/Emalachi/lazersolution/internal/pkg/validator"
)

// Handler exposes the admin lead endpoints. Lead creation lives in the
// intake package; everything here mutates through the lifecycle engine.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ListLeads handles GET /api/v1/admin/leads
func (h *Handler) ListLeads(c *gin.Context) {
	var status *Status
	if s := c.Query("status"); s != "" && s != "All" {
		statusVal := Status(s)
		if !statusVal.Valid() {
			response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Unknown status filter")
			return
		}
		status = &statusVal
	}

	limit := 50
	if l := c.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 && v <= 200 {
			limit = v
		}
	}

	offset := 0
	if o := c.Query("offset"); o != "" {
		if v, err := strconv.Atoi(o); err == nil && v >= 0 {
			offset = v
		}
	}

	leads, total, err := h.service.List(c.Request.Context(), status, c.Query("search"), limit, offset)
	if err != nil {
		response.Internal(c, err)
		return
	}

	items := make([]Lead, len(leads))
	for i, l := range leads {
		items[i] = *l
	}
	response.Success(c, http.StatusOK, ListResponse{Leads: items, Total: total})
}

// GetLead handles GET /api/v1/admin/leads/:id
func (h *Handler) GetLead(c *gin.Context) {
	l, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, l)
}

// GetStats handles GET /api/v1/admin/leads/stats
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.service.GetStats(c.Request.Context())
	if err != nil {
		response.Internal(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats)
}

// UpdateStatus handles PATCH /api/v1/admin/leads/:id/status
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(c, errs)
		return
	}

	l, err := h.service.SetStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, l)
}

// UpdateClassification handles PATCH /api/v1/admin/leads/:id/classification
func (h *Handler) UpdateClassification(c *gin.Context) {
	var req UpdateClassificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(c, errs)
		return
	}

	l, err := h.service.SetClassification(c.Request.Context(), c.Param("id"), req.Classification)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, l)
}

// AddNote handles POST /api/v1/admin/leads/:id/notes
func (h *Handler) AddNote(c *gin.Context) {
	var req AddNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	author := c.GetString("email")
	if author == "" {
		author = "Admin"
	}

	l, err := h.service.AddNote(c.Request.Context(), c.Param("id"), req.Content, author)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, l)
}

// ToggleTag handles POST /api/v1/admin/leads/:id/tags/toggle
func (h *Handler) ToggleTag(c *gin.Context) {
	var req ToggleTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(c, errs)
		return
	}

	l, err := h.service.ToggleTag(c.Request.Context(), c.Param("id"), req.Tag)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, l)
}

// Assign handles PATCH /api/v1/admin/leads/:id/assign
func (h *Handler) Assign(c *gin.Context) {
	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(c, errs)
		return
	}

	l, err := h.service.Assign(c.Request.Context(), c.Param("id"), req.AssignedTo)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, l)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch err {
	case ErrLeadNotFound:
		response.Error(c, http.StatusNotFound, "LEAD_NOT_FOUND", "Record no longer exists")
	case ErrEmptyNote:
		response.Error(c, http.StatusUnprocessableEntity, "EMPTY_NOTE", "Note content must not be empty")
	case ErrInvalidStatus:
		response.Error(c, http.StatusUnprocessableEntity, "INVALID_STATUS", "Unknown lead status")
	case ErrInvalidClassification:
		response.Error(c, http.StatusUnprocessableEntity, "INVALID_CLASSIFICATION", "Unknown lead classification")
	default:
		response.Internal(c, err)
	}
}
