package intake

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Emalachi/lazersolution/internal/domain/visitor"
	"github.com/Emalachi/lazersolution/internal/pkg/response"
)

type Handler struct {
	renderer *Renderer
}

func NewHandler(renderer *Renderer) *Handler {
	return &Handler{renderer: renderer}
}

// GetForm handles GET /api/v1/intake/form (public).
// Returns the rendered form plus the success-page behavior, so the
// frontend can serve both the form and success entry points.
func (h *Handler) GetForm(c *gin.Context) {
	form, err := h.renderer.RenderForm(c.Request.Context())
	if err != nil {
		response.Internal(c, err)
		return
	}
	response.Success(c, http.StatusOK, form)
}

// Submit handles POST /api/v1/intake (public).
// Validation failures return the per-field violations and create no
// lead; the visitor's draft stays intact for retry. Persistence
// failures surface as retryable errors.
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if req.Fields == nil {
		req.Fields = map[string]string{}
	}

	metadata := visitor.Snapshot(c, req.ScreenResolution)

	created, violations, err := h.renderer.Submit(c.Request.Context(), req.Fields, metadata)
	if err != nil {
		response.Internal(c, err)
		return
	}
	if violations != nil {
		response.ValidationError(c, violations)
		return
	}

	success, err := h.renderer.SuccessView(c.Request.Context())
	if err != nil {
		// The lead is already saved; fall back to an empty success view
		// rather than reporting failure for a submission that worked.
		success = SuccessView{}
	}

	response.Success(c, http.StatusCreated, SubmitResponse{
		LeadID:  created.ID,
		Success: success,
	})
}
