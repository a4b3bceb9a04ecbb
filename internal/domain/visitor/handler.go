package visitor

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Emalachi/lazersolution/internal/pkg/response"
)

type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

type logVisitRequest struct {
	Path             string `json:"path"`
	ScreenResolution string `json:"screen_resolution"`
	Duration         int    `json:"duration"`
}

// LogVisit handles POST /api/v1/visits (public).
// A failed visit log must never break the page, so the handler answers
// 202 and the body is best-effort.
func (h *Handler) LogVisit(c *gin.Context) {
	var req logVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if req.Path == "" {
		req.Path = "/"
	}

	entry := &Log{
		ID:        uuid.New().String(),
		Timestamp: time.Now(),
		Path:      req.Path,
		Metadata:  *Snapshot(c, req.ScreenResolution),
		Duration:  req.Duration,
	}

	if err := h.repo.Append(c.Request.Context(), entry); err != nil {
		response.Internal(c, err)
		return
	}
	response.Success(c, http.StatusAccepted, gin.H{"id": entry.ID})
}

// ListVisits handles GET /api/v1/admin/visits
func (h *Handler) ListVisits(c *gin.Context) {
	limit := 100
	if l := c.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 {
			limit = v
		}
	}

	logs, err := h.repo.List(c.Request.Context(), limit)
	if err != nil {
		response.Internal(c, err)
		return
	}
	response.Success(c, http.StatusOK, logs)
}
