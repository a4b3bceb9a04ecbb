package formconfig

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Emalachi/lazersolution/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetConfig handles GET /api/v1/admin/form-config
func (h *Handler) GetConfig(c *gin.Context) {
	cfg, err := h.service.Get(c.Request.Context())
	if err != nil {
		response.Internal(c, err)
		return
	}
	response.Success(c, http.StatusOK, cfg)
}

// SaveConfig handles PUT /api/v1/admin/form-config
func (h *Handler) SaveConfig(c *gin.Context) {
	var cfg FormConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if err := h.service.Save(c.Request.Context(), &cfg); err != nil {
		switch {
		case errors.Is(err, ErrUnknownField),
			errors.Is(err, ErrMissingLabel),
			errors.Is(err, ErrMissingCopy),
			errors.Is(err, ErrMissingSuccessURL):
			response.Error(c, http.StatusUnprocessableEntity, "INVALID_CONFIG", err.Error())
		default:
			response.Internal(c, err)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Form config saved"})
}
