package upload

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

// Upload handles POST /api/v1/admin/uploads
func (h *Handler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "MISSING_FILE", "Form field 'file' is required")
		return
	}

	img, err := h.service.Save(c.Request.Context(), c.GetInt64("user_id"), header)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyFile):
			response.Error(c, http.StatusUnprocessableEntity, "EMPTY_FILE", "Uploaded file is empty")
		case errors.Is(err, ErrFileTooLarge):
			response.Error(c, http.StatusUnprocessableEntity, "FILE_TOO_LARGE", "File exceeds the 10MB limit")
		case errors.Is(err, ErrInvalidMimeType):
			response.Error(c, http.StatusUnprocessableEntity, "INVALID_FILE_TYPE", "Only image uploads are allowed")
		default:
			response.Internal(c, err)
		}
		return
	}
	response.Success(c, http.StatusCreated, img)
}

// List handles GET /api/v1/admin/uploads
func (h *Handler) List(c *gin.Context) {
	images, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Internal(c, err)
		return
	}
	response.Success(c, http.StatusOK, images)
}

// Delete handles DELETE /api/v1/admin/uploads/:id
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(c, "Upload no longer exists")
			return
		}
		response.Internal(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
