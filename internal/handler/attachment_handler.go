package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ejderhub-api/internal/dto"
	"ejderhub-api/internal/response"
	"ejderhub-api/internal/service"
)

// AttachmentHandler handles file upload endpoints
type AttachmentHandler struct {
	attachmentService service.AttachmentService
}

// NewAttachmentHandler creates a new instance of AttachmentHandler
func NewAttachmentHandler(attachmentService service.AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{attachmentService: attachmentService}
}

// PresignUpload godoc
// @Summary      Presign a direct-to-storage upload
// @Tags         files
// @Accept       json
// @Produce      json
// @Param        request body dto.PresignUploadRequest true "Upload descriptor"
// @Success      200 {object} dto.PresignUploadResponse
// @Failure      400 {object} response.ErrorResponse
// @Router       /files/presign-upload [post]
func (h *AttachmentHandler) PresignUpload(c *gin.Context) {
	var req dto.PresignUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}
	presigned, err := h.attachmentService.PresignUpload(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, presigned)
}

// DeleteFile godoc
// @Summary      Delete an uploaded file by object key
// @Tags         files
// @Param        key query string true "Object key"
// @Success      204
// @Failure      400 {object} response.ErrorResponse
// @Router       /files [delete]
func (h *AttachmentHandler) DeleteFile(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "key query parameter is required")
		return
	}
	if err := h.attachmentService.DeleteFile(c.Request.Context(), key); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
