package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ejderhub-api/internal/dto"
	"ejderhub-api/internal/response"
	"ejderhub-api/internal/service"
)

// IdeaHandler handles idea endpoints
type IdeaHandler struct {
	ideaService service.IdeaService
}

// NewIdeaHandler creates a new instance of IdeaHandler
func NewIdeaHandler(ideaService service.IdeaService) *IdeaHandler {
	return &IdeaHandler{ideaService: ideaService}
}

// ListIdeas godoc
// @Summary      List ideas, newest first
// @Tags         ideas
// @Produce      json
// @Success      200 {array} domain.Idea
// @Router       /ideas [get]
func (h *IdeaHandler) ListIdeas(c *gin.Context) {
	ideas, err := h.ideaService.ListIdeas(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, ideas)
}

// GetIdea godoc
// @Summary      Get an idea
// @Tags         ideas
// @Produce      json
// @Param        id path string true "Idea ID (UUID)"
// @Success      200 {object} domain.Idea
// @Failure      404 {object} response.ErrorResponse
// @Router       /ideas/{id} [get]
func (h *IdeaHandler) GetIdea(c *gin.Context) {
	ideaID, ok := parseID(c, "id")
	if !ok {
		return
	}
	idea, err := h.ideaService.GetIdea(c.Request.Context(), ideaID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, idea)
}

// CreateIdea godoc
// @Summary      Submit an idea
// @Tags         ideas
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateIdeaRequest true "Idea"
// @Success      201 {object} domain.Idea
// @Failure      400 {object} response.ErrorResponse
// @Router       /ideas [post]
func (h *IdeaHandler) CreateIdea(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.CreateIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}
	idea, err := h.ideaService.CreateIdea(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, idea)
}

// UpdateIdea godoc
// @Summary      Update an idea
// @Tags         ideas
// @Accept       json
// @Produce      json
// @Param        id path string true "Idea ID (UUID)"
// @Param        request body dto.UpdateIdeaRequest true "Fields to update"
// @Success      200 {object} domain.Idea
// @Failure      404 {object} response.ErrorResponse
// @Router       /ideas/{id} [put]
func (h *IdeaHandler) UpdateIdea(c *gin.Context) {
	ideaID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}
	idea, err := h.ideaService.UpdateIdea(c.Request.Context(), ideaID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, idea)
}

// ConvertIdea godoc
// @Summary      Convert an idea into a project
// @Tags         ideas
// @Produce      json
// @Param        id path string true "Idea ID (UUID)"
// @Success      201 {object} domain.Project
// @Failure      404 {object} response.ErrorResponse
// @Router       /ideas/{id}/convert [post]
func (h *IdeaHandler) ConvertIdea(c *gin.Context) {
	ideaID, ok := parseID(c, "id")
	if !ok {
		return
	}
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	project, err := h.ideaService.ConvertIdeaToProject(c.Request.Context(), userID, ideaID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, project)
}

// DeleteIdea godoc
// @Summary      Delete an idea, detaching its calendar entries
// @Tags         ideas
// @Param        id path string true "Idea ID (UUID)"
// @Success      204
// @Failure      404 {object} response.ErrorResponse
// @Router       /ideas/{id} [delete]
func (h *IdeaHandler) DeleteIdea(c *gin.Context) {
	ideaID, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.ideaService.DeleteIdea(c.Request.Context(), ideaID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
