package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ejderhub-api/internal/dto"
	"ejderhub-api/internal/response"
	"ejderhub-api/internal/service"
)

// CommentHandler handles comment and evaluation endpoints
type CommentHandler struct {
	commentService service.CommentService
}

// NewCommentHandler creates a new instance of CommentHandler
func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// ListComments godoc
// @Summary      List comments
// @Tags         comments
// @Produce      json
// @Success      200 {array} domain.Comment
// @Router       /comments [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	comments, err := h.commentService.ListComments(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, comments)
}

// CreateComment godoc
// @Summary      Comment on a project or an idea
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateCommentRequest true "Comment"
// @Success      201 {object} domain.Comment
// @Failure      400 {object} response.ErrorResponse
// @Router       /comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}
	comment, err := h.commentService.CreateComment(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, comment)
}

// UpdateComment godoc
// @Summary      Edit a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        id path string true "Comment ID (UUID)"
// @Param        request body dto.UpdateCommentRequest true "Fields to update"
// @Success      200 {object} domain.Comment
// @Failure      404 {object} response.ErrorResponse
// @Router       /comments/{id} [put]
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	commentID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}
	comment, err := h.commentService.UpdateComment(c.Request.Context(), commentID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, comment)
}

// VoteOnComment godoc
// @Summary      Vote on a comment; repeating the same vote removes it
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        id path string true "Comment ID (UUID)"
// @Param        request body dto.VoteRequest true "Vote"
// @Success      200 {object} domain.Comment
// @Failure      404 {object} response.ErrorResponse
// @Router       /comments/{id}/vote [patch]
func (h *CommentHandler) VoteOnComment(c *gin.Context) {
	commentID, ok := parseID(c, "id")
	if !ok {
		return
	}
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}
	comment, err := h.commentService.VoteOnComment(c.Request.Context(), commentID, userID, req.Vote)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, comment)
}

// DeleteComment godoc
// @Summary      Delete a comment
// @Tags         comments
// @Param        id path string true "Comment ID (UUID)"
// @Success      204
// @Failure      404 {object} response.ErrorResponse
// @Router       /comments/{id} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	commentID, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.commentService.DeleteComment(c.Request.Context(), commentID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListEvaluations godoc
// @Summary      List evaluations
// @Tags         evaluations
// @Produce      json
// @Success      200 {array} domain.Evaluation
// @Router       /evaluations [get]
func (h *CommentHandler) ListEvaluations(c *gin.Context) {
	evaluations, err := h.commentService.ListEvaluations(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, evaluations)
}

// CreateEvaluation godoc
// @Summary      Evaluate a project or an idea
// @Tags         evaluations
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateEvaluationRequest true "Evaluation"
// @Success      201 {object} domain.Evaluation
// @Failure      400 {object} response.ErrorResponse
// @Router       /evaluations [post]
func (h *CommentHandler) CreateEvaluation(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.CreateEvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}
	evaluation, err := h.commentService.CreateEvaluation(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, evaluation)
}

// UpdateEvaluation godoc
// @Summary      Edit an evaluation
// @Tags         evaluations
// @Accept       json
// @Produce      json
// @Param        id path string true "Evaluation ID (UUID)"
// @Param        request body dto.UpdateEvaluationRequest true "Fields to update"
// @Success      200 {object} domain.Evaluation
// @Failure      404 {object} response.ErrorResponse
// @Router       /evaluations/{id} [put]
func (h *CommentHandler) UpdateEvaluation(c *gin.Context) {
	evaluationID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateEvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}
	evaluation, err := h.commentService.UpdateEvaluation(c.Request.Context(), evaluationID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, evaluation)
}

// DeleteEvaluation godoc
// @Summary      Delete an evaluation
// @Tags         evaluations
// @Param        id path string true "Evaluation ID (UUID)"
// @Success      204
// @Failure      404 {object} response.ErrorResponse
// @Router       /evaluations/{id} [delete]
func (h *CommentHandler) DeleteEvaluation(c *gin.Context) {
	evaluationID, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.commentService.DeleteEvaluation(c.Request.Context(), evaluationID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
