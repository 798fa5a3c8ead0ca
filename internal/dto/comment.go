package dto

import (
	"github.com/google/uuid"

	"ejderhub-api/internal/domain"
)

// CreateCommentRequest attaches a comment to exactly one of a project or an
// idea; the service rejects payloads naming both or neither.
type CreateCommentRequest struct {
	Text      string     `json:"text" binding:"required"`
	ProjectID *uuid.UUID `json:"projectId"`
	IdeaID    *uuid.UUID `json:"ideaId"`
}

// UpdateCommentRequest edits a comment's text
type UpdateCommentRequest struct {
	Text *string `json:"text"`
}

// VoteRequest records the acting user's stance on a comment. Sending the
// stance the user already holds removes the vote.
type VoteRequest struct {
	Vote domain.VoteStatus `json:"vote" binding:"required"`
}

// CreateEvaluationRequest attaches a voted review to exactly one of a
// project or an idea
type CreateEvaluationRequest struct {
	Text      string            `json:"text" binding:"required"`
	Vote      domain.VoteStatus `json:"vote" binding:"required"`
	ProjectID *uuid.UUID        `json:"projectId"`
	IdeaID    *uuid.UUID        `json:"ideaId"`
}

// UpdateEvaluationRequest edits an evaluation
type UpdateEvaluationRequest struct {
	Text *string            `json:"text"`
	Vote *domain.VoteStatus `json:"vote"`
}
