package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// VoteStatus is a reader's stance on a comment or evaluation
type VoteStatus string

const (
	VoteSupports VoteStatus = "Supports"
	VoteNeutral  VoteStatus = "Neutral"
	VoteOpposed  VoteStatus = "Opposed"
)

// Comment is attached to exactly one of a project or an idea. The votes map
// keys are resource ids; repeating the same vote removes it.
type Comment struct {
	BaseModel
	AuthorID  uuid.UUID                                 `gorm:"type:uuid;not null;index:idx_comments_author_id" json:"authorId"`
	Author    *Resource                                 `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Text      string                                    `gorm:"type:text;not null" json:"text"`
	Timestamp time.Time                                 `gorm:"not null" json:"timestamp"`
	Votes     datatypes.JSONType[map[string]VoteStatus] `json:"votes,omitempty"`
	ProjectID *uuid.UUID                                `gorm:"type:uuid;index:idx_comments_project_id" json:"projectId,omitempty"`
	IdeaID    *uuid.UUID                                `gorm:"type:uuid;index:idx_comments_idea_id" json:"ideaId,omitempty"`
}

// TableName specifies the table name for Comment
func (Comment) TableName() string {
	return "comments"
}

// Evaluation is a voted review of a project or an idea, attached to exactly
// one of the two.
type Evaluation struct {
	BaseModel
	AuthorID  uuid.UUID  `gorm:"type:uuid;not null" json:"authorId"`
	Author    *Resource  `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Text      string     `gorm:"type:text;not null" json:"text"`
	Vote      VoteStatus `gorm:"type:varchar(50);not null" json:"vote"`
	Timestamp time.Time  `gorm:"not null" json:"timestamp"`
	ProjectID *uuid.UUID `gorm:"type:uuid;index:idx_evaluations_project_id" json:"projectId,omitempty"`
	IdeaID    *uuid.UUID `gorm:"type:uuid;index:idx_evaluations_idea_id" json:"ideaId,omitempty"`
}

// TableName specifies the table name for Evaluation
func (Evaluation) TableName() string {
	return "evaluations"
}
