package domain

import (
	"github.com/google/uuid"
)

// Department represents an organizational unit. ParentID forms the org tree.
type Department struct {
	BaseModel
	Name      string     `gorm:"type:varchar(255);not null" json:"name"`
	ParentID  *uuid.UUID `gorm:"type:uuid;index:idx_departments_parent_id" json:"parentId,omitempty"`
	ManagerID *uuid.UUID `gorm:"type:uuid" json:"managerId,omitempty"`
	Manager   *Resource  `gorm:"foreignKey:ManagerID" json:"manager,omitempty"`
}

// TableName specifies the table name for Department
func (Department) TableName() string {
	return "departments"
}
