package domain

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// BadgeIdeaStarter is awarded the first time a resource submits an idea
const BadgeIdeaStarter = "idea_starter"

// Resource represents a person who can be assigned work. ManagerID forms the
// reporting chain; cycle prevention is enforced at update time.
type Resource struct {
	BaseModel
	Name         string                      `gorm:"type:varchar(255);not null" json:"name"`
	Initials     string                      `gorm:"type:varchar(5);not null" json:"initials"`
	Position     string                      `gorm:"type:varchar(100)" json:"position"`
	DepartmentID *uuid.UUID                  `gorm:"type:uuid;index:idx_resources_department_id" json:"departmentId"`
	Department   *Department                 `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	Email        string                      `gorm:"type:varchar(255)" json:"email,omitempty"`
	Phone        string                      `gorm:"type:varchar(50)" json:"phone,omitempty"`
	StartDate    string                      `gorm:"type:varchar(10)" json:"startDate,omitempty"`
	Skills       datatypes.JSONSlice[string] `json:"skills"`
	WeeklyHours  float64                     `gorm:"not null;default:40" json:"weeklyHours"`
	CurrentLoad  float64                     `gorm:"not null;default:0" json:"currentLoad"`
	ManagerID    *uuid.UUID                  `gorm:"type:uuid" json:"managerId,omitempty"`
	Bio          string                      `gorm:"type:text" json:"bio,omitempty"`
	EarnedBadges datatypes.JSONSlice[string] `json:"earnedBadges,omitempty"`
}

// TableName specifies the table name for Resource
func (Resource) TableName() string {
	return "resources"
}

// HasBadge reports whether the resource already holds the given badge
func (r *Resource) HasBadge(badgeID string) bool {
	for _, b := range r.EarnedBadges {
		if b == badgeID {
			return true
		}
	}
	return false
}

// DeriveInitials builds up to two uppercase initials from a display name
func DeriveInitials(name string) string {
	var initials []rune
	for _, word := range strings.Fields(name) {
		runes := []rune(word)
		if len(runes) > 0 {
			initials = append(initials, runes[0])
		}
		if len(initials) == 2 {
			break
		}
	}
	return strings.ToUpper(string(initials))
}

// SplitSkills tolerates comma-separated skill input from older clients
func SplitSkills(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}
