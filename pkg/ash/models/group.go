package models

import (
	"time"

	"gorm.io/gorm"
)

// DefaultCapacity is the seat count given to a study group created without one
const DefaultCapacity = 5

// Group represents a study group for a course
// MemberCount is only ever changed by a conditional increment and always equals
// the number of Membership rows for the group
type Group struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	Name        string         `gorm:"not null" json:"name"`
	Course      string         `gorm:"not null;index" json:"course"`
	Capacity    int            `gorm:"not null;default:5;check:chk_groups_capacity,capacity > 0" json:"capacity"`
	MemberCount int            `gorm:"not null;default:0;check:chk_groups_member_count,member_count >= 0 AND member_count <= capacity" json:"member_count"`
	Meets       string         `json:"meets"`    // Free-text schedule, e.g. "Tue 18:00"
	Location    string         `json:"location"` // Free-text meeting place

	// Relationships
	Memberships []Membership `gorm:"foreignKey:GroupID" json:"-"`
	Tags        []Tag        `gorm:"many2many:group_tags;" json:"tags,omitempty"`
}

// TableName avoids GROUPS, a reserved word in MySQL 8
func (Group) TableName() string {
	return "study_groups"
}

// IsOpen reports whether the group still has a free seat
func (g Group) IsOpen() bool {
	return g.MemberCount < g.Capacity
}

// SeatsLeft returns the number of free seats
func (g Group) SeatsLeft() int {
	if g.MemberCount >= g.Capacity {
		return 0
	}
	return g.Capacity - g.MemberCount
}
