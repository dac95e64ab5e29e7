package models

import (
	"time"

	"gorm.io/gorm"
)

// Assignment is an entry in a member's personal planner
// Priority is 1 (highest) to 4; zero means unset
type Assignment struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	MemberID  uint           `gorm:"not null;index" json:"member_id"`
	Title     string         `gorm:"not null" json:"title"`
	Notes     string         `json:"notes"`
	Due       *time.Time     `json:"due"`
	Priority  int            `gorm:"default:0" json:"priority"`

	// Relationships
	Member Member `gorm:"foreignKey:MemberID" json:"member,omitempty"`
}
