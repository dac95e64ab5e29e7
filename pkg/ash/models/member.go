package models

import (
	"time"

	"gorm.io/gorm"
)

// Member represents a resolved student identity
// NaturalKey is the deduplication key: the lower-cased email when one was given,
// otherwise "name:" followed by the lower-cased display name
type Member struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
	NaturalKey string         `gorm:"uniqueIndex;not null" json:"-"`
	Name       string         `gorm:"not null" json:"name"`
	Email      string         `gorm:"index" json:"email,omitempty"`

	// Relationships
	Memberships []Membership `gorm:"foreignKey:MemberID" json:"-"`
}
