package models

import (
	"time"

	"gorm.io/gorm"
)

// Tag represents a topic label shared by study groups and resources
type Tag struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Name      string         `gorm:"uniqueIndex;not null" json:"name"`

	// Relationships
	Groups    []Group    `gorm:"many2many:group_tags;" json:"groups,omitempty"`
	Resources []Resource `gorm:"many2many:resource_tags;" json:"resources,omitempty"`
}
