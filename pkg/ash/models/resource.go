package models

import (
	"time"

	"gorm.io/gorm"
)

// Resource represents a shared study material: an uploaded file or an external link
type Resource struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	Title        string         `gorm:"not null" json:"title"`
	Course       string         `gorm:"not null;index" json:"course"`
	FilePath     string         `gorm:"not null" json:"file_path"` // "/uploads/<name>" or an external URL
	IsUpload     bool           `gorm:"default:false" json:"is_upload"`
	UploadedByID uint           `gorm:"not null;index" json:"uploaded_by_id"`

	// Relationships
	UploadedBy Member `gorm:"foreignKey:UploadedByID" json:"uploaded_by,omitempty"`
	Tags       []Tag  `gorm:"many2many:resource_tags;" json:"tags,omitempty"`
}
