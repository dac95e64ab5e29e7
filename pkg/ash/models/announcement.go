package models

import (
	"time"
)

// Announcement is a message shown on the home page
type Announcement struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Message   string    `gorm:"not null" json:"msg"`
}
