package models

import (
	"time"

	"gorm.io/gorm"
)

// Question represents a post on the course Q&A board
// GroupID is set when the question was asked inside a study group
type Question struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Course    string         `gorm:"not null;index" json:"course"`
	Title     string         `gorm:"not null" json:"title"`
	Body      string         `json:"body"`
	AuthorID  uint           `gorm:"not null;index" json:"author_id"`
	GroupID   *uint          `gorm:"index" json:"group_id,omitempty"`

	// Relationships
	Author  Member   `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Answers []Answer `gorm:"foreignKey:QuestionID" json:"answers,omitempty"`
}

// Answer represents a reply to a question
type Answer struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
	QuestionID uint           `gorm:"not null;index" json:"question_id"`
	Body       string         `gorm:"not null" json:"body"`
	AuthorID   uint           `gorm:"not null;index" json:"author_id"`

	// Relationships
	Author Member `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

// ReactionTarget identifies what kind of post a reaction is attached to
type ReactionTarget string

const (
	ReactionTargetQuestion ReactionTarget = "question"
	ReactionTargetAnswer   ReactionTarget = "answer"
)

// Emoji keys accepted by the board
var ReactionEmojis = []string{"thumbs_up", "thumbs_down", "smile", "heart", "wow"}

// Reaction is a single member's emoji on a question or answer
type Reaction struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	CreatedAt  time.Time      `json:"created_at"`
	TargetType ReactionTarget `gorm:"type:varchar(20);not null;uniqueIndex:idx_reaction" json:"target_type"`
	TargetID   uint           `gorm:"not null;uniqueIndex:idx_reaction" json:"target_id"`
	MemberID   uint           `gorm:"not null;uniqueIndex:idx_reaction" json:"member_id"`
	Emoji      string         `gorm:"type:varchar(20);not null;uniqueIndex:idx_reaction" json:"emoji"`
}
