package models

import (
	"time"
)

// Membership relates one member to one study group
// The (member, group) pair is unique and rows are never soft-deleted, so the
// unique index alone guarantees a member cannot hold two seats in a group
type Membership struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	MemberID  uint      `gorm:"not null;uniqueIndex:idx_member_group" json:"member_id"`
	GroupID   uint      `gorm:"not null;uniqueIndex:idx_member_group;index" json:"group_id"`

	// Relationships
	Member Member `gorm:"foreignKey:MemberID" json:"member,omitempty"`
	Group  Group  `gorm:"foreignKey:GroupID" json:"group,omitempty"`
}
