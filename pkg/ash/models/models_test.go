package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "Failed to connect to test database")
	return db
}

func TestAutoMigrate(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, AutoMigrate(db))

	tables := []string{
		"members", "study_groups", "memberships", "tags", "group_tags",
		"resources", "resource_tags", "questions", "answers", "reactions",
		"assignments", "announcements",
	}
	for _, table := range tables {
		assert.True(t, db.Migrator().HasTable(table), "Expected table %s to exist", table)
	}
}

func TestGroupOpenState(t *testing.T) {
	g := Group{Capacity: 2}
	assert.True(t, g.IsOpen())
	assert.Equal(t, 2, g.SeatsLeft())

	g.MemberCount = 2
	assert.False(t, g.IsOpen())
	assert.Equal(t, 0, g.SeatsLeft())
}

func TestMembershipUniqueness(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, AutoMigrate(db))

	member := Member{NaturalKey: "name:alice", Name: "Alice"}
	require.NoError(t, db.Create(&member).Error)
	group := Group{Name: "Algo Study", Course: "CMPS101", Capacity: 2}
	require.NoError(t, db.Create(&group).Error)

	require.NoError(t, db.Create(&Membership{MemberID: member.ID, GroupID: group.ID}).Error)

	err := db.Create(&Membership{MemberID: member.ID, GroupID: group.ID}).Error
	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey), "expected duplicated key, got %v", err)
}

func TestMemberNaturalKeyUniqueness(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, AutoMigrate(db))

	require.NoError(t, db.Create(&Member{NaturalKey: "bob@example.com", Name: "Bob", Email: "bob@example.com"}).Error)
	err := db.Create(&Member{NaturalKey: "bob@example.com", Name: "Robert"}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestGroupCapacityCheck(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, AutoMigrate(db))

	group := Group{Name: "Tiny", Course: "CMPS101", Capacity: 1}
	require.NoError(t, db.Create(&group).Error)

	require.NoError(t, db.Model(&group).UpdateColumn("member_count", 1).Error)
	assert.Error(t, db.Model(&group).UpdateColumn("member_count", 2).Error, "member_count above capacity must be rejected by storage")
}

func TestResourceWithTags(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, AutoMigrate(db))

	uploader := Member{NaturalKey: "name:test", Name: "Test"}
	require.NoError(t, db.Create(&uploader).Error)

	resource := Resource{
		Title:        "Graph Theory Notes",
		Course:       "CMPS262",
		FilePath:     "https://example.com/graphs.pdf",
		UploadedByID: uploader.ID,
		Tags:         []Tag{{Name: "graphs"}, {Name: "exam prep"}},
	}
	require.NoError(t, db.Create(&resource).Error)

	var loaded Resource
	require.NoError(t, db.Preload("Tags").First(&loaded, resource.ID).Error)
	assert.Len(t, loaded.Tags, 2)
}

func TestReactionUniqueness(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, AutoMigrate(db))

	r := Reaction{TargetType: ReactionTargetQuestion, TargetID: 1, MemberID: 1, Emoji: "heart"}
	require.NoError(t, db.Create(&r).Error)

	dup := Reaction{TargetType: ReactionTargetQuestion, TargetID: 1, MemberID: 1, Emoji: "heart"}
	assert.ErrorIs(t, db.Create(&dup).Error, gorm.ErrDuplicatedKey)

	other := Reaction{TargetType: ReactionTargetAnswer, TargetID: 1, MemberID: 1, Emoji: "heart"}
	assert.NoError(t, db.Create(&other).Error)
}
