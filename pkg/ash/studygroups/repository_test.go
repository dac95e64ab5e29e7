package studygroups

import (
	"context"
	"testing"

	"github.com/ashub/ash/pkg/ash/database"
	"github.com/ashub/ash/pkg/ash/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := database.OpenTest()
	require.NoError(t, err, "Failed to open test database")
	return db
}

func createTestGroup(t *testing.T, repo *Repository, course, title string, capacity int) *models.Group {
	g, err := repo.Create(context.Background(), NewGroup{Name: title, Course: course, Capacity: capacity})
	require.NoError(t, err, "Failed to create test group")
	return g
}

func TestRepositoryCreateDefaults(t *testing.T) {
	repo := NewRepository(setupTestDB(t), 0)

	g := createTestGroup(t, repo, " CMPS101 ", " Algo Study ", 0)

	assert.NotZero(t, g.ID)
	assert.Equal(t, "CMPS101", g.Course)
	assert.Equal(t, "Algo Study", g.Name)
	assert.Equal(t, models.DefaultCapacity, g.Capacity)
	assert.Equal(t, 0, g.MemberCount)
	assert.True(t, g.IsOpen())
}

func TestRepositoryCreateConfiguredDefault(t *testing.T) {
	repo := NewRepository(setupTestDB(t), 8)
	g := createTestGroup(t, repo, "CMPS101", "Algo Study", 0)
	assert.Equal(t, 8, g.Capacity)
}

func TestRepositoryCreateValidation(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db, 0)
	ctx := context.Background()

	_, err := repo.Create(ctx, NewGroup{Name: "  ", Course: "CMPS101"})
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = repo.Create(ctx, NewGroup{Name: "Algo", Course: ""})
	assert.ErrorIs(t, err, ErrCourseRequired)

	_, err = repo.Create(ctx, NewGroup{Name: "Algo", Course: "CMPS101", Capacity: -1})
	assert.ErrorIs(t, err, ErrInvalidCapacity)

	var count int64
	db.Model(&models.Group{}).Count(&count)
	assert.Zero(t, count, "no group should be persisted")
}

func TestRepositoryCreateWithTags(t *testing.T) {
	repo := NewRepository(setupTestDB(t), 0)
	ctx := context.Background()

	g, err := repo.Create(ctx, NewGroup{Name: "Graphs", Course: "CMPS262", Tags: []string{"Graphs", "sorting, graphs"}})
	require.NoError(t, err)

	found, err := repo.Find(ctx, g.ID)
	require.NoError(t, err)
	require.Len(t, found.Tags, 2)
	assert.ElementsMatch(t, []string{"graphs", "sorting"}, []string{found.Tags[0].Name, found.Tags[1].Name})
}

func TestRepositoryFindNotFound(t *testing.T) {
	repo := NewRepository(setupTestDB(t), 0)
	_, err := repo.Find(context.Background(), 42)
	assert.ErrorIs(t, err, ErrGroupNotFound)
}

func TestRepositoryList(t *testing.T) {
	repo := NewRepository(setupTestDB(t), 0)
	ctx := context.Background()

	createTestGroup(t, repo, "CMPS262", "Algorithms Exam Prep", 8)
	createTestGroup(t, repo, "CMPS162", "Intro Study Hall", 10)
	_, err := repo.Create(ctx, NewGroup{Name: "Graph Night", Course: "cmps262", Tags: []string{"graphs"}})
	require.NoError(t, err)

	all, err := repo.List(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Algorithms Exam Prep", all[0].Name, "insertion order")
	assert.Equal(t, "Graph Night", all[2].Name)

	byCourse, err := repo.List(ctx, Filter{Course: "Cmps26"})
	require.NoError(t, err)
	assert.Len(t, byCourse, 2, "course match is partial and case-insensitive")

	byTag, err := repo.List(ctx, Filter{Tag: "GRAPHS"})
	require.NoError(t, err)
	require.Len(t, byTag, 1)
	assert.Equal(t, "Graph Night", byTag[0].Name)

	none, err := repo.List(ctx, Filter{Course: "HIST100"})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestRepositoryIncrementMembers(t *testing.T) {
	repo := NewRepository(setupTestDB(t), 0)
	ctx := context.Background()
	g := createTestGroup(t, repo, "CMPS101", "Pair", 2)

	updated, err := repo.IncrementMembers(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.MemberCount)
	assert.True(t, updated.IsOpen())

	updated, err = repo.IncrementMembers(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.MemberCount)
	assert.False(t, updated.IsOpen())

	_, err = repo.IncrementMembers(ctx, g.ID)
	assert.ErrorIs(t, err, ErrCapacityExceeded)

	_, err = repo.IncrementMembers(ctx, 999)
	assert.ErrorIs(t, err, ErrGroupNotFound)

	final, err := repo.Find(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, final.MemberCount, "count must not pass capacity")
}
