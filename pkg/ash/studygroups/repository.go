package studygroups

import (
	"context"
	"errors"
	"strings"

	"github.com/ashub/ash/pkg/ash/apperr"
	"github.com/ashub/ash/pkg/ash/models"
	"github.com/ashub/ash/pkg/ash/tags"
	"gorm.io/gorm"
)

var (
	// ErrGroupNotFound is returned when a group ID does not resolve
	ErrGroupNotFound = apperr.NotFound("Group not found")
	// ErrCapacityExceeded is returned when an increment would pass capacity
	ErrCapacityExceeded = apperr.Conflict("Group is full")
	// ErrNameRequired is returned for a blank group title
	ErrNameRequired = apperr.Validation("Title is required")
	// ErrCourseRequired is returned for a blank course
	ErrCourseRequired = apperr.Validation("Course is required")
	// ErrInvalidCapacity is returned for a non-positive capacity
	ErrInvalidCapacity = apperr.Validation("Capacity must be a positive number")
)

// NewGroup holds the fields accepted when creating a group
type NewGroup struct {
	Name     string
	Course   string
	Capacity int // zero means the repository default
	Meets    string
	Location string
	Tags     []string
}

// Filter narrows a group listing; zero values match everything
type Filter struct {
	Course string // case-insensitive substring
	Tag    string // exact tag name
}

// Repository owns persisted study groups.
// The repository is the single source of truth for member counts: nothing is
// cached between calls.
type Repository struct {
	db              *gorm.DB
	defaultCapacity int
}

// NewRepository creates a new group repository
func NewRepository(db *gorm.DB, defaultCapacity int) *Repository {
	if defaultCapacity < 1 {
		defaultCapacity = models.DefaultCapacity
	}
	return &Repository{db: db, defaultCapacity: defaultCapacity}
}

// WithTx returns a repository bound to tx
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx, defaultCapacity: r.defaultCapacity}
}

// DefaultCapacity returns the capacity used when none is given
func (r *Repository) DefaultCapacity() int {
	return r.defaultCapacity
}

// Create persists a new empty group
func (r *Repository) Create(ctx context.Context, in NewGroup) (*models.Group, error) {
	name := strings.TrimSpace(in.Name)
	course := strings.TrimSpace(in.Course)
	switch {
	case name == "":
		return nil, ErrNameRequired
	case course == "":
		return nil, ErrCourseRequired
	case in.Capacity < 0:
		return nil, ErrInvalidCapacity
	}

	capacity := in.Capacity
	if capacity == 0 {
		capacity = r.defaultCapacity
	}

	group := models.Group{
		Name:     name,
		Course:   course,
		Capacity: capacity,
		Meets:    strings.TrimSpace(in.Meets),
		Location: strings.TrimSpace(in.Location),
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		groupTags, err := tags.Ensure(tx, in.Tags...)
		if err != nil {
			return err
		}
		group.Tags = groupTags
		return tx.Omit("Tags.*").Create(&group).Error
	})
	if err != nil {
		return nil, apperr.Storage(err, "Failed to create study group")
	}

	return &group, nil
}

// Find returns the group with the given ID
func (r *Repository) Find(ctx context.Context, id uint) (*models.Group, error) {
	var group models.Group
	err := r.db.WithContext(ctx).Preload("Tags").First(&group, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrGroupNotFound
	}
	if err != nil {
		return nil, apperr.Storage(err, "Failed to fetch study group")
	}
	return &group, nil
}

// List returns groups matching filter in insertion order
func (r *Repository) List(ctx context.Context, filter Filter) ([]models.Group, error) {
	query := r.db.WithContext(ctx).Preload("Tags").Order("study_groups.id ASC")

	if course := strings.TrimSpace(filter.Course); course != "" {
		query = query.Where("LOWER(study_groups.course) LIKE ?", "%"+strings.ToLower(course)+"%")
	}
	if tag := tags.Normalize(filter.Tag); len(tag) > 0 {
		query = query.Where("study_groups.id IN (?)",
			r.db.Table("group_tags").
				Select("group_tags.group_id").
				Joins("INNER JOIN tags ON tags.id = group_tags.tag_id").
				Where("tags.name = ?", tag[0]))
	}

	groups := []models.Group{}
	if err := query.Find(&groups).Error; err != nil {
		return nil, apperr.Storage(err, "Failed to fetch study groups")
	}
	return groups, nil
}

// IncrementMembers takes one seat in a single conditional update.
// The capacity check and the increment are one statement, so two callers
// racing for the last seat cannot both succeed.
func (r *Repository) IncrementMembers(ctx context.Context, id uint) (*models.Group, error) {
	db := r.db.WithContext(ctx)

	result := db.Model(&models.Group{}).
		Where("id = ? AND member_count < capacity", id).
		UpdateColumn("member_count", gorm.Expr("member_count + 1"))
	if result.Error != nil {
		return nil, apperr.Storage(result.Error, "Failed to update study group")
	}

	if result.RowsAffected == 0 {
		// Either the group is gone or it is full
		if _, err := r.Find(ctx, id); err != nil {
			return nil, err
		}
		return nil, ErrCapacityExceeded
	}

	return r.Find(ctx, id)
}

// Members returns the members of a group in join order
func (r *Repository) Members(ctx context.Context, id uint) ([]models.Member, error) {
	if _, err := r.Find(ctx, id); err != nil {
		return nil, err
	}

	members := []models.Member{}
	err := r.db.WithContext(ctx).
		Joins("INNER JOIN memberships ON memberships.member_id = members.id").
		Where("memberships.group_id = ?", id).
		Order("memberships.id ASC").
		Find(&members).Error
	if err != nil {
		return nil, apperr.Storage(err, "Failed to fetch members")
	}
	return members, nil
}

// CountMemberships returns the number of membership rows for a group
func (r *Repository) CountMemberships(ctx context.Context, id uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Membership{}).Where("group_id = ?", id).Count(&count).Error
	if err != nil {
		return 0, apperr.Storage(err, "Failed to count members")
	}
	return count, nil
}

// FindByCourseAndName returns the first group with the exact course and title
func (r *Repository) FindByCourseAndName(ctx context.Context, course, name string) (*models.Group, error) {
	var group models.Group
	err := r.db.WithContext(ctx).
		Where("LOWER(course) = LOWER(?) AND LOWER(name) = LOWER(?)", strings.TrimSpace(course), strings.TrimSpace(name)).
		First(&group).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrGroupNotFound
	}
	if err != nil {
		return nil, apperr.Storage(err, "Failed to fetch study group")
	}
	return &group, nil
}
