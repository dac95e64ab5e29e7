package members

import (
	"context"
	"errors"
	"strings"

	"github.com/ashub/ash/pkg/ash/apperr"
	"github.com/ashub/ash/pkg/ash/models"
	"gorm.io/gorm"
)

// ErrNameRequired is returned when no display name was supplied
var ErrNameRequired = apperr.Validation("Name is required")

// Resolver turns a human-entered name and optional contact address into a
// stable member identity. It is the single place identity is decided, so an
// authentication-backed lookup can replace Registry without touching callers.
type Resolver interface {
	ResolveOrCreate(ctx context.Context, displayName, contact string) (*models.Member, error)
}

// Registry resolves members against the members table
type Registry struct {
	db *gorm.DB
}

// NewRegistry creates a new member registry
func NewRegistry(db *gorm.DB) *Registry {
	return &Registry{db: db}
}

// WithTx returns a registry that works inside tx
func (r *Registry) WithTx(tx *gorm.DB) *Registry {
	return &Registry{db: tx}
}

// NaturalKey returns the deduplication key for a name/contact pair
func NaturalKey(displayName, contact string) string {
	if contact = strings.ToLower(strings.TrimSpace(contact)); contact != "" {
		return contact
	}
	return "name:" + strings.ToLower(strings.Join(strings.Fields(displayName), " "))
}

// ResolveOrCreate returns the member matching the contact address (or the
// name when no contact is given), creating it on first sight.
// A concurrent creator losing the unique-key race re-reads the winner's row.
func (r *Registry) ResolveOrCreate(ctx context.Context, displayName, contact string) (*models.Member, error) {
	name := strings.Join(strings.Fields(displayName), " ")
	if name == "" {
		return nil, ErrNameRequired
	}
	key := NaturalKey(name, contact)
	db := r.db.WithContext(ctx)

	var member models.Member
	err := db.Where("natural_key = ?", key).First(&member).Error
	if err == nil {
		return &member, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Storage(err, "Failed to look up member")
	}

	member = models.Member{
		NaturalKey: key,
		Name:       name,
		Email:      strings.ToLower(strings.TrimSpace(contact)),
	}
	if err := db.Create(&member).Error; err != nil {
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Storage(err, "Failed to create member")
		}
		if err := db.Where("natural_key = ?", key).First(&member).Error; err != nil {
			return nil, apperr.Storage(err, "Failed to look up member")
		}
	}

	return &member, nil
}

// FindByEmail returns the member registered under email
func (r *Registry) FindByEmail(ctx context.Context, email string) (*models.Member, error) {
	var member models.Member
	err := r.db.WithContext(ctx).Where("natural_key = ?", strings.ToLower(strings.TrimSpace(email))).First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMemberNotFound
	}
	if err != nil {
		return nil, apperr.Storage(err, "Failed to look up member")
	}
	return &member, nil
}
