package studygroups

import (
	"context"
	"errors"

	"github.com/ashub/ash/pkg/ash/apperr"
	"github.com/ashub/ash/pkg/ash/members"
	"github.com/ashub/ash/pkg/ash/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrGroupFull is returned when a join finds no free seat
	ErrGroupFull = ErrCapacityExceeded
	// ErrAlreadyMember is returned when the member already holds a seat
	ErrAlreadyMember = apperr.Conflict("Already a member of this group")
)

// JoinStatus is the outcome reported to callers of Join
type JoinStatus string

const (
	StatusJoined        JoinStatus = "joined"
	StatusWaitlisted    JoinStatus = "waitlisted"
	StatusAlreadyMember JoinStatus = "already_member"
)

// JoinResult is the state after a successful join
type JoinResult struct {
	Status JoinStatus
	Group  models.Group
	Member models.Member
}

// Service orchestrates joins against the group repository and member registry
type Service struct {
	db       *gorm.DB
	groups   *Repository
	resolver members.Resolver
	log      *zap.Logger
}

// NewService creates a new membership service
func NewService(db *gorm.DB, groups *Repository, resolver members.Resolver, log *zap.Logger) *Service {
	return &Service{db: db, groups: groups, resolver: resolver, log: log}
}

// Groups returns the underlying repository
func (s *Service) Groups() *Repository {
	return s.groups
}

// Join seats requesterName in the group.
//
// The membership insert and the conditional increment commit together or not
// at all. A duplicate (member, group) pair is rejected by the unique index, so
// two concurrent joins by the same member cannot both insert; a full group
// makes the increment affect no rows and the insert is rolled back.
func (s *Service) Join(ctx context.Context, groupID uint, requesterName, contact string) (*JoinResult, error) {
	if _, err := s.groups.Find(ctx, groupID); err != nil {
		return nil, err
	}

	member, err := s.resolver.ResolveOrCreate(ctx, requesterName, contact)
	if err != nil {
		return nil, err
	}

	var group *models.Group
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		membership := models.Membership{MemberID: member.ID, GroupID: groupID}
		if err := tx.Create(&membership).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyMember
			}
			return apperr.Storage(err, "Failed to join study group")
		}

		var err error
		group, err = s.groups.WithTx(tx).IncrementMembers(ctx, groupID)
		return err
	})
	if err != nil {
		if apperr.KindOf(err) == apperr.KindStorage {
			s.log.Error("join failed",
				zap.Uint("group_id", groupID),
				zap.Uint("member_id", member.ID),
				zap.Error(err))
		}
		return nil, err
	}

	s.log.Info("member joined study group",
		zap.Uint("group_id", groupID),
		zap.Uint("member_id", member.ID),
		zap.Int("member_count", group.MemberCount),
		zap.Bool("open", group.IsOpen()))

	return &JoinResult{Status: StatusJoined, Group: *group, Member: *member}, nil
}

// Create creates a group through the repository
func (s *Service) Create(ctx context.Context, in NewGroup) (*models.Group, error) {
	group, err := s.groups.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	s.log.Info("study group created",
		zap.Uint("group_id", group.ID),
		zap.String("course", group.Course),
		zap.Int("capacity", group.Capacity))
	return group, nil
}

// StatusOf maps a join error to the status reported to the caller
func StatusOf(err error) (JoinStatus, bool) {
	switch {
	case errors.Is(err, ErrGroupFull):
		return StatusWaitlisted, true
	case errors.Is(err, ErrAlreadyMember):
		return StatusAlreadyMember, true
	}
	return "", false
}
