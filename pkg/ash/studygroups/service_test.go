package studygroups

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/ashub/ash/pkg/ash/members"
	"github.com/ashub/ash/pkg/ash/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupTestService(t *testing.T) (*Service, *gorm.DB) {
	db := setupTestDB(t)
	svc := NewService(db, NewRepository(db, 0), members.NewRegistry(db), zap.NewNop())
	return svc, db
}

// assertCountMatchesRows checks member_count against the membership rows
func assertCountMatchesRows(t *testing.T, svc *Service, groupID uint) {
	t.Helper()
	ctx := context.Background()
	g, err := svc.Groups().Find(ctx, groupID)
	require.NoError(t, err)
	rows, err := svc.Groups().CountMemberships(ctx, groupID)
	require.NoError(t, err)
	assert.Equal(t, int64(g.MemberCount), rows, "member_count must equal membership rows")
	assert.LessOrEqual(t, g.MemberCount, g.Capacity)
}

func TestJoinScenario(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	g, err := svc.Create(ctx, NewGroup{Course: "CMPS101", Name: "Algo Study", Capacity: 2})
	require.NoError(t, err)

	alice, err := svc.Join(ctx, g.ID, "Alice", "")
	require.NoError(t, err)
	assert.Equal(t, StatusJoined, alice.Status)
	assert.Equal(t, 1, alice.Group.MemberCount)
	assert.True(t, alice.Group.IsOpen())

	bob, err := svc.Join(ctx, g.ID, "Bob", "")
	require.NoError(t, err)
	assert.Equal(t, 2, bob.Group.MemberCount)
	assert.False(t, bob.Group.IsOpen())

	_, err = svc.Join(ctx, g.ID, "Carol", "")
	assert.ErrorIs(t, err, ErrGroupFull)
	status, ok := StatusOf(err)
	assert.True(t, ok)
	assert.Equal(t, StatusWaitlisted, status)

	assertCountMatchesRows(t, svc, g.ID)

	listed, err := svc.Groups().List(ctx, Filter{Course: "CMPS101"})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, 2, listed[0].MemberCount)
}

func TestJoinUnknownGroup(t *testing.T) {
	svc, db := setupTestService(t)

	_, err := svc.Join(context.Background(), 404, "Alice", "")
	assert.ErrorIs(t, err, ErrGroupNotFound)

	var count int64
	db.Model(&models.Member{}).Count(&count)
	assert.Zero(t, count, "no member is created for an unknown group")
}

func TestJoinBlankName(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()
	g, err := svc.Create(ctx, NewGroup{Course: "CMPS101", Name: "Algo Study"})
	require.NoError(t, err)

	_, err = svc.Join(ctx, g.ID, "   ", "")
	assert.ErrorIs(t, err, members.ErrNameRequired)
	assertCountMatchesRows(t, svc, g.ID)
}

func TestJoinTwiceIsRejected(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()
	g, err := svc.Create(ctx, NewGroup{Course: "CMPS101", Name: "Algo Study", Capacity: 3})
	require.NoError(t, err)

	_, err = svc.Join(ctx, g.ID, "Alice", "")
	require.NoError(t, err)

	_, err = svc.Join(ctx, g.ID, " alice ", "")
	assert.ErrorIs(t, err, ErrAlreadyMember)
	status, _ := StatusOf(err)
	assert.Equal(t, StatusAlreadyMember, status)

	found, err := svc.Groups().Find(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, found.MemberCount)
	assertCountMatchesRows(t, svc, g.ID)
}

func TestAlreadyMemberTakesPrecedenceOverFull(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()
	g, err := svc.Create(ctx, NewGroup{Course: "CMPS101", Name: "Solo", Capacity: 1})
	require.NoError(t, err)

	_, err = svc.Join(ctx, g.ID, "Alice", "alice@example.com")
	require.NoError(t, err)

	_, err = svc.Join(ctx, g.ID, "Alice", "alice@example.com")
	assert.ErrorIs(t, err, ErrAlreadyMember)
}

func TestFullGroupRollsBackMembership(t *testing.T) {
	svc, db := setupTestService(t)
	ctx := context.Background()
	g, err := svc.Create(ctx, NewGroup{Course: "CMPS101", Name: "Solo", Capacity: 1})
	require.NoError(t, err)

	_, err = svc.Join(ctx, g.ID, "Alice", "")
	require.NoError(t, err)
	_, err = svc.Join(ctx, g.ID, "Bob", "")
	require.ErrorIs(t, err, ErrGroupFull)

	var bobRows int64
	db.Model(&models.Membership{}).
		Joins("INNER JOIN members ON members.id = memberships.member_id").
		Where("members.name = ?", "Bob").
		Count(&bobRows)
	assert.Zero(t, bobRows, "rejected join must not leave a membership row")
	assertCountMatchesRows(t, svc, g.ID)
}

func TestConcurrentJoinsFillExactlyRemainingSeats(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	const capacity = 5
	const alreadyJoined = 2
	const requests = 12

	g, err := svc.Create(ctx, NewGroup{Course: "CMPS262", Name: "Race", Capacity: capacity})
	require.NoError(t, err)
	for i := 0; i < alreadyJoined; i++ {
		_, err := svc.Join(ctx, g.ID, fmt.Sprintf("early-%d", i), "")
		require.NoError(t, err)
	}

	var joined, waitlisted, other int32
	var wg sync.WaitGroup
	for i := 0; i < requests; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.Join(ctx, g.ID, fmt.Sprintf("student-%d", i), "")
			switch {
			case err == nil:
				atomic.AddInt32(&joined, 1)
			case errors.Is(err, ErrGroupFull):
				atomic.AddInt32(&waitlisted, 1)
			default:
				atomic.AddInt32(&other, 1)
			}
		}(i)
	}
	wg.Wait()

	remaining := capacity - alreadyJoined
	assert.Equal(t, int32(remaining), joined)
	assert.Equal(t, int32(requests-remaining), waitlisted)
	assert.Zero(t, other)

	final, err := svc.Groups().Find(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, capacity, final.MemberCount)
	assertCountMatchesRows(t, svc, g.ID)
}

func TestConcurrentDuplicateJoinsCreateOneRow(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()
	g, err := svc.Create(ctx, NewGroup{Course: "CMPS262", Name: "Dupes", Capacity: 10})
	require.NoError(t, err)

	var joined, already int32
	var wg sync.WaitGroup
	for i := 0; i < 6; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Join(ctx, g.ID, "Dana", "dana@example.com")
			switch {
			case err == nil:
				atomic.AddInt32(&joined, 1)
			case errors.Is(err, ErrAlreadyMember):
				atomic.AddInt32(&already, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), joined)
	assert.Equal(t, int32(5), already)
	assertCountMatchesRows(t, svc, g.ID)
}

func TestMembersInJoinOrder(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()
	g, err := svc.Create(ctx, NewGroup{Course: "CMPS101", Name: "Algo Study"})
	require.NoError(t, err)

	for _, name := range []string{"Zed", "Amy"} {
		_, err := svc.Join(ctx, g.ID, name, "")
		require.NoError(t, err)
	}

	got, err := svc.Groups().Members(ctx, g.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Zed", got[0].Name)
	assert.Equal(t, "Amy", got[1].Name)

	_, err = svc.Groups().Members(ctx, 999)
	assert.ErrorIs(t, err, ErrGroupNotFound)
}
