package membership

import (
	"fmt"
	"testing"
	"time"

	"github.com/ringsidehq/ringside/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Membership{}))
	return db
}

func day(n int) time.Time {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

var (
	horsemen = Group{ID: 1, Type: models.RosterStable}
	flair    = Member{ID: 10, Type: models.RosterWrestler}
	anderson = Member{ID: 11, Type: models.RosterWrestler}
	brainCo  = Member{ID: 3, Type: models.RosterTagTeam}
)

func TestAddAndRemoveMember(t *testing.T) {
	db := newTestDB(t)
	repo := NewMembershipRepository(db)

	require.NoError(t, repo.AddMember(horsemen, flair, day(0)))

	current, err := repo.CurrentMembership(horsemen, flair)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.True(t, current.JoinedAt.Equal(day(0)))
	assert.Nil(t, current.LeftAt)

	require.NoError(t, repo.RemoveMember(horsemen, flair, day(30)))

	current, err = repo.CurrentMembership(horsemen, flair)
	require.NoError(t, err)
	assert.Nil(t, current)

	previous, err := repo.PreviousMemberships(horsemen)
	require.NoError(t, err)
	require.Len(t, previous, 1)
	require.NotNil(t, previous[0].LeftAt)
	assert.True(t, previous[0].LeftAt.Equal(day(30)))
}

func TestRejoinReplacesJoinDate(t *testing.T) {
	db := newTestDB(t)
	repo := NewMembershipRepository(db)

	require.NoError(t, repo.AddMember(horsemen, flair, day(0)))
	require.NoError(t, repo.AddMember(horsemen, flair, day(5)))

	var n int64
	require.NoError(t, db.Model(&Membership{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)

	current, err := repo.CurrentMembership(horsemen, flair)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.True(t, current.JoinedAt.Equal(day(5)))
}

func TestRemoveMemberWithoutMembershipIsNoOp(t *testing.T) {
	db := newTestDB(t)
	repo := NewMembershipRepository(db)

	require.NoError(t, repo.RemoveMember(horsemen, flair, day(1)))

	var n int64
	require.NoError(t, db.Model(&Membership{}).Count(&n).Error)
	assert.Equal(t, int64(0), n)
}

func TestBulkAddSkipsUnsupportedMemberTypes(t *testing.T) {
	db := newTestDB(t)
	repo := NewMembershipRepository(db)
	tagTeamRoster := Group{ID: 3, Type: models.RosterTagTeam}

	// Tag-team rosters only enroll wrestlers; the tag-team member is skipped.
	require.NoError(t, repo.AddMembers(tagTeamRoster, []Member{flair, anderson, brainCo}, day(0)))

	current, err := repo.CurrentMembers(tagTeamRoster)
	require.NoError(t, err)
	require.Len(t, current, 2)
	for _, row := range current {
		assert.Equal(t, models.RosterWrestler, row.MemberType)
	}
}

func TestSyncMembers(t *testing.T) {
	db := newTestDB(t)
	repo := NewMembershipRepository(db)

	require.NoError(t, repo.AddMembers(horsemen, []Member{flair, anderson}, day(0)))

	// Flair stays, Anderson leaves, the tag team joins.
	require.NoError(t, repo.SyncMembers(horsemen,
		[]Member{flair, anderson},
		[]Member{flair, brainCo},
		day(40)))

	current, err := repo.CurrentMembers(horsemen)
	require.NoError(t, err)
	require.Len(t, current, 2)

	byMember := map[uint]Membership{}
	for _, row := range current {
		byMember[row.MemberID] = row
	}
	assert.Contains(t, byMember, flair.ID)
	assert.Contains(t, byMember, brainCo.ID)
	// The overlapping member is closed and reopened at the sync instant.
	assert.True(t, byMember[flair.ID].JoinedAt.Equal(day(40)))

	previous, err := repo.PreviousMemberships(horsemen)
	require.NoError(t, err)
	require.Len(t, previous, 2)
	for _, row := range previous {
		require.NotNil(t, row.LeftAt)
		assert.True(t, row.LeftAt.Equal(day(40)))
	}
}

func TestDisbandAllClosesEveryOpenMembership(t *testing.T) {
	db := newTestDB(t)
	repo := NewMembershipRepository(db)

	require.NoError(t, repo.AddMembers(horsemen, []Member{flair, anderson, brainCo}, day(0)))
	require.NoError(t, repo.DisbandAll(horsemen, day(90)))

	current, err := repo.CurrentMembers(horsemen)
	require.NoError(t, err)
	assert.Empty(t, current)

	previous, err := repo.PreviousMemberships(horsemen)
	require.NoError(t, err)
	require.Len(t, previous, 3)
	for _, row := range previous {
		require.NotNil(t, row.LeftAt)
		assert.True(t, row.LeftAt.Equal(day(90)))
	}
}

func TestMembershipsOfMemberSpanGroups(t *testing.T) {
	db := newTestDB(t)
	repo := NewMembershipRepository(db)
	nwo := Group{ID: 2, Type: models.RosterStable}

	require.NoError(t, repo.AddMember(horsemen, flair, day(0)))
	require.NoError(t, repo.RemoveMember(horsemen, flair, day(10)))
	require.NoError(t, repo.AddMember(nwo, flair, day(20)))

	history, err := repo.MembershipsOf(flair)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, nwo.ID, history[0].GroupID)
	assert.Equal(t, horsemen.ID, history[1].GroupID)
}

func TestManagersServeWrestlersAndTagTeams(t *testing.T) {
	db := newTestDB(t)
	repo := NewMembershipRepository(db)
	heenan := Member{ID: 50, Type: models.RosterManager}
	wrestler := Group{ID: 10, Type: models.RosterWrestler}
	team := Group{ID: 3, Type: models.RosterTagTeam}

	require.NoError(t, repo.AddMembers(wrestler, []Member{heenan}, day(0)))
	require.NoError(t, repo.AddMembers(team, []Member{heenan}, day(0)))

	current, err := repo.CurrentMembers(team)
	require.NoError(t, err)
	require.Len(t, current, 1)
	assert.Equal(t, heenan.ID, current[0].MemberID)
	assert.Equal(t, models.RosterManager, current[0].MemberType)

	history, err := repo.MembershipsOf(heenan)
	require.NoError(t, err)
	assert.Len(t, history, 2)

	require.NoError(t, repo.RemoveMember(team, heenan, day(30)))
	current, err = repo.CurrentMembers(team)
	require.NoError(t, err)
	assert.Empty(t, current)

	current, err = repo.CurrentMembers(wrestler)
	require.NoError(t, err)
	require.Len(t, current, 1)
}

func TestStablesDoNotEnrollManagers(t *testing.T) {
	db := newTestDB(t)
	repo := NewMembershipRepository(db)
	heenan := Member{ID: 50, Type: models.RosterManager}

	require.NoError(t, repo.AddMembers(horsemen, []Member{heenan, flair}, day(0)))

	current, err := repo.CurrentMembers(horsemen)
	require.NoError(t, err)
	require.Len(t, current, 1)
	assert.Equal(t, flair.ID, current[0].MemberID)
}
