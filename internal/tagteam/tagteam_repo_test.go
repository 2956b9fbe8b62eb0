package tagteam

import (
	"fmt"
	"testing"
	"time"

	"github.com/ringsidehq/ringside/internal/membership"
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
	require.NoError(t, db.AutoMigrate(&TagTeam{}, &membership.Membership{}))
	return db
}

func day(n int) time.Time {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func TestRosterSyncLeavesManagersInPlace(t *testing.T) {
	db := newTestDB(t)
	members := membership.NewMembershipRepository(db)

	team := &TagTeam{Name: "The Brain Busters"}
	require.NoError(t, NewTagTeamRepository(db).CreateTagTeam(team))
	group := team.AsGroup()

	heenan := membership.Member{ID: 50, Type: models.RosterManager}
	require.NoError(t, members.AddMembers(group, []membership.Member{
		{ID: 1, Type: models.RosterWrestler},
		{ID: 2, Type: models.RosterWrestler},
		heenan,
	}, day(0)))

	require.NoError(t, syncRoster(members, group, []uint{2, 3}, day(10)))

	current, err := members.CurrentMembers(group)
	require.NoError(t, err)
	require.Len(t, current, 3)

	byMember := map[uint]models.RosterType{}
	for _, row := range current {
		byMember[row.MemberID] = row.MemberType
	}
	assert.Equal(t, models.RosterWrestler, byMember[2])
	assert.Equal(t, models.RosterWrestler, byMember[3])
	assert.Equal(t, models.RosterManager, byMember[50])

	manager, err := members.CurrentMembership(group, heenan)
	require.NoError(t, err)
	require.NotNil(t, manager)
	assert.True(t, manager.JoinedAt.Equal(day(0)), "sync must not restart the manager's tenure")
}
