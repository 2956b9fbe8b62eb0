package stable

import (
	"fmt"
	"testing"
	"time"

	"github.com/ringsidehq/ringside/internal/lifecycle"
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
	require.NoError(t, db.AutoMigrate(&Stable{}, &lifecycle.Period{}, &membership.Membership{}))
	return db
}

func day(n int) time.Time {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func TestDisbandClosesRosterAndDeactivatesTogether(t *testing.T) {
	db := newTestDB(t)
	members := membership.NewMembershipRepository(db)
	periods := lifecycle.NewPeriodRepository(db)
	transitions := lifecycle.NewTransitions(periods)

	horsemen := &Stable{Name: "The Four Horsemen"}
	require.NoError(t, NewStableRepository(db).CreateStable(horsemen))
	require.NoError(t, transitions.Activate(horsemen.AsOwner(), day(0)))
	require.NoError(t, members.AddMembers(horsemen.AsGroup(), []membership.Member{
		{ID: 10, Type: models.RosterWrestler},
		{ID: 11, Type: models.RosterWrestler},
		{ID: 3, Type: models.RosterTagTeam},
	}, day(0)))

	require.NoError(t, disband(db, horsemen, day(90)))

	current, err := members.CurrentMembers(horsemen.AsGroup())
	require.NoError(t, err)
	assert.Empty(t, current)

	previous, err := members.PreviousMemberships(horsemen.AsGroup())
	require.NoError(t, err)
	require.Len(t, previous, 3)
	for _, row := range previous {
		require.NotNil(t, row.LeftAt)
		assert.True(t, row.LeftAt.Equal(day(90)))
	}

	status := lifecycle.NewStatus(periods)
	active, err := status.IsCurrentlyActive(horsemen.AsOwner(), day(91))
	require.NoError(t, err)
	assert.False(t, active)

	activity, err := periods.Previous(horsemen.AsOwner(), lifecycle.KindActivity)
	require.NoError(t, err)
	require.NotNil(t, activity)
	require.NotNil(t, activity.EndedAt)
	assert.True(t, activity.EndedAt.Equal(day(90)))
}
