package title

import (
	"fmt"
	"testing"
	"time"

	"github.com/ringsidehq/ringside/internal/championship"
	"github.com/ringsidehq/ringside/internal/lifecycle"
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
	require.NoError(t, db.AutoMigrate(&lifecycle.Period{}, &Title{}))
	return db
}

func day(n int) time.Time {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func TestActiveIDsRequiresDebut(t *testing.T) {
	db := newTestDB(t)
	repo := NewTitleRepository(db)
	transitions := lifecycle.NewTransitions(lifecycle.NewPeriodRepository(db))

	debuted := &Title{Name: "World Title"}
	shelved := &Title{Name: "Shelved Title"}
	require.NoError(t, repo.CreateTitle(debuted))
	require.NoError(t, repo.CreateTitle(shelved))
	require.NoError(t, transitions.Activate(debuted.AsOwner(), day(0)))

	active, err := repo.ActiveIDs([]uint{debuted.ID, shelved.ID, 999}, day(10))
	require.NoError(t, err)
	assert.Equal(t, []uint{debuted.ID}, active)
}

func TestActiveIDsExcludesPulledAndRetiredTitles(t *testing.T) {
	db := newTestDB(t)
	repo := NewTitleRepository(db)
	transitions := lifecycle.NewTransitions(lifecycle.NewPeriodRepository(db))

	pulled := &Title{Name: "Pulled Title"}
	retired := &Title{Name: "Retired Title"}
	require.NoError(t, repo.CreateTitle(pulled))
	require.NoError(t, repo.CreateTitle(retired))

	require.NoError(t, transitions.Activate(pulled.AsOwner(), day(0)))
	require.NoError(t, transitions.Deactivate(pulled.AsOwner(), day(5)))

	require.NoError(t, transitions.Activate(retired.AsOwner(), day(0)))
	require.NoError(t, transitions.Retire(retired.AsOwner(), day(5)))

	active, err := repo.ActiveIDs([]uint{pulled.ID, retired.ID}, day(10))
	require.NoError(t, err)
	assert.Empty(t, active)

	// Both were in circulation before day 5.
	active, err = repo.ActiveIDs([]uint{pulled.ID, retired.ID}, day(3))
	require.NoError(t, err)
	assert.Equal(t, []uint{pulled.ID, retired.ID}, active)
}

func TestRetireEndsReignAndActivityTogether(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.AutoMigrate(&championship.Championship{}))
	repo := NewTitleRepository(db)
	periods := lifecycle.NewPeriodRepository(db)
	transitions := lifecycle.NewTransitions(periods)
	reigns := championship.NewChampionshipRepository(db)

	belt := &Title{Name: "World Title"}
	require.NoError(t, repo.CreateTitle(belt))
	require.NoError(t, transitions.Activate(belt.AsOwner(), day(0)))
	require.NoError(t, reigns.Award(belt.ID, championship.Champion{ID: 7, Type: models.RosterWrestler}, day(1)))

	require.NoError(t, retire(db, belt, day(20)))

	current, err := reigns.Current(belt.ID)
	require.NoError(t, err)
	assert.Nil(t, current)

	previous, err := reigns.Previous(belt.ID)
	require.NoError(t, err)
	require.NotNil(t, previous)
	require.NotNil(t, previous.LostAt)
	assert.True(t, previous.LostAt.Equal(day(20)))

	status := lifecycle.NewStatus(periods)
	retired, err := status.IsRetired(belt.AsOwner(), day(21))
	require.NoError(t, err)
	assert.True(t, retired)

	active, err := status.IsCurrentlyActive(belt.AsOwner(), day(21))
	require.NoError(t, err)
	assert.False(t, active)
}
