package manager

import (
	"fmt"
	"testing"
	"time"

	"github.com/ringsidehq/ringside/internal/lifecycle"
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
	require.NoError(t, db.AutoMigrate(&lifecycle.Period{}, &Manager{}))
	return db
}

func day(n int) time.Time {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func TestAvailableIDsTracksLifecycle(t *testing.T) {
	db := newTestDB(t)
	repo := NewManagerRepository(db)
	transitions := lifecycle.NewTransitions(lifecycle.NewPeriodRepository(db))

	heenan := &Manager{Name: "The Brain"}
	hart := &Manager{Name: "The Mouth"}
	require.NoError(t, repo.CreateManager(heenan))
	require.NoError(t, repo.CreateManager(hart))

	require.NoError(t, transitions.Employ(heenan.AsOwner(), day(0)))
	require.NoError(t, transitions.Employ(hart.AsOwner(), day(0)))
	require.NoError(t, transitions.Suspend(hart.AsOwner(), day(5)))

	available, err := repo.AvailableIDs([]uint{heenan.ID, hart.ID}, day(10))
	require.NoError(t, err)
	assert.Equal(t, []uint{heenan.ID}, available)

	require.NoError(t, transitions.Reinstate(hart.AsOwner(), day(20)))
	available, err = repo.AvailableIDs([]uint{heenan.ID, hart.ID}, day(30))
	require.NoError(t, err)
	assert.Equal(t, []uint{heenan.ID, hart.ID}, available)
}
