package wrestler

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
	require.NoError(t, db.AutoMigrate(&lifecycle.Period{}, &Wrestler{}))
	return db
}

func day(n int) time.Time {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func TestWrestlerCRUDRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewWrestlerRepository(db)

	w := &Wrestler{
		Name:           "Ricky Steam",
		Hometown:       "Richmond, VA",
		HeightInches:   70,
		WeightLbs:      225,
		SignatureMoves: []string{"Flying Crossbody"},
	}
	require.NoError(t, repo.CreateWrestler(w))

	loaded, err := repo.GetWrestlerByID(w.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "Ricky Steam", loaded.Name)
	assert.Equal(t, []string{"Flying Crossbody"}, []string(loaded.SignatureMoves))

	loaded.WeightLbs = 230
	require.NoError(t, repo.UpdateWrestler(loaded))

	byName, err := repo.GetWrestlerByName("Ricky Steam")
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, 230, byName.WeightLbs)

	require.NoError(t, repo.DeleteWrestler(w.ID))
	gone, err := repo.GetWrestlerByID(w.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestGetWrestlerByIDMissingIsNil(t *testing.T) {
	db := newTestDB(t)
	repo := NewWrestlerRepository(db)

	missing, err := repo.GetWrestlerByID(999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestBookableIDsFiltersAndPreservesOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewWrestlerRepository(db)
	transitions := lifecycle.NewTransitions(lifecycle.NewPeriodRepository(db))

	employed := func(name string) *Wrestler {
		w := &Wrestler{Name: name}
		require.NoError(t, repo.CreateWrestler(w))
		require.NoError(t, transitions.Employ(w.AsOwner(), day(0)))
		return w
	}

	a := employed("A")
	b := employed("B")
	c := employed("C")
	require.NoError(t, transitions.Injure(b.AsOwner(), day(5)))

	// Unknown ids are skipped, ineligible ones dropped, order kept.
	eligible, err := repo.BookableIDs([]uint{c.ID, 999, b.ID, a.ID}, day(10))
	require.NoError(t, err)
	assert.Equal(t, []uint{c.ID, a.ID}, eligible)

	// The injury dropping B has not started yet at day 2.
	eligible, err = repo.BookableIDs([]uint{a.ID, b.ID}, day(2))
	require.NoError(t, err)
	assert.Equal(t, []uint{a.ID, b.ID}, eligible)
}
