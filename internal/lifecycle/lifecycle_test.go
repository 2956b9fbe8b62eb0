package lifecycle

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
	require.NoError(t, db.AutoMigrate(&Period{}))
	return db
}

func day(n int) time.Time {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

var wrestlerOne = Owner{ID: 1, Type: models.RosterWrestler}

func countPeriods(t *testing.T, db *gorm.DB, owner Owner, kind Kind) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&Period{}).
		Where("owner_id = ? AND owner_type = ? AND kind = ?", owner.ID, owner.Type, kind).
		Count(&n).Error)
	return n
}

func countOpen(t *testing.T, db *gorm.DB, owner Owner, kind Kind) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&Period{}).
		Where("owner_id = ? AND owner_type = ? AND kind = ? AND ended_at IS NULL", owner.ID, owner.Type, kind).
		Count(&n).Error)
	return n
}

func TestOpenThenCloseRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewPeriodRepository(db)
	status := NewStatus(repo)
	transitions := NewTransitions(repo)

	require.NoError(t, transitions.Employ(wrestlerOne, day(0)))

	employed, err := status.IsEmployed(wrestlerOne, day(10))
	require.NoError(t, err)
	assert.True(t, employed)

	require.NoError(t, transitions.Release(wrestlerOne, day(152)))

	employed, err = status.IsEmployed(wrestlerOne, day(153))
	require.NoError(t, err)
	assert.False(t, employed)

	previous, err := repo.Previous(wrestlerOne, KindEmployment)
	require.NoError(t, err)
	require.NotNil(t, previous)
	require.NotNil(t, previous.EndedAt)
	assert.True(t, previous.EndedAt.Equal(day(152)))
	assert.True(t, previous.StartedAt.Equal(day(0)))
}

func TestAtMostOneOpenPeriodPerKind(t *testing.T) {
	db := newTestDB(t)
	repo := NewPeriodRepository(db)
	transitions := NewTransitions(repo)

	// Arbitrary interleavings of open/close never leave two open rows.
	require.NoError(t, transitions.Employ(wrestlerOne, day(0)))
	require.NoError(t, transitions.Employ(wrestlerOne, day(5)))
	require.NoError(t, transitions.Release(wrestlerOne, day(10)))
	require.NoError(t, transitions.Employ(wrestlerOne, day(20)))
	require.NoError(t, transitions.Suspend(wrestlerOne, day(25)))
	require.NoError(t, transitions.Suspend(wrestlerOne, day(26)))

	for _, kind := range []Kind{KindEmployment, KindSuspension} {
		assert.LessOrEqual(t, countOpen(t, db, wrestlerOne, kind), int64(1), "kind %s", kind)
	}
	// The closed employment survives alongside the reopened one.
	assert.Equal(t, int64(2), countPeriods(t, db, wrestlerOne, KindEmployment))
}

func TestReopenReplacesStartDate(t *testing.T) {
	db := newTestDB(t)
	repo := NewPeriodRepository(db)

	require.NoError(t, repo.Open(wrestlerOne, KindEmployment, day(0)))
	require.NoError(t, repo.Open(wrestlerOne, KindEmployment, day(7)))

	assert.Equal(t, int64(1), countPeriods(t, db, wrestlerOne, KindEmployment))

	current, err := repo.CurrentOpen(wrestlerOne, KindEmployment)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.True(t, current.StartedAt.Equal(day(7)))
}

func TestCloseWithoutOpenPeriodIsNoOp(t *testing.T) {
	db := newTestDB(t)
	repo := NewPeriodRepository(db)

	require.NoError(t, repo.Close(wrestlerOne, KindEmployment, day(1)))
	assert.Equal(t, int64(0), countPeriods(t, db, wrestlerOne, KindEmployment))

	// Same with only closed history present.
	require.NoError(t, repo.Open(wrestlerOne, KindEmployment, day(0)))
	require.NoError(t, repo.Close(wrestlerOne, KindEmployment, day(2)))
	require.NoError(t, repo.Close(wrestlerOne, KindEmployment, day(3)))

	assert.Equal(t, int64(1), countPeriods(t, db, wrestlerOne, KindEmployment))
	previous, err := repo.Previous(wrestlerOne, KindEmployment)
	require.NoError(t, err)
	require.NotNil(t, previous.EndedAt)
	assert.True(t, previous.EndedAt.Equal(day(2)))
}

func TestStatusMirrorsPeriods(t *testing.T) {
	db := newTestDB(t)
	repo := NewPeriodRepository(db)
	status := NewStatus(repo)
	transitions := NewTransitions(repo)

	// No history at all: every predicate is false, nothing errors.
	for name, predicate := range map[string]func(Owner, time.Time) (bool, error){
		"employed":  status.IsEmployed,
		"suspended": status.IsSuspended,
		"injured":   status.IsInjured,
		"retired":   status.IsRetired,
		"active":    status.IsCurrentlyActive,
	} {
		got, err := predicate(wrestlerOne, day(0))
		require.NoError(t, err, name)
		assert.False(t, got, name)
	}

	unactivated, err := status.IsUnactivated(wrestlerOne)
	require.NoError(t, err)
	assert.True(t, unactivated)

	require.NoError(t, transitions.Suspend(wrestlerOne, day(1)))
	suspended, err := status.IsSuspended(wrestlerOne, day(2))
	require.NoError(t, err)
	assert.True(t, suspended)

	require.NoError(t, transitions.Reinstate(wrestlerOne, day(3)))
	suspended, err = status.IsSuspended(wrestlerOne, day(4))
	require.NoError(t, err)
	assert.False(t, suspended)

	hasClosed, err := repo.HasClosed(wrestlerOne, KindSuspension)
	require.NoError(t, err)
	assert.True(t, hasClosed)
}

func TestInactiveVersusUnactivated(t *testing.T) {
	db := newTestDB(t)
	repo := NewPeriodRepository(db)
	status := NewStatus(repo)
	transitions := NewTransitions(repo)
	title := Owner{ID: 3, Type: models.RosterTitle}

	require.NoError(t, transitions.Activate(title, day(0)))
	require.NoError(t, transitions.Deactivate(title, day(30)))

	inactive, err := status.IsInactive(title, day(31))
	require.NoError(t, err)
	assert.True(t, inactive)

	// Historical activity exists, so the title is no longer unactivated.
	unactivated, err := status.IsUnactivated(title)
	require.NoError(t, err)
	assert.False(t, unactivated)
}

func TestFutureEmploymentIsNotCurrent(t *testing.T) {
	db := newTestDB(t)
	repo := NewPeriodRepository(db)
	status := NewStatus(repo)

	require.NoError(t, repo.Open(wrestlerOne, KindEmployment, day(30)))

	employed, err := status.IsEmployed(wrestlerOne, day(10))
	require.NoError(t, err)
	assert.False(t, employed)

	future, err := status.HasFutureEmployment(wrestlerOne, day(10))
	require.NoError(t, err)
	assert.True(t, future)

	// Once the start date passes, the same row is the current employment.
	employed, err = status.IsEmployed(wrestlerOne, day(31))
	require.NoError(t, err)
	assert.True(t, employed)
}

func TestRetireClosesOpenActivityPeriod(t *testing.T) {
	db := newTestDB(t)
	repo := NewPeriodRepository(db)
	transitions := NewTransitions(repo)
	stable := Owner{ID: 7, Type: models.RosterStable}

	require.NoError(t, transitions.Activate(stable, day(10)))
	require.NoError(t, transitions.Retire(stable, day(50)))

	activity, err := repo.Previous(stable, KindActivity)
	require.NoError(t, err)
	require.NotNil(t, activity)
	require.NotNil(t, activity.EndedAt)
	assert.True(t, activity.EndedAt.Equal(day(50)))

	retirement, err := repo.CurrentOpen(stable, KindRetirement)
	require.NoError(t, err)
	require.NotNil(t, retirement)
	assert.True(t, retirement.StartedAt.Equal(day(50)))
	assert.Nil(t, retirement.EndedAt)
}

func TestRetireWithoutActivityPeriod(t *testing.T) {
	db := newTestDB(t)
	repo := NewPeriodRepository(db)
	transitions := NewTransitions(repo)

	// Wrestlers carry no activity periods; retiring one only opens retirement.
	require.NoError(t, transitions.Employ(wrestlerOne, day(0)))
	require.NoError(t, transitions.Retire(wrestlerOne, day(100)))

	assert.Equal(t, int64(0), countPeriods(t, db, wrestlerOne, KindActivity))
	retirement, err := repo.CurrentOpen(wrestlerOne, KindRetirement)
	require.NoError(t, err)
	require.NotNil(t, retirement)
}

func TestFirstAndPreviousOrdering(t *testing.T) {
	db := newTestDB(t)
	repo := NewPeriodRepository(db)

	require.NoError(t, repo.Open(wrestlerOne, KindEmployment, day(0)))
	require.NoError(t, repo.Close(wrestlerOne, KindEmployment, day(10)))
	require.NoError(t, repo.Open(wrestlerOne, KindEmployment, day(20)))
	require.NoError(t, repo.Close(wrestlerOne, KindEmployment, day(30)))
	require.NoError(t, repo.Open(wrestlerOne, KindEmployment, day(40)))

	first, err := repo.First(wrestlerOne, KindEmployment)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.True(t, first.StartedAt.Equal(day(0)))

	previous, err := repo.Previous(wrestlerOne, KindEmployment)
	require.NoError(t, err)
	require.NotNil(t, previous)
	assert.True(t, previous.StartedAt.Equal(day(20)))

	all, err := repo.PreviousAll(wrestlerOne, KindEmployment)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.True(t, all[0].StartedAt.Equal(day(20)))
	assert.True(t, all[1].StartedAt.Equal(day(0)))
}

func TestQueriesOnEmptyHistory(t *testing.T) {
	db := newTestDB(t)
	repo := NewPeriodRepository(db)
	ghost := Owner{ID: 99, Type: models.RosterManager}

	current, err := repo.Current(ghost, KindEmployment, day(0))
	require.NoError(t, err)
	assert.Nil(t, current)

	previous, err := repo.Previous(ghost, KindEmployment)
	require.NoError(t, err)
	assert.Nil(t, previous)

	first, err := repo.First(ghost, KindEmployment)
	require.NoError(t, err)
	assert.Nil(t, first)

	all, err := repo.PreviousAll(ghost, KindEmployment)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestBookablePredicate(t *testing.T) {
	db := newTestDB(t)
	repo := NewPeriodRepository(db)
	status := NewStatus(repo)
	transitions := NewTransitions(repo)

	bookable, err := status.IsBookable(wrestlerOne, day(0))
	require.NoError(t, err)
	assert.False(t, bookable, "unemployed wrestler is not bookable")

	require.NoError(t, transitions.Employ(wrestlerOne, day(0)))
	bookable, err = status.IsBookable(wrestlerOne, day(1))
	require.NoError(t, err)
	assert.True(t, bookable)

	require.NoError(t, transitions.Injure(wrestlerOne, day(2)))
	bookable, err = status.IsBookable(wrestlerOne, day(3))
	require.NoError(t, err)
	assert.False(t, bookable, "injured wrestler is not bookable")

	require.NoError(t, transitions.Heal(wrestlerOne, day(4)))
	bookable, err = status.IsBookable(wrestlerOne, day(5))
	require.NoError(t, err)
	assert.True(t, bookable)
}

func TestReleaseAndRetireIsOneStep(t *testing.T) {
	db := newTestDB(t)
	repo := NewPeriodRepository(db)
	status := NewStatus(repo)
	transitions := NewTransitions(repo)

	require.NoError(t, transitions.Employ(wrestlerOne, day(0)))
	require.NoError(t, transitions.ReleaseAndRetire(wrestlerOne, day(10)))

	employed, err := status.IsEmployed(wrestlerOne, day(11))
	require.NoError(t, err)
	assert.False(t, employed)

	retired, err := status.IsRetired(wrestlerOne, day(11))
	require.NoError(t, err)
	assert.True(t, retired)

	employment, err := repo.Previous(wrestlerOne, KindEmployment)
	require.NoError(t, err)
	require.NotNil(t, employment)
	require.NotNil(t, employment.EndedAt)
	assert.True(t, employment.EndedAt.Equal(day(10)))
}
