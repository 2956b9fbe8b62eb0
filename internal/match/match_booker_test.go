package match

import (
	"fmt"
	"testing"
	"time"

	"github.com/ringsidehq/ringside/internal/lifecycle"
	"github.com/ringsidehq/ringside/internal/referee"
	"github.com/ringsidehq/ringside/internal/tagteam"
	"github.com/ringsidehq/ringside/internal/title"
	"github.com/ringsidehq/ringside/internal/wrestler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type bookerFixture struct {
	db          *gorm.DB
	repo        MatchRepository
	booker      *Booker
	transitions *lifecycle.Transitions
}

func newBookerFixture(t *testing.T) *bookerFixture {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&lifecycle.Period{},
		&wrestler.Wrestler{}, &tagteam.TagTeam{}, &referee.Referee{}, &title.Title{},
		&MatchType{}, &EventMatch{}, &MatchCompetitor{}, &MatchReferee{}, &MatchTitle{},
	))

	repo := NewMatchRepository(db)
	return &bookerFixture{
		db:   db,
		repo: repo,
		booker: NewBooker(
			repo,
			wrestler.NewWrestlerRepository(db),
			tagteam.NewTagTeamRepository(db),
			referee.NewRefereeRepository(db),
			title.NewTitleRepository(db),
		),
		transitions: lifecycle.NewTransitions(lifecycle.NewPeriodRepository(db)),
	}
}

func day(n int) time.Time {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func (f *bookerFixture) employedWrestler(t *testing.T, name string) *wrestler.Wrestler {
	t.Helper()
	w := &wrestler.Wrestler{Name: name}
	require.NoError(t, f.db.Create(w).Error)
	require.NoError(t, f.transitions.Employ(w.AsOwner(), day(0)))
	return w
}

func (f *bookerFixture) employedReferee(t *testing.T, name string) *referee.Referee {
	t.Helper()
	r := &referee.Referee{Name: name}
	require.NoError(t, f.db.Create(r).Error)
	require.NoError(t, f.transitions.Employ(r.AsOwner(), day(0)))
	return r
}

func (f *bookerFixture) matchType(t *testing.T, name string) *MatchType {
	t.Helper()
	mt := &MatchType{Name: name}
	require.NoError(t, f.repo.CreateMatchType(mt))
	return mt
}

func (f *bookerFixture) countMatches(t *testing.T, eventID uint) int64 {
	t.Helper()
	count, err := f.repo.CountForEvent(eventID)
	require.NoError(t, err)
	return count
}

func TestBookSinglesMatch(t *testing.T) {
	f := newBookerFixture(t)
	singles := f.matchType(t, "Singles")
	x := f.employedWrestler(t, "Wrestler X")
	y := f.employedWrestler(t, "Wrestler Y")
	ref := f.employedReferee(t, "Ref A")

	match, err := f.booker.Book(BookRequest{
		EventID:     1,
		MatchTypeID: singles.ID,
		Sides: []Side{
			{Number: 1, WrestlerIDs: []uint{x.ID}},
			{Number: 2, WrestlerIDs: []uint{y.ID}},
		},
		RefereeIDs: []uint{ref.ID},
	}, day(10))
	require.NoError(t, err)
	assert.Equal(t, 1, match.MatchNumber)

	persisted, err := f.repo.GetMatchByID(match.ID)
	require.NoError(t, err)
	require.NotNil(t, persisted)
	require.Len(t, persisted.Competitors, 2)
	assert.Equal(t, 1, persisted.Competitors[0].SideNumber)
	assert.Equal(t, 2, persisted.Competitors[1].SideNumber)
	assert.Len(t, persisted.Referees, 1)
	assert.Empty(t, persisted.Titles)
}

func TestMatchNumbersAreSequentialPerEvent(t *testing.T) {
	f := newBookerFixture(t)
	singles := f.matchType(t, "Singles")
	x := f.employedWrestler(t, "Wrestler X")
	y := f.employedWrestler(t, "Wrestler Y")
	ref := f.employedReferee(t, "Ref A")

	req := BookRequest{
		EventID:     7,
		MatchTypeID: singles.ID,
		Sides: []Side{
			{Number: 1, WrestlerIDs: []uint{x.ID}},
			{Number: 2, WrestlerIDs: []uint{y.ID}},
		},
		RefereeIDs: []uint{ref.ID},
	}
	for want := 1; want <= 3; want++ {
		match, err := f.booker.Book(req, day(10))
		require.NoError(t, err)
		assert.Equal(t, want, match.MatchNumber)
	}

	// Another event's card numbers independently.
	req.EventID = 8
	match, err := f.booker.Book(req, day(10))
	require.NoError(t, err)
	assert.Equal(t, 1, match.MatchNumber)
}

func TestBookFailsWithoutCompetitors(t *testing.T) {
	f := newBookerFixture(t)
	singles := f.matchType(t, "Singles")
	ref := f.employedReferee(t, "Ref A")

	_, err := f.booker.Book(BookRequest{
		EventID:     1,
		MatchTypeID: singles.ID,
		Sides:       []Side{{Number: 1}},
		RefereeIDs:  []uint{ref.ID},
	}, day(10))
	assert.ErrorIs(t, err, ErrNoCompetitors)
	assert.Zero(t, f.countMatches(t, 1))
}

func TestBookFailsWithoutReferees(t *testing.T) {
	f := newBookerFixture(t)
	singles := f.matchType(t, "Singles")
	x := f.employedWrestler(t, "Wrestler X")
	y := f.employedWrestler(t, "Wrestler Y")

	_, err := f.booker.Book(BookRequest{
		EventID:     1,
		MatchTypeID: singles.ID,
		Sides: []Side{
			{Number: 1, WrestlerIDs: []uint{x.ID}},
			{Number: 2, WrestlerIDs: []uint{y.ID}},
		},
	}, day(10))
	assert.ErrorIs(t, err, ErrNoReferees)
	assert.Zero(t, f.countMatches(t, 1))
}

func TestBookRejectsNonPositiveSideNumbers(t *testing.T) {
	f := newBookerFixture(t)
	singles := f.matchType(t, "Singles")
	x := f.employedWrestler(t, "Wrestler X")
	ref := f.employedReferee(t, "Ref A")

	_, err := f.booker.Book(BookRequest{
		EventID:     1,
		MatchTypeID: singles.ID,
		Sides: []Side{
			{Number: 0, WrestlerIDs: []uint{x.ID}},
		},
		RefereeIDs: []uint{ref.ID},
	}, day(10))
	assert.ErrorIs(t, err, ErrInvalidSideNumber)
	assert.Zero(t, f.countMatches(t, 1))
}

func TestIneligibleCompetitorsAreDropped(t *testing.T) {
	f := newBookerFixture(t)
	singles := f.matchType(t, "Singles")
	x := f.employedWrestler(t, "Wrestler X")
	ref := f.employedReferee(t, "Ref A")

	// Never employed, so never bookable.
	benched := &wrestler.Wrestler{Name: "Benched"}
	require.NoError(t, f.db.Create(benched).Error)

	// Dropping the benched wrestler leaves a one-sided match.
	_, err := f.booker.Book(BookRequest{
		EventID:     1,
		MatchTypeID: singles.ID,
		Sides: []Side{
			{Number: 1, WrestlerIDs: []uint{x.ID}},
			{Number: 2, WrestlerIDs: []uint{benched.ID}},
		},
		RefereeIDs: []uint{ref.ID},
	}, day(10))
	assert.ErrorIs(t, err, ErrTooFewSides)
	assert.Zero(t, f.countMatches(t, 1))
}

func TestAllCompetitorsIneligibleFailsValidation(t *testing.T) {
	f := newBookerFixture(t)
	singles := f.matchType(t, "Singles")
	ref := f.employedReferee(t, "Ref A")

	suspended := f.employedWrestler(t, "Suspended Guy")
	require.NoError(t, f.transitions.Suspend(suspended.AsOwner(), day(5)))

	_, err := f.booker.Book(BookRequest{
		EventID:     1,
		MatchTypeID: singles.ID,
		Sides: []Side{
			{Number: 1, WrestlerIDs: []uint{suspended.ID}},
		},
		RefereeIDs: []uint{ref.ID},
	}, day(10))
	assert.ErrorIs(t, err, ErrNoEligibleCompetitors)
	assert.Zero(t, f.countMatches(t, 1))
}

func TestIneligibleRefereesFailValidation(t *testing.T) {
	f := newBookerFixture(t)
	singles := f.matchType(t, "Singles")
	x := f.employedWrestler(t, "Wrestler X")
	y := f.employedWrestler(t, "Wrestler Y")

	retiredRef := &referee.Referee{Name: "Retired Ref"}
	require.NoError(t, f.db.Create(retiredRef).Error)

	_, err := f.booker.Book(BookRequest{
		EventID:     1,
		MatchTypeID: singles.ID,
		Sides: []Side{
			{Number: 1, WrestlerIDs: []uint{x.ID}},
			{Number: 2, WrestlerIDs: []uint{y.ID}},
		},
		RefereeIDs: []uint{retiredRef.ID},
	}, day(10))
	assert.ErrorIs(t, err, ErrNoEligibleReferees)
	assert.Zero(t, f.countMatches(t, 1))
}

func TestTagTeamsCompeteAsSides(t *testing.T) {
	f := newBookerFixture(t)
	tag := f.matchType(t, "Tag Team")
	ref := f.employedReferee(t, "Ref A")

	teamA := &tagteam.TagTeam{Name: "Team A"}
	teamB := &tagteam.TagTeam{Name: "Team B"}
	require.NoError(t, f.db.Create(teamA).Error)
	require.NoError(t, f.db.Create(teamB).Error)
	require.NoError(t, f.transitions.Employ(teamA.AsOwner(), day(0)))
	require.NoError(t, f.transitions.Employ(teamB.AsOwner(), day(0)))

	match, err := f.booker.Book(BookRequest{
		EventID:     1,
		MatchTypeID: tag.ID,
		Sides: []Side{
			{Number: 1, TagTeamIDs: []uint{teamA.ID}},
			{Number: 2, TagTeamIDs: []uint{teamB.ID}},
		},
		RefereeIDs: []uint{ref.ID},
	}, day(10))
	require.NoError(t, err)

	persisted, err := f.repo.GetMatchByID(match.ID)
	require.NoError(t, err)
	require.Len(t, persisted.Competitors, 2)
	for _, competitor := range persisted.Competitors {
		assert.EqualValues(t, "tag_team", competitor.CompetitorType)
	}
}

func TestInactiveTitlesAreDroppedFromTheLine(t *testing.T) {
	f := newBookerFixture(t)
	singles := f.matchType(t, "Singles")
	x := f.employedWrestler(t, "Wrestler X")
	y := f.employedWrestler(t, "Wrestler Y")
	ref := f.employedReferee(t, "Ref A")

	active := &title.Title{Name: "World Title"}
	shelved := &title.Title{Name: "Shelved Title"}
	require.NoError(t, f.db.Create(active).Error)
	require.NoError(t, f.db.Create(shelved).Error)
	require.NoError(t, f.transitions.Activate(active.AsOwner(), day(0)))

	match, err := f.booker.Book(BookRequest{
		EventID:     1,
		MatchTypeID: singles.ID,
		Sides: []Side{
			{Number: 1, WrestlerIDs: []uint{x.ID}},
			{Number: 2, WrestlerIDs: []uint{y.ID}},
		},
		RefereeIDs: []uint{ref.ID},
		TitleIDs:   []uint{active.ID, shelved.ID},
	}, day(10))
	require.NoError(t, err)

	persisted, err := f.repo.GetMatchByID(match.ID)
	require.NoError(t, err)
	require.Len(t, persisted.Titles, 1)
	assert.Equal(t, active.ID, persisted.Titles[0].TitleID)
}

func TestMultiSideMatch(t *testing.T) {
	f := newBookerFixture(t)
	triple := f.matchType(t, "Triple Threat")
	ref := f.employedReferee(t, "Ref A")

	sides := make([]Side, 0, 3)
	for i := 1; i <= 3; i++ {
		w := f.employedWrestler(t, fmt.Sprintf("Wrestler %d", i))
		sides = append(sides, Side{Number: i, WrestlerIDs: []uint{w.ID}})
	}

	match, err := f.booker.Book(BookRequest{
		EventID:     1,
		MatchTypeID: triple.ID,
		Sides:       sides,
		RefereeIDs:  []uint{ref.ID},
	}, day(10))
	require.NoError(t, err)

	persisted, err := f.repo.GetMatchByID(match.ID)
	require.NoError(t, err)
	assert.Len(t, persisted.Competitors, 3)
}
