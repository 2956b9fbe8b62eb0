package match

import (
	"errors"
	"time"

	"github.com/ringsidehq/ringside/internal/models"
)

// Validation failures raised before any write occurs. A failed booking
// leaves no match row behind.
var (
	ErrNoCompetitors         = errors.New("no competitors provided")
	ErrNoReferees            = errors.New("no referees provided")
	ErrNoEligibleCompetitors = errors.New("no eligible competitors provided")
	ErrNoEligibleReferees    = errors.New("no eligible referees provided")
	ErrTooFewSides           = errors.New("a match needs at least two sides with competitors")
	ErrInvalidSideNumber     = errors.New("side numbers must be positive")
)

// CompetitorGate filters candidate ids down to those allowed in a match at
// the given instant. Wrestler, tag-team and referee repositories satisfy it
// with their bookability predicates.
type CompetitorGate interface {
	BookableIDs(ids []uint, now time.Time) ([]uint, error)
}

// TitleGate filters candidate title ids down to those currently in
// circulation.
type TitleGate interface {
	ActiveIDs(ids []uint, now time.Time) ([]uint, error)
}

// Side is one faction of a booking request. Numbers are free-form positive
// integers and need not be contiguous.
type Side struct {
	Number      int    `json:"number"`
	WrestlerIDs []uint `json:"wrestler_ids"`
	TagTeamIDs  []uint `json:"tag_team_ids"`
}

// BookRequest describes a match to add to an event's card.
type BookRequest struct {
	EventID     uint
	MatchTypeID uint
	Preview     string
	Sides       []Side
	RefereeIDs  []uint
	TitleIDs    []uint
}

// Booker orchestrates match assembly: structural validation, eligibility
// filtering, then a single transactional write.
type Booker struct {
	repo      MatchRepository
	wrestlers CompetitorGate
	tagTeams  CompetitorGate
	referees  CompetitorGate
	titles    TitleGate
}

// NewBooker creates a Booker over the given store and eligibility gates.
func NewBooker(repo MatchRepository, wrestlers, tagTeams, referees CompetitorGate, titles TitleGate) *Booker {
	return &Booker{repo: repo, wrestlers: wrestlers, tagTeams: tagTeams, referees: referees, titles: titles}
}

// Book validates the request, silently drops ineligible candidates, and
// persists the match with its attachments atomically. It returns the
// persisted match with its computed match number.
func (b *Booker) Book(req BookRequest, now time.Time) (*EventMatch, error) {
	totalCompetitors := 0
	for _, side := range req.Sides {
		if side.Number < 1 {
			return nil, ErrInvalidSideNumber
		}
		totalCompetitors += len(side.WrestlerIDs) + len(side.TagTeamIDs)
	}
	if totalCompetitors == 0 {
		return nil, ErrNoCompetitors
	}
	if len(req.RefereeIDs) == 0 {
		return nil, ErrNoReferees
	}

	competitors, err := b.eligibleCompetitors(req.Sides, now)
	if err != nil {
		return nil, err
	}
	if len(competitors) == 0 {
		return nil, ErrNoEligibleCompetitors
	}
	if countSides(competitors) < 2 {
		return nil, ErrTooFewSides
	}

	refereeIDs, err := b.referees.BookableIDs(req.RefereeIDs, now)
	if err != nil {
		return nil, err
	}
	if len(refereeIDs) == 0 {
		return nil, ErrNoEligibleReferees
	}

	titleIDs := []uint{}
	if len(req.TitleIDs) > 0 {
		if titleIDs, err = b.titles.ActiveIDs(req.TitleIDs, now); err != nil {
			return nil, err
		}
	}

	match := &EventMatch{
		EventID:     req.EventID,
		MatchTypeID: req.MatchTypeID,
		Preview:     req.Preview,
	}
	if err := b.repo.CreateMatch(match, competitors, refereeIDs, titleIDs); err != nil {
		return nil, err
	}
	return match, nil
}

func (b *Booker) eligibleCompetitors(sides []Side, now time.Time) ([]MatchCompetitor, error) {
	var competitors []MatchCompetitor
	for _, side := range sides {
		wrestlerIDs, err := b.wrestlers.BookableIDs(side.WrestlerIDs, now)
		if err != nil {
			return nil, err
		}
		for _, id := range wrestlerIDs {
			competitors = append(competitors, MatchCompetitor{
				CompetitorID:   id,
				CompetitorType: models.RosterWrestler,
				SideNumber:     side.Number,
			})
		}
		tagTeamIDs, err := b.tagTeams.BookableIDs(side.TagTeamIDs, now)
		if err != nil {
			return nil, err
		}
		for _, id := range tagTeamIDs {
			competitors = append(competitors, MatchCompetitor{
				CompetitorID:   id,
				CompetitorType: models.RosterTagTeam,
				SideNumber:     side.Number,
			})
		}
	}
	return competitors, nil
}

func countSides(competitors []MatchCompetitor) int {
	seen := map[int]bool{}
	for _, competitor := range competitors {
		seen[competitor.SideNumber] = true
	}
	return len(seen)
}
