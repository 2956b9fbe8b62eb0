package match

import (
	"errors"

	"gorm.io/gorm"
)

// MatchRepository defines the data operations for event matches and the
// match-type catalog.
type MatchRepository interface {
	// CreateMatch persists the match and all of its attachments in one
	// transaction. The match's MatchNumber is computed inside the
	// transaction as the event's prior match count plus one.
	CreateMatch(match *EventMatch, competitors []MatchCompetitor, refereeIDs, titleIDs []uint) error

	GetMatchByID(id uint) (*EventMatch, error)
	GetMatchesForEvent(eventID uint) ([]EventMatch, error)
	CountForEvent(eventID uint) (int64, error)
	DeleteMatch(id uint) error

	CreateMatchType(matchType *MatchType) error
	GetMatchTypeByID(id uint) (*MatchType, error)
	GetAllMatchTypes() ([]MatchType, error)
}

type matchRepository struct {
	db *gorm.DB
}

// NewMatchRepository creates a new MatchRepository.
func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &matchRepository{db: db}
}

// TODO: count+1 is racy when two matches are booked for the same event
// concurrently; serialize with a per-event advisory lock or a unique index
// on (event_id, match_number) plus retry.
func (r *matchRepository) CreateMatch(match *EventMatch, competitors []MatchCompetitor, refereeIDs, titleIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var prior int64
		if err := tx.Model(&EventMatch{}).Where("event_id = ?", match.EventID).Count(&prior).Error; err != nil {
			return err
		}
		match.MatchNumber = int(prior) + 1
		if err := tx.Create(match).Error; err != nil {
			return err
		}

		for i := range competitors {
			competitors[i].EventMatchID = match.ID
		}
		if len(competitors) > 0 {
			if err := tx.Create(&competitors).Error; err != nil {
				return err
			}
		}
		for _, refereeID := range refereeIDs {
			if err := tx.Create(&MatchReferee{EventMatchID: match.ID, RefereeID: refereeID}).Error; err != nil {
				return err
			}
		}
		for _, titleID := range titleIDs {
			if err := tx.Create(&MatchTitle{EventMatchID: match.ID, TitleID: titleID}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *matchRepository) GetMatchByID(id uint) (*EventMatch, error) {
	var match EventMatch
	err := r.db.Preload("Competitors").Preload("Referees").Preload("Titles").First(&match, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &match, nil
}

func (r *matchRepository) GetMatchesForEvent(eventID uint) ([]EventMatch, error) {
	var matches []EventMatch
	err := r.db.Preload("Competitors").Preload("Referees").Preload("Titles").
		Where("event_id = ?", eventID).Order("match_number asc").Find(&matches).Error
	if err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *matchRepository) CountForEvent(eventID uint) (int64, error) {
	var count int64
	err := r.db.Model(&EventMatch{}).Where("event_id = ?", eventID).Count(&count).Error
	return count, err
}

func (r *matchRepository) DeleteMatch(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{&MatchCompetitor{}, &MatchReferee{}, &MatchTitle{}} {
			if err := tx.Where("event_match_id = ?", id).Delete(model).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&EventMatch{}, id).Error
	})
}

func (r *matchRepository) CreateMatchType(matchType *MatchType) error {
	return r.db.Create(matchType).Error
}

func (r *matchRepository) GetMatchTypeByID(id uint) (*MatchType, error) {
	var matchType MatchType
	if err := r.db.First(&matchType, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &matchType, nil
}

func (r *matchRepository) GetAllMatchTypes() ([]MatchType, error) {
	var matchTypes []MatchType
	if err := r.db.Order("name asc").Find(&matchTypes).Error; err != nil {
		return nil, err
	}
	return matchTypes, nil
}
