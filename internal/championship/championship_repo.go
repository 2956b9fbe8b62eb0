package championship

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// ChampionshipRepository tracks title reigns. Award and Vacate are the only
// mutators; awarding closes the standing reign and opens the new one in a
// single transaction.
type ChampionshipRepository interface {
	Current(titleID uint) (*Championship, error)
	Previous(titleID uint) (*Championship, error)
	PreviousAll(titleID uint) ([]Championship, error)
	First(titleID uint) (*Championship, error)
	// Longest returns the reign maximizing its length, counting an ongoing
	// reign up to now. Nil when the title has no reigns at all.
	Longest(titleID uint, now time.Time) (*Championship, error)
	IsVacant(titleID uint) (bool, error)
	ReignsOf(champion Champion) ([]Championship, error)

	// Award crowns a new champion at the given instant, ending the current
	// reign (if any) at the same instant.
	Award(titleID uint, champion Champion, at time.Time) error
	// Vacate ends the current reign with no successor; no-op when vacant.
	Vacate(titleID uint, at time.Time) error

	WithTransaction(txFunc func(ChampionshipRepository) error) error
}

type championshipRepository struct {
	db *gorm.DB
}

// NewChampionshipRepository creates a GORM-backed ChampionshipRepository.
func NewChampionshipRepository(db *gorm.DB) ChampionshipRepository {
	return &championshipRepository{db: db}
}

func (r *championshipRepository) titled(titleID uint) *gorm.DB {
	return r.db.Model(&Championship{}).Where("title_id = ?", titleID)
}

func (r *championshipRepository) Current(titleID uint) (*Championship, error) {
	var reign Championship
	err := r.titled(titleID).Where("lost_at IS NULL").First(&reign).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reign, nil
}

func (r *championshipRepository) Previous(titleID uint) (*Championship, error) {
	var reign Championship
	err := r.titled(titleID).
		Where("lost_at IS NOT NULL").
		Order("won_at DESC").
		First(&reign).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reign, nil
}

func (r *championshipRepository) PreviousAll(titleID uint) ([]Championship, error) {
	var reigns []Championship
	err := r.titled(titleID).
		Where("lost_at IS NOT NULL").
		Order("won_at DESC").
		Find(&reigns).Error
	if err != nil {
		return nil, err
	}
	return reigns, nil
}

func (r *championshipRepository) First(titleID uint) (*Championship, error) {
	var reign Championship
	err := r.titled(titleID).Order("won_at ASC").First(&reign).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reign, nil
}

// Longest loads the title's reigns and compares lengths in Go so the same
// arithmetic runs on Postgres and the sqlite test databases.
func (r *championshipRepository) Longest(titleID uint, now time.Time) (*Championship, error) {
	var reigns []Championship
	if err := r.titled(titleID).Order("won_at ASC").Find(&reigns).Error; err != nil {
		return nil, err
	}
	var longest *Championship
	for i := range reigns {
		if longest == nil || reigns[i].Length(now) > longest.Length(now) {
			longest = &reigns[i]
		}
	}
	return longest, nil
}

func (r *championshipRepository) IsVacant(titleID uint) (bool, error) {
	current, err := r.Current(titleID)
	if err != nil {
		return false, err
	}
	return current == nil, nil
}

func (r *championshipRepository) ReignsOf(champion Champion) ([]Championship, error) {
	var reigns []Championship
	err := r.db.Model(&Championship{}).
		Where("champion_id = ? AND champion_type = ?", champion.ID, champion.Type).
		Order("won_at DESC").
		Find(&reigns).Error
	if err != nil {
		return nil, err
	}
	return reigns, nil
}

func (r *championshipRepository) Award(titleID uint, champion Champion, at time.Time) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepo := &championshipRepository{db: tx}
		if err := txRepo.Vacate(titleID, at); err != nil {
			return err
		}
		reign := &Championship{
			TitleID:      titleID,
			ChampionID:   champion.ID,
			ChampionType: champion.Type,
			WonAt:        at,
		}
		return tx.Create(reign).Error
	})
}

func (r *championshipRepository) Vacate(titleID uint, at time.Time) error {
	return r.titled(titleID).Where("lost_at IS NULL").Update("lost_at", at).Error
}

func (r *championshipRepository) WithTransaction(txFunc func(ChampionshipRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return txFunc(&championshipRepository{db: tx})
	})
}
