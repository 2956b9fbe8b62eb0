package lifecycle

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// PeriodRepository is the period store plus its query engine. All read
// methods are pure; Open and Close are the only mutators. "now" is always
// supplied by the caller so the store itself never consults a clock.
type PeriodRepository interface {
	// Current returns the open period that had started by now, or nil.
	Current(owner Owner, kind Kind, now time.Time) (*Period, error)
	// CurrentOpen returns the open period regardless of its start date, or nil.
	CurrentOpen(owner Owner, kind Kind) (*Period, error)
	// Previous returns the most recently started closed period, or nil.
	Previous(owner Owner, kind Kind) (*Period, error)
	// PreviousAll returns every closed period, newest start first.
	PreviousAll(owner Owner, kind Kind) ([]Period, error)
	// First returns the earliest-started period, open or closed, or nil.
	First(owner Owner, kind Kind) (*Period, error)
	// Future returns the open period whose start is still ahead of now, or nil.
	Future(owner Owner, kind Kind, now time.Time) (*Period, error)
	// HasAny reports whether any period of the kind exists for the owner.
	HasAny(owner Owner, kind Kind) (bool, error)
	// HasClosed reports whether at least one closed period exists.
	HasClosed(owner Owner, kind Kind) (bool, error)

	// Open starts a period at the given instant. If an open period already
	// exists its start date is replaced instead of inserting a second row.
	Open(owner Owner, kind Kind, at time.Time) error
	// Close ends the open period at the given instant. With no open period
	// it is a silent no-op.
	Close(owner Owner, kind Kind, at time.Time) error

	WithTransaction(txFunc func(PeriodRepository) error) error
}

type periodRepository struct {
	db *gorm.DB
}

// NewPeriodRepository creates a GORM-backed PeriodRepository.
func NewPeriodRepository(db *gorm.DB) PeriodRepository {
	return &periodRepository{db: db}
}

func (r *periodRepository) owned(owner Owner, kind Kind) *gorm.DB {
	return r.db.Model(&Period{}).
		Where("owner_id = ? AND owner_type = ? AND kind = ?", owner.ID, owner.Type, kind)
}

func (r *periodRepository) Current(owner Owner, kind Kind, now time.Time) (*Period, error) {
	var period Period
	err := r.owned(owner, kind).
		Where("ended_at IS NULL AND started_at <= ?", now).
		First(&period).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &period, nil
}

func (r *periodRepository) CurrentOpen(owner Owner, kind Kind) (*Period, error) {
	var period Period
	err := r.owned(owner, kind).Where("ended_at IS NULL").First(&period).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &period, nil
}

func (r *periodRepository) Previous(owner Owner, kind Kind) (*Period, error) {
	var period Period
	err := r.owned(owner, kind).
		Where("ended_at IS NOT NULL").
		Order("started_at DESC").
		First(&period).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &period, nil
}

func (r *periodRepository) PreviousAll(owner Owner, kind Kind) ([]Period, error) {
	var periods []Period
	err := r.owned(owner, kind).
		Where("ended_at IS NOT NULL").
		Order("started_at DESC").
		Find(&periods).Error
	if err != nil {
		return nil, err
	}
	return periods, nil
}

func (r *periodRepository) First(owner Owner, kind Kind) (*Period, error) {
	var period Period
	err := r.owned(owner, kind).Order("started_at ASC").First(&period).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &period, nil
}

func (r *periodRepository) Future(owner Owner, kind Kind, now time.Time) (*Period, error) {
	var period Period
	err := r.owned(owner, kind).
		Where("ended_at IS NULL AND started_at > ?", now).
		First(&period).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &period, nil
}

func (r *periodRepository) HasAny(owner Owner, kind Kind) (bool, error) {
	var count int64
	err := r.owned(owner, kind).Count(&count).Error
	return count > 0, err
}

func (r *periodRepository) HasClosed(owner Owner, kind Kind) (bool, error) {
	var count int64
	err := r.owned(owner, kind).Where("ended_at IS NOT NULL").Count(&count).Error
	return count > 0, err
}

func (r *periodRepository) Open(owner Owner, kind Kind, at time.Time) error {
	existing, err := r.CurrentOpen(owner, kind)
	if err != nil {
		return err
	}
	if existing != nil {
		existing.StartedAt = at
		return r.db.Save(existing).Error
	}
	period := &Period{
		Kind:      kind,
		OwnerID:   owner.ID,
		OwnerType: owner.Type,
		StartedAt: at,
	}
	return r.db.Create(period).Error
}

func (r *periodRepository) Close(owner Owner, kind Kind, at time.Time) error {
	return r.owned(owner, kind).
		Where("ended_at IS NULL").
		Update("ended_at", at).Error
}

func (r *periodRepository) WithTransaction(txFunc func(PeriodRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return txFunc(&periodRepository{db: tx})
	})
}
