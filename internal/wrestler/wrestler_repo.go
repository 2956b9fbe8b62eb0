package wrestler

import (
	"errors"
	"time"

	"github.com/ringsidehq/ringside/internal/lifecycle"
	"github.com/ringsidehq/ringside/internal/models"
	"gorm.io/gorm"
)

// WrestlerRepository defines the data operations for wrestlers, including
// the lifecycle views the booking layer consumes.
type WrestlerRepository interface {
	CreateWrestler(wrestler *Wrestler) error
	GetWrestlerByID(id uint) (*Wrestler, error)
	GetWrestlerByName(name string) (*Wrestler, error)
	GetAllWrestlers(page, limit int) ([]Wrestler, int64, error)
	UpdateWrestler(wrestler *Wrestler) error
	DeleteWrestler(id uint) error

	// BookableIDs filters the given ids down to wrestlers that exist and are
	// bookable at now, preserving input order.
	BookableIDs(ids []uint, now time.Time) ([]uint, error)
}

type wrestlerRepository struct {
	db     *gorm.DB
	status *lifecycle.Status
}

// NewWrestlerRepository creates a new WrestlerRepository.
func NewWrestlerRepository(db *gorm.DB) WrestlerRepository {
	return &wrestlerRepository{
		db:     db,
		status: lifecycle.NewStatus(lifecycle.NewPeriodRepository(db)),
	}
}

func (r *wrestlerRepository) CreateWrestler(wrestler *Wrestler) error {
	return r.db.Create(wrestler).Error
}

func (r *wrestlerRepository) GetWrestlerByID(id uint) (*Wrestler, error) {
	var wrestler Wrestler
	if err := r.db.First(&wrestler, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &wrestler, nil
}

func (r *wrestlerRepository) GetWrestlerByName(name string) (*Wrestler, error) {
	var wrestler Wrestler
	if err := r.db.Where("name = ?", name).First(&wrestler).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &wrestler, nil
}

func (r *wrestlerRepository) GetAllWrestlers(page, limit int) ([]Wrestler, int64, error) {
	var wrestlers []Wrestler
	var total int64

	query := r.db.Model(&Wrestler{})
	query.Count(&total)

	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("name asc").Find(&wrestlers).Error; err != nil {
		return nil, 0, err
	}
	return wrestlers, total, nil
}

func (r *wrestlerRepository) UpdateWrestler(wrestler *Wrestler) error {
	return r.db.Save(wrestler).Error
}

func (r *wrestlerRepository) DeleteWrestler(id uint) error {
	return r.db.Delete(&Wrestler{}, id).Error
}

func (r *wrestlerRepository) BookableIDs(ids []uint, now time.Time) ([]uint, error) {
	eligible := make([]uint, 0, len(ids))
	for _, id := range ids {
		wrestler, err := r.GetWrestlerByID(id)
		if err != nil {
			return nil, err
		}
		if wrestler == nil {
			continue
		}
		ok, err := r.status.IsBookable(lifecycle.Owner{ID: id, Type: models.RosterWrestler}, now)
		if err != nil {
			return nil, err
		}
		if ok {
			eligible = append(eligible, id)
		}
	}
	return eligible, nil
}
