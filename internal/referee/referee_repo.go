package referee

import (
	"errors"
	"time"

	"github.com/ringsidehq/ringside/internal/lifecycle"
	"github.com/ringsidehq/ringside/internal/models"
	"gorm.io/gorm"
)

// RefereeRepository defines the data operations for referees.
type RefereeRepository interface {
	CreateReferee(referee *Referee) error
	GetRefereeByID(id uint) (*Referee, error)
	GetAllReferees(page, limit int) ([]Referee, int64, error)
	UpdateReferee(referee *Referee) error
	DeleteReferee(id uint) error

	// BookableIDs filters the given ids down to referees that exist and are
	// bookable at now, preserving input order.
	BookableIDs(ids []uint, now time.Time) ([]uint, error)
}

type refereeRepository struct {
	db     *gorm.DB
	status *lifecycle.Status
}

// NewRefereeRepository creates a new RefereeRepository.
func NewRefereeRepository(db *gorm.DB) RefereeRepository {
	return &refereeRepository{
		db:     db,
		status: lifecycle.NewStatus(lifecycle.NewPeriodRepository(db)),
	}
}

func (r *refereeRepository) CreateReferee(referee *Referee) error {
	return r.db.Create(referee).Error
}

func (r *refereeRepository) GetRefereeByID(id uint) (*Referee, error) {
	var referee Referee
	if err := r.db.First(&referee, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &referee, nil
}

func (r *refereeRepository) GetAllReferees(page, limit int) ([]Referee, int64, error) {
	var referees []Referee
	var total int64

	query := r.db.Model(&Referee{})
	query.Count(&total)

	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("name asc").Find(&referees).Error; err != nil {
		return nil, 0, err
	}
	return referees, total, nil
}

func (r *refereeRepository) UpdateReferee(referee *Referee) error {
	return r.db.Save(referee).Error
}

func (r *refereeRepository) DeleteReferee(id uint) error {
	return r.db.Delete(&Referee{}, id).Error
}

func (r *refereeRepository) BookableIDs(ids []uint, now time.Time) ([]uint, error) {
	eligible := make([]uint, 0, len(ids))
	for _, id := range ids {
		referee, err := r.GetRefereeByID(id)
		if err != nil {
			return nil, err
		}
		if referee == nil {
			continue
		}
		ok, err := r.status.IsBookable(lifecycle.Owner{ID: id, Type: models.RosterReferee}, now)
		if err != nil {
			return nil, err
		}
		if ok {
			eligible = append(eligible, id)
		}
	}
	return eligible, nil
}
