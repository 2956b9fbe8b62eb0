package title

import (
	"errors"
	"time"

	"github.com/ringsidehq/ringside/internal/lifecycle"
	"github.com/ringsidehq/ringside/internal/models"
	"gorm.io/gorm"
)

// TitleRepository defines the data operations for titles.
type TitleRepository interface {
	CreateTitle(title *Title) error
	GetTitleByID(id uint) (*Title, error)
	GetAllTitles(page, limit int) ([]Title, int64, error)
	UpdateTitle(title *Title) error
	DeleteTitle(id uint) error

	// ActiveIDs filters the given ids down to titles that exist and are
	// currently active (debuted and not pulled or retired).
	ActiveIDs(ids []uint, now time.Time) ([]uint, error)
}

type titleRepository struct {
	db     *gorm.DB
	status *lifecycle.Status
}

// NewTitleRepository creates a new TitleRepository.
func NewTitleRepository(db *gorm.DB) TitleRepository {
	return &titleRepository{
		db:     db,
		status: lifecycle.NewStatus(lifecycle.NewPeriodRepository(db)),
	}
}

func (r *titleRepository) CreateTitle(title *Title) error {
	return r.db.Create(title).Error
}

func (r *titleRepository) GetTitleByID(id uint) (*Title, error) {
	var title Title
	if err := r.db.First(&title, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &title, nil
}

func (r *titleRepository) GetAllTitles(page, limit int) ([]Title, int64, error) {
	var titles []Title
	var total int64

	query := r.db.Model(&Title{})
	query.Count(&total)

	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("name asc").Find(&titles).Error; err != nil {
		return nil, 0, err
	}
	return titles, total, nil
}

func (r *titleRepository) UpdateTitle(title *Title) error {
	return r.db.Save(title).Error
}

func (r *titleRepository) DeleteTitle(id uint) error {
	return r.db.Delete(&Title{}, id).Error
}

func (r *titleRepository) ActiveIDs(ids []uint, now time.Time) ([]uint, error) {
	active := make([]uint, 0, len(ids))
	for _, id := range ids {
		title, err := r.GetTitleByID(id)
		if err != nil {
			return nil, err
		}
		if title == nil {
			continue
		}
		owner := lifecycle.Owner{ID: id, Type: models.RosterTitle}
		ok, err := r.status.IsCurrentlyActive(owner, now)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		retired, err := r.status.IsRetired(owner, now)
		if err != nil {
			return nil, err
		}
		if !retired {
			active = append(active, id)
		}
	}
	return active, nil
}
