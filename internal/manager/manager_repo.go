package manager

import (
	"errors"
	"time"

	"github.com/ringsidehq/ringside/internal/lifecycle"
	"github.com/ringsidehq/ringside/internal/models"
	"gorm.io/gorm"
)

// ManagerRepository defines the data operations for managers.
type ManagerRepository interface {
	CreateManager(manager *Manager) error
	GetManagerByID(id uint) (*Manager, error)
	GetAllManagers(page, limit int) ([]Manager, int64, error)
	UpdateManager(manager *Manager) error
	DeleteManager(id uint) error

	// AvailableIDs filters the given ids down to managers that exist and can
	// currently second a client.
	AvailableIDs(ids []uint, now time.Time) ([]uint, error)
}

type managerRepository struct {
	db     *gorm.DB
	status *lifecycle.Status
}

// NewManagerRepository creates a new ManagerRepository.
func NewManagerRepository(db *gorm.DB) ManagerRepository {
	return &managerRepository{
		db:     db,
		status: lifecycle.NewStatus(lifecycle.NewPeriodRepository(db)),
	}
}

func (r *managerRepository) CreateManager(manager *Manager) error {
	return r.db.Create(manager).Error
}

func (r *managerRepository) GetManagerByID(id uint) (*Manager, error) {
	var manager Manager
	if err := r.db.First(&manager, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &manager, nil
}

func (r *managerRepository) GetAllManagers(page, limit int) ([]Manager, int64, error) {
	var managers []Manager
	var total int64

	query := r.db.Model(&Manager{})
	query.Count(&total)

	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("name asc").Find(&managers).Error; err != nil {
		return nil, 0, err
	}
	return managers, total, nil
}

func (r *managerRepository) UpdateManager(manager *Manager) error {
	return r.db.Save(manager).Error
}

func (r *managerRepository) DeleteManager(id uint) error {
	return r.db.Delete(&Manager{}, id).Error
}

func (r *managerRepository) AvailableIDs(ids []uint, now time.Time) ([]uint, error) {
	available := make([]uint, 0, len(ids))
	for _, id := range ids {
		manager, err := r.GetManagerByID(id)
		if err != nil {
			return nil, err
		}
		if manager == nil {
			continue
		}
		ok, err := r.status.IsBookable(lifecycle.Owner{ID: id, Type: models.RosterManager}, now)
		if err != nil {
			return nil, err
		}
		if ok {
			available = append(available, id)
		}
	}
	return available, nil
}
