package stable

import (
	"errors"

	"gorm.io/gorm"
)

// StableRepository defines the data operations for stables.
type StableRepository interface {
	CreateStable(stable *Stable) error
	GetStableByID(id uint) (*Stable, error)
	GetAllStables(page, limit int) ([]Stable, int64, error)
	UpdateStable(stable *Stable) error
	DeleteStable(id uint) error
}

type stableRepository struct {
	db *gorm.DB
}

// NewStableRepository creates a new StableRepository.
func NewStableRepository(db *gorm.DB) StableRepository {
	return &stableRepository{db: db}
}

func (r *stableRepository) CreateStable(stable *Stable) error {
	return r.db.Create(stable).Error
}

func (r *stableRepository) GetStableByID(id uint) (*Stable, error) {
	var stable Stable
	if err := r.db.First(&stable, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &stable, nil
}

func (r *stableRepository) GetAllStables(page, limit int) ([]Stable, int64, error) {
	var stables []Stable
	var total int64

	query := r.db.Model(&Stable{})
	query.Count(&total)

	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("name asc").Find(&stables).Error; err != nil {
		return nil, 0, err
	}
	return stables, total, nil
}

func (r *stableRepository) UpdateStable(stable *Stable) error {
	return r.db.Save(stable).Error
}

func (r *stableRepository) DeleteStable(id uint) error {
	return r.db.Delete(&Stable{}, id).Error
}
