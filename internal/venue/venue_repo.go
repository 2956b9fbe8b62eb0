package venue

import (
	"errors"

	"gorm.io/gorm"
)

// VenueRepository defines the data operations for venues.
type VenueRepository interface {
	CreateVenue(venue *Venue) error
	GetVenueByID(id uint) (*Venue, error)
	GetAllVenues(page, limit int) ([]Venue, int64, error)
	UpdateVenue(venue *Venue) error
	DeleteVenue(id uint) error
}

type venueRepository struct {
	db *gorm.DB
}

// NewVenueRepository creates a new VenueRepository.
func NewVenueRepository(db *gorm.DB) VenueRepository {
	return &venueRepository{db: db}
}

func (r *venueRepository) CreateVenue(venue *Venue) error {
	return r.db.Create(venue).Error
}

func (r *venueRepository) GetVenueByID(id uint) (*Venue, error) {
	var venue Venue
	if err := r.db.First(&venue, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &venue, nil
}

func (r *venueRepository) GetAllVenues(page, limit int) ([]Venue, int64, error) {
	var venues []Venue
	var total int64

	query := r.db.Model(&Venue{})
	query.Count(&total)

	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("name asc").Find(&venues).Error; err != nil {
		return nil, 0, err
	}
	return venues, total, nil
}

func (r *venueRepository) UpdateVenue(venue *Venue) error {
	return r.db.Save(venue).Error
}

func (r *venueRepository) DeleteVenue(id uint) error {
	return r.db.Delete(&Venue{}, id).Error
}
