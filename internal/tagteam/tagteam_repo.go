package tagteam

import (
	"errors"
	"time"

	"github.com/ringsidehq/ringside/internal/lifecycle"
	"github.com/ringsidehq/ringside/internal/models"
	"gorm.io/gorm"
)

// TagTeamRepository defines the data operations for tag teams.
type TagTeamRepository interface {
	CreateTagTeam(team *TagTeam) error
	GetTagTeamByID(id uint) (*TagTeam, error)
	GetAllTagTeams(page, limit int) ([]TagTeam, int64, error)
	UpdateTagTeam(team *TagTeam) error
	DeleteTagTeam(id uint) error

	// BookableIDs filters the given ids down to teams that exist and are
	// bookable at now, preserving input order.
	BookableIDs(ids []uint, now time.Time) ([]uint, error)
}

type tagTeamRepository struct {
	db     *gorm.DB
	status *lifecycle.Status
}

// NewTagTeamRepository creates a new TagTeamRepository.
func NewTagTeamRepository(db *gorm.DB) TagTeamRepository {
	return &tagTeamRepository{
		db:     db,
		status: lifecycle.NewStatus(lifecycle.NewPeriodRepository(db)),
	}
}

func (r *tagTeamRepository) CreateTagTeam(team *TagTeam) error {
	return r.db.Create(team).Error
}

func (r *tagTeamRepository) GetTagTeamByID(id uint) (*TagTeam, error) {
	var team TagTeam
	if err := r.db.First(&team, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &team, nil
}

func (r *tagTeamRepository) GetAllTagTeams(page, limit int) ([]TagTeam, int64, error) {
	var teams []TagTeam
	var total int64

	query := r.db.Model(&TagTeam{})
	query.Count(&total)

	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("name asc").Find(&teams).Error; err != nil {
		return nil, 0, err
	}
	return teams, total, nil
}

func (r *tagTeamRepository) UpdateTagTeam(team *TagTeam) error {
	return r.db.Save(team).Error
}

func (r *tagTeamRepository) DeleteTagTeam(id uint) error {
	return r.db.Delete(&TagTeam{}, id).Error
}

func (r *tagTeamRepository) BookableIDs(ids []uint, now time.Time) ([]uint, error) {
	eligible := make([]uint, 0, len(ids))
	for _, id := range ids {
		team, err := r.GetTagTeamByID(id)
		if err != nil {
			return nil, err
		}
		if team == nil {
			continue
		}
		ok, err := r.status.IsBookableTeam(lifecycle.Owner{ID: id, Type: models.RosterTagTeam}, now)
		if err != nil {
			return nil, err
		}
		if ok {
			eligible = append(eligible, id)
		}
	}
	return eligible, nil
}
