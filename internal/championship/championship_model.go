package championship

import (
	"time"

	"github.com/ringsidehq/ringside/internal/models"
	"gorm.io/gorm"
)

// Champion references the current or former holder of a title, polymorphic
// over wrestlers and tag teams.
type Champion struct {
	ID   uint
	Type models.RosterType
}

// Championship is one reign: a champion's tenure with a title. A nil LostAt
// means the reign is ongoing. At most one open reign exists per title.
type Championship struct {
	gorm.Model
	TitleID      uint              `json:"title_id" gorm:"index;not null"`
	ChampionID   uint              `json:"champion_id" gorm:"index:idx_championship_champion;not null"`
	ChampionType models.RosterType `json:"champion_type" gorm:"index:idx_championship_champion;not null"`
	WonAt        time.Time         `json:"won_at" gorm:"not null"`
	LostAt       *time.Time        `json:"lost_at,omitempty" gorm:"index"`
}

// Length is the elapsed span of the reign, using now while it is ongoing.
func (c *Championship) Length(now time.Time) time.Duration {
	end := now
	if c.LostAt != nil {
		end = *c.LostAt
	}
	return end.Sub(c.WonAt)
}
