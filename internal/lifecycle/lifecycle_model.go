package lifecycle

import (
	"time"

	"github.com/ringsidehq/ringside/internal/models"
	"gorm.io/gorm"
)

// Kind identifies which time-bounded state a period tracks.
type Kind string

const (
	KindEmployment Kind = "employment"
	KindSuspension Kind = "suspension"
	KindInjury     Kind = "injury"
	KindRetirement Kind = "retirement"
	KindActivity   Kind = "activity"
)

// Owner references the roster entity a period belongs to.
type Owner struct {
	ID   uint
	Type models.RosterType
}

// Period is one time-bounded state interval for an owner. A nil EndedAt
// means the period is still open. At most one open period exists per
// (owner, kind); Open enforces that by replacing the start of an existing
// open row instead of inserting a second one.
type Period struct {
	gorm.Model
	Kind      Kind              `json:"kind" gorm:"index:idx_period_owner_kind;not null"`
	OwnerID   uint              `json:"owner_id" gorm:"index:idx_period_owner_kind;not null"`
	OwnerType models.RosterType `json:"owner_type" gorm:"index:idx_period_owner_kind;not null"`
	StartedAt time.Time         `json:"started_at" gorm:"index;not null"`
	EndedAt   *time.Time        `json:"ended_at,omitempty" gorm:"index"`
}

// Open reports whether the period has no end date yet.
func (p *Period) Open() bool {
	return p.EndedAt == nil
}

// StartedBy reports whether the period had begun at the given instant.
func (p *Period) StartedBy(now time.Time) bool {
	return !p.StartedAt.After(now)
}

// Duration is the elapsed span of the period, using now for open periods.
func (p *Period) Duration(now time.Time) time.Duration {
	end := now
	if p.EndedAt != nil {
		end = *p.EndedAt
	}
	return end.Sub(p.StartedAt)
}
