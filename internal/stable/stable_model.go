package stable

import (
	"github.com/ringsidehq/ringside/internal/lifecycle"
	"github.com/ringsidehq/ringside/internal/membership"
	"github.com/ringsidehq/ringside/internal/models"
	"gorm.io/gorm"
)

// Stable is a named faction of wrestlers and tag teams.
type Stable struct {
	gorm.Model
	Name string `gorm:"size:100;not null;uniqueIndex" json:"name"`
}

// AsOwner returns the stable's lifecycle identity.
func (s *Stable) AsOwner() lifecycle.Owner {
	return lifecycle.Owner{ID: s.ID, Type: models.RosterStable}
}

// AsGroup returns the stable's membership identity.
func (s *Stable) AsGroup() membership.Group {
	return membership.Group{ID: s.ID, Type: models.RosterStable}
}

// StableStatus is the derived lifecycle view exposed over the API.
type StableStatus struct {
	Active            bool `json:"active"`
	Unactivated       bool `json:"unactivated"`
	Retired           bool `json:"retired"`
	HasFutureActivity bool `json:"has_future_activity"`
}
