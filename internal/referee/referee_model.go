package referee

import (
	"github.com/ringsidehq/ringside/internal/lifecycle"
	"github.com/ringsidehq/ringside/internal/models"
	"gorm.io/gorm"
)

// Referee is an in-ring official.
type Referee struct {
	gorm.Model
	Name string `json:"name" gorm:"not null"`
}

// AsOwner adapts the referee into the lifecycle core's owner reference.
func (r *Referee) AsOwner() lifecycle.Owner {
	return lifecycle.Owner{ID: r.ID, Type: models.RosterReferee}
}

// RefereeStatus is the derived lifecycle view returned by the status endpoint.
type RefereeStatus struct {
	Employed  bool `json:"employed"`
	Suspended bool `json:"suspended"`
	Injured   bool `json:"injured"`
	Retired   bool `json:"retired"`
	Bookable  bool `json:"bookable"`
}
