package tagteam

import (
	"github.com/ringsidehq/ringside/internal/lifecycle"
	"github.com/ringsidehq/ringside/internal/membership"
	"github.com/ringsidehq/ringside/internal/models"
	"gorm.io/gorm"
)

// TagTeam is a two-or-more wrestler unit booked as a single competitor.
type TagTeam struct {
	gorm.Model
	Name          string `json:"name" gorm:"not null;unique"`
	SignatureMove string `json:"signature_move"`
}

// AsOwner adapts the team into the lifecycle core's owner reference.
func (t *TagTeam) AsOwner() lifecycle.Owner {
	return lifecycle.Owner{ID: t.ID, Type: models.RosterTagTeam}
}

// AsGroup adapts the team into the membership model's group reference for
// its wrestler roster.
func (t *TagTeam) AsGroup() membership.Group {
	return membership.Group{ID: t.ID, Type: models.RosterTagTeam}
}

// TagTeamStatus is the derived lifecycle view returned by the status endpoint.
type TagTeamStatus struct {
	Employed  bool `json:"employed"`
	Suspended bool `json:"suspended"`
	Retired   bool `json:"retired"`
	Bookable  bool `json:"bookable"`
}
