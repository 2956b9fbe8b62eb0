package wrestler

import (
	"github.com/ringsidehq/ringside/internal/lifecycle"
	"github.com/ringsidehq/ringside/internal/membership"
	"github.com/ringsidehq/ringside/internal/models"
	"gorm.io/gorm"
)

// Wrestler is a singles competitor on the roster.
type Wrestler struct {
	gorm.Model
	Name           string             `json:"name" gorm:"not null;unique"`
	Hometown       string             `json:"hometown"`
	HeightInches   int                `json:"height_inches"`
	WeightLbs      int                `json:"weight_lbs"`
	SignatureMoves models.StringSlice `json:"signature_moves" gorm:"type:json"`
}

// AsOwner adapts the wrestler into the lifecycle core's owner reference.
func (w *Wrestler) AsOwner() lifecycle.Owner {
	return lifecycle.Owner{ID: w.ID, Type: models.RosterWrestler}
}

// AsGroup adapts the wrestler into the membership model's group reference
// for the managers in their corner.
func (w *Wrestler) AsGroup() membership.Group {
	return membership.Group{ID: w.ID, Type: models.RosterWrestler}
}

// WrestlerStatus is the derived lifecycle view returned by the status endpoint.
type WrestlerStatus struct {
	Employed            bool `json:"employed"`
	Suspended           bool `json:"suspended"`
	Injured             bool `json:"injured"`
	Retired             bool `json:"retired"`
	Bookable            bool `json:"bookable"`
	HasFutureEmployment bool `json:"has_future_employment"`
}
