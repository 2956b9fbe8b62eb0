package title

import (
	"github.com/ringsidehq/ringside/internal/lifecycle"
	"github.com/ringsidehq/ringside/internal/models"
	"gorm.io/gorm"
)

// Title is a championship belt defended on events.
type Title struct {
	gorm.Model
	Name string `json:"name" gorm:"not null;unique"`
}

// AsOwner adapts the title into the lifecycle core's owner reference. Titles
// use activity periods (debut/pull) and retirement periods.
func (t *Title) AsOwner() lifecycle.Owner {
	return lifecycle.Owner{ID: t.ID, Type: models.RosterTitle}
}

// TitleStatus is the derived lifecycle view returned by the status endpoint.
type TitleStatus struct {
	Active            bool `json:"active"`
	Unactivated       bool `json:"unactivated"`
	Retired           bool `json:"retired"`
	Vacant            bool `json:"vacant"`
	HasFutureActivity bool `json:"has_future_activity"`
}
