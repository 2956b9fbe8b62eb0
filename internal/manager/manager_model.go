package manager

import (
	"github.com/ringsidehq/ringside/internal/lifecycle"
	"github.com/ringsidehq/ringside/internal/models"
	"gorm.io/gorm"
)

// Manager is a ringside second hired by wrestlers and tag teams.
type Manager struct {
	gorm.Model
	Name string `json:"name" gorm:"not null"`
}

// AsOwner adapts the manager into the lifecycle core's owner reference.
func (m *Manager) AsOwner() lifecycle.Owner {
	return lifecycle.Owner{ID: m.ID, Type: models.RosterManager}
}

// ManagerStatus is the derived lifecycle view returned by the status endpoint.
type ManagerStatus struct {
	Employed  bool `json:"employed"`
	Suspended bool `json:"suspended"`
	Injured   bool `json:"injured"`
	Retired   bool `json:"retired"`
	Available bool `json:"available"`
}
