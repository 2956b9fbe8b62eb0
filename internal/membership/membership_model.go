package membership

import (
	"time"

	"github.com/ringsidehq/ringside/internal/models"
	"gorm.io/gorm"
)

// Group references the entity a member belongs to: a stable, a tag team,
// or a wrestler hiring a manager.
type Group struct {
	ID   uint
	Type models.RosterType
}

// Member references the joining entity, polymorphic over the roster types
// the group accepts.
type Member struct {
	ID   uint
	Type models.RosterType
}

// Membership is one member's tenure inside a group. A nil LeftAt means the
// member is still in. At most one open membership exists per (group, member).
type Membership struct {
	gorm.Model
	GroupID    uint              `json:"group_id" gorm:"index:idx_membership_group;not null"`
	GroupType  models.RosterType `json:"group_type" gorm:"index:idx_membership_group;not null"`
	MemberID   uint              `json:"member_id" gorm:"index:idx_membership_member;not null"`
	MemberType models.RosterType `json:"member_type" gorm:"index:idx_membership_member;not null"`
	JoinedAt   time.Time         `json:"joined_at" gorm:"not null"`
	LeftAt     *time.Time        `json:"left_at,omitempty" gorm:"index"`
}

// allowedMembers maps each group type to the roster types it can enroll.
var allowedMembers = map[models.RosterType]map[models.RosterType]bool{
	models.RosterStable: {
		models.RosterWrestler: true,
		models.RosterTagTeam:  true,
	},
	models.RosterTagTeam: {
		models.RosterWrestler: true,
		models.RosterManager:  true,
	},
	models.RosterWrestler: {
		models.RosterManager: true,
	},
}

// Accepts reports whether the group type can enroll the member type. A known
// roster type the group does not accept is skipped by the bulk operations
// rather than treated as an error.
func (g Group) Accepts(memberType models.RosterType) bool {
	return allowedMembers[g.Type][memberType]
}
