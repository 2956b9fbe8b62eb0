package membership

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// MembershipRepository tracks join/leave periods between groups and their
// members. Timestamps are always supplied by the caller.
type MembershipRepository interface {
	// AddMember opens a membership at the given instant. If the member
	// already has an open membership in the group its join date is replaced.
	AddMember(group Group, member Member, at time.Time) error
	// RemoveMember closes the open membership; silent no-op when none exists.
	RemoveMember(group Group, member Member, at time.Time) error
	// AddMembers and RemoveMembers apply the single operation to each
	// element, skipping member types the group does not accept.
	AddMembers(group Group, members []Member, at time.Time) error
	RemoveMembers(group Group, members []Member, at time.Time) error
	// SyncMembers closes every membership of the old set and opens the new
	// set at the same instant. A member present in both sets is closed and
	// reopened at that instant.
	SyncMembers(group Group, oldMembers, newMembers []Member, at time.Time) error
	// DisbandAll closes every open membership of the group, all member types.
	DisbandAll(group Group, at time.Time) error

	CurrentMembership(group Group, member Member) (*Membership, error)
	CurrentMembers(group Group) ([]Membership, error)
	PreviousMemberships(group Group) ([]Membership, error)
	MembershipsOf(member Member) ([]Membership, error)

	WithTransaction(txFunc func(MembershipRepository) error) error
}

type membershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a GORM-backed MembershipRepository.
func NewMembershipRepository(db *gorm.DB) MembershipRepository {
	return &membershipRepository{db: db}
}

func (r *membershipRepository) grouped(group Group) *gorm.DB {
	return r.db.Model(&Membership{}).
		Where("group_id = ? AND group_type = ?", group.ID, group.Type)
}

func (r *membershipRepository) AddMember(group Group, member Member, at time.Time) error {
	existing, err := r.CurrentMembership(group, member)
	if err != nil {
		return err
	}
	if existing != nil {
		existing.JoinedAt = at
		return r.db.Save(existing).Error
	}
	row := &Membership{
		GroupID:    group.ID,
		GroupType:  group.Type,
		MemberID:   member.ID,
		MemberType: member.Type,
		JoinedAt:   at,
	}
	return r.db.Create(row).Error
}

func (r *membershipRepository) RemoveMember(group Group, member Member, at time.Time) error {
	return r.grouped(group).
		Where("member_id = ? AND member_type = ? AND left_at IS NULL", member.ID, member.Type).
		Update("left_at", at).Error
}

func (r *membershipRepository) AddMembers(group Group, members []Member, at time.Time) error {
	return r.WithTransaction(func(tx MembershipRepository) error {
		for _, member := range members {
			if !group.Accepts(member.Type) {
				continue
			}
			if err := tx.AddMember(group, member, at); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *membershipRepository) RemoveMembers(group Group, members []Member, at time.Time) error {
	return r.WithTransaction(func(tx MembershipRepository) error {
		for _, member := range members {
			if !group.Accepts(member.Type) {
				continue
			}
			if err := tx.RemoveMember(group, member, at); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *membershipRepository) SyncMembers(group Group, oldMembers, newMembers []Member, at time.Time) error {
	return r.WithTransaction(func(tx MembershipRepository) error {
		if err := tx.RemoveMembers(group, oldMembers, at); err != nil {
			return err
		}
		return tx.AddMembers(group, newMembers, at)
	})
}

func (r *membershipRepository) DisbandAll(group Group, at time.Time) error {
	return r.grouped(group).Where("left_at IS NULL").Update("left_at", at).Error
}

func (r *membershipRepository) CurrentMembership(group Group, member Member) (*Membership, error) {
	var row Membership
	err := r.grouped(group).
		Where("member_id = ? AND member_type = ? AND left_at IS NULL", member.ID, member.Type).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *membershipRepository) CurrentMembers(group Group) ([]Membership, error) {
	var rows []Membership
	err := r.grouped(group).
		Where("left_at IS NULL").
		Order("joined_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *membershipRepository) PreviousMemberships(group Group) ([]Membership, error) {
	var rows []Membership
	err := r.grouped(group).
		Where("left_at IS NOT NULL").
		Order("joined_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *membershipRepository) MembershipsOf(member Member) ([]Membership, error) {
	var rows []Membership
	err := r.db.Model(&Membership{}).
		Where("member_id = ? AND member_type = ?", member.ID, member.Type).
		Order("joined_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *membershipRepository) WithTransaction(txFunc func(MembershipRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return txFunc(&membershipRepository{db: tx})
	})
}
