package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// RosterType discriminates the polymorphic owner/member columns used by the
// lifecycle, membership and championship tables.
type RosterType string

const (
	RosterWrestler RosterType = "wrestler"
	RosterTagTeam  RosterType = "tag_team"
	RosterManager  RosterType = "manager"
	RosterReferee  RosterType = "referee"
	RosterTitle    RosterType = "title"
	RosterStable   RosterType = "stable"
)

// ParseRosterType resolves a wire-level discriminator string. Unknown values
// are rejected outright; callers that tolerate only a subset of types do
// their own filtering on top of this.
func ParseRosterType(s string) (RosterType, error) {
	switch RosterType(s) {
	case RosterWrestler, RosterTagTeam, RosterManager, RosterReferee, RosterTitle, RosterStable:
		return RosterType(s), nil
	}
	return "", fmt.Errorf("unknown roster type %q", s)
}

// StringSlice is a JSON column holding a list of strings (e.g. a wrestler's
// signature moves).
type StringSlice []string

func (s StringSlice) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan unmarshals a JSON column into the slice.
func (s *StringSlice) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("StringSlice: expected []byte or string, got %T", src)
	}
}
