package match

import (
	"github.com/ringsidehq/ringside/internal/models"
	"gorm.io/gorm"
)

// MatchType is a catalog entry describing a match stipulation, e.g.
// "Singles", "Tag Team", "Battle Royal".
type MatchType struct {
	gorm.Model
	Name string `gorm:"size:100;not null;uniqueIndex" json:"name"`
}

// EventMatch is one bout on an event's card. MatchNumber is 1-based and
// sequential within the event.
type EventMatch struct {
	gorm.Model
	EventID     uint   `gorm:"not null;index" json:"event_id"`
	MatchTypeID uint   `gorm:"not null" json:"match_type_id"`
	MatchNumber int    `gorm:"not null" json:"match_number"`
	Preview     string `gorm:"type:text" json:"preview"`

	Competitors []MatchCompetitor `gorm:"foreignKey:EventMatchID" json:"competitors,omitempty"`
	Referees    []MatchReferee    `gorm:"foreignKey:EventMatchID" json:"referees,omitempty"`
	Titles      []MatchTitle      `gorm:"foreignKey:EventMatchID" json:"titles,omitempty"`
}

// MatchCompetitor binds a wrestler or tag team to one side of a match.
// Sides are free-form positive integers; a match may have any number of
// sides and any number of competitors per side.
type MatchCompetitor struct {
	gorm.Model
	EventMatchID   uint              `gorm:"not null;index" json:"event_match_id"`
	CompetitorID   uint              `gorm:"not null" json:"competitor_id"`
	CompetitorType models.RosterType `gorm:"size:20;not null" json:"competitor_type"`
	SideNumber     int               `gorm:"not null" json:"side_number"`
}

// MatchReferee assigns a referee to a match.
type MatchReferee struct {
	gorm.Model
	EventMatchID uint `gorm:"not null;index" json:"event_match_id"`
	RefereeID    uint `gorm:"not null" json:"referee_id"`
}

// MatchTitle puts a title on the line in a match.
type MatchTitle struct {
	gorm.Model
	EventMatchID uint `gorm:"not null;index" json:"event_match_id"`
	TitleID      uint `gorm:"not null" json:"title_id"`
}
