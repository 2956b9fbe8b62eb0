package event

import (
	"time"

	"github.com/ringsidehq/ringside/internal/venue"
	"gorm.io/gorm"
)

// Event is a show on the promotion's calendar. Date and venue may stay
// unset while the show is still being planned.
type Event struct {
	gorm.Model
	Name    string       `gorm:"size:100;not null" json:"name"`
	Date    *time.Time   `json:"date"`
	VenueID *uint        `json:"venue_id"`
	Venue   *venue.Venue `gorm:"foreignKey:VenueID" json:"venue,omitempty"`
	Preview string       `gorm:"type:text" json:"preview"`
}

// IsScheduled reports whether the event has a date on the calendar.
func (e *Event) IsScheduled() bool {
	return e.Date != nil
}

// IsPast reports whether the event's date has already passed.
func (e *Event) IsPast(now time.Time) bool {
	return e.Date != nil && e.Date.Before(now)
}
