package venue

import "gorm.io/gorm"

// Venue is a physical location that hosts events.
type Venue struct {
	gorm.Model
	Name    string `gorm:"size:100;not null" json:"name"`
	Street  string `gorm:"size:100" json:"street"`
	City    string `gorm:"size:100" json:"city"`
	State   string `gorm:"size:100" json:"state"`
	Zipcode string `gorm:"size:10" json:"zipcode"`
}
