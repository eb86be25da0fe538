package db_models

import "github.com/lib/pq"

// Trip is one saved planning result. Payload holds the serialized
// itinerary exactly as it was returned to the caller.
type Trip struct {
	BaseModel
	Destination string
	Days        int
	Preferences pq.StringArray `gorm:"type:text[]"`
	CatalogMiss bool
	Source      string
	Payload     string `gorm:"type:jsonb"`
}
