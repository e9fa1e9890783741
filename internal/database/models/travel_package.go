package models

import "encoding/json"

// TravelPackage represents a sellable itinerary. Route holds the stored
// location key used for exact city lookups; Destination is the
// human-facing label and is matched loosely as a fallback.
type TravelPackage struct {
	BaseModel
	Name         string          `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Destination  string          `json:"destination" gorm:"not null;size:100;index" validate:"required,max=100"`
	Route        string          `json:"route" gorm:"size:100;index" validate:"max=100"`
	DurationDays int             `json:"duration_days" gorm:"default:1" validate:"min=1"`
	Price        float64         `json:"price" gorm:"not null" validate:"required,gt=0"`
	Itinerary    json.RawMessage `json:"itinerary,omitempty" gorm:"type:jsonb"`
}

// TableName returns the table name for TravelPackage
func (TravelPackage) TableName() string {
	return "packages"
}
