package models

import (
	"time"

	"github.com/google/uuid"
)

// LeadStatus represents the lifecycle status of a lead
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "New"
	LeadStatusContacted LeadStatus = "Contacted"
	LeadStatusConverted LeadStatus = "Converted"
	LeadStatusLost      LeadStatus = "Lost"
)

// Lead represents a prospective customer inquiry routed to staff.
//
// The assigned_* columns are a denormalized snapshot taken at assignment
// time: they are copied from the employee record (or the caller's
// overrides) and are never re-synced if the employee changes later.
// AssignedEmployeeID is set if and only if AssignedAt is set.
type Lead struct {
	BaseModel
	Name        string     `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Email       string     `json:"email" gorm:"not null;size:255" validate:"required,email,max=255"`
	Phone       string     `json:"phone" gorm:"size:20" validate:"max=20"`
	Destination string     `json:"destination" gorm:"size:100;index" validate:"max=100"`
	TravelDates string     `json:"travel_dates" gorm:"size:100"`
	Travelers   int        `json:"travelers" gorm:"default:1"`
	Notes       string     `json:"notes" gorm:"size:2000"`
	Status      LeadStatus `json:"status" gorm:"type:varchar(30);not null;default:'New';index"`

	AssignedEmployeeID    *uuid.UUID `json:"assigned_employee_id,omitempty" gorm:"type:uuid;index"`
	AssignedEmployeeName  string     `json:"assigned_employee_name,omitempty" gorm:"size:200"`
	AssignedEmployeeEmail string     `json:"assigned_employee_email,omitempty" gorm:"size:255"`
	AssignedAt            *time.Time `json:"assigned_at,omitempty"`
}

// TableName returns the table name for Lead
func (Lead) TableName() string {
	return "leads"
}

// IsAssigned reports whether the lead currently has an assigned employee.
func (l *Lead) IsAssigned() bool {
	return l.AssignedEmployeeID != nil
}
