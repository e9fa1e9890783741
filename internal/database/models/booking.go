package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "Pending"
	BookingStatusConfirmed BookingStatus = "Confirmed"
	BookingStatusCancelled BookingStatus = "Cancelled"
)

// PaymentStatus represents the payment state of a booking
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "Pending"
	PaymentStatusPaid    PaymentStatus = "Paid"
	PaymentStatusFailed  PaymentStatus = "Failed"
)

// Booking represents a confirmed or in-progress trip sale. The payment
// gateway fields (order id, link, payment id) are opaque strings minted
// by the external gateway; this service never talks to the gateway.
type Booking struct {
	BaseModel
	LeadID           *uuid.UUID      `json:"lead_id,omitempty" gorm:"type:uuid;index"`
	Customer         string          `json:"customer" gorm:"not null;size:200" validate:"required,max=200"`
	Email            string          `json:"email" gorm:"not null;size:255" validate:"required,email,max=255"`
	Phone            string          `json:"phone" gorm:"size:20"`
	PackageID        *uuid.UUID      `json:"package_id,omitempty" gorm:"type:uuid;index"`
	PackageName      string          `json:"package_name" gorm:"not null;size:200" validate:"required,max=200"`
	Destination      string          `json:"destination" gorm:"not null;size:100" validate:"required,max=100"`
	Travelers        int             `json:"travelers" gorm:"default:1"`
	Amount           float64         `json:"amount" gorm:"not null" validate:"required,gt=0"`
	Status           BookingStatus   `json:"status" gorm:"type:varchar(30);not null;default:'Pending';index"`
	TravelDate       string          `json:"travel_date" gorm:"size:50"`
	PaymentStatus    PaymentStatus   `json:"payment_status" gorm:"type:varchar(30);not null;default:'Pending'"`
	PaymentOrderID   string          `json:"payment_order_id,omitempty" gorm:"size:100"`
	PaymentLink      string          `json:"payment_link,omitempty" gorm:"size:500"`
	PaymentID        string          `json:"payment_id,omitempty" gorm:"size:100"`
	AssignedAgent    string          `json:"assigned_agent,omitempty" gorm:"size:200"`
	ItineraryDetails json.RawMessage `json:"itinerary_details,omitempty" gorm:"type:jsonb"`
	BookingDate      time.Time       `json:"booking_date"`
}

// TableName returns the table name for Booking
func (Booking) TableName() string {
	return "bookings"
}
