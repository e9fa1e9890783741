package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"travel-backoffice-backend/internal/database/models"
	apperrors "travel-backoffice-backend/internal/errors"
	"travel-backoffice-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookingService handles business logic for bookings
type BookingService struct {
	repo      repository.BookingRepositoryInterface
	validator *validator.Validate
}

// NewBookingService creates a new booking service
func NewBookingService(repo repository.BookingRepositoryInterface, validator *validator.Validate) *BookingService {
	return &BookingService{
		repo:      repo,
		validator: validator,
	}
}

// CreateBookingRequest represents the data needed to create a booking.
// Gateway fields are opaque strings minted elsewhere.
type CreateBookingRequest struct {
	LeadID           *uuid.UUID      `json:"lead_id"`
	Customer         string          `json:"customer" validate:"required,max=200"`
	Email            string          `json:"email" validate:"required,email,max=255"`
	Phone            string          `json:"phone" validate:"max=20"`
	PackageID        *uuid.UUID      `json:"package_id"`
	PackageName      string          `json:"package_name" validate:"required,max=200"`
	Destination      string          `json:"destination" validate:"required,max=100"`
	Travelers        int             `json:"travelers" validate:"omitempty,min=1"`
	Amount           float64         `json:"amount" validate:"required,gt=0"`
	TravelDate       string          `json:"travel_date" validate:"max=50"`
	AssignedAgent    string          `json:"assigned_agent" validate:"max=200"`
	ItineraryDetails json.RawMessage `json:"itinerary_details"`
	PaymentOrderID   string          `json:"payment_order_id" validate:"max=100"`
	PaymentLink      string          `json:"payment_link" validate:"max=500"`
}

// UpdateBookingRequest represents a partial booking update
type UpdateBookingRequest struct {
	Status        *string `json:"status" validate:"omitempty,oneof=Pending Confirmed Cancelled"`
	PaymentStatus *string `json:"payment_status" validate:"omitempty,oneof=Pending Paid Failed"`
	PaymentID     *string `json:"payment_id" validate:"omitempty,max=100"`
}

// CreateBooking creates a booking with Pending defaults
func (s *BookingService) CreateBooking(req *CreateBookingRequest) (*models.Booking, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	travelers := req.Travelers
	if travelers == 0 {
		travelers = 1
	}

	booking := &models.Booking{
		LeadID:           req.LeadID,
		Customer:         req.Customer,
		Email:            req.Email,
		Phone:            req.Phone,
		PackageID:        req.PackageID,
		PackageName:      req.PackageName,
		Destination:      req.Destination,
		Travelers:        travelers,
		Amount:           req.Amount,
		Status:           models.BookingStatusPending,
		TravelDate:       req.TravelDate,
		PaymentStatus:    models.PaymentStatusPending,
		PaymentOrderID:   req.PaymentOrderID,
		PaymentLink:      req.PaymentLink,
		AssignedAgent:    req.AssignedAgent,
		ItineraryDetails: req.ItineraryDetails,
		BookingDate:      time.Now().UTC(),
	}

	if err := s.repo.Create(booking); err != nil {
		return nil, apperrors.NewStoreError("create booking", err)
	}

	return booking, nil
}

// GetBookingByID retrieves a booking by ID
func (s *BookingService) GetBookingByID(id uuid.UUID) (*models.Booking, error) {
	booking, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, apperrors.NewStoreError("fetch booking", err)
	}
	return booking, nil
}

// ListBookings retrieves bookings newest first with optional filters
func (s *BookingService) ListBookings(filter repository.BookingFilter, limit, offset int) ([]models.Booking, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	bookings, total, err := s.repo.GetAll(filter, limit, offset)
	if err != nil {
		return nil, 0, apperrors.NewStoreError("list bookings", err)
	}
	return bookings, total, nil
}

// UpdateBooking applies a partial status/payment update to a booking
func (s *BookingService) UpdateBooking(id uuid.UUID, req *UpdateBookingRequest) (*models.Booking, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	booking, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, apperrors.NewStoreError("fetch booking", err)
	}

	if req.Status != nil {
		booking.Status = models.BookingStatus(*req.Status)
	}
	if req.PaymentStatus != nil {
		booking.PaymentStatus = models.PaymentStatus(*req.PaymentStatus)
	}
	if req.PaymentID != nil {
		booking.PaymentID = *req.PaymentID
	}

	if err := s.repo.Update(booking); err != nil {
		return nil, apperrors.NewStoreError("update booking", err)
	}

	return booking, nil
}
