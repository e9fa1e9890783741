package service

import (
	"errors"
	"fmt"

	"travel-backoffice-backend/internal/database/models"
	apperrors "travel-backoffice-backend/internal/errors"
	"travel-backoffice-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeadService handles business logic for leads
type LeadService struct {
	repo      repository.LeadRepositoryInterface
	validator *validator.Validate
}

// NewLeadService creates a new lead service
func NewLeadService(repo repository.LeadRepositoryInterface, validator *validator.Validate) *LeadService {
	return &LeadService{
		repo:      repo,
		validator: validator,
	}
}

// CreateLeadRequest represents the data needed to capture a lead
type CreateLeadRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Email       string `json:"email" validate:"required,email,max=255"`
	Phone       string `json:"phone" validate:"max=20"`
	Destination string `json:"destination" validate:"max=100"`
	TravelDates string `json:"travel_dates" validate:"max=100"`
	Travelers   int    `json:"travelers" validate:"omitempty,min=1"`
	Notes       string `json:"notes" validate:"max=2000"`
}

// UpdateLeadRequest represents a partial lead update. The assignment
// sub-record is owned by the assignment service and cannot be changed
// here.
type UpdateLeadRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=200"`
	Email       *string `json:"email" validate:"omitempty,email,max=255"`
	Phone       *string `json:"phone" validate:"omitempty,max=20"`
	Destination *string `json:"destination" validate:"omitempty,max=100"`
	TravelDates *string `json:"travel_dates" validate:"omitempty,max=100"`
	Travelers   *int    `json:"travelers" validate:"omitempty,min=1"`
	Notes       *string `json:"notes" validate:"omitempty,max=2000"`
	Status      *string `json:"status" validate:"omitempty,oneof=New Contacted Converted Lost"`
}

// CreateLead captures a new lead
func (s *LeadService) CreateLead(req *CreateLeadRequest) (*models.Lead, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	travelers := req.Travelers
	if travelers == 0 {
		travelers = 1
	}

	lead := &models.Lead{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Destination: req.Destination,
		TravelDates: req.TravelDates,
		Travelers:   travelers,
		Notes:       req.Notes,
		Status:      models.LeadStatusNew,
	}

	if err := s.repo.Create(lead); err != nil {
		return nil, apperrors.NewStoreError("create lead", err)
	}

	return lead, nil
}

// GetLeadByID retrieves a lead by ID
func (s *LeadService) GetLeadByID(id uuid.UUID) (*models.Lead, error) {
	lead, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeadNotFound
		}
		return nil, apperrors.NewStoreError("fetch lead", err)
	}
	return lead, nil
}

// ListLeads retrieves leads newest first with optional filters
func (s *LeadService) ListLeads(filter repository.LeadFilter, limit, offset int) ([]models.Lead, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	leads, total, err := s.repo.GetAll(filter, limit, offset)
	if err != nil {
		return nil, 0, apperrors.NewStoreError("list leads", err)
	}
	return leads, total, nil
}

// UpdateLead applies a partial update to a lead
func (s *LeadService) UpdateLead(id uuid.UUID, req *UpdateLeadRequest) (*models.Lead, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	lead, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeadNotFound
		}
		return nil, apperrors.NewStoreError("fetch lead", err)
	}

	if req.Name != nil {
		lead.Name = *req.Name
	}
	if req.Email != nil {
		lead.Email = *req.Email
	}
	if req.Phone != nil {
		lead.Phone = *req.Phone
	}
	if req.Destination != nil {
		lead.Destination = *req.Destination
	}
	if req.TravelDates != nil {
		lead.TravelDates = *req.TravelDates
	}
	if req.Travelers != nil {
		lead.Travelers = *req.Travelers
	}
	if req.Notes != nil {
		lead.Notes = *req.Notes
	}
	if req.Status != nil {
		lead.Status = models.LeadStatus(*req.Status)
	}

	if err := s.repo.Update(lead); err != nil {
		return nil, apperrors.NewStoreError("update lead", err)
	}

	return lead, nil
}
