package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"travel-backoffice-backend/internal/database/models"
	apperrors "travel-backoffice-backend/internal/errors"
	"travel-backoffice-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PackageService handles business logic for travel packages
type PackageService struct {
	repo      repository.PackageRepositoryInterface
	validator *validator.Validate
}

// NewPackageService creates a new travel package service
func NewPackageService(repo repository.PackageRepositoryInterface, validator *validator.Validate) *PackageService {
	return &PackageService{
		repo:      repo,
		validator: validator,
	}
}

// CreatePackageRequest represents the data needed to create a package
type CreatePackageRequest struct {
	Name         string          `json:"name" validate:"required,max=200"`
	Destination  string          `json:"destination" validate:"required,max=100"`
	Route        string          `json:"route" validate:"max=100"`
	DurationDays int             `json:"duration_days" validate:"omitempty,min=1"`
	Price        float64         `json:"price" validate:"required,gt=0"`
	Itinerary    json.RawMessage `json:"itinerary"`
}

// UpdatePackageRequest represents a partial package update
type UpdatePackageRequest struct {
	Name         *string         `json:"name" validate:"omitempty,max=200"`
	Destination  *string         `json:"destination" validate:"omitempty,max=100"`
	Route        *string         `json:"route" validate:"omitempty,max=100"`
	DurationDays *int            `json:"duration_days" validate:"omitempty,min=1"`
	Price        *float64        `json:"price" validate:"omitempty,gt=0"`
	Itinerary    json.RawMessage `json:"itinerary"`
}

// CreatePackage creates a new travel package
func (s *PackageService) CreatePackage(req *CreatePackageRequest) (*models.TravelPackage, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	duration := req.DurationDays
	if duration == 0 {
		duration = 1
	}

	pkg := &models.TravelPackage{
		Name:         req.Name,
		Destination:  req.Destination,
		Route:        req.Route,
		DurationDays: duration,
		Price:        req.Price,
		Itinerary:    req.Itinerary,
	}

	if err := s.repo.Create(pkg); err != nil {
		return nil, apperrors.NewStoreError("create package", err)
	}

	return pkg, nil
}

// GetPackageByID retrieves a travel package by ID
func (s *PackageService) GetPackageByID(id uuid.UUID) (*models.TravelPackage, error) {
	pkg, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPackageNotFound
		}
		return nil, apperrors.NewStoreError("fetch package", err)
	}
	return pkg, nil
}

// ListPackages retrieves travel packages newest first
func (s *PackageService) ListPackages(limit, offset int) ([]models.TravelPackage, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	pkgs, total, err := s.repo.GetAll(limit, offset)
	if err != nil {
		return nil, 0, apperrors.NewStoreError("list packages", err)
	}
	return pkgs, total, nil
}

// GetPackagesByCity looks packages up by city: exact match on the stored
// route first, then a case-insensitive destination pattern as a fallback
// for older rows that never set a route.
func (s *PackageService) GetPackagesByCity(city string) ([]models.TravelPackage, error) {
	if city == "" {
		return nil, apperrors.ErrCityRequired
	}

	pkgs, err := s.repo.GetByRoute(city)
	if err != nil {
		return nil, apperrors.NewStoreError("fetch packages by route", err)
	}

	if len(pkgs) == 0 {
		pkgs, err = s.repo.GetByDestinationLike("%" + city + "%")
		if err != nil {
			return nil, apperrors.NewStoreError("fetch packages by destination", err)
		}
	}

	return pkgs, nil
}

// UpdatePackage applies a partial update to a travel package
func (s *PackageService) UpdatePackage(id uuid.UUID, req *UpdatePackageRequest) (*models.TravelPackage, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	pkg, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPackageNotFound
		}
		return nil, apperrors.NewStoreError("fetch package", err)
	}

	if req.Name != nil {
		pkg.Name = *req.Name
	}
	if req.Destination != nil {
		pkg.Destination = *req.Destination
	}
	if req.Route != nil {
		pkg.Route = *req.Route
	}
	if req.DurationDays != nil {
		pkg.DurationDays = *req.DurationDays
	}
	if req.Itinerary != nil {
		pkg.Itinerary = req.Itinerary
	}
	if req.Price != nil {
		pkg.Price = *req.Price
	}

	if err := s.repo.Update(pkg); err != nil {
		return nil, apperrors.NewStoreError("update package", err)
	}

	return pkg, nil
}

// DeletePackage removes a travel package
func (s *PackageService) DeletePackage(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPackageNotFound
		}
		return apperrors.NewStoreError("fetch package", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return apperrors.NewStoreError("delete package", err)
	}
	return nil
}
