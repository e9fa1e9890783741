package repository

import (
	"time"

	"travel-backoffice-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// LeadFilter narrows lead listings. Zero values mean "no filter".
type LeadFilter struct {
	Status             string
	Destination        string
	AssignedEmployeeID *uuid.UUID
}

// LeadRepositoryInterface defines the interface for lead repository operations
type LeadRepositoryInterface interface {
	Create(lead *models.Lead) error
	GetByID(id uuid.UUID) (*models.Lead, error)
	GetAll(filter LeadFilter, limit, offset int) ([]models.Lead, int64, error)
	Update(lead *models.Lead) error
	UpdateAssignment(id uuid.UUID, employeeID uuid.UUID, name, email string, assignedAt time.Time) error
}

// EmployeeRepositoryInterface defines the interface for employee repository operations
type EmployeeRepositoryInterface interface {
	Create(employee *models.Employee) error
	GetByID(id uuid.UUID) (*models.Employee, error)
	GetByEmail(email string) (*models.Employee, error)
	GetByPhone(phone string) (*models.Employee, error)
	GetAll(destination string, limit, offset int) ([]models.Employee, int64, error)
	Update(employee *models.Employee) error
}

// BookingFilter narrows booking listings. Zero values mean "no filter".
type BookingFilter struct {
	Status string
	LeadID *uuid.UUID
}

// BookingRepositoryInterface defines the interface for booking repository operations
type BookingRepositoryInterface interface {
	Create(booking *models.Booking) error
	GetByID(id uuid.UUID) (*models.Booking, error)
	GetAll(filter BookingFilter, limit, offset int) ([]models.Booking, int64, error)
	Update(booking *models.Booking) error
}

// PackageRepositoryInterface defines the interface for travel package repository operations
type PackageRepositoryInterface interface {
	Create(pkg *models.TravelPackage) error
	GetByID(id uuid.UUID) (*models.TravelPackage, error)
	GetAll(limit, offset int) ([]models.TravelPackage, int64, error)
	GetByRoute(route string) ([]models.TravelPackage, error)
	GetByDestinationLike(pattern string) ([]models.TravelPackage, error)
	Update(pkg *models.TravelPackage) error
	Delete(id uuid.UUID) error
}
