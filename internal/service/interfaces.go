package service

import (
	"travel-backoffice-backend/internal/database/models"
	"travel-backoffice-backend/internal/repository"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// AssignmentServiceInterface defines the assignment workflow contract
type AssignmentServiceInterface interface {
	AssignLead(req *AssignLeadRequest) (*models.Lead, error)
}

// LeadServiceInterface defines the lead service contract
type LeadServiceInterface interface {
	CreateLead(req *CreateLeadRequest) (*models.Lead, error)
	GetLeadByID(id uuid.UUID) (*models.Lead, error)
	ListLeads(filter repository.LeadFilter, limit, offset int) ([]models.Lead, int64, error)
	UpdateLead(id uuid.UUID, req *UpdateLeadRequest) (*models.Lead, error)
}

// EmployeeServiceInterface defines the employee service contract
type EmployeeServiceInterface interface {
	CreateEmployee(req *CreateEmployeeRequest) (*models.Employee, error)
	GetEmployeeByID(id uuid.UUID) (*models.Employee, error)
	ListEmployees(destination string, limit, offset int) ([]models.Employee, int64, error)
	UpdateEmployee(id uuid.UUID, req *UpdateEmployeeRequest) (*models.Employee, error)
}

// BookingServiceInterface defines the booking service contract
type BookingServiceInterface interface {
	CreateBooking(req *CreateBookingRequest) (*models.Booking, error)
	GetBookingByID(id uuid.UUID) (*models.Booking, error)
	ListBookings(filter repository.BookingFilter, limit, offset int) ([]models.Booking, int64, error)
	UpdateBooking(id uuid.UUID, req *UpdateBookingRequest) (*models.Booking, error)
}

// PackageServiceInterface defines the travel package service contract
type PackageServiceInterface interface {
	CreatePackage(req *CreatePackageRequest) (*models.TravelPackage, error)
	GetPackageByID(id uuid.UUID) (*models.TravelPackage, error)
	ListPackages(limit, offset int) ([]models.TravelPackage, int64, error)
	GetPackagesByCity(city string) ([]models.TravelPackage, error)
	UpdatePackage(id uuid.UUID, req *UpdatePackageRequest) (*models.TravelPackage, error)
	DeletePackage(id uuid.UUID) error
}
