package service

import (
	"errors"
	"fmt"

	"travel-backoffice-backend/internal/database/models"
	apperrors "travel-backoffice-backend/internal/errors"
	"travel-backoffice-backend/internal/logger"
	"travel-backoffice-backend/internal/mailer"
	"travel-backoffice-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/nyaruka/phonenumbers"
	"gorm.io/gorm"
)

// EmployeeService handles business logic for employees. Creating an
// employee also provisions a user in the hosted auth provider and sends
// a welcome mail; both outbound calls are best-effort and there is no
// compensation when they fail after the insert.
type EmployeeService struct {
	repo         repository.EmployeeRepositoryInterface
	authProvider AuthProviderInterface
	mail         mailer.Interface
	validator    *validator.Validate
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(
	repo repository.EmployeeRepositoryInterface,
	authProvider AuthProviderInterface,
	mail mailer.Interface,
	validator *validator.Validate,
) *EmployeeService {
	return &EmployeeService{
		repo:         repo,
		authProvider: authProvider,
		mail:         mail,
		validator:    validator,
	}
}

// CreateEmployeeRequest represents the data needed to create an employee
type CreateEmployeeRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Email       string  `json:"email" validate:"required,email,max=255"`
	Phone       string  `json:"phone" validate:"required,max=20"`
	Destination string  `json:"destination" validate:"max=100"`
	Role        *string `json:"role" validate:"omitempty,oneof=admin agent"`
	Status      *string `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

// UpdateEmployeeRequest represents a partial employee update
type UpdateEmployeeRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=200"`
	Phone       *string `json:"phone" validate:"omitempty,max=20"`
	Destination *string `json:"destination" validate:"omitempty,max=100"`
	Role        *string `json:"role" validate:"omitempty,oneof=admin agent"`
	Status      *string `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

// normalizePhone parses a phone number (defaulting to the IN region the
// agency operates in) and returns it in E.164 form.
func normalizePhone(raw string) (string, error) {
	parsed, err := phonenumbers.Parse(raw, "IN")
	if err != nil {
		return "", err
	}
	if !phonenumbers.IsValidNumber(parsed) {
		return "", fmt.Errorf("number is not valid")
	}
	return phonenumbers.Format(parsed, phonenumbers.E164), nil
}

// CreateEmployee validates and inserts the employee row, then performs
// two best-effort outbound calls: auth-provider user creation and the
// welcome mail. A partial failure leaves the row in place and is only
// logged.
func (s *EmployeeService) CreateEmployee(req *CreateEmployeeRequest) (*models.Employee, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	phone, err := normalizePhone(req.Phone)
	if err != nil {
		return nil, apperrors.ErrInvalidPhone
	}

	if _, err := s.repo.GetByEmail(req.Email); err == nil {
		return nil, apperrors.ErrEmployeeEmailExists
	}
	if _, err := s.repo.GetByPhone(phone); err == nil {
		return nil, apperrors.ErrEmployeePhoneExists
	}

	role := models.EmployeeRoleAgent
	if req.Role != nil {
		role = models.EmployeeRole(*req.Role)
	}
	status := models.EmployeeStatusActive
	if req.Status != nil {
		status = models.EmployeeStatus(*req.Status)
	}

	employee := &models.Employee{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       phone,
		Destination: req.Destination,
		Role:        role,
		Status:      status,
	}

	if err := s.repo.Create(employee); err != nil {
		return nil, apperrors.NewStoreError("create employee", err)
	}

	s.provisionEmployee(employee)

	return employee, nil
}

// provisionEmployee mirrors the new employee into the auth provider and
// sends the welcome mail. Failures are logged and swallowed: the inserted
// row is the source of truth and is not rolled back.
func (s *EmployeeService) provisionEmployee(employee *models.Employee) {
	log := logger.New().WithFields(map[string]interface{}{
		"employee_id": employee.ID,
		"email":       employee.Email,
	})

	authUserID, err := s.authProvider.CreateUser(employee.Email, employee.Name, string(employee.Role))
	if err != nil {
		log.WithError(err).Warn("Failed to create auth provider user for employee")
	} else {
		employee.AuthUserID = authUserID
		if err := s.repo.Update(employee); err != nil {
			log.WithError(err).Warn("Failed to store auth user id on employee")
		}
	}

	if err := s.mail.SendEmployeeWelcomeEmail(employee.Email, employee.Name, employee.Destination); err != nil {
		log.WithError(err).Warn("Failed to send employee welcome email")
	}
}

// GetEmployeeByID retrieves an employee by ID
func (s *EmployeeService) GetEmployeeByID(id uuid.UUID) (*models.Employee, error) {
	employee, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, apperrors.NewStoreError("fetch employee", err)
	}
	return employee, nil
}

// ListEmployees retrieves employees ordered by name, optionally filtered
// by destination ("all" means no filter)
func (s *EmployeeService) ListEmployees(destination string, limit, offset int) ([]models.Employee, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	employees, total, err := s.repo.GetAll(destination, limit, offset)
	if err != nil {
		return nil, 0, apperrors.NewStoreError("list employees", err)
	}
	return employees, total, nil
}

// UpdateEmployee applies a partial update to an employee
func (s *EmployeeService) UpdateEmployee(id uuid.UUID, req *UpdateEmployeeRequest) (*models.Employee, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	employee, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, apperrors.NewStoreError("fetch employee", err)
	}

	if req.Name != nil {
		employee.Name = *req.Name
	}
	if req.Phone != nil {
		phone, err := normalizePhone(*req.Phone)
		if err != nil {
			return nil, apperrors.ErrInvalidPhone
		}
		employee.Phone = phone
	}
	if req.Destination != nil {
		employee.Destination = *req.Destination
	}
	if req.Role != nil {
		employee.Role = models.EmployeeRole(*req.Role)
	}
	if req.Status != nil {
		employee.Status = models.EmployeeStatus(*req.Status)
	}

	if err := s.repo.Update(employee); err != nil {
		return nil, apperrors.NewStoreError("update employee", err)
	}

	return employee, nil
}
