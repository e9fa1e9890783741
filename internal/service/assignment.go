package service

import (
	"errors"
	"sync"
	"time"

	"travel-backoffice-backend/internal/database/models"
	apperrors "travel-backoffice-backend/internal/errors"
	"travel-backoffice-backend/internal/logger"
	"travel-backoffice-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentService routes a lead to an employee and triggers the
// customer notification. The lead update is the source of truth; the
// notification is best-effort and its outcome never changes the result.
type AssignmentService struct {
	leadRepo     repository.LeadRepositoryInterface
	employeeRepo repository.EmployeeRepositoryInterface
	notifier     NotifierInterface
}

// NewAssignmentService creates a new assignment service
func NewAssignmentService(
	leadRepo repository.LeadRepositoryInterface,
	employeeRepo repository.EmployeeRepositoryInterface,
	notifier NotifierInterface,
) *AssignmentService {
	return &AssignmentService{
		leadRepo:     leadRepo,
		employeeRepo: employeeRepo,
		notifier:     notifier,
	}
}

// AssignLeadRequest represents an assignment request. EmployeeName and
// EmployeeEmail are overrides: when empty, the employee record's own
// name/email are snapshotted onto the lead.
type AssignLeadRequest struct {
	LeadID        string `json:"leadId"`
	EmployeeID    string `json:"employeeId"`
	EmployeeName  string `json:"employeeName,omitempty"`
	EmployeeEmail string `json:"employeeEmail,omitempty"`
}

// AssignLead assigns a lead to an employee:
//
//  1. validate ids (no store access on failure),
//  2. fetch lead and employee concurrently (independent point reads),
//  3. write the denormalized assignment snapshot onto the lead,
//  4. re-read the lead as the authoritative result,
//  5. best-effort notify the customer (failures logged and swallowed).
//
// There is no concurrency control on the lead row: two racing assigns
// both succeed and the last writer wins.
func (s *AssignmentService) AssignLead(req *AssignLeadRequest) (*models.Lead, error) {
	if req == nil || req.LeadID == "" || req.EmployeeID == "" {
		return nil, apperrors.ErrAssignmentIDsRequired
	}

	leadID, err := uuid.Parse(req.LeadID)
	if err != nil {
		return nil, apperrors.NewValidationError("leadId", "invalid lead ID")
	}
	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return nil, apperrors.NewValidationError("employeeId", "invalid employee ID")
	}

	// Fetch both records in parallel; the reads are independent point
	// lookups with no ordering requirement between them.
	var (
		wg          sync.WaitGroup
		lead        *models.Lead
		leadErr     error
		employee    *models.Employee
		employeeErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		lead, leadErr = s.leadRepo.GetByID(leadID)
	}()
	go func() {
		defer wg.Done()
		employee, employeeErr = s.employeeRepo.GetByID(employeeID)
	}()
	wg.Wait()

	if leadErr != nil {
		if errors.Is(leadErr, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeadNotFound
		}
		return nil, apperrors.NewStoreError("fetch lead", leadErr)
	}
	if employeeErr != nil {
		if errors.Is(employeeErr, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, apperrors.NewStoreError("fetch employee", employeeErr)
	}

	// Snapshot values: caller overrides win when non-empty.
	assignedName := req.EmployeeName
	if assignedName == "" {
		assignedName = employee.Name
	}
	assignedEmail := req.EmployeeEmail
	if assignedEmail == "" {
		assignedEmail = employee.Email
	}

	assignedAt := time.Now().UTC()
	if err := s.leadRepo.UpdateAssignment(leadID, employeeID, assignedName, assignedEmail, assignedAt); err != nil {
		return nil, apperrors.NewStoreError("update lead assignment", err)
	}

	updated, err := s.leadRepo.GetByID(leadID)
	if err != nil {
		return nil, apperrors.NewStoreError("reload lead", err)
	}

	s.notifyCustomer(lead, employee)

	return updated, nil
}

// notifyCustomer sends the employee's contact details to the customer.
// The send is best-effort by contract: any failure is logged with enough
// context to diagnose and then discarded. It must never propagate into
// the assignment result, and there is no retry or outbox; an unsent
// notification is lost with only the log line as evidence.
func (s *AssignmentService) notifyCustomer(lead *models.Lead, employee *models.Employee) {
	payload := EmployeeDetailsNotification{
		CustomerEmail: lead.Email,
		CustomerName:  lead.Name,
		Destination:   lead.Destination,
		EmployeeName:  employee.Name,
		EmployeePhone: employee.Phone,
		EmployeeEmail: employee.Email,
	}

	log := logger.New().WithFields(map[string]interface{}{
		"lead_id":     lead.ID,
		"employee_id": employee.ID,
		"recipient":   payload.CustomerEmail,
	})

	messageID, err := s.notifier.SendEmployeeDetails(payload)
	if err != nil {
		log.WithError(err).Warn("Failed to send employee details notification")
		return
	}

	log.WithField("message_id", messageID).Info("Employee details notification sent")
}
