package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this email"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the message verbatim; validation messages are part of
// the API contract and reach clients unchanged.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// StoreError represents a persistence-layer failure. The underlying
// message is surfaced to the caller verbatim; the cause is kept for
// errors.Unwrap.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("store error during %s", e.Op)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NotificationError represents an auxiliary-channel failure. It is never
// surfaced to API callers; call sites log it and move on.
type NotificationError struct {
	Recipient string
	Message   string
}

func (e *NotificationError) Error() string {
	if e.Recipient != "" {
		return fmt.Sprintf("notification to %s failed: %s", e.Recipient, e.Message)
	}
	return fmt.Sprintf("notification failed: %s", e.Message)
}

// Entity Not Found Errors
var (
	ErrLeadNotFound     = &NotFoundError{Entity: "Lead"}
	ErrEmployeeNotFound = &NotFoundError{Entity: "Employee"}
	ErrBookingNotFound  = &NotFoundError{Entity: "Booking"}
	ErrPackageNotFound  = &NotFoundError{Entity: "Package"}
)

// Already Exists Errors
var (
	ErrEmployeeEmailExists = &AlreadyExistsError{Entity: "employee", Context: "with this email"}
	ErrEmployeePhoneExists = &AlreadyExistsError{Entity: "employee", Context: "with this phone"}
)

// Validation Errors
var (
	ErrAssignmentIDsRequired = &ValidationError{Message: "leadId and employeeId are required"}
	ErrBookingFieldsMissing  = &ValidationError{Message: "Missing required fields"}
	ErrCityRequired          = &ValidationError{Field: "city", Message: "city is required"}
	ErrInvalidPhone          = &ValidationError{Field: "phone", Message: "phone number is not valid"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsStore checks if an error is a StoreError
func IsStore(err error) bool {
	var storeErr *StoreError
	return errors.As(err, &storeErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewStoreError wraps a persistence failure
func NewStoreError(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}

// NewNotificationError creates a new NotificationError
func NewNotificationError(recipient, message string) error {
	return &NotificationError{Recipient: recipient, Message: message}
}
