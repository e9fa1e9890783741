package models

// EmployeeRole represents the role of an employee in the agency
type EmployeeRole string

const (
	EmployeeRoleAdmin EmployeeRole = "admin"
	EmployeeRoleAgent EmployeeRole = "agent"
)

// EmployeeStatus represents whether an employee can receive work
type EmployeeStatus string

const (
	EmployeeStatusActive   EmployeeStatus = "Active"
	EmployeeStatusInactive EmployeeStatus = "Inactive"
)

// Employee represents a staff record. Destination is the employee's
// preferred territory and is used as a routing filter when picking an
// assignee for a lead.
type Employee struct {
	BaseModel
	Name        string         `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Email       string         `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Phone       string         `json:"phone" gorm:"uniqueIndex;not null;size:20" validate:"required,max=20"`
	Destination string         `json:"destination" gorm:"size:100;index" validate:"max=100"`
	Role        EmployeeRole   `json:"role" gorm:"type:varchar(30);not null;default:'agent'"`
	Status      EmployeeStatus `json:"status" gorm:"type:varchar(30);not null;default:'Active'"`

	// AuthUserID references the user created in the hosted auth provider.
	// Empty when provisioning failed or was skipped.
	AuthUserID string `json:"auth_user_id,omitempty" gorm:"size:64"`
}

// TableName returns the table name for Employee
func (Employee) TableName() string {
	return "employees"
}
