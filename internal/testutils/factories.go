package testutils

import (
	"time"

	"travel-backoffice-backend/internal/database/models"

	"github.com/google/uuid"
)

// LeadFactory provides methods to create test Lead data
type LeadFactory struct{}

// NewLeadFactory creates a new LeadFactory
func NewLeadFactory() *LeadFactory {
	return &LeadFactory{}
}

// Create creates a test Lead with default values
func (f *LeadFactory) Create() *models.Lead {
	return &models.Lead{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Asha Verma",
		Email:       "asha.verma@example.com",
		Phone:       "+919812345678",
		Destination: "Bali",
		TravelDates: "2026-10-12 to 2026-10-19",
		Travelers:   2,
		Notes:       "Interested in a honeymoon package",
		Status:      models.LeadStatusNew,
	}
}

// WithDestination sets a custom destination for the lead
func (f *LeadFactory) WithDestination(destination string) *models.Lead {
	lead := f.Create()
	lead.Destination = destination
	return lead
}

// WithStatus sets a custom status for the lead
func (f *LeadFactory) WithStatus(status models.LeadStatus) *models.Lead {
	lead := f.Create()
	lead.Status = status
	return lead
}

// WithAssignment fills in the assignment snapshot
func (f *LeadFactory) WithAssignment(employee *models.Employee) *models.Lead {
	lead := f.Create()
	now := time.Now().UTC()
	lead.AssignedEmployeeID = &employee.ID
	lead.AssignedEmployeeName = employee.Name
	lead.AssignedEmployeeEmail = employee.Email
	lead.AssignedAt = &now
	return lead
}

// EmployeeFactory provides methods to create test Employee data
type EmployeeFactory struct{}

// NewEmployeeFactory creates a new EmployeeFactory
func NewEmployeeFactory() *EmployeeFactory {
	return &EmployeeFactory{}
}

// Create creates a test Employee with default values. Email and phone are
// derived from the generated id so rows never collide on the unique indexes.
func (f *EmployeeFactory) Create() *models.Employee {
	id := uuid.New()
	suffix := id.String()[:8]

	return &models.Employee{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Rahul Mehta",
		Email:       "rahul." + suffix + "@travloger.in",
		Phone:       "+9198" + suffix[:2] + "0000" + suffix[2:4],
		Destination: "Bali",
		Role:        models.EmployeeRoleAgent,
		Status:      models.EmployeeStatusActive,
	}
}

// WithName sets a custom name for the employee
func (f *EmployeeFactory) WithName(name string) *models.Employee {
	employee := f.Create()
	employee.Name = name
	return employee
}

// WithEmail sets a custom email for the employee
func (f *EmployeeFactory) WithEmail(email string) *models.Employee {
	employee := f.Create()
	employee.Email = email
	return employee
}

// WithDestination sets a custom destination for the employee
func (f *EmployeeFactory) WithDestination(destination string) *models.Employee {
	employee := f.Create()
	employee.Destination = destination
	return employee
}

// BookingFactory provides methods to create test Booking data
type BookingFactory struct{}

// NewBookingFactory creates a new BookingFactory
func NewBookingFactory() *BookingFactory {
	return &BookingFactory{}
}

// Create creates a test Booking with default values
func (f *BookingFactory) Create() *models.Booking {
	return &models.Booking{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Customer:      "Asha Verma",
		Email:         "asha.verma@example.com",
		Phone:         "+919812345678",
		PackageName:   "Bali Honeymoon Special",
		Destination:   "Bali",
		Travelers:     2,
		Amount:        58999,
		Status:        models.BookingStatusPending,
		TravelDate:    "2026-10-12",
		PaymentStatus: models.PaymentStatusPending,
		BookingDate:   time.Now().UTC(),
	}
}

// WithLead links the booking to a lead
func (f *BookingFactory) WithLead(leadID uuid.UUID) *models.Booking {
	booking := f.Create()
	booking.LeadID = &leadID
	return booking
}

// WithStatus sets a custom status for the booking
func (f *BookingFactory) WithStatus(status models.BookingStatus) *models.Booking {
	booking := f.Create()
	booking.Status = status
	return booking
}

// PackageFactory provides methods to create test TravelPackage data
type PackageFactory struct{}

// NewPackageFactory creates a new PackageFactory
func NewPackageFactory() *PackageFactory {
	return &PackageFactory{}
}

// Create creates a test TravelPackage with default values
func (f *PackageFactory) Create() *models.TravelPackage {
	return &models.TravelPackage{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:         "Bali Honeymoon Special",
		Destination:  "Bali",
		Route:        "bali",
		DurationDays: 7,
		Price:        58999,
	}
}

// WithRoute sets a custom route key for the package
func (f *PackageFactory) WithRoute(route string) *models.TravelPackage {
	pkg := f.Create()
	pkg.Route = route
	return pkg
}

// WithDestination sets a custom destination for the package
func (f *PackageFactory) WithDestination(destination string) *models.TravelPackage {
	pkg := f.Create()
	pkg.Destination = destination
	return pkg
}
