package repository

import (
	"time"

	"travel-backoffice-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeadRepository handles database operations for leads
type LeadRepository struct {
	db *gorm.DB
}

// NewLeadRepository creates a new lead repository
func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

// Create creates a new lead
func (r *LeadRepository) Create(lead *models.Lead) error {
	return r.db.Create(lead).Error
}

// GetByID retrieves a lead by ID
func (r *LeadRepository) GetByID(id uuid.UUID) (*models.Lead, error) {
	var lead models.Lead
	err := r.db.First(&lead, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

// GetAll retrieves leads newest first, optionally filtered, with pagination
func (r *LeadRepository) GetAll(filter LeadFilter, limit, offset int) ([]models.Lead, int64, error) {
	var leads []models.Lead
	var total int64

	query := r.db.Model(&models.Lead{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Destination != "" {
		query = query.Where("destination = ?", filter.Destination)
	}
	if filter.AssignedEmployeeID != nil {
		query = query.Where("assigned_employee_id = ?", *filter.AssignedEmployeeID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&leads).Error
	if err != nil {
		return nil, 0, err
	}

	return leads, total, nil
}

// Update saves changed lead fields
func (r *LeadRepository) Update(lead *models.Lead) error {
	return r.db.Save(lead).Error
}

// UpdateAssignment writes the assignment sub-record on a lead in a single
// row update. Last writer wins: there is no version check, matching the
// reference behavior of concurrent assigns on the same lead.
func (r *LeadRepository) UpdateAssignment(id uuid.UUID, employeeID uuid.UUID, name, email string, assignedAt time.Time) error {
	return r.db.Model(&models.Lead{}).Where("id = ?", id).Updates(map[string]interface{}{
		"assigned_employee_id":    employeeID,
		"assigned_employee_name":  name,
		"assigned_employee_email": email,
		"assigned_at":             assignedAt,
	}).Error
}
