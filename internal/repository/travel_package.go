package repository

import (
	"travel-backoffice-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PackageRepository handles database operations for travel packages
type PackageRepository struct {
	db *gorm.DB
}

// NewPackageRepository creates a new travel package repository
func NewPackageRepository(db *gorm.DB) *PackageRepository {
	return &PackageRepository{db: db}
}

// Create creates a new travel package
func (r *PackageRepository) Create(pkg *models.TravelPackage) error {
	return r.db.Create(pkg).Error
}

// GetByID retrieves a travel package by ID
func (r *PackageRepository) GetByID(id uuid.UUID) (*models.TravelPackage, error) {
	var pkg models.TravelPackage
	err := r.db.First(&pkg, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}

// GetAll retrieves travel packages newest first with pagination
func (r *PackageRepository) GetAll(limit, offset int) ([]models.TravelPackage, int64, error) {
	var pkgs []models.TravelPackage
	var total int64

	if err := r.db.Model(&models.TravelPackage{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&pkgs).Error
	if err != nil {
		return nil, 0, err
	}

	return pkgs, total, nil
}

// GetByRoute retrieves packages whose stored location matches exactly,
// newest first
func (r *PackageRepository) GetByRoute(route string) ([]models.TravelPackage, error) {
	var pkgs []models.TravelPackage
	err := r.db.Where("route = ?", route).Order("created_at DESC").Find(&pkgs).Error
	if err != nil {
		return nil, err
	}
	return pkgs, nil
}

// GetByDestinationLike retrieves packages by case-insensitive destination
// pattern, newest first
func (r *PackageRepository) GetByDestinationLike(pattern string) ([]models.TravelPackage, error) {
	var pkgs []models.TravelPackage
	err := r.db.Where("destination ILIKE ?", pattern).Order("created_at DESC").Find(&pkgs).Error
	if err != nil {
		return nil, err
	}
	return pkgs, nil
}

// Update saves changed package fields
func (r *PackageRepository) Update(pkg *models.TravelPackage) error {
	return r.db.Save(pkg).Error
}

// Delete removes a travel package
func (r *PackageRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.TravelPackage{}, "id = ?", id).Error
}
