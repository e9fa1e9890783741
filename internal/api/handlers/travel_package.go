package handlers

import (
	"net/http"
	"strconv"

	"travel-backoffice-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PackageHandler handles HTTP requests for travel packages
type PackageHandler struct {
	packageService service.PackageServiceInterface
}

// NewPackageHandler creates a new travel package handler
func NewPackageHandler(packageService service.PackageServiceInterface) *PackageHandler {
	return &PackageHandler{packageService: packageService}
}

// CreatePackage creates a new travel package
// @Summary Create a new travel package
// @Tags packages
// @Accept json
// @Produce json
// @Param package body service.CreatePackageRequest true "Package data"
// @Success 201 {object} map[string]interface{} "Created package"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Security BearerAuth
// @Router /packages [post]
func (h *PackageHandler) CreatePackage(c *gin.Context) {
	var req service.CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pkg, err := h.packageService.CreatePackage(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"package": pkg})
}

// GetPackage retrieves a travel package by ID
// @Summary Get package by ID
// @Tags packages
// @Produce json
// @Param id path string true "Package ID (UUID)"
// @Success 200 {object} map[string]interface{} "Package"
// @Failure 400 {object} ErrorResponse "Invalid package ID"
// @Failure 404 {object} ErrorResponse "Package not found"
// @Security BearerAuth
// @Router /packages/{id} [get]
func (h *PackageHandler) GetPackage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid package ID"})
		return
	}

	pkg, err := h.packageService.GetPackageByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"package": pkg})
}

// ListPackages lists travel packages newest first
// @Summary List packages
// @Tags packages
// @Produce json
// @Param limit query int false "Number of items to return" default(50)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} map[string]interface{} "Packages list"
// @Security BearerAuth
// @Router /packages [get]
func (h *PackageHandler) ListPackages(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	pkgs, total, err := h.packageService.ListPackages(limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"packages": pkgs,
		"total":    total,
		"limit":    limit,
		"offset":   offset,
	})
}

// GetPackagesByCity lists packages for a city
// @Summary List packages by city
// @Description Exact match on the stored route first, falling back to a case-insensitive destination match.
// @Tags packages
// @Produce json
// @Param city path string true "City name"
// @Success 200 {object} map[string]interface{} "Packages list"
// @Failure 400 {object} ErrorResponse "City is required"
// @Security BearerAuth
// @Router /packages/city/{city} [get]
func (h *PackageHandler) GetPackagesByCity(c *gin.Context) {
	pkgs, err := h.packageService.GetPackagesByCity(c.Param("city"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"packages": pkgs})
}

// UpdatePackage applies a partial update to a travel package
// @Summary Update package
// @Tags packages
// @Accept json
// @Produce json
// @Param id path string true "Package ID (UUID)"
// @Param package body service.UpdatePackageRequest true "Updated package data"
// @Success 200 {object} map[string]interface{} "Updated package"
// @Failure 400 {object} ErrorResponse "Invalid request body or package ID"
// @Failure 404 {object} ErrorResponse "Package not found"
// @Security BearerAuth
// @Router /packages/{id} [patch]
func (h *PackageHandler) UpdatePackage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid package ID"})
		return
	}

	var req service.UpdatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pkg, err := h.packageService.UpdatePackage(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"package": pkg})
}

// DeletePackage removes a travel package
// @Summary Delete package
// @Tags packages
// @Produce json
// @Param id path string true "Package ID (UUID)"
// @Success 200 {object} map[string]interface{} "Deletion confirmation"
// @Failure 400 {object} ErrorResponse "Invalid package ID"
// @Failure 404 {object} ErrorResponse "Package not found"
// @Security BearerAuth
// @Router /packages/{id} [delete]
func (h *PackageHandler) DeletePackage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid package ID"})
		return
	}

	if err := h.packageService.DeletePackage(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Package deleted successfully"})
}
