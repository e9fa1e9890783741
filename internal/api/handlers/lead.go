package handlers

import (
	"net/http"
	"strconv"

	"travel-backoffice-backend/internal/repository"
	"travel-backoffice-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LeadHandler handles HTTP requests for leads, including assignment
type LeadHandler struct {
	leadService       service.LeadServiceInterface
	assignmentService service.AssignmentServiceInterface
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(leadService service.LeadServiceInterface, assignmentService service.AssignmentServiceInterface) *LeadHandler {
	return &LeadHandler{
		leadService:       leadService,
		assignmentService: assignmentService,
	}
}

// AssignLead assigns a lead to an employee
// @Summary Assign a lead to an employee
// @Description Persist the assignment snapshot on the lead and trigger a best-effort customer notification. The notification outcome never affects the response.
// @Tags leads
// @Accept json
// @Produce json
// @Param assignment body service.AssignLeadRequest true "Assignment request"
// @Success 200 {object} map[string]interface{} "Updated lead"
// @Failure 400 {object} ErrorResponse "Missing or invalid identifiers"
// @Failure 404 {object} ErrorResponse "Lead or employee not found"
// @Failure 500 {object} ErrorResponse "Store failure"
// @Security BearerAuth
// @Router /leads/assign [post]
func (h *LeadHandler) AssignLead(c *gin.Context) {
	var req service.AssignLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lead, err := h.assignmentService.AssignLead(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"lead": lead})
}

// CreateLead captures a new lead
// @Summary Create a new lead
// @Tags leads
// @Accept json
// @Produce json
// @Param lead body service.CreateLeadRequest true "Lead data"
// @Success 201 {object} map[string]interface{} "Created lead"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Security BearerAuth
// @Router /leads [post]
func (h *LeadHandler) CreateLead(c *gin.Context) {
	var req service.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lead, err := h.leadService.CreateLead(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"lead": lead})
}

// GetLead retrieves a lead by ID
// @Summary Get lead by ID
// @Tags leads
// @Produce json
// @Param id path string true "Lead ID (UUID)"
// @Success 200 {object} map[string]interface{} "Lead"
// @Failure 400 {object} ErrorResponse "Invalid lead ID"
// @Failure 404 {object} ErrorResponse "Lead not found"
// @Security BearerAuth
// @Router /leads/{id} [get]
func (h *LeadHandler) GetLead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lead ID"})
		return
	}

	lead, err := h.leadService.GetLeadByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"lead": lead})
}

// ListLeads lists leads newest first with optional filters
// @Summary List leads
// @Tags leads
// @Produce json
// @Param status query string false "Filter by status"
// @Param destination query string false "Filter by destination"
// @Param assigned_employee_id query string false "Filter by assigned employee (UUID)"
// @Param limit query int false "Number of items to return" default(50)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} map[string]interface{} "Leads list"
// @Security BearerAuth
// @Router /leads [get]
func (h *LeadHandler) ListLeads(c *gin.Context) {
	filter := repository.LeadFilter{
		Status:      c.Query("status"),
		Destination: c.Query("destination"),
	}
	if v := c.Query("assigned_employee_id"); v != "" {
		employeeID, err := uuid.Parse(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assigned employee ID"})
			return
		}
		filter.AssignedEmployeeID = &employeeID
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	leads, total, err := h.leadService.ListLeads(filter, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"leads":  leads,
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}

// UpdateLead applies a partial update to a lead
// @Summary Update lead
// @Description Partial update of contact/status fields. The assignment sub-record is owned by the assign operation and cannot be changed here.
// @Tags leads
// @Accept json
// @Produce json
// @Param id path string true "Lead ID (UUID)"
// @Param lead body service.UpdateLeadRequest true "Updated lead data"
// @Success 200 {object} map[string]interface{} "Updated lead"
// @Failure 400 {object} ErrorResponse "Invalid request body or lead ID"
// @Failure 404 {object} ErrorResponse "Lead not found"
// @Security BearerAuth
// @Router /leads/{id} [patch]
func (h *LeadHandler) UpdateLead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lead ID"})
		return
	}

	var req service.UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lead, err := h.leadService.UpdateLead(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"lead": lead})
}
