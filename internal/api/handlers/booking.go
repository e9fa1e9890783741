package handlers

import (
	"net/http"
	"strconv"

	"travel-backoffice-backend/internal/repository"
	"travel-backoffice-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BookingHandler handles HTTP requests for bookings
type BookingHandler struct {
	bookingService service.BookingServiceInterface
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingService service.BookingServiceInterface) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// CreateBooking creates a new booking
// @Summary Create a new booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param booking body service.CreateBookingRequest true "Booking data"
// @Success 201 {object} map[string]interface{} "Created booking"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Security BearerAuth
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req service.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := h.bookingService.CreateBooking(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"booking": booking})
}

// GetBooking retrieves a booking by ID
// @Summary Get booking by ID
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID (UUID)"
// @Success 200 {object} map[string]interface{} "Booking"
// @Failure 400 {object} ErrorResponse "Invalid booking ID"
// @Failure 404 {object} ErrorResponse "Booking not found"
// @Security BearerAuth
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	booking, err := h.bookingService.GetBookingByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// ListBookings lists bookings newest first with optional filters
// @Summary List bookings
// @Tags bookings
// @Produce json
// @Param status query string false "Filter by status"
// @Param lead_id query string false "Filter by originating lead (UUID)"
// @Param limit query int false "Number of items to return" default(50)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} map[string]interface{} "Bookings list"
// @Security BearerAuth
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	filter := repository.BookingFilter{
		Status: c.Query("status"),
	}
	if v := c.Query("lead_id"); v != "" {
		leadID, err := uuid.Parse(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lead ID"})
			return
		}
		filter.LeadID = &leadID
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	bookings, total, err := h.bookingService.ListBookings(filter, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bookings": bookings,
		"total":    total,
		"limit":    limit,
		"offset":   offset,
	})
}

// UpdateBooking applies a partial status/payment update to a booking
// @Summary Update booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID (UUID)"
// @Param booking body service.UpdateBookingRequest true "Updated booking data"
// @Success 200 {object} map[string]interface{} "Updated booking"
// @Failure 400 {object} ErrorResponse "Invalid request body or booking ID"
// @Failure 404 {object} ErrorResponse "Booking not found"
// @Security BearerAuth
// @Router /bookings/{id} [patch]
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	var req service.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := h.bookingService.UpdateBooking(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": booking})
}
