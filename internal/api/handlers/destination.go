package handlers

import (
	"net/http"

	"travel-backoffice-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DestinationHandler serves the static destination catalog
type DestinationHandler struct {
	destinationService *service.DestinationService
}

// NewDestinationHandler creates a new destination handler
func NewDestinationHandler(destinationService *service.DestinationService) *DestinationHandler {
	return &DestinationHandler{destinationService: destinationService}
}

// ListDestinations returns the sorted destination catalog
// @Summary List destinations
// @Tags destinations
// @Produce json
// @Success 200 {object} map[string]interface{} "Destinations list"
// @Router /destinations [get]
func (h *DestinationHandler) ListDestinations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"destinations": h.destinationService.ListDestinations()})
}
