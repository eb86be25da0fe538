package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"voyago/internal/services"
	"voyago/pkg/utils"
)

type TripsController struct {
	tripService   services.TripServiceInterface
	exportService services.ExportServiceInterface
}

func NewTripsController(
	tripService services.TripServiceInterface,
	exportService services.ExportServiceInterface,
) *TripsController {
	return &TripsController{
		tripService:   tripService,
		exportService: exportService,
	}
}

// ListTrips handles GET /trips with page/pageSize pagination.
func (t *TripsController) ListTrips(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "10")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	trips, err := t.tripService.ListTrips(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Trips fetched successfully")
}

// GetTripByID handles GET /trips/:id.
func (t *TripsController) GetTripByID(c *gin.Context) {
	tripID := c.Param("id")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	trip, err := t.tripService.GetTripByID(c.Request.Context(), tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip fetched successfully")
}

// ExportMarkdown handles GET /trips/:id/markdown and returns the saved
// itinerary as a markdown document.
func (t *TripsController) ExportMarkdown(c *gin.Context) {
	trip, err := t.tripService.GetTripByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	markdown := t.exportService.ToMarkdown(services.ItineraryFromPlan(trip.Itinerary))
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(markdown))
}

// ExportICS handles GET /trips/:id/ics. The optional start query
// parameter (YYYY-MM-DD) anchors day 1; it defaults to today.
func (t *TripsController) ExportICS(c *gin.Context) {
	trip, err := t.tripService.GetTripByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	startDate := time.Now()
	if raw := c.Query("start"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid start date (expected YYYY-MM-DD)")
			return
		}
		startDate = parsed
	}

	ics := t.exportService.ToICS(services.ItineraryFromPlan(trip.Itinerary), startDate)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(ics))
}
