package controllers

import (
	"github.com/gin-gonic/gin"

	"voyago/internal/catalog"
	"voyago/pkg/utils"
)

type DestinationsController struct{}

func NewDestinationsController() *DestinationsController {
	return &DestinationsController{}
}

// ListDestinations handles GET /destinations and returns the cities
// the built-in catalog supports.
func (d *DestinationsController) ListDestinations(c *gin.Context) {
	utils.RespondSuccess(c, catalog.SupportedCities(), "Destinations fetched successfully")
}
