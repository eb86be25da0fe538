package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voyago/internal/models/request_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type PlanController struct {
	plannerService services.PlannerServiceInterface
	intentService  services.IntentServiceInterface
}

func NewPlanController(
	plannerService services.PlannerServiceInterface,
	intentService services.IntentServiceInterface,
) *PlanController {
	return &PlanController{
		plannerService: plannerService,
		intentService:  intentService,
	}
}

// PlanTrip handles POST /plan with a structured request body.
func (p *PlanController) PlanTrip(c *gin.Context) {
	var req request_models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	plan, err := p.plannerService.PlanTrip(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Itinerary created successfully")
}

// PlanTripFromText handles POST /plan/text: extracts a structured
// request from the free-text prompt, then plans it.
func (p *PlanController) PlanTripFromText(c *gin.Context) {
	var req request_models.TextPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	parsed, err := p.intentService.ParseIntent(c.Request.Context(), req.Prompt)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	plan, err := p.plannerService.PlanTrip(c.Request.Context(), parsed)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Itinerary created successfully")
}
