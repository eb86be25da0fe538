package plannerfx

import (
	"context"
	"log"

	"go.uber.org/fx"

	"voyago/internal/config"
	"voyago/internal/repositories"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

var Module = fx.Provide(
	provideItineraryModel,
	provideAIPlannerService,
	providePlannerService,
)

// provideItineraryModel creates the Gemini client when an API key is
// configured. Without one the generative fallback is disabled.
func provideItineraryModel(cfg config.Config) utils.ItineraryModelInterface {
	if cfg.GeminiAPIKey == "" {
		log.Println("GEMINI_API_KEY not set, generative planning disabled")
		return nil
	}

	model, err := utils.NewGeminiItineraryModel(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Printf("Error creating Gemini client, generative planning disabled: %v", err)
		return nil
	}
	return model
}

func provideAIPlannerService(model utils.ItineraryModelInterface, cfg config.Config) services.AIPlannerServiceInterface {
	return services.NewAIPlannerService(model, cfg.Planner)
}

func providePlannerService(
	cfg config.Config,
	aiPlanner services.AIPlannerServiceInterface,
	tripRepo repositories.TripRepository,
) (services.PlannerServiceInterface, error) {
	return services.NewPlannerService(cfg.Planner, aiPlanner, tripRepo)
}
