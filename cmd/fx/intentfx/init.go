package intentfx

import (
	"log"

	"go.uber.org/fx"

	"voyago/internal/config"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

var Module = fx.Provide(
	provideChatModel,
	provideIntentService,
)

// provideChatModel creates the OpenAI client when an API key is
// configured. Without one the intent service falls back to rule-based
// parsing.
func provideChatModel(cfg config.Config) utils.ChatModelInterface {
	if cfg.OpenAIAPIKey == "" {
		log.Println("OPENAI_API_KEY not set, using rule-based intent parsing")
		return nil
	}
	return utils.NewOpenAIChatModel(cfg.OpenAIAPIKey, cfg.OpenAIModel)
}

func provideIntentService(model utils.ChatModelInterface) services.IntentServiceInterface {
	return services.NewIntentService(model)
}
