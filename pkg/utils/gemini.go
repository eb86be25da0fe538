package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// ItineraryModelInterface generates a day-by-day itinerary as JSON for
// destinations outside the built-in catalog.
type ItineraryModelInterface interface {
	GenerateItineraryJSON(ctx context.Context, destination string, days int, preferences []string) (string, error)
}

type GeminiItineraryModel struct {
	client *genai.Client
	model  string
}

// NewGeminiItineraryModel creates a Gemini client for itinerary
// generation.
func NewGeminiItineraryModel(ctx context.Context, apiKey, model string) (ItineraryModelInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiItineraryModel{
		client: client,
		model:  model,
	}, nil
}

func (m *GeminiItineraryModel) GenerateItineraryJSON(
	ctx context.Context,
	destination string,
	days int,
	preferences []string,
) (string, error) {

	if destination == "" {
		return "", fmt.Errorf("no destination")
	}
	if days < 1 {
		return "", fmt.Errorf("bad day count")
	}

	gm := m.client.GenerativeModel(m.model)
	// Force JSON-only output so no brace matching is needed downstream.
	gm.ResponseMIMEType = "application/json"
	gm.SetTopP(0.5)
	gm.SetTopK(20)
	gm.SetTemperature(0.2)

	schema := `
{
  "destination": "string",
  "days": [
    {
      "day": 1,
      "activities": [
        {"time":"09:00","name":"string","area":"string","tags":["string"],"url":""}
      ]
    }
  ]
}`

	prefLine := "no particular preferences"
	if len(preferences) > 0 {
		prefLine = strings.Join(preferences, ", ")
	}

	prompt := fmt.Sprintf(`
You are planning a %d-day trip to %s. Return **JSON only** that exactly matches the schema below.
Traveller interests: %s.

Schema (example, match keys exactly):
%s

Hard constraints:
- Each day.day = 1..%d (no gaps).
- 1 to 4 activities per day, times from 09:00, 12:00, 15:00, 18:00.
- "area" is the neighborhood or district of the activity.
- "tags" uses lowercase interest labels such as food, culture, nature.
- Leave "url" empty unless you know a real map link.

Return JSON only. No comments, no markdown.
`, days, destination, prefLine, schema, days)

	resp, err := gm.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: no content")
	}

	content := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	if !json.Valid([]byte(content)) {
		return "", fmt.Errorf("gemini: response is not valid JSON")
	}

	return content, nil
}
