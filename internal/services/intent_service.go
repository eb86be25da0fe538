package services

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"

	"voyago/internal/catalog"
	"voyago/internal/models/request_models"
	"voyago/pkg/utils"
)

type IntentServiceInterface interface {
	ParseIntent(ctx context.Context, text string) (request_models.PlanRequest, error)
}

type IntentService struct {
	model utils.ChatModelInterface
}

// NewIntentService builds the free-text parser. With a nil model only
// the rule-based fallback runs.
func NewIntentService(model utils.ChatModelInterface) IntentServiceInterface {
	return &IntentService{model: model}
}

// Interest labels the planner understands.
var preferenceKeywords = []string{
	"food", "culture", "museum", "art", "architecture", "nature", "outdoors",
	"nightlife", "shopping", "family", "kids", "history", "beach", "hiking",
	"sports", "adventure", "relaxation",
}

func (s *IntentService) ParseIntent(ctx context.Context, text string) (request_models.PlanRequest, error) {
	if strings.TrimSpace(text) == "" {
		return request_models.PlanRequest{}, utils.ErrInvalidInput
	}

	var req request_models.PlanRequest
	if s.model != nil {
		parsed, err := s.parseWithModel(ctx, text)
		if err != nil {
			log.Printf("Model intent parsing failed, using rule-based fallback: %v", err)
			parsed = parseIntentRules(text)
		}
		req = parsed
	} else {
		req = parseIntentRules(text)
	}

	if req.Destination == "" {
		return req, utils.ErrIntentNotUnderstood
	}

	return req, nil
}

func (s *IntentService) parseWithModel(ctx context.Context, text string) (request_models.PlanRequest, error) {
	prompt := fmt.Sprintf(`Parse this trip planning request and extract structured information.

User request: %q

Extract:
1. Destination city (just the city name, properly capitalized)
2. Number of days for the trip
3. Preferences/interests from this list: %s

Respond in this exact format:
DESTINATION: [city name or NONE]
DAYS: [number or NONE]
PREFERENCES: [comma-separated list or NONE]

Now parse the user's request.`, text, strings.Join(preferenceKeywords, ", "))

	out, err := s.model.Complete(ctx, prompt)
	if err != nil {
		return request_models.PlanRequest{}, err
	}

	return parseIntentProtocol(out), nil
}

// parseIntentProtocol reads the DESTINATION/DAYS/PREFERENCES line
// format the model is instructed to produce.
func parseIntentProtocol(out string) request_models.PlanRequest {
	var req request_models.PlanRequest

	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "DESTINATION:"):
			value := strings.TrimSpace(strings.TrimPrefix(line, "DESTINATION:"))
			if value != "NONE" {
				req.Destination = value
			}
		case strings.HasPrefix(line, "DAYS:"):
			value := strings.TrimSpace(strings.TrimPrefix(line, "DAYS:"))
			if value != "NONE" {
				if days, err := strconv.Atoi(value); err == nil {
					req.Days = days
				}
			}
		case strings.HasPrefix(line, "PREFERENCES:"):
			value := strings.TrimSpace(strings.TrimPrefix(line, "PREFERENCES:"))
			if value != "NONE" && value != "" {
				for _, pref := range strings.Split(value, ",") {
					if pref = strings.TrimSpace(pref); pref != "" {
						req.Preferences = append(req.Preferences, pref)
					}
				}
			}
		}
	}

	return req
}

var (
	dayCountPattern = regexp.MustCompile(`(\d+)\s*-?\s*days?`)

	destinationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)to\s+(?:visit\s+)?([A-Za-z\s]+?)(?:\s+for|\s+with|\s*[,.]|\s*$)`),
		regexp.MustCompile(`(?i)(?:visit|see|explore)\s+([A-Za-z\s]+?)(?:\s+for|\s+with|\s*[,.]|\s*$)`),
		regexp.MustCompile(`(?i)show\s+me\s+([A-Za-z\s]+?)(?:\s+for|\s+with|\s*[,.]|\s*$)`),
	}

	trailingDestinationPattern = regexp.MustCompile(`(?i)(?:^|\s)([A-Za-z\s]+?)\s+(?:for|trip)`)

	fillerWords = map[string]struct{}{
		"plan": {}, "show": {}, "me": {}, "want": {}, "need": {},
		"like": {}, "i": {}, "a": {}, "the": {},
	}
)

// parseIntentRules is the rule-based fallback: day-count and
// destination pattern matching plus keyword scanning for preferences.
func parseIntentRules(text string) request_models.PlanRequest {
	var req request_models.PlanRequest
	lower := strings.ToLower(text)

	if m := dayCountPattern.FindStringSubmatch(lower); m != nil {
		if days, err := strconv.Atoi(m[1]); err == nil {
			req.Days = days
		}
	}

	for _, pattern := range destinationPatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			req.Destination = catalog.Normalize(m[1])
			break
		}
	}

	if req.Destination == "" {
		if m := trailingDestinationPattern.FindStringSubmatch(text); m != nil {
			var kept []string
			for _, word := range strings.Fields(strings.ToLower(m[1])) {
				if _, filler := fillerWords[word]; !filler {
					kept = append(kept, word)
				}
			}
			if len(kept) > 0 {
				req.Destination = catalog.Normalize(strings.Join(kept, " "))
			}
		}
	}

	for _, keyword := range preferenceKeywords {
		if strings.Contains(lower, keyword) {
			req.Preferences = append(req.Preferences, keyword)
		}
	}

	return req
}
