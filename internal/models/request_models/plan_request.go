package request_models

// PlanRequest is the structured planning input.
type PlanRequest struct {
	Destination string   `json:"destination"`
	Days        int      `json:"days"`
	Preferences []string `json:"preferences"`
}

// TextPlanRequest carries a free-text trip request for intent
// extraction.
type TextPlanRequest struct {
	Prompt string `json:"prompt"`
}
