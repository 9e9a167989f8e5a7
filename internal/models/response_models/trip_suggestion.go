package response_models

// TripSuggestion documents the JSON the model is asked to produce. The service relays
// the model output verbatim; this type exists for clients and tests.
type TripSuggestion struct {
	PackingList []PackingCategory `json:"packingList"`
	Activities  []Activity        `json:"activities"`
	EmailDraft  EmailDraft        `json:"emailDraft"`
}

type PackingCategory struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

type Activity struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

type EmailDraft struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
