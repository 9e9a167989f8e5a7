package services

import (
	"fmt"

	"tripmate/internal/models/request_models"
	"tripmate/pkg/utils"
)

const (
	TripFlightNumber = "UA2384"
	TripDate         = "August 13th"
	TripCompanion    = "18-year-old daughter"

	TripSystemPrompt = "You are a helpful assistant that outputs only JSON."
)

const tripPromptTemplate = `You are a JSON generation bot. Your only purpose is to create a valid JSON object based on user requirements. Do not add any extra text or explanations.

User Requirements:
- Destination: %s
- Interests: %s
- Flight: %s on %s
- Traveling with: %s

JSON Output Specification:
You MUST generate a single, complete, and valid JSON object. This object MUST contain three top-level keys: "packingList", "activities", and "emailDraft".

1.  **packingList**: An array of objects. Each object must have:
    - ` + "`category`" + ` (string)
    - ` + "`items`" + ` (array of strings)
2.  **activities**: An array of 3-4 objects. Each object must have:
    - ` + "`name`" + ` (string)
    - ` + "`description`" + ` (string)
    - ` + "`type`" + ` (string)
3.  **emailDraft**: An object with "subject" and "body" fields. The body must mention flight number (%s), destination, date (%s), and free bag perks.

CRITICAL: The entire response must be a single JSON object.`

// BuildTripPrompt fills the fixed trip template with the caller's destination and interests.
func BuildTripPrompt(req request_models.SuggestionRequest) string {
	return fmt.Sprintf(tripPromptTemplate,
		req.Destination,
		req.Interests,
		TripFlightNumber, TripDate,
		TripCompanion,
		TripFlightNumber, TripDate,
	)
}

// TripSuggestionSchema is the shape requested from the model.
var TripSuggestionSchema = &utils.ResponseSchema{
	Type: "object",
	Properties: map[string]*utils.ResponseSchema{
		"packingList": {
			Type: "array",
			Items: &utils.ResponseSchema{
				Type: "object",
				Properties: map[string]*utils.ResponseSchema{
					"category": {Type: "string"},
					"items":    {Type: "array", Items: &utils.ResponseSchema{Type: "string"}},
				},
				Required: []string{"category", "items"},
			},
		},
		"activities": {
			Type:     "array",
			MinItems: 3,
			MaxItems: 4,
			Items: &utils.ResponseSchema{
				Type: "object",
				Properties: map[string]*utils.ResponseSchema{
					"name":        {Type: "string"},
					"description": {Type: "string"},
					"type":        {Type: "string"},
				},
				Required: []string{"name", "description", "type"},
			},
		},
		"emailDraft": {
			Type: "object",
			Properties: map[string]*utils.ResponseSchema{
				"subject": {Type: "string"},
				"body":    {Type: "string"},
			},
			Required: []string{"subject", "body"},
		},
	},
	Required: []string{"packingList", "activities", "emailDraft"},
}
