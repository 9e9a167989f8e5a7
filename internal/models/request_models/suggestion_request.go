package request_models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"tripmate/pkg/utils"
)

type SuggestionRequest struct {
	Destination string    `json:"destination"`
	Interests   Interests `json:"interests"`
}

// DecodeSuggestionRequest parses a whole request body. The body must be exactly one
// JSON object; trailing data and non-object values are rejected. Failures are
// returned as *utils.InvalidBodyError.
func DecodeSuggestionRequest(body []byte) (SuggestionRequest, error) {
	var req SuggestionRequest

	var raw json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return req, &utils.InvalidBodyError{Err: err}
	}
	raw = bytes.TrimSpace(raw)
	if raw[0] != '{' {
		return req, &utils.InvalidBodyError{Err: fmt.Errorf("request body must be a JSON object, got %s", kindOf(raw))}
	}
	if err := json.Unmarshal(raw, &req); err != nil {
		return req, &utils.InvalidBodyError{Err: err}
	}
	return req, nil
}

func kindOf(raw json.RawMessage) string {
	switch raw[0] {
	case '[':
		return "array"
	case '"':
		return "string"
	case 'n':
		return "null"
	case 't', 'f':
		return "boolean"
	default:
		return "number"
	}
}

// Interests is a free-text list of interests. Clients send either a single string
// ("food, museums") or an array of strings; both end up as one comma separated string.
type Interests string

func (i *Interests) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*i = ""
		return nil
	}

	if data[0] == '[' {
		var list []string
		if err := json.Unmarshal(data, &list); err != nil {
			return fmt.Errorf("interests: %w", err)
		}
		*i = Interests(strings.Join(list, ", "))
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("interests: %w", err)
	}
	*i = Interests(s)
	return nil
}

func (i Interests) String() string { return string(i) }
