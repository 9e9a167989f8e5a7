package request_models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripmate/pkg/utils"
)

func TestSuggestionRequest_Unmarshal(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		interests string
	}{
		{"string", `{"destination":"Houston","interests":"food, museums"}`, "food, museums"},
		{"array", `{"destination":"Houston","interests":["food","museums"]}`, "food, museums"},
		{"null", `{"destination":"Houston","interests":null}`, ""},
		{"absent", `{"destination":"Houston"}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req SuggestionRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			assert.Equal(t, "Houston", req.Destination)
			assert.Equal(t, tt.interests, req.Interests.String())
		})
	}
}

func TestSuggestionRequest_UnmarshalRejectsNumbers(t *testing.T) {
	var req SuggestionRequest
	err := json.Unmarshal([]byte(`{"destination":"Houston","interests":42}`), &req)
	assert.Error(t, err)
}

func TestDecodeSuggestionRequest(t *testing.T) {
	req, err := DecodeSuggestionRequest([]byte(" {\"destination\":\"Houston\",\"interests\":[\"food\",\"museums\"]}\n"))
	require.NoError(t, err)
	assert.Equal(t, "Houston", req.Destination)
	assert.Equal(t, "food, museums", req.Interests.String())
}

func TestDecodeSuggestionRequest_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"trailing garbage", `{"destination":"Houston"} garbage`, "invalid character 'g' after top-level value"},
		{"null", `null`, "request body must be a JSON object, got null"},
		{"string", `"Houston"`, "got string"},
		{"number", `42`, "got number"},
		{"array", `[]`, "got array"},
		{"truncated", `{"destination":`, "unexpected end of JSON input"},
		{"bad interests", `{"interests":42}`, "interests"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeSuggestionRequest([]byte(tt.body))
			require.Error(t, err)
			assert.ErrorIs(t, err, utils.ErrInvalidRequestBody)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}
