package utils

import (
	"context"
	"errors"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
)

var sampleSchema = &ResponseSchema{
	Type: "object",
	Properties: map[string]*ResponseSchema{
		"tags": {
			Type:     "array",
			Items:    &ResponseSchema{Type: "string"},
			MinItems: 1,
			MaxItems: 3,
		},
		"title": {Type: "string", Description: "short title"},
	},
	Required: []string{"title"},
}

func TestResponseSchema_JSONSchema(t *testing.T) {
	doc := sampleSchema.JSONSchema()

	assert.Equal(t, "object", doc["type"])
	assert.Equal(t, []string{"title"}, doc["required"])

	props := doc["properties"].(map[string]interface{})
	tags := props["tags"].(map[string]interface{})
	assert.Equal(t, "array", tags["type"])
	assert.Equal(t, 1, tags["minItems"])
	assert.Equal(t, 3, tags["maxItems"])
	assert.Equal(t, map[string]interface{}{"type": "string"}, tags["items"])
	assert.Equal(t, "short title", props["title"].(map[string]interface{})["description"])
}

func TestResponseSchema_GenaiSchema(t *testing.T) {
	s := sampleSchema.GenaiSchema()

	require.NotNil(t, s)
	assert.Equal(t, genai.TypeObject, s.Type)
	assert.Equal(t, []string{"title"}, s.Required)
	assert.Equal(t, genai.TypeArray, s.Properties["tags"].Type)
	assert.Equal(t, genai.TypeString, s.Properties["tags"].Items.Type)
	assert.Equal(t, "short title", s.Properties["title"].Description)

	var nilSchema *ResponseSchema
	assert.Nil(t, nilSchema.GenaiSchema())
}

func TestUnavailableProvider(t *testing.T) {
	cfgErr := &ConfigError{Provider: "Gemini", Code: "MISSING_GEMINI_CONFIG", Missing: []string{"GEMINI_API_KEY"}}
	p := NewUnavailableProvider("Gemini", cfgErr)

	assert.Equal(t, "Gemini", p.Name())
	_, err := p.Complete(context.Background(), CompletionRequest{Prompt: "x"})
	assert.Same(t, cfgErr, err)
	assert.ErrorIs(t, err, ErrMissingConfig)
}

func TestCleanJSONResponse(t *testing.T) {
	assert.Equal(t, `{"a":1}`, CleanJSONResponse("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, CleanJSONResponse("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, CleanJSONResponse("  {\"a\":1}\n"))
}

func TestGeminiMapError(t *testing.T) {
	c := &GeminiCompletionClient{}

	err := c.mapError(&googleapi.Error{Code: 400, Message: "API key not valid", Body: `{"error":{"code":400}}`})
	var upstreamErr *UpstreamError
	require.True(t, errors.As(err, &upstreamErr))
	assert.Equal(t, 400, upstreamErr.StatusCode)
	assert.Equal(t, `{"error":{"code":400}}`, upstreamErr.Details)
	assert.Equal(t, "Gemini", upstreamErr.Provider)

	err = c.mapError(&googleapi.Error{Code: 503, Message: "overloaded"})
	require.True(t, errors.As(err, &upstreamErr))
	assert.Equal(t, "overloaded", upstreamErr.Details)

	err = c.mapError(errors.New("dial tcp: timeout"))
	assert.NotErrorIs(t, err, ErrUpstream)
	assert.EqualError(t, err, "gemini: dial tcp: timeout")
}
