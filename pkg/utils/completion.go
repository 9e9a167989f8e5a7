package utils

import (
	"context"
	"strings"
)

// CompletionRequest is one prompt sent to a text-generation backend.
type CompletionRequest struct {
	SystemPrompt string
	Prompt       string
	// Schema is a hint describing the JSON the model should return. Backends that
	// cannot express it fall back to plain JSON mode.
	Schema *ResponseSchema
}

// CompletionProvider is a generative-AI backend (Azure OpenAI, OpenAI, Gemini).
type CompletionProvider interface {
	Name() string
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// ResponseSchema is a backend-neutral description of the expected JSON output.
type ResponseSchema struct {
	Type        string
	Description string
	Properties  map[string]*ResponseSchema
	Items       *ResponseSchema
	Required    []string
	MinItems    int
	MaxItems    int
}

// JSONSchema renders the schema as a draft-07 JSON schema document.
func (s *ResponseSchema) JSONSchema() map[string]interface{} {
	if s == nil {
		return map[string]interface{}{}
	}
	out := map[string]interface{}{"type": s.Type}
	if s.Description != "" {
		out["description"] = s.Description
	}
	if len(s.Properties) > 0 {
		props := make(map[string]interface{}, len(s.Properties))
		for k, p := range s.Properties {
			props[k] = p.JSONSchema()
		}
		out["properties"] = props
	}
	if s.Items != nil {
		out["items"] = s.Items.JSONSchema()
	}
	if len(s.Required) > 0 {
		out["required"] = s.Required
	}
	if s.MinItems > 0 {
		out["minItems"] = s.MinItems
	}
	if s.MaxItems > 0 {
		out["maxItems"] = s.MaxItems
	}
	return out
}

type unavailableProvider struct {
	name string
	err  error
}

// NewUnavailableProvider returns a provider that fails every call with err.
// It stands in for a backend whose credentials are missing so the process still
// serves requests and reports the configuration error to each caller.
func NewUnavailableProvider(name string, err error) CompletionProvider {
	return &unavailableProvider{name: name, err: err}
}

func (p *unavailableProvider) Name() string { return p.name }

func (p *unavailableProvider) Complete(context.Context, CompletionRequest) (string, error) {
	return "", p.err
}

// CleanJSONResponse strips markdown code fences a model may wrap around JSON.
func CleanJSONResponse(input string) string {
	input = strings.TrimSpace(input)
	if !strings.HasPrefix(input, "```") {
		return input
	}
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```JSON")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
