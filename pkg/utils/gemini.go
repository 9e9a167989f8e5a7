package utils

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const geminiTemperature = 0.7

// GeminiCompletionClient implements CompletionProvider using Google's Gemini models.
type GeminiCompletionClient struct {
	client *genai.Client
	model  string
}

func NewGeminiCompletionClient(ctx context.Context, apiKey, model string, opts ...option.ClientOption) (*GeminiCompletionClient, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiCompletionClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiCompletionClient) Name() string { return "Gemini" }

func (c *GeminiCompletionClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(geminiTemperature)
	if req.Schema != nil {
		m.ResponseSchema = req.Schema.GenaiSchema()
	}
	if req.SystemPrompt != "" {
		m.SystemInstruction = genai.NewUserContent(genai.Text(req.SystemPrompt))
	}

	resp, err := m.GenerateContent(ctx, genai.Text(req.Prompt))
	if err != nil {
		return "", c.mapError(err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", &EmptyCompletionError{Provider: c.Name()}
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text.WriteString(string(txt))
		}
	}
	if strings.TrimSpace(text.String()) == "" {
		return "", &EmptyCompletionError{Provider: c.Name()}
	}
	return text.String(), nil
}

func (c *GeminiCompletionClient) mapError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code != 0 {
		details := apiErr.Body
		if details == "" {
			details = apiErr.Message
		}
		return &UpstreamError{Provider: c.Name(), StatusCode: apiErr.Code, Details: details}
	}
	return fmt.Errorf("gemini: %w", err)
}

func (c *GeminiCompletionClient) Close() error {
	return c.client.Close()
}

// GenaiSchema converts the schema into Gemini's responseSchema representation.
func (s *ResponseSchema) GenaiSchema() *genai.Schema {
	if s == nil {
		return nil
	}
	out := &genai.Schema{
		Type:        genaiType(s.Type),
		Description: s.Description,
		Required:    s.Required,
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for k, p := range s.Properties {
			out.Properties[k] = p.GenaiSchema()
		}
	}
	if s.Items != nil {
		out.Items = s.Items.GenaiSchema()
	}
	return out
}

func genaiType(t string) genai.Type {
	switch t {
	case "object":
		return genai.TypeObject
	case "array":
		return genai.TypeArray
	case "string":
		return genai.TypeString
	case "number":
		return genai.TypeNumber
	case "integer":
		return genai.TypeInteger
	case "boolean":
		return genai.TypeBoolean
	default:
		return genai.TypeUnspecified
	}
}
