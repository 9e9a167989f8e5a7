package utils

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const (
	chatTemperature = 0.7
	chatTopP        = 0.95
	chatMaxTokens   = 800
)

// OpenAICompletionClient implements CompletionProvider over the chat completions API,
// either against Azure OpenAI or api.openai.com.
type OpenAICompletionClient struct {
	client *openai.Client
	model  string
	name   string
}

// NewAzureOpenAIClient targets
// {endpoint}/openai/deployments/{deployment}/chat/completions?api-version={apiVersion}
// and authenticates with the api-key header.
func NewAzureOpenAIClient(endpoint, deployment, apiKey, apiVersion string, httpClient *http.Client) *OpenAICompletionClient {
	const name = "Azure OpenAI"

	config := openai.DefaultAzureConfig(apiKey, strings.TrimRight(endpoint, "/"))
	if apiVersion != "" {
		config.APIVersion = apiVersion
	}
	config.AzureModelMapperFunc = func(string) string { return deployment }
	config.HTTPClient = &upstreamErrorDoer{provider: name, next: orDefaultClient(httpClient)}

	return &OpenAICompletionClient{
		client: openai.NewClientWithConfig(config),
		model:  deployment,
		name:   name,
	}
}

// NewOpenAIChatClient targets the public OpenAI API, or baseURL when set.
func NewOpenAIChatClient(apiKey, model, baseURL string, httpClient *http.Client) *OpenAICompletionClient {
	const name = "OpenAI"

	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = strings.TrimRight(baseURL, "/")
	}
	config.HTTPClient = &upstreamErrorDoer{provider: name, next: orDefaultClient(httpClient)}

	return &OpenAICompletionClient{
		client: openai.NewClientWithConfig(config),
		model:  model,
		name:   name,
	}
}

func (c *OpenAICompletionClient) Name() string { return c.name }

func (c *OpenAICompletionClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if req.SystemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.SystemPrompt,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.Prompt,
	})

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: chatTemperature,
		TopP:        chatTopP,
		MaxTokens:   chatMaxTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", c.mapError(err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", &EmptyCompletionError{Provider: c.name}
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *OpenAICompletionClient) mapError(err error) error {
	var upstreamErr *UpstreamError
	if errors.As(err, &upstreamErr) {
		return upstreamErr
	}

	// Only reachable if a response slipped past upstreamErrorDoer.
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode != 0 {
		return &UpstreamError{Provider: c.name, StatusCode: apiErr.HTTPStatusCode, Details: apiErr.Message}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode != 0 {
		return &UpstreamError{Provider: c.name, StatusCode: reqErr.HTTPStatusCode, Details: reqErr.Error()}
	}

	return fmt.Errorf("%s request failed: %w", strings.ToLower(c.name), err)
}

// upstreamErrorDoer keeps the raw body of non-2xx responses. go-openai would otherwise
// reduce it to the parsed error message.
type upstreamErrorDoer struct {
	provider string
	next     *http.Client
}

func (d *upstreamErrorDoer) Do(req *http.Request) (*http.Response, error) {
	resp, err := d.next.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}
	defer resp.Body.Close()

	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return nil, fmt.Errorf("read %s error response: %w", d.provider, readErr)
	}
	return nil, &UpstreamError{
		Provider:   d.provider,
		StatusCode: resp.StatusCode,
		Details:    string(body),
	}
}

func orDefaultClient(c *http.Client) *http.Client {
	if c != nil {
		return c
	}
	return &http.Client{}
}
