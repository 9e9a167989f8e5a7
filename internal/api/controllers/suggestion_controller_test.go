package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"tripmate/internal/api/controllers"
	"tripmate/internal/models/response_models"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

const houstonContent = `{"packingList":[{"category":"Clothing","items":["Light shirts"]}],` +
	`"activities":[{"name":"Museum District","description":"Art and science","type":"museums"},` +
	`{"name":"Space Center","description":"NASA","type":"museums"},` +
	`{"name":"Tex-Mex","description":"Fajitas","type":"food"}],` +
	`"emailDraft":{"subject":"Houston trip","body":"Flight UA2384 lands in Houston on August 13th; enjoy the free bag perks."}}`

type recordingProvider struct {
	content string
	err     error
	calls   int
}

func (p *recordingProvider) Name() string { return "Stub" }

func (p *recordingProvider) Complete(context.Context, utils.CompletionRequest) (string, error) {
	p.calls++
	return p.content, p.err
}

func buildTestRouter(t *testing.T, provider utils.CompletionProvider) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := zaptest.NewLogger(t)
	svc := services.NewSuggestionService(provider, time.Second, logger)
	ctrl := controllers.NewSuggestionController(svc, logger)

	r := gin.New()
	r.Any("/api/suggestions", ctrl.GenerateSuggestionsHandler)
	return r
}

func doRequest(r *gin.Engine, method, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/api/suggestions", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGenerateSuggestions_NonPostIs405(t *testing.T) {
	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete, http.MethodPatch} {
		t.Run(method, func(t *testing.T) {
			provider := &recordingProvider{content: houstonContent}
			r := buildTestRouter(t, provider)

			w := doRequest(r, method, `{"destination":"Houston","interests":"food"}`)

			assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
			assert.Equal(t, "Method Not Allowed", w.Body.String())
			assert.Zero(t, provider.calls)
		})
	}
}

func TestGenerateSuggestions_MissingConfig(t *testing.T) {
	cfgErr := &utils.ConfigError{Provider: "Azure OpenAI", Code: "MISSING_AZURE_CONFIG", Missing: []string{"AZURE_OPENAI_KEY"}}
	r := buildTestRouter(t, utils.NewUnavailableProvider("Azure OpenAI", cfgErr))

	w := doRequest(r, http.MethodPost, `{"destination":"Houston","interests":"food"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "MISSING_AZURE_CONFIG", body["error"])
	assert.NotEmpty(t, body["message"])
}

func TestGenerateSuggestions_InvalidJSON(t *testing.T) {
	provider := &recordingProvider{content: houstonContent}
	r := buildTestRouter(t, provider)

	w := doRequest(r, http.MethodPost, `{"destination": "Houston", "interests": `)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, strings.ToLower(body["message"]), "unexpected end of json input")
	assert.Zero(t, provider.calls)
}

func TestGenerateSuggestions_RejectsMalformedBodies(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"trailing garbage", `{"destination":"Houston","interests":"food"} garbage`, "invalid character 'g' after top-level value"},
		{"second object", `{"destination":"Houston"}{"destination":"Austin"}`, "after top-level value"},
		{"null", `null`, "must be a JSON object"},
		{"array", `[{"destination":"Houston"}]`, "must be a JSON object"},
		{"empty", ``, "unexpected end of JSON input"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &recordingProvider{content: houstonContent}
			r := buildTestRouter(t, provider)

			w := doRequest(r, http.MethodPost, tt.body)

			assert.Equal(t, http.StatusInternalServerError, w.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Contains(t, body["message"], tt.message)
			assert.Empty(t, body["error"])
			assert.Zero(t, provider.calls)
		})
	}
}

func TestGenerateSuggestions_UpstreamErrorPassthrough(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusTooManyRequests, http.StatusServiceUnavailable} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			raw := `{"error":{"message":"upstream said no"}}`
			provider := &recordingProvider{err: &utils.UpstreamError{Provider: "Azure OpenAI", StatusCode: status, Details: raw}}
			r := buildTestRouter(t, provider)

			w := doRequest(r, http.MethodPost, `{"destination":"Houston","interests":"food"}`)

			assert.Equal(t, status, w.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, raw, body["details"])
			assert.Equal(t, "Azure OpenAI API Error", body["message"])
		})
	}
}

func TestGenerateSuggestions_EmptyCompletion(t *testing.T) {
	provider := &recordingProvider{err: &utils.EmptyCompletionError{Provider: "Azure OpenAI"}}
	r := buildTestRouter(t, provider)

	w := doRequest(r, http.MethodPost, `{"destination":"Houston","interests":"food"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"No content from Azure OpenAI"}`, w.Body.String())
}

func TestGenerateSuggestions_HoustonScenario(t *testing.T) {
	provider := &recordingProvider{content: houstonContent}
	r := buildTestRouter(t, provider)

	w := doRequest(r, http.MethodPost, `{"destination":"Houston","interests":"food, museums"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, 1, provider.calls)

	var top map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &top))
	assert.Contains(t, top, "packingList")
	assert.Contains(t, top, "activities")
	assert.Contains(t, top, "emailDraft")

	var suggestion response_models.TripSuggestion
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &suggestion))
	assert.Contains(t, suggestion.EmailDraft.Body, "UA2384")
	assert.Contains(t, suggestion.EmailDraft.Body, "August 13th")
}
