package functions

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"tripmate/internal/models/request_models"
	"tripmate/internal/services"
	"tripmate/pkg/metrics"
	"tripmate/pkg/middleware"
	"tripmate/pkg/utils"
)

// SuggestionFunction serves suggestion requests delivered as API gateway proxy events
// (AWS Lambda, Netlify functions).
type SuggestionFunction struct {
	suggestionService services.SuggestionServiceInterface
	logger            *zap.Logger
}

func NewSuggestionFunction(suggestionService services.SuggestionServiceInterface, logger *zap.Logger) *SuggestionFunction {
	return &SuggestionFunction{
		suggestionService: suggestionService,
		logger:            logger,
	}
}

// Handle never returns an error; every outcome is encoded in the response.
func (f *SuggestionFunction) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	traceID := uuid.New().String()
	provider := f.suggestionService.ProviderName()
	log := f.logger.With(zap.String("trace_id", traceID), zap.String("method", event.HTTPMethod))

	switch event.HTTPMethod {
	case http.MethodOptions:
		return f.respond(traceID, http.StatusNoContent, "", ""), nil
	case http.MethodPost:
	default:
		metrics.ObserveRequest(provider, utils.ErrMethodNotAllowed)
		return f.respond(traceID, http.StatusMethodNotAllowed, "text/plain; charset=utf-8", "Method Not Allowed"), nil
	}

	req, err := decodeRequest(event)
	if err != nil {
		log.Warn("invalid suggestion request body", zap.Error(err))
		metrics.ObserveRequest(provider, err)
		return f.respondError(traceID, err), nil
	}

	content, err := f.suggestionService.GenerateSuggestions(ctx, req)
	metrics.ObserveRequest(provider, err)
	if err != nil {
		return f.respondError(traceID, err), nil
	}

	return f.respond(traceID, http.StatusOK, "application/json", string(content)), nil
}

func decodeRequest(event events.APIGatewayProxyRequest) (request_models.SuggestionRequest, error) {
	body := []byte(event.Body)
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(event.Body)
		if err != nil {
			return request_models.SuggestionRequest{}, &utils.InvalidBodyError{Err: err}
		}
		body = decoded
	}
	return request_models.DecodeSuggestionRequest(body)
}

func (f *SuggestionFunction) respondError(traceID string, err error) events.APIGatewayProxyResponse {
	status, body := utils.MapError(err)
	body.TraceID = traceID

	payload, marshalErr := json.Marshal(body)
	if marshalErr != nil {
		f.logger.Error("failed to encode error body", zap.Error(marshalErr))
		payload = []byte(`{"message":"internal error"}`)
	}
	return f.respond(traceID, status, "application/json", string(payload))
}

func (f *SuggestionFunction) respond(traceID string, status int, contentType, body string) events.APIGatewayProxyResponse {
	headers := map[string]string{
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Headers": "Content-Type",
		"Access-Control-Allow-Methods": "POST, OPTIONS",
		middleware.TraceIDHeader:      traceID,
	}
	if contentType != "" {
		headers["Content-Type"] = contentType
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    headers,
		Body:       body,
	}
}
