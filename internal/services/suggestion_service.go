package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"

	"tripmate/internal/models/request_models"
	"tripmate/pkg/metrics"
	"tripmate/pkg/utils"
)

type SuggestionServiceInterface interface {
	GenerateSuggestions(ctx context.Context, req request_models.SuggestionRequest) (json.RawMessage, error)
	ProviderName() string
}

type SuggestionService struct {
	provider utils.CompletionProvider
	timeout  time.Duration
	logger   *zap.Logger
	schema   *gojsonschema.Schema
}

func NewSuggestionService(
	provider utils.CompletionProvider,
	timeout time.Duration,
	logger *zap.Logger,
) SuggestionServiceInterface {
	s := &SuggestionService{
		provider: provider,
		timeout:  timeout,
		logger:   logger.With(zap.String("provider", provider.Name())),
	}

	schema, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(TripSuggestionSchema.JSONSchema()))
	if err != nil {
		s.logger.Warn("trip suggestion schema not compiled, conformance check disabled", zap.Error(err))
	} else {
		s.schema = schema
	}
	return s
}

func (s *SuggestionService) ProviderName() string {
	return s.provider.Name()
}

// GenerateSuggestions makes exactly one provider call and returns its content as is.
func (s *SuggestionService) GenerateSuggestions(ctx context.Context, req request_models.SuggestionRequest) (json.RawMessage, error) {
	log := s.logger.With(
		zap.String("destination", req.Destination),
		zap.String("interests", req.Interests.String()),
	)
	if strings.TrimSpace(req.Destination) == "" || strings.TrimSpace(req.Interests.String()) == "" {
		log.Warn("suggestion request has empty fields")
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	content, err := s.provider.Complete(ctx, utils.CompletionRequest{
		SystemPrompt: TripSystemPrompt,
		Prompt:       BuildTripPrompt(req),
		Schema:       TripSuggestionSchema,
	})
	elapsed := time.Since(start)

	if err != nil {
		if errors.Is(err, utils.ErrMissingConfig) {
			log.Error("provider is not configured", zap.Error(err))
			return nil, err
		}
		metrics.UpstreamDuration.WithLabelValues(s.provider.Name()).Observe(elapsed.Seconds())

		var upstreamErr *utils.UpstreamError
		if errors.As(err, &upstreamErr) {
			log.Error("provider returned an error",
				zap.Int("status", upstreamErr.StatusCode),
				zap.Duration("latency", elapsed),
			)
			return nil, err
		}
		log.Error("provider call failed", zap.Error(err), zap.Duration("latency", elapsed))
		return nil, err
	}
	metrics.UpstreamDuration.WithLabelValues(s.provider.Name()).Observe(elapsed.Seconds())

	content = utils.CleanJSONResponse(content)
	log.Info("provider responded", zap.Duration("latency", elapsed), zap.Int("bytes", len(content)))
	s.checkConformance(log, content)

	return json.RawMessage(content), nil
}

// checkConformance logs when the model output drifts from the requested shape.
// The output is returned to the caller regardless.
func (s *SuggestionService) checkConformance(log *zap.Logger, content string) {
	if s.schema == nil {
		return
	}

	result, err := s.schema.Validate(gojsonschema.NewStringLoader(content))
	if err != nil {
		log.Warn("provider content is not valid JSON", zap.Error(err))
		return
	}
	if result.Valid() {
		return
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		problems = append(problems, e.String())
	}
	log.Warn("provider content does not match the trip schema", zap.Strings("problems", problems))
}
