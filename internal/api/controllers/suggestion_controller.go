package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripmate/internal/models/request_models"
	"tripmate/internal/services"
	"tripmate/pkg/metrics"
	"tripmate/pkg/utils"
)

type SuggestionController struct {
	suggestionService services.SuggestionServiceInterface
	logger            *zap.Logger
}

func NewSuggestionController(suggestionService services.SuggestionServiceInterface, logger *zap.Logger) *SuggestionController {
	return &SuggestionController{
		suggestionService: suggestionService,
		logger:            logger,
	}
}

// GenerateSuggestionsHandler godoc
// @Summary Generate trip suggestions
// @Description Builds the trip prompt for a destination and interests and returns the model's packing list, activities and email draft
// @Tags Suggestions
// @Accept json
// @Produce json
// @Param request body request_models.SuggestionRequest true "Destination and interests"
// @Success 200 {object} response_models.TripSuggestion
// @Failure 405 {string} string "Method Not Allowed"
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/suggestions [post]
// @Router /.netlify/functions/generate-suggestions [post]
func (s *SuggestionController) GenerateSuggestionsHandler(c *gin.Context) {
	provider := s.suggestionService.ProviderName()

	if c.Request.Method != http.MethodPost {
		metrics.ObserveRequest(provider, utils.ErrMethodNotAllowed)
		utils.RespondMethodNotAllowed(c)
		return
	}

	req, err := readSuggestionRequest(c)
	if err != nil {
		s.logger.Warn("invalid suggestion request body",
			zap.Error(err),
			zap.String("trace_id", c.GetString(utils.TraceIDKey)),
		)
		metrics.ObserveRequest(provider, err)
		utils.HandleServiceError(c, err)
		return
	}

	content, err := s.suggestionService.GenerateSuggestions(c.Request.Context(), req)
	metrics.ObserveRequest(provider, err)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondContent(c, content)
}

func readSuggestionRequest(c *gin.Context) (request_models.SuggestionRequest, error) {
	body, err := c.GetRawData()
	if err != nil {
		return request_models.SuggestionRequest{}, &utils.InvalidBodyError{Err: err}
	}
	return request_models.DecodeSuggestionRequest(body)
}
