package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"tripmate/internal/api/controllers"
	"tripmate/pkg/middleware"
)

// NetlifyFunctionPath is the path the original serverless deployment answered on.
const NetlifyFunctionPath = "/.netlify/functions/generate-suggestions"

func NewRouter(suggestionController *controllers.SuggestionController, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, suggestionController)
	return r
}

func RegisterRoutes(r *gin.Engine, suggestionController *controllers.SuggestionController) {
	// Any: the handler answers non-POST methods itself with a plain-text 405.
	apiGroup := r.Group("/api")
	apiGroup.Any("/suggestions", suggestionController.GenerateSuggestionsHandler)

	r.Any(NetlifyFunctionPath, suggestionController.GenerateSuggestionsHandler)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
