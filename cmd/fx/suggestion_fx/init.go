package suggestion_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripmate/internal/config"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

var Module = fx.Provide(ProvideSuggestionService)

func ProvideSuggestionService(
	provider utils.CompletionProvider,
	cfg *config.Config,
	logger *zap.Logger,
) services.SuggestionServiceInterface {
	return services.NewSuggestionService(provider, cfg.LLM.Timeout, logger)
}
