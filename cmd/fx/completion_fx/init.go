package completion_fx

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripmate/internal/config"
	"tripmate/pkg/utils"
)

var Module = fx.Provide(ProvideCompletionProvider)

// ProvideCompletionProvider picks the backend named by LLM_PROVIDER. Missing credentials
// do not stop the process: the provider then answers every call with the ConfigError.
func ProvideCompletionProvider(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (utils.CompletionProvider, error) {
	return NewCompletionProvider(context.Background(), lc, cfg.LLM, logger, nil)
}

// NewCompletionProvider builds the provider for llm. lc may be nil outside an fx app.
func NewCompletionProvider(
	ctx context.Context,
	lc fx.Lifecycle,
	llm config.LLMConfig,
	logger *zap.Logger,
	httpClient *http.Client,
) (utils.CompletionProvider, error) {
	name, err := llm.DisplayName()
	if err != nil {
		return nil, err
	}

	if err := llm.Validate(); err != nil {
		var cfgErr *utils.ConfigError
		if errors.As(err, &cfgErr) {
			logger.Warn("completion provider is not configured, requests will fail",
				zap.String("provider", name),
				zap.String("code", cfgErr.Code),
				zap.Strings("missing", cfgErr.Missing),
			)
			return utils.NewUnavailableProvider(name, cfgErr), nil
		}
		return nil, err
	}

	switch llm.Provider {
	case config.ProviderAzure:
		logger.Info("using Azure OpenAI",
			zap.String("endpoint", llm.Azure.Endpoint),
			zap.String("deployment", llm.Azure.Deployment),
			zap.String("api_version", llm.Azure.APIVersion),
		)
		return utils.NewAzureOpenAIClient(llm.Azure.Endpoint, llm.Azure.Deployment, llm.Azure.APIKey, llm.Azure.APIVersion, httpClient), nil

	case config.ProviderOpenAI:
		logger.Info("using OpenAI", zap.String("model", llm.OpenAI.Model), zap.Bool("custom_base_url", llm.OpenAI.BaseURL != ""))
		return utils.NewOpenAIChatClient(llm.OpenAI.APIKey, llm.OpenAI.Model, llm.OpenAI.BaseURL, httpClient), nil

	case config.ProviderGemini:
		logger.Info("using Gemini", zap.String("model", llm.Gemini.Model))
		client, err := utils.NewGeminiCompletionClient(ctx, llm.Gemini.APIKey, llm.Gemini.Model)
		if err != nil {
			return nil, err
		}
		if lc != nil {
			lc.Append(fx.StopHook(client.Close))
		}
		return client, nil
	}

	return nil, utils.ErrUnknownProvider
}
