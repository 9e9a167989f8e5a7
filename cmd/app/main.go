package main

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripmate/cmd/fx/completion_fx"
	"tripmate/cmd/fx/config_fx"
	"tripmate/cmd/fx/controllers_fx"
	"tripmate/cmd/fx/logger_fx"
	"tripmate/cmd/fx/suggestion_fx"
	"tripmate/internal/api"
	"tripmate/internal/api/controllers"
	"tripmate/internal/config"
)

func main() {
	app := fx.New(
		config_fx.Module,
		logger_fx.Module,
		completion_fx.Module,
		suggestion_fx.Module,
		controllers_fx.Module,

		fx.Invoke(StartServer),
		fx.Provide(ProvideRouter),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, logger *zap.Logger) {
	srv := &http.Server{
		Addr:    ":" + cfg.HTTP.Port,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info("starting HTTP server", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("failed to serve HTTP", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(cfg *config.Config, suggestionController *controllers.SuggestionController, logger *zap.Logger) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	return api.NewRouter(suggestionController, logger)
}
