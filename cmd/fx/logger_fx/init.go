package logger_fx

import (
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"tripmate/internal/config"
	"tripmate/pkg/logger"
)

var Module = fx.Options(
	fx.Provide(provideLogger),
	fx.WithLogger(func(l *zap.Logger) fxevent.Logger {
		return &fxevent.ZapLogger{Logger: l.Named("fx")}
	}),
)

func provideLogger(lc fx.Lifecycle, cfg *config.Config) *zap.Logger {
	l := logger.New(cfg.Log.Level, cfg.Log.Format).With(zap.String("env", cfg.Env))
	lc.Append(fx.StopHook(func() {
		_ = l.Sync()
	}))
	return l
}
