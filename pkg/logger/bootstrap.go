package logger

import (
	"io"

	"go.uber.org/zap"

	"github.com/huynhanx03/smart-shms/pkg/settings"
)

// Bootstrap validates cfg and builds its logger. It never fails: on any
// error it falls back to the default stderr logger and reports the problem
// through it.
func Bootstrap(cfg settings.Config, stderr io.Writer) *zap.Logger {
	err := cfg.Validate()
	if err == nil {
		var log *zap.Logger
		if log, err = New(cfg.Logger, stderr); err == nil {
			return log.Named(cfg.App.Name)
		}
	}

	fallback, ferr := New(settings.Default(cfg.App.Name).Logger, stderr)
	if ferr != nil {
		return zap.NewNop()
	}
	fallback = fallback.Named(cfg.App.Name)
	fallback.Warn("using default logger", zap.Error(err))
	return fallback
}
