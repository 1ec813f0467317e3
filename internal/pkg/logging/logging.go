// Package logging builds the application's slog.Logger on top of zap.
package logging

import (
	"fmt"
	"log/slog"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zapcore"
)

const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

type Config struct {
	Level  string
	Format string
}

// New returns a slog.Logger writing through zap and a func flushing its buffers.
// JSON uses zap's production encoder, console the development one.
func New(cfg Config) (*slog.Logger, func() error, error) {
	var zapCfg zap.Config
	switch strings.ToLower(cfg.Format) {
	case FormatJSON, "":
		zapCfg = zap.NewProductionConfig()
	case FormatConsole:
		zapCfg = zap.NewDevelopmentConfig()
	default:
		return nil, nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	if cfg.Level != "" {
		level, err := zap.ParseAtomicLevel(strings.ToLower(cfg.Level))
		if err != nil {
			return nil, nil, fmt.Errorf("log level: %w", err)
		}
		zapCfg.Level = level
	}

	zapLogger, err := zapCfg.Build()
	if err != nil {
		return nil, nil, err
	}

	return FromCore(zapLogger.Core()), zapLogger.Sync, nil
}

// FromCore wraps an existing zap core.
func FromCore(core zapcore.Core) *slog.Logger {
	return slog.New(zapslog.NewHandler(core, zapslog.WithCaller(true)))
}
