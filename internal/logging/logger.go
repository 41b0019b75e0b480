package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the application logger for the given environment.
// "development" gets a colored console logger, "test" a no-op logger and
// anything else JSON output at info level.
func New(env string) (*zap.Logger, error) {
	switch env {
	case "test":
		return zap.NewNop(), nil
	case "development":
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		logger, err := cfg.Build()
		if err != nil {
			return nil, fmt.Errorf("failed to build development logger: %w", err)
		}
		return logger, nil
	default:
		cfg := zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		logger, err := cfg.Build(zap.AddStacktrace(zapcore.ErrorLevel))
		if err != nil {
			return nil, fmt.Errorf("failed to build production logger: %w", err)
		}
		return logger.With(zap.String("env", env)), nil
	}
}
