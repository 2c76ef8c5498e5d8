// Package logger builds the zap loggers used across the service.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a logger for the given environment.
// "production" gets JSON output, anything else a colored console logger.
func New(serviceName, environment string) *zap.Logger {
	if environment == "production" {
		return NewProduction(serviceName)
	}
	return NewDevelopment(serviceName)
}

// NewProduction creates a JSON logger at info level
func NewProduction(serviceName string) *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.InitialFields = map[string]any{
		"service": serviceName,
	}

	logger, err := config.Build()
	if err != nil {
		panic(err)
	}
	return logger
}

// NewDevelopment creates a human-readable logger at debug level
func NewDevelopment(serviceName string) *zap.Logger {
	config := zap.NewDevelopmentConfig()
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.InitialFields = map[string]any{
		"service": serviceName,
	}

	logger, err := config.Build()
	if err != nil {
		panic(err)
	}
	return logger
}
