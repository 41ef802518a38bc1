// Package logger builds the zap loggers used across the app.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Environments understood by New
const (
	EnvProduction  = "production"
	EnvDevelopment = "development"
)

// New returns a JSON logger for production and a console logger otherwise.
// Development loggers panic on DPanic, which turns contract violations into
// crashes while developing.
func New(environment string) (*zap.Logger, error) {
	var config zap.Config

	if environment == EnvProduction {
		config = zap.NewProductionConfig()
		config.EncoderConfig.TimeKey = "timestamp"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	return config.Build(zap.Fields(zap.String("env", environment)))
}
