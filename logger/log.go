package logger

import (
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Logger *zap.Logger

// InitializeLogger initializes the global logger.
func InitializeLogger() {
	env := os.Getenv("ENV")
	var err error
	var logger *zap.Logger
	if env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}

	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}

	Logger = logger
}

// Close flushes the logger buffers.
func Close() {
	if err := Logger.Sync(); err != nil {
		log.Printf("failed to flush log entries: %v", err)
	}
}

// Global logging helpers to avoid `logger.Logger` repetition

func Info(msg string, args ...zapcore.Field) {
	l().Info(msg, args...)
}

func Warn(msg string, args ...zapcore.Field) {
	l().Warn(msg, args...)
}

func Error(msg string, args ...zapcore.Field) {
	l().Error(msg, args...)
}

func Debug(msg string, args ...zapcore.Field) {
	l().Debug(msg, args...)
}

func l() *zap.Logger {
	if Logger == nil {
		InitializeLogger()
	}
	return Logger
}
