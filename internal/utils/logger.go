package utils

import (
	"log"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	loggerOnce sync.Once
	logger     *zap.Logger
)

// InitLogger builds the process logger. Release mode gets JSON production
// output, anything else a colored development config.
func InitLogger(release bool) *zap.Logger {
	loggerOnce.Do(func() {
		var cfg zap.Config
		if release {
			cfg = zap.NewProductionConfig()
			cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
		} else {
			cfg = zap.NewDevelopmentConfig()
			cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
			cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
		l, err := cfg.Build()
		if err != nil {
			log.Fatalf("failed to initialize logger: %v", err)
		}
		logger = l
	})
	return logger
}

// Logger returns the process logger, initializing a development one on demand.
func Logger() *zap.Logger {
	if logger == nil {
		return InitLogger(false)
	}
	return logger
}

// SyncLogger flushes buffered log entries; call it on shutdown.
func SyncLogger() {
	if logger != nil {
		_ = logger.Sync()
	}
}

// LogEvent prints a standardized line with module/action/request_id.
// Avoid logging sensitive payload; message should be summarized.
func LogEvent(requestID, module, action, message string) {
	Logger().Info(message,
		zap.String("module", strings.ToUpper(module)),
		zap.String("action", action),
		zap.String("request_id", strings.TrimSpace(requestID)),
	)
}

// LogError mirrors LogEvent at error level with the cause attached.
func LogError(requestID, module, action string, err error) {
	Logger().Error(action+" failed",
		zap.String("module", strings.ToUpper(module)),
		zap.String("action", action),
		zap.String("request_id", strings.TrimSpace(requestID)),
		zap.Error(err),
	)
}
