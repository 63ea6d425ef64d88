package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	envLocal = "local"
	envDev   = "dev"
)

var (
	global = zap.NewNop()
	mu     sync.RWMutex
)

// SetupLogger builds the application logger for env and installs it as the
// package logger. Unknown levels fall back to info.
func SetupLogger(env string, level string) *zap.Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	var cfg zap.Config
	switch env {
	case envLocal, envDev:
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	default:
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build()
	if err != nil {
		l = zap.NewExample()
	}

	setLogger(l.With(zap.String("env", env)))

	return Logger()
}

func setLogger(l *zap.Logger) {
	mu.Lock()
	global = l
	mu.Unlock()
}

// Logger returns the logger installed by SetupLogger, or a no-op logger before that.
func Logger() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}
