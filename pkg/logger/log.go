package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger собирает zap-логгер в консольном формате.
// paths - куда писать ("stdout", "./logs/app.log", ...).
func NewLogger(level string, paths []string) (*zap.Logger, error) {
	lvl := zap.NewAtomicLevelAt(zap.DebugLevel)
	if level != "" {
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return nil, err
		}
	}
	if len(paths) == 0 {
		paths = []string{"stdout"}
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	cfg := zap.Config{
		Encoding:         "console",
		Level:            lvl,
		OutputPaths:      paths,
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig:    encoderCfg,
	}
	return cfg.Build()
}

// Loggers - отдельные логгеры для разных частей приложения.
type Loggers struct {
	Main   *zap.Logger
	Auth   *zap.Logger
	Access *zap.Logger
}

func NewLoggers(base *zap.Logger) *Loggers {
	return &Loggers{
		Main:   base.Named("main"),
		Auth:   base.Named("auth"),
		Access: base.Named("access"),
	}
}

// NopLoggers - для тестов.
func NopLoggers() *Loggers {
	return NewLoggers(zap.NewNop())
}
