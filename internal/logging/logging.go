package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a JSON production logger at the given level. "debug" switches to
// zap's development config for readable local output. Unknown levels fall back to info.
func New(level string) (*zap.SugaredLogger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	if lvl == zapcore.DebugLevel {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}

// MustNew is New for package init paths, falling back to a no-op logger.
func MustNew(level string) *zap.SugaredLogger {
	l, err := New(level)
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return l
}
