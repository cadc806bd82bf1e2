// Package mzap adapts a zap.SugaredLogger to the mlog.Logger interface.
package mzap

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/LerianStudio/midaz-credits/pkg/mlog"
)

// Logger wraps a zap.SugaredLogger behind mlog.Logger.
type Logger struct {
	sugar *zap.SugaredLogger
}

// InitializeLogger builds a production-style zap logger at the given level.
// When ENV is "development" it builds zap's development config instead,
// which logs at debug level and ignores level.
func InitializeLogger(level mlog.Level) (*Logger, error) {
	zapLevel := zapcore.InfoLevel

	switch level {
	case mlog.DebugLevel:
		zapLevel = zapcore.DebugLevel
	case mlog.WarnLevel:
		zapLevel = zapcore.WarnLevel
	case mlog.ErrorLevel:
		zapLevel = zapcore.ErrorLevel
	case mlog.FatalLevel:
		zapLevel = zapcore.FatalLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if os.Getenv("ENV") == "development" {
		cfg = zap.NewDevelopmentConfig()
	}

	logger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}

	return &Logger{sugar: logger.Sugar()}, nil
}

func (l *Logger) Info(args ...any)                   { l.sugar.Info(args...) }
func (l *Logger) Infof(format string, args ...any)   { l.sugar.Infof(format, args...) }
func (l *Logger) Infoln(args ...any)                 { l.sugar.Infoln(args...) }
func (l *Logger) Error(args ...any)                  { l.sugar.Error(args...) }
func (l *Logger) Errorf(format string, args ...any)  { l.sugar.Errorf(format, args...) }
func (l *Logger) Errorln(args ...any)                { l.sugar.Errorln(args...) }
func (l *Logger) Warn(args ...any)                   { l.sugar.Warn(args...) }
func (l *Logger) Warnf(format string, args ...any)   { l.sugar.Warnf(format, args...) }
func (l *Logger) Warnln(args ...any)                 { l.sugar.Warnln(args...) }
func (l *Logger) Debug(args ...any)                  { l.sugar.Debug(args...) }
func (l *Logger) Debugf(format string, args ...any)  { l.sugar.Debugf(format, args...) }
func (l *Logger) Debugln(args ...any)                { l.sugar.Debugln(args...) }
func (l *Logger) Fatal(args ...any)                  { l.sugar.Fatal(args...) }
func (l *Logger) Fatalf(format string, args ...any)  { l.sugar.Fatalf(format, args...) }
func (l *Logger) Fatalln(args ...any)                { l.sugar.Fatalln(args...) }

// WithFields returns a new Logger with the given key/value pairs attached
// to every subsequent line.
func (l *Logger) WithFields(fields ...any) mlog.Logger {
	return &Logger{sugar: l.sugar.With(fields...)}
}

func (l *Logger) Sync() error { return l.sugar.Sync() }
