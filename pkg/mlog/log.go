package mlog

import (
	"context"
	"strings"
)

// Logger is the common interface every logging backend in this service
// implements, so call sites never depend on a concrete library.
type Logger interface {
	Info(args ...any)
	Infof(format string, args ...any)
	Infoln(args ...any)

	Error(args ...any)
	Errorf(format string, args ...any)
	Errorln(args ...any)

	Warn(args ...any)
	Warnf(format string, args ...any)
	Warnln(args ...any)

	Debug(args ...any)
	Debugf(format string, args ...any)
	Debugln(args ...any)

	Fatal(args ...any)
	Fatalf(format string, args ...any)
	Fatalln(args ...any)

	// WithFields returns a new Logger carrying additional structured context.
	WithFields(fields ...any) Logger

	Sync() error
}

// Level represents the severity of a log line.
type Level int8

const (
	FatalLevel Level = iota
	ErrorLevel
	WarnLevel
	InfoLevel
	DebugLevel
)

// ParseLevel takes a string level name and returns the matching Level.
func ParseLevel(lvl string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(lvl)) {
	case "fatal":
		return FatalLevel, nil
	case "error":
		return ErrorLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "info", "":
		return InfoLevel, nil
	case "debug":
		return DebugLevel, nil
	default:
		return InfoLevel, nil
	}
}

// NoneLogger discards every line. It is the zero-value-safe logger
// returned when no logger has been attached to a context.
type NoneLogger struct{}

func (NoneLogger) Info(...any)                   {}
func (NoneLogger) Infof(string, ...any)          {}
func (NoneLogger) Infoln(...any)                 {}
func (NoneLogger) Error(...any)                  {}
func (NoneLogger) Errorf(string, ...any)         {}
func (NoneLogger) Errorln(...any)                {}
func (NoneLogger) Warn(...any)                   {}
func (NoneLogger) Warnf(string, ...any)          {}
func (NoneLogger) Warnln(...any)                 {}
func (NoneLogger) Debug(...any)                  {}
func (NoneLogger) Debugf(string, ...any)         {}
func (NoneLogger) Debugln(...any)                {}
func (NoneLogger) Fatal(...any)                  {}
func (NoneLogger) Fatalf(string, ...any)         {}
func (NoneLogger) Fatalln(...any)                {}
func (NoneLogger) WithFields(...any) Logger      { return NoneLogger{} }
func (NoneLogger) Sync() error                   { return nil }

type contextKey string

const loggerContextKey contextKey = "mlog.logger"

// ContextWithLogger returns a context carrying the given Logger.
func ContextWithLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey, logger)
}

// NewLoggerFromContext extracts the Logger attached to ctx, falling back
// to a no-op logger when none was attached.
func NewLoggerFromContext(ctx context.Context) Logger {
	if l, ok := ctx.Value(loggerContextKey).(Logger); ok {
		return l
	}

	return NoneLogger{}
}
