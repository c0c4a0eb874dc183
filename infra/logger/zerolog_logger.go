package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ZerologLogger implements Logger using rs/zerolog.
type ZerologLogger struct {
	log zerolog.Logger
}

// NewZerologLogger creates a ZerologLogger filtering below the given level.
// Logs go to stderr so the report on stdout stays clean; with APP_ENV=dev the
// output switches to the human-readable console format.
func NewZerologLogger(component string, level zerolog.Level) Logger {
	return NewZerologLoggerTo(os.Stderr, component, level)
}

// NewZerologLoggerTo is NewZerologLogger writing to w instead of stderr.
func NewZerologLoggerTo(w io.Writer, component string, level zerolog.Level) Logger {
	if strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	z := zerolog.New(w).Level(level).With().Timestamp().Str("component", component).Logger()
	return &ZerologLogger{log: z}
}

func (l *ZerologLogger) Debugf(format string, args ...any) {
	l.log.Debug().Msgf(format, args...)
}

func (l *ZerologLogger) Debugw(msg string, fields map[string]any) {
	ev := l.log.Debug()
	for k, v := range fields {
		ev = ev.Interface(k, v)
	}
	ev.Msg(msg)
}

func (l *ZerologLogger) Infof(format string, args ...any) {
	l.log.Info().Msgf(format, args...)
}

func (l *ZerologLogger) Warnf(format string, args ...any) {
	l.log.Warn().Msgf(format, args...)
}

func (l *ZerologLogger) Errorf(format string, args ...any) {
	l.log.Error().Msgf(format, args...)
}
