package telemetry

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/algoviz/internal/config"
)

var errLogLevelNotRecognized = errors.New("telemetry: log level not recognized")

// logLevelFromString converts a case-insensitive level name to a logrus level.
func logLevelFromString(level string) (logrus.Level, error) {
	switch strings.ToLower(level) {
	case "panic":
		return logrus.PanicLevel, nil
	case "fatal":
		return logrus.FatalLevel, nil
	case "error":
		return logrus.ErrorLevel, nil
	case "warn", "warning":
		return logrus.WarnLevel, nil
	case "info":
		return logrus.InfoLevel, nil
	case "debug":
		return logrus.DebugLevel, nil
	case "trace":
		return logrus.TraceLevel, nil
	default:
		return 0, errLogLevelNotRecognized
	}
}

// NewLogger returns a logger writing to w (stderr when nil) at the level
// and in the format named by cfg. Anything but "text" yields JSON.
func NewLogger(cfg config.Config, w io.Writer) (*logrus.Logger, error) {
	if w == nil {
		w = os.Stderr
	}
	level, err := logLevelFromString(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(level)
	if cfg.LogFormat == config.FormatText {
		logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	return logger, nil
}

type ctxKey struct{}

// WithLogger stores entry in ctx.
func WithLogger(ctx context.Context, entry *logrus.Entry) context.Context {
	return context.WithValue(ctx, ctxKey{}, entry)
}

// FromContext returns the entry stored by WithLogger, or one on the
// standard logger.
func FromContext(ctx context.Context) *logrus.Entry {
	if e, ok := ctx.Value(ctxKey{}).(*logrus.Entry); ok {
		return e
	}

	return logrus.NewEntry(logrus.StandardLogger())
}
