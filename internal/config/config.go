package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/multierr"
)

// Environment variable names.
const (
	EnvAddr            = "ALGOVIZ_ADDR"
	EnvLogLevel        = "ALGOVIZ_LOG_LEVEL"
	EnvLogFormat       = "ALGOVIZ_LOG_FORMAT"
	EnvAllowedOrigins  = "ALGOVIZ_ALLOWED_ORIGINS"
	EnvMaxBodyBytes    = "ALGOVIZ_MAX_BODY_BYTES"
	EnvShutdownTimeout = "ALGOVIZ_SHUTDOWN_TIMEOUT"
	EnvReadTimeout     = "ALGOVIZ_READ_TIMEOUT"
)

// Log formats.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// ErrInvalidConfig wraps every configuration problem.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the complete runtime configuration.
type Config struct {
	Addr            string        // listen address, host:port
	LogLevel        string        // logrus level name
	LogFormat       string        // "json" or "text"
	AllowedOrigins  []string      // CORS origins; "*" allows any
	MaxBodyBytes    int64         // request body limit for POST /api/{algorithm}
	ShutdownTimeout time.Duration // graceful shutdown budget
	ReadTimeout     time.Duration // http.Server ReadTimeout
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Addr:            ":5000",
		LogLevel:        "info",
		LogFormat:       FormatJSON,
		AllowedOrigins:  []string{"*"},
		MaxBodyBytes:    1 << 20,
		ShutdownTimeout: 10 * time.Second,
		ReadTimeout:     15 * time.Second,
	}
}

// FromEnv overlays ALGOVIZ_* variables read through lookup onto c.
// Pass os.LookupEnv in production. Unparsable values are collected and
// returned together; the fields they name are left unchanged.
func (c *Config) FromEnv(lookup func(string) (string, bool)) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	var errs error
	if v, ok := lookup(EnvAddr); ok {
		c.Addr = v
	}
	if v, ok := lookup(EnvLogLevel); ok {
		c.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup(EnvLogFormat); ok {
		c.LogFormat = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup(EnvAllowedOrigins); ok {
		c.AllowedOrigins = splitList(v)
	}
	if v, ok := lookup(EnvMaxBodyBytes); ok {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", EnvMaxBodyBytes, err))
		} else {
			c.MaxBodyBytes = n
		}
	}
	for _, d := range []struct {
		name string
		dst  *time.Duration
	}{
		{EnvShutdownTimeout, &c.ShutdownTimeout},
		{EnvReadTimeout, &c.ReadTimeout},
	} {
		v, ok := lookup(d.name)
		if !ok {
			continue
		}
		dur, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", d.name, err))
			continue
		}
		*d.dst = dur
	}
	if errs != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errs)
	}

	return nil
}

// BindFlags registers flags that write straight into c. Call it after
// FromEnv so that the current values become the flag defaults.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.Addr, "addr", c.Addr, "listen address")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (trace, debug, info, warn, error)")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log format (json, text)")
	fs.StringSliceVar(&c.AllowedOrigins, "allowed-origins", c.AllowedOrigins, "CORS allowed origins")
	fs.Int64Var(&c.MaxBodyBytes, "max-body-bytes", c.MaxBodyBytes, "maximum request body size")
	fs.DurationVar(&c.ShutdownTimeout, "shutdown-timeout", c.ShutdownTimeout, "graceful shutdown timeout")
	fs.DurationVar(&c.ReadTimeout, "read-timeout", c.ReadTimeout, "HTTP read timeout")
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs error
	if strings.TrimSpace(c.Addr) == "" {
		errs = multierr.Append(errs, errors.New("addr must not be empty"))
	}
	switch c.LogLevel {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "panic":
	default:
		errs = multierr.Append(errs, fmt.Errorf("unknown log level %q", c.LogLevel))
	}
	if c.LogFormat != FormatJSON && c.LogFormat != FormatText {
		errs = multierr.Append(errs, fmt.Errorf("log format must be %q or %q, got %q", FormatJSON, FormatText, c.LogFormat))
	}
	if c.MaxBodyBytes <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("max body bytes must be positive, got %d", c.MaxBodyBytes))
	}
	if c.ShutdownTimeout <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("shutdown timeout must be positive, got %s", c.ShutdownTimeout))
	}
	if c.ReadTimeout < 0 {
		errs = multierr.Append(errs, fmt.Errorf("read timeout must not be negative, got %s", c.ReadTimeout))
	}
	if errs != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errs)
	}

	return nil
}

// splitList splits a comma-separated list, dropping blanks.
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}
