package api

import (
	"context"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/algoviz/internal/metrics"
	"github.com/katalvlaran/algoviz/internal/telemetry"
)

// HeaderRequestID carries the request id in both directions.
const HeaderRequestID = "X-Request-ID"

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain applies middlewares left to right: Chain(m1, m2)(h) = m1(m2(h)).
func Chain(middlewares ...Middleware) Middleware {
	return func(next http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			next = middlewares[i](next)
		}
		return next
	}
}

type requestIDKey struct{}

// RequestIDFrom returns the id assigned by RequestID, or "".
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// RequestID keeps a caller-supplied X-Request-ID or assigns a new UUID, and
// echoes it in the response.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(HeaderRequestID)
			if id == "" || len(id) > 128 {
				id = uuid.NewString()
			}
			w.Header().Set(HeaderRequestID, id)
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
		})
	}
}

// runInfo is filled in by the run handler for the access log.
type runInfo struct {
	algorithm string
	outcome   string
	steps     int
}

type runInfoKey struct{}

func annotate(ctx context.Context, algorithm, outcome string, steps int) {
	if info, ok := ctx.Value(runInfoKey{}).(*runInfo); ok {
		info.algorithm, info.outcome, info.steps = algorithm, outcome, steps
	}
}

// Logging writes one line per request and puts a request-scoped entry into
// the context for handlers.
func Logging(logger *logrus.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}
			entry := logger.WithField("request_id", RequestIDFrom(r.Context()))
			info := &runInfo{steps: -1}
			ctx := telemetry.WithLogger(r.Context(), entry)
			ctx = context.WithValue(ctx, runInfoKey{}, info)

			next.ServeHTTP(rw, r.WithContext(ctx))

			fields := logrus.Fields{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      rw.status,
				"duration":    time.Since(start).String(),
				"remote_addr": r.RemoteAddr,
			}
			if info.algorithm != "" {
				fields["algorithm"] = info.algorithm
				fields["outcome"] = info.outcome
			}
			if info.steps >= 0 {
				fields["steps"] = info.steps
			}
			entry.WithFields(fields).Info("http request")
		})
	}
}

// Instrument counts requests on route by status code.
func Instrument(m *metrics.Metrics, route string) Middleware {
	return func(next http.Handler) http.Handler {
		if m == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rw, r)
			m.HTTPRequests.WithLabelValues(route, strconv.Itoa(rw.status)).Inc()
		})
	}
}

// Recovery turns a handler panic into a 500.
func Recovery(logger *logrus.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.WithFields(logrus.Fields{
						"request_id": RequestIDFrom(r.Context()),
						"panic":      rec,
						"stack":      string(debug.Stack()),
						"path":       r.URL.Path,
					}).Error("panic recovered")
					Error(w, http.StatusInternalServerError, ErrCodeInternalError, internalErrorMessage)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// responseWriter captures the status code.
type responseWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.wroteHeader {
		rw.status = code
		rw.wroteHeader = true
	}
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.wroteHeader = true
	return rw.ResponseWriter.Write(b)
}
