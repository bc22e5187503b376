package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/algoviz/converters"
	"github.com/katalvlaran/algoviz/internal/metrics"
	"github.com/katalvlaran/algoviz/internal/telemetry"
	"github.com/katalvlaran/algoviz/visualizer"
)

// HeaderVerify reports the outcome of ?verify=true: ok, mismatch,
// unavailable or error.
const HeaderVerify = "X-Algoviz-Verify"

// Handler serves the API.
type Handler struct {
	logger         *logrus.Logger
	metrics        *metrics.Metrics
	gatherer       prometheus.Gatherer
	maxBodyBytes   int64
	allowedOrigins []string
	runOptions     []visualizer.Option
	started        time.Time
}

// Config carries the Handler dependencies. Zero values get defaults: a
// fresh logger, no metrics, the default gatherer, a 1 MiB body limit and
// any origin.
type Config struct {
	Logger         *logrus.Logger
	Metrics        *metrics.Metrics
	Gatherer       prometheus.Gatherer
	MaxBodyBytes   int64
	AllowedOrigins []string
	RunOptions     []visualizer.Option
}

// NewHandler creates a Handler.
func NewHandler(cfg Config) *Handler {
	h := &Handler{
		logger:         cfg.Logger,
		metrics:        cfg.Metrics,
		gatherer:       cfg.Gatherer,
		maxBodyBytes:   cfg.MaxBodyBytes,
		allowedOrigins: cfg.AllowedOrigins,
		runOptions:     cfg.RunOptions,
		started:        time.Now(),
	}
	if h.logger == nil {
		h.logger = logrus.New()
	}
	if h.gatherer == nil {
		h.gatherer = prometheus.DefaultGatherer
	}
	if h.maxBodyBytes <= 0 {
		h.maxBodyBytes = 1 << 20
	}
	if len(h.allowedOrigins) == 0 {
		h.allowedOrigins = []string{"*"}
	}

	return h
}

// RunAlgorithm handles POST /api/{algorithm}.
func (h *Handler) RunAlgorithm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := telemetry.FromContext(ctx)
	id := r.PathValue("algorithm")
	label := id
	if _, ok := visualizer.Lookup(id); !ok {
		label = metrics.OutcomeUnknown
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if !errors.As(err, &tooLarge) {
			err = fmt.Errorf("%w: cannot read body: %v", visualizer.ErrInvalidInput, err)
		}
		annotate(ctx, id, metrics.OutcomeInvalid, -1)
		h.metrics.ObserveRun(label, metrics.OutcomeInvalid, 0, -1)
		HandleRunError(w, log, nil, err)
		return
	}

	start := time.Now()
	out, err := visualizer.Run(ctx, id, body, h.runOptions...)
	elapsed := time.Since(start)
	steps := -1
	if out != nil {
		steps = len(out.Steps)
	}
	outcome := outcomeOf(err)
	annotate(ctx, id, outcome, steps)
	h.metrics.ObserveRun(label, outcome, elapsed, steps)
	if HandleRunError(w, log, out, err) {
		return
	}

	if r.URL.Query().Get("verify") == "true" {
		w.Header().Set(HeaderVerify, h.verify(r, log, id, body))
	}
	JSON(w, http.StatusOK, out)
}

// verify cross-checks a successful run against gonum.
func (h *Handler) verify(r *http.Request, log *logrus.Entry, id string, body []byte) string {
	err := visualizer.Verify(r.Context(), id, body)
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, visualizer.ErrNotVerifiable):
		return "unavailable"
	case errors.Is(err, converters.ErrMismatch):
		log.WithError(err).WithField("algorithm", id).Warn("result disagrees with gonum")
		return "mismatch"
	default:
		log.WithError(err).Warn("verification failed")
		return "error"
	}
}

// ListAlgorithms handles GET /api/algorithms.
func (h *Handler) ListAlgorithms(w http.ResponseWriter, _ *http.Request) {
	JSON(w, http.StatusOK, visualizer.Catalog())
}

// Healthz handles GET /healthz.
func (h *Handler) Healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "ok %s", time.Since(h.started).Round(time.Second))
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, visualizer.ErrUnknownAlgorithm):
		return metrics.OutcomeUnknown
	case errors.Is(err, visualizer.ErrInvalidInput):
		return metrics.OutcomeInvalid
	case errors.Is(err, visualizer.ErrUnsolvable):
		return metrics.OutcomeUnsolvable
	default:
		return metrics.OutcomeError
	}
}
