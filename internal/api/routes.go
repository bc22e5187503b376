package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

// Routes returns the complete HTTP handler: the API routes behind the
// middleware chain, wrapped in CORS.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	chain := func(route string) Middleware {
		return Chain(
			RequestID(),
			Logging(h.logger),
			Instrument(h.metrics, route),
			Recovery(h.logger),
		)
	}

	mux.Handle("POST /api/{algorithm}", chain("run")(http.HandlerFunc(h.RunAlgorithm)))
	mux.Handle("GET /api/algorithms", chain("algorithms")(http.HandlerFunc(h.ListAlgorithms)))
	mux.HandleFunc("GET /healthz", h.Healthz)
	mux.Handle("GET /metrics", promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))

	return cors.New(cors.Options{
		AllowedOrigins: h.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type", HeaderRequestID},
		ExposedHeaders: []string{HeaderRequestID, HeaderVerify},
	}).Handler(mux)
}
