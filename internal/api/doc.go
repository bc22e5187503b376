// Package api exposes the algorithm catalog over HTTP.
//
// Routes:
//
//	POST /api/{algorithm}   run an algorithm on a JSON object body
//	GET  /api/algorithms    list the catalog
//	GET  /healthz           liveness
//	GET  /metrics           Prometheus exposition
//
// A successful run answers 200 with the visualizer output verbatim. Failures
// use the envelope {"error":{"code":...,"message":...}}: 400 BAD_REQUEST for
// invalid input (with per-field "details"), 404 NOT_FOUND for unknown ids,
// 422 UNSOLVABLE (with the trace in "steps") for cycles and disconnected
// graphs, and 500 INTERNAL_ERROR otherwise.
package api
