package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/algoviz/visualizer"
)

// ErrorCode is the machine-readable error kind.
type ErrorCode string

const (
	ErrCodeBadRequest    ErrorCode = "BAD_REQUEST"
	ErrCodeNotFound      ErrorCode = "NOT_FOUND"
	ErrCodeUnsolvable    ErrorCode = "UNSOLVABLE"
	ErrCodeTooLarge      ErrorCode = "PAYLOAD_TOO_LARGE"
	ErrCodeInternalError ErrorCode = "INTERNAL_ERROR"
)

const internalErrorMessage = "internal server error"

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
	Steps []string    `json:"steps,omitempty"`
}

// ErrorDetail describes the failure.
type ErrorDetail struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details []string  `json:"details,omitempty"`
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes an error envelope.
func Error(w http.ResponseWriter, status int, code ErrorCode, message string) {
	JSON(w, status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}

// BadRequest writes 400 with the individual violations, if any.
func BadRequest(w http.ResponseWriter, message string, details []string) {
	JSON(w, http.StatusBadRequest, ErrorResponse{Error: ErrorDetail{
		Code: ErrCodeBadRequest, Message: message, Details: details,
	}})
}

// NotFound writes 404.
func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, ErrCodeNotFound, message)
}

// Unsolvable writes 422 carrying the trace recorded up to the failure.
func Unsolvable(w http.ResponseWriter, message string, steps []string) {
	if steps == nil {
		steps = []string{}
	}
	JSON(w, http.StatusUnprocessableEntity, ErrorResponse{
		Error: ErrorDetail{Code: ErrCodeUnsolvable, Message: message},
		Steps: steps,
	})
}

// InternalError logs err and writes a generic 500. A recovered engine
// panic is logged with its stack.
func InternalError(w http.ResponseWriter, log logrus.FieldLogger, err error) {
	entry := log.WithError(err)
	var pe *visualizer.PanicError
	if errors.As(err, &pe) {
		entry = entry.WithField("stack", string(pe.Stack))
	}
	entry.Error("internal error")
	Error(w, http.StatusInternalServerError, ErrCodeInternalError, internalErrorMessage)
}

// HandleRunError maps a visualizer error onto a response. It reports
// whether a response was written.
func HandleRunError(w http.ResponseWriter, log logrus.FieldLogger, out *visualizer.Output, err error) bool {
	if err == nil {
		return false
	}
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		Error(w, http.StatusRequestEntityTooLarge, ErrCodeTooLarge, err.Error())
	case errors.Is(err, visualizer.ErrUnknownAlgorithm):
		NotFound(w, err.Error())
	case errors.Is(err, visualizer.ErrInvalidInput):
		var details []string
		for _, v := range visualizer.Violations(err) {
			details = append(details, v.Error())
		}
		BadRequest(w, visualizer.ErrInvalidInput.Error(), details)
	case errors.Is(err, visualizer.ErrUnsolvable):
		var steps []string
		if out != nil {
			steps = out.Steps
		}
		Unsolvable(w, err.Error(), steps)
	default:
		InternalError(w, log, err)
	}

	return true
}
