package visualizer

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"github.com/katalvlaran/algoviz/bfs"
	"github.com/katalvlaran/algoviz/dfs"
	"github.com/katalvlaran/algoviz/dijkstra"
	"github.com/katalvlaran/algoviz/dp"
	"github.com/katalvlaran/algoviz/matrix"
	"github.com/katalvlaran/algoviz/prim_kruskal"
	"github.com/katalvlaran/algoviz/sorting"
)

var (
	// ErrUnknownAlgorithm is returned for ids outside the catalog.
	ErrUnknownAlgorithm = errors.New("visualizer: unknown algorithm")

	// ErrInvalidInput is returned when the request fails validation.
	ErrInvalidInput = errors.New("visualizer: invalid input")

	// ErrUnsolvable is returned for valid inputs without an answer.
	ErrUnsolvable = errors.New("visualizer: unsolvable instance")

	// ErrInternal is returned for unexpected engine failures.
	ErrInternal = errors.New("visualizer: internal error")
)

// Violations returns the individual validation failures carried by an
// ErrInvalidInput error, or nil for any other error.
func Violations(err error) []error {
	var ie *inputError
	if !errors.As(err, &ie) {
		return nil
	}

	return multierr.Errors(ie.errs)
}

// inputError aggregates field violations under ErrInvalidInput.
type inputError struct {
	errs error
}

func (e *inputError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidInput, e.errs)
}

func (e *inputError) Is(target error) bool { return target == ErrInvalidInput }

func (e *inputError) Unwrap() []error { return multierr.Errors(e.errs) }

// invalid wraps one or more violations as ErrInvalidInput.
func invalid(errs error) error {
	return &inputError{errs: errs}
}

// inputSentinels are engine errors that describe bad input rather than a
// fault. They are normally caught by validation before the engine runs.
var inputSentinels = []error{
	matrix.ErrNilMatrix,
	matrix.ErrNonSquare,
	matrix.ErrNonBinary,
	matrix.ErrNaN,
	matrix.ErrInvalidDimensions,
	dijkstra.ErrSourceOutOfRange,
	dijkstra.ErrNegativeWeight,
	dp.ErrLengthMismatch,
	dp.ErrNegativeCapacity,
	dp.ErrNegativeWeight,
	dp.ErrInvalidInterval,
	sorting.ErrUnknownPivotStrategy,
	dfs.ErrGraphNil,
}

// classify maps an engine error onto the package taxonomy.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bfs.ErrCycleDetected), errors.Is(err, dfs.ErrCycleDetected),
		errors.Is(err, prim_kruskal.ErrDisconnected):
		return fmt.Errorf("%w: %w", ErrUnsolvable, err)
	}
	for _, s := range inputSentinels {
		if errors.Is(err, s) {
			return invalid(err)
		}
	}

	return fmt.Errorf("%w: %w", ErrInternal, err)
}
