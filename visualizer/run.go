package visualizer

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"
)

// Options configures Run.
type Options struct {
	// SeedSource supplies the seed for the random pivot strategy when the
	// request carries none.
	SeedSource func() int64
}

// Option is a functional option for Run.
type Option func(*Options)

// DefaultOptions seeds random pivots from the wall clock.
func DefaultOptions() Options {
	return Options{
		SeedSource: func() int64 { return time.Now().UnixNano() },
	}
}

// WithSeedSource overrides the seed used when a request asks for random
// pivots without a seed. A nil fn has no effect.
func WithSeedSource(fn func() int64) Option {
	return func(o *Options) {
		if fn != nil {
			o.SeedSource = fn
		}
	}
}

// WithSeed fixes the fallback seed.
func WithSeed(seed int64) Option {
	return WithSeedSource(func() int64 { return seed })
}

// PanicError reports a panic recovered while running an engine.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("%s: panic: %v", ErrInternal, e.Value)
}

// Is makes errors.Is(err, ErrInternal) hold.
func (e *PanicError) Is(target error) bool { return target == ErrInternal }

// Run executes algorithm id on the JSON object body.
//
// On ErrUnsolvable the returned *Output is non-nil and carries the trace.
// On every other error it is nil.
func Run(ctx context.Context, id string, body []byte, opts ...Option) (out *Output, err error) {
	alg, ok := Lookup(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, id)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	defer func() {
		if rec := recover(); rec != nil {
			out, err = nil, &PanicError{Value: rec, Stack: debug.Stack()}
		}
	}()

	req, err := newRequest(body)
	if err != nil {
		return nil, err
	}
	out, err = alg.run(ctx, req, &o)
	if out != nil {
		out.Algorithm = id
		if out.Steps == nil {
			out.Steps = []string{}
		}
	}
	if err != nil && !errors.Is(err, ErrUnsolvable) {
		out = nil
	}

	return out, err
}
