package sorting

import (
	"cmp"
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/algoviz/trace"
)

// ErrUnknownPivotStrategy indicates a pivot strategy name outside the catalog.
var ErrUnknownPivotStrategy = errors.New("sorting: unknown pivot strategy")

// PivotStrategy selects which element QuickSort partitions around.
type PivotStrategy string

const (
	// PivotLast uses a[r] as the pivot; no relocation swap.
	PivotLast PivotStrategy = "last"

	// PivotFirst swaps a[l] into position r before partitioning.
	PivotFirst PivotStrategy = "first"

	// PivotRandom swaps a uniformly random index of [l, r] into position r.
	PivotRandom PivotStrategy = "random"

	// PivotCustom swaps the caller's index into position r when it lies in
	// [l, r]; otherwise the partition behaves like PivotLast.
	PivotCustom PivotStrategy = "custom"
)

// ParsePivotStrategy maps a strategy name to a PivotStrategy.
// The empty string selects PivotLast.
func ParsePivotStrategy(name string) (PivotStrategy, error) {
	switch PivotStrategy(name) {
	case "", PivotLast:
		return PivotLast, nil
	case PivotFirst, PivotRandom, PivotCustom:
		return PivotStrategy(name), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPivotStrategy, name)
	}
}

// Result is the outcome of QuickSort and SelectionSort.
type Result[T cmp.Ordered] struct {
	Sorted []T         // sorted copy of the input
	Steps  trace.Trace // narration of every state change
}

// MergeResult is the outcome of MergeSort.
type MergeResult[T cmp.Ordered] struct {
	Sorted []T           // sorted copy of the input
	Steps  trace.Trace   // narration of every split, comparison and placement
	Tree   *MergeNode[T] // merge tree over the original order; nil for empty input
}

// MergeNode is one node of the merge-sort recursion tree.
//
// Range holds the inclusive bounds [l, r] of the covered subarray, Array its
// contents before any merging, and, for internal nodes, Merged holds the merge
// of both children's sorted contents. Leaves have nil Left, Right and Merged.
type MergeNode[T cmp.Ordered] struct {
	Range  [2]int        `json:"range"`
	Array  []T           `json:"array"`
	Left   *MergeNode[T] `json:"left"`
	Right  *MergeNode[T] `json:"right"`
	Merged []T           `json:"merged"`
}

// Options configures QuickSort.
type Options struct {
	Strategy      PivotStrategy // pivot selection policy; default PivotLast
	PivotIndex    int           // caller index for PivotCustom
	HasPivotIndex bool          // whether PivotIndex was supplied
	Seed          int64         // seed for PivotRandom when Rand is nil (0 ⇒ default seed)
	Rand          *rand.Rand    // explicit random source; overrides Seed

	err error // first invalid option, reported by QuickSort
}

// Option is a functional option for QuickSort.
type Option func(*Options)

// DefaultOptions returns the QuickSort defaults: PivotLast, no custom index,
// seed 0 (the fixed default stream).
func DefaultOptions() Options {
	return Options{Strategy: PivotLast}
}

// WithPivotStrategy selects the pivot strategy. Unknown strategies make
// QuickSort return ErrUnknownPivotStrategy.
func WithPivotStrategy(s PivotStrategy) Option {
	return func(o *Options) {
		parsed, err := ParsePivotStrategy(string(s))
		if err != nil {
			o.err = err
			return
		}
		o.Strategy = parsed
	}
}

// WithPivotIndex sets the index used by PivotCustom.
func WithPivotIndex(i int) Option {
	return func(o *Options) {
		o.PivotIndex = i
		o.HasPivotIndex = true
	}
}

// WithSeed seeds the random source used by PivotRandom.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRand installs an explicit random source for PivotRandom.
// A nil r has no effect.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}
