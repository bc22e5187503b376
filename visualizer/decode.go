package visualizer

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/buger/jsonparser"
	"go.uber.org/multierr"

	"github.com/katalvlaran/algoviz/dfs"
	"github.com/katalvlaran/algoviz/dp"
	"github.com/katalvlaran/algoviz/matrix"
)

// request walks a JSON object body field by field and accumulates every
// violation it meets. Readers return zero values for bad fields so decoding
// can go on and report all problems at once.
type request struct {
	body []byte
	errs error
}

// newRequest checks that body is a single well-formed JSON object.
// jsonparser stops at the end of the first value, so the whole body is
// checked first.
func newRequest(body []byte) (*request, error) {
	if !json.Valid(body) {
		return nil, invalid(errors.New("body: malformed JSON"))
	}
	_, typ, _, err := jsonparser.Get(body)
	if err != nil {
		return nil, invalid(fmt.Errorf("body: malformed JSON: %w", err))
	}
	if typ != jsonparser.Object {
		return nil, invalid(fmt.Errorf("body: must be a JSON object, got %s", typ))
	}

	return &request{body: body}, nil
}

// violate records one field violation.
func (r *request) violate(field, format string, args ...any) {
	r.errs = multierr.Append(r.errs, fmt.Errorf("%s: %s", field, fmt.Sprintf(format, args...)))
}

// err returns the accumulated violations as ErrInvalidInput, or nil.
func (r *request) err() error {
	if r.errs == nil {
		return nil
	}

	return invalid(r.errs)
}

// lookup returns the raw value of a top-level field. Absent fields and
// explicit nulls both report ok=false.
func (r *request) lookup(field string) ([]byte, jsonparser.ValueType, bool) {
	v, typ, _, err := jsonparser.Get(r.body, field)
	switch {
	case errors.Is(err, jsonparser.KeyPathNotFoundError):
		return nil, jsonparser.NotExist, false
	case err != nil:
		r.violate(field, "malformed value: %v", err)
		return nil, jsonparser.NotExist, false
	case typ == jsonparser.Null:
		return nil, typ, false
	}

	return v, typ, true
}

// require is lookup for mandatory fields of the given type.
func (r *request) require(field string, want jsonparser.ValueType, what string) ([]byte, bool) {
	v, typ, ok := r.lookup(field)
	if !ok {
		r.violate(field, "is required and must be %s", what)
		return nil, false
	}
	if typ != want {
		r.violate(field, "must be %s, got %s", what, typ)
		return nil, false
	}

	return v, true
}

// sequence is a homogeneous list of numbers or of strings.
type sequence struct {
	nums []float64
	strs []string
	text bool
}

// sequence reads a list whose elements are all numbers or all strings.
// An empty list is a numeric sequence.
func (r *request) sequence(field string) sequence {
	var seq sequence
	raw, ok := r.require(field, jsonparser.Array, "a list")
	if !ok {
		return seq
	}

	seq.nums = []float64{}
	var sawNum, sawStr bool
	i := 0
	_, err := jsonparser.ArrayEach(raw, func(v []byte, typ jsonparser.ValueType, _ int, _ error) {
		defer func() { i++ }()
		switch typ {
		case jsonparser.Number:
			x, err := jsonparser.ParseFloat(v)
			if err != nil {
				r.violate(field, "element %d: bad number %q", i, v)
				return
			}
			sawNum = true
			seq.nums = append(seq.nums, x)
		case jsonparser.String:
			s, err := jsonparser.ParseString(v)
			if err != nil {
				r.violate(field, "element %d: bad string", i)
				return
			}
			sawStr = true
			seq.strs = append(seq.strs, s)
		default:
			r.violate(field, "element %d: must be a number or string, got %s", i, typ)
		}
	})
	if err != nil {
		r.violate(field, "malformed list: %v", err)
	}
	if sawNum && sawStr {
		r.violate(field, "must not mix numbers and strings")
	}
	seq.text = sawStr && !sawNum

	return seq
}

// cellMode selects which JSON values a matrix cell may hold.
type cellMode int

const (
	// numericCells accepts numbers only.
	numericCells cellMode = iota
	// weightedCells also accepts null, "inf" and "Infinity" as +Inf.
	weightedCells
)

// matrix reads a non-empty square matrix.
func (r *request) matrix(field string, mode cellMode) *matrix.Dense {
	raw, ok := r.require(field, jsonparser.Array, "a square matrix")
	if !ok {
		return nil
	}

	var rows [][]float64
	bad := false
	i := 0
	_, err := jsonparser.ArrayEach(raw, func(rowRaw []byte, typ jsonparser.ValueType, _ int, _ error) {
		defer func() { i++ }()
		if typ != jsonparser.Array {
			r.violate(field, "row %d: must be a list, got %s", i, typ)
			bad = true
			return
		}
		row := []float64{}
		j := 0
		_, err := jsonparser.ArrayEach(rowRaw, func(v []byte, typ jsonparser.ValueType, _ int, _ error) {
			defer func() { j++ }()
			x, ok := parseCell(v, typ, mode)
			if !ok {
				r.violate(field, "cell (%d,%d): %s is not a valid entry", i, j, describe(v, typ))
				bad = true
				return
			}
			row = append(row, x)
		})
		if err != nil {
			r.violate(field, "row %d: malformed list: %v", i, err)
			bad = true
		}
		rows = append(rows, row)
	})
	if err != nil {
		r.violate(field, "malformed matrix: %v", err)
		return nil
	}
	if bad {
		return nil
	}
	if len(rows) == 0 {
		r.violate(field, "must not be empty")
		return nil
	}
	for i, row := range rows {
		if len(row) != len(rows) {
			r.violate(field, "must be square: row %d has %d cells, want %d", i, len(row), len(rows))
			return nil
		}
	}

	m, err := matrix.NewFromRows(rows)
	if err != nil {
		r.violate(field, "%v", err)
		return nil
	}

	return m
}

// parseCell converts one matrix cell according to mode.
func parseCell(v []byte, typ jsonparser.ValueType, mode cellMode) (float64, bool) {
	switch typ {
	case jsonparser.Number:
		x, err := jsonparser.ParseFloat(v)
		return x, err == nil
	case jsonparser.Null:
		return math.Inf(1), mode == weightedCells
	case jsonparser.String:
		if mode != weightedCells {
			return 0, false
		}
		s, err := jsonparser.ParseString(v)
		if err != nil {
			return 0, false
		}
		switch s {
		case "inf", "Infinity", "INF", "+inf":
			return math.Inf(1), true
		}
	}

	return 0, false
}

// describe renders a raw JSON value for an error message.
func describe(v []byte, typ jsonparser.ValueType) string {
	switch typ {
	case jsonparser.String:
		return strconv.Quote(string(v))
	case jsonparser.Null:
		return "null"
	case jsonparser.Array, jsonparser.Object:
		return typ.String()
	}

	return string(v)
}

// integer reads an optional integer field; def is returned when absent.
func (r *request) integer(field string, def int) (int, bool) {
	v, typ, ok := r.lookup(field)
	if !ok {
		return def, false
	}
	if typ != jsonparser.Number {
		r.violate(field, "must be an integer, got %s", typ)
		return def, false
	}
	n, err := jsonparser.ParseInt(v)
	if err != nil {
		r.violate(field, "must be an integer, got %s", v)
		return def, false
	}

	return int(n), true
}

// requiredInteger reads a mandatory integer field.
func (r *request) requiredInteger(field string) int {
	if _, _, ok := r.lookup(field); !ok {
		r.violate(field, "is required and must be an integer")
		return 0
	}
	n, _ := r.integer(field, 0)

	return n
}

// text reads an optional string field.
func (r *request) text(field, def string) string {
	v, typ, ok := r.lookup(field)
	if !ok {
		return def
	}
	if typ != jsonparser.String {
		r.violate(field, "must be a string, got %s", typ)
		return def
	}
	s, err := jsonparser.ParseString(v)
	if err != nil {
		r.violate(field, "bad string")
		return def
	}

	return s
}

// flag reads an optional boolean field.
func (r *request) flag(field string) bool {
	v, typ, ok := r.lookup(field)
	if !ok {
		return false
	}
	if typ != jsonparser.Boolean {
		r.violate(field, "must be a boolean, got %s", typ)
		return false
	}
	b, _ := jsonparser.ParseBoolean(v)

	return b
}

// integers reads a mandatory list of integers.
func (r *request) integers(field string) []int {
	raw, ok := r.require(field, jsonparser.Array, "a list of integers")
	if !ok {
		return nil
	}
	out := []int{}
	i := 0
	_, err := jsonparser.ArrayEach(raw, func(v []byte, typ jsonparser.ValueType, _ int, _ error) {
		defer func() { i++ }()
		if typ != jsonparser.Number {
			r.violate(field, "element %d: must be an integer, got %s", i, typ)
			return
		}
		n, err := jsonparser.ParseInt(v)
		if err != nil {
			r.violate(field, "element %d: must be an integer, got %s", i, v)
			return
		}
		out = append(out, int(n))
	})
	if err != nil {
		r.violate(field, "malformed list: %v", err)
	}

	return out
}

// graph reads an object mapping vertex names to lists of neighbor names,
// keeping the order in which keys appear in the body.
func (r *request) graph(field string) *dfs.AdjacencyList {
	raw, ok := r.require(field, jsonparser.Object, "an object of vertex -> neighbors")
	if !ok {
		return nil
	}
	g := dfs.NewAdjacencyList()
	err := jsonparser.ObjectEach(raw, func(key, v []byte, typ jsonparser.ValueType, _ int) error {
		vertex := string(key)
		switch typ {
		case jsonparser.Null:
			g.Add(vertex)
			return nil
		case jsonparser.Array:
		default:
			r.violate(field, "vertex %q: neighbors must be a list, got %s", vertex, typ)
			return nil
		}
		var nbrs []string
		j := 0
		_, err := jsonparser.ArrayEach(v, func(n []byte, typ jsonparser.ValueType, _ int, _ error) {
			defer func() { j++ }()
			if typ != jsonparser.String {
				r.violate(field, "vertex %q: neighbor %d must be a string, got %s", vertex, j, typ)
				return
			}
			s, err := jsonparser.ParseString(n)
			if err != nil {
				r.violate(field, "vertex %q: neighbor %d: bad string", vertex, j)
				return
			}
			nbrs = append(nbrs, s)
		})
		if err != nil {
			r.violate(field, "vertex %q: malformed list: %v", vertex, err)
		}
		g.Add(vertex, nbrs...)

		return nil
	})
	if err != nil {
		r.violate(field, "malformed object: %v", err)
		return nil
	}

	return g
}

// activities reads a list of [start, end] pairs.
func (r *request) activities(field string) []dp.Interval {
	raw, ok := r.require(field, jsonparser.Array, "a list of [start, end] pairs")
	if !ok {
		return nil
	}
	out := []dp.Interval{}
	i := 0
	_, err := jsonparser.ArrayEach(raw, func(v []byte, typ jsonparser.ValueType, _ int, _ error) {
		defer func() { i++ }()
		if typ != jsonparser.Array {
			r.violate(field, "element %d: must be a [start, end] pair, got %s", i, typ)
			return
		}
		var pair []float64
		okPair := true
		_, err := jsonparser.ArrayEach(v, func(x []byte, typ jsonparser.ValueType, _ int, _ error) {
			if typ != jsonparser.Number {
				okPair = false
				return
			}
			f, err := jsonparser.ParseFloat(x)
			if err != nil {
				okPair = false
				return
			}
			pair = append(pair, f)
		})
		if err != nil || !okPair || len(pair) != 2 {
			r.violate(field, "element %d: must be a [start, end] pair of numbers", i)
			return
		}
		if pair[1] < pair[0] {
			r.violate(field, "element %d: end %s precedes start %s", i, strconv.FormatFloat(pair[1], 'g', -1, 64), strconv.FormatFloat(pair[0], 'g', -1, 64))
			return
		}
		out = append(out, dp.Interval{Start: pair[0], End: pair[1]})
	})
	if err != nil {
		r.violate(field, "malformed list: %v", err)
	}

	return out
}
