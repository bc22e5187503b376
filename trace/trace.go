package trace

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// indentUnit is the nesting marker prepended once per recursion level.
const indentUnit = "  "

// Trace is an ordered log of narration lines for one algorithm run.
// The zero value is ready to use.
type Trace []string

// Record appends msg to the trace.
func (t *Trace) Record(msg string) {
	*t = append(*t, msg)
}

// Recordf appends a formatted message to the trace.
func (t *Trace) Recordf(format string, args ...any) {
	*t = append(*t, fmt.Sprintf(format, args...))
}

// Len returns the number of recorded lines.
func (t Trace) Len() int { return len(t) }

// Strings returns the recorded lines as a plain slice. A nil trace yields an
// empty, non-nil slice so callers can serialize it as [].
func (t Trace) Strings() []string {
	if t == nil {
		return []string{}
	}

	return []string(t)
}

// Indent returns the prefix for the given recursion depth.
func Indent(depth int) string {
	if depth <= 0 {
		return ""
	}

	return strings.Repeat(indentUnit, depth)
}

// Value renders a single value for narration.
// Floats with an integral value print without a fraction, infinities print
// as "inf"/"-inf", everything else falls back to fmt's %v.
func Value(v any) string {
	switch x := v.(type) {
	case float64:
		return formatFloat(x)
	case float32:
		return formatFloat(float64(x))
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case string:
		return x
	default:
		return fmt.Sprint(v)
	}
}

// formatFloat keeps integral floats compact ("3" instead of "3.000000").
func formatFloat(x float64) string {
	switch {
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	case math.IsNaN(x):
		return "nan"
	case x == math.Trunc(x) && math.Abs(x) < 1e15:
		return strconv.FormatInt(int64(x), 10)
	default:
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
}

// List renders xs as "[a, b, c]".
func List[T any](xs []T) string {
	var b strings.Builder
	b.WriteByte('[')
	for i := range xs {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(Value(xs[i]))
	}
	b.WriteByte(']')

	return b.String()
}

// Tuple renders its arguments as "(a, b, c)".
func Tuple(vs ...any) string {
	return "(" + strings.Join(stringsOf(vs), ", ") + ")"
}

// Grid renders a row-major matrix as "[[a, b], [c, d]]".
func Grid[T any](rows [][]T) string {
	var b strings.Builder
	b.WriteByte('[')
	for i := range rows {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(List(rows[i]))
	}
	b.WriteByte(']')

	return b.String()
}

func stringsOf(vs []any) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = Value(v)
	}

	return out
}
