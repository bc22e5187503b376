package visualizer

import (
	"math"
	"strconv"

	"github.com/katalvlaran/algoviz/dp"
	"github.com/katalvlaran/algoviz/prim_kruskal"
)

// Output is the shaped result of one run. Only the fields relevant to the
// algorithm are set; the rest are omitted from JSON.
type Output struct {
	Algorithm string   `json:"algorithm"`
	Steps     []string `json:"steps"`

	Result    any `json:"result,omitempty"`
	Tree      any `json:"tree,omitempty"`
	Matrices  any `json:"matrices,omitempty"`
	Matrix    any `json:"matrix,omitempty"`
	Items     any `json:"items,omitempty"`
	Edges     any `json:"edges,omitempty"`
	Total     any `json:"total,omitempty"`
	Distances any `json:"distances,omitempty"`
	Paths     any `json:"paths,omitempty"`
}

// Number is a float64 whose JSON form is null when it is infinite or NaN.
type Number float64

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	x := float64(n)
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return []byte("null"), nil
	}
	format := byte('f')
	if abs := math.Abs(x); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}

	return strconv.AppendFloat(nil, x, format, -1, 64), nil
}

func numbers(xs []float64) []Number {
	out := make([]Number, len(xs))
	for i, x := range xs {
		out[i] = Number(x)
	}

	return out
}

func numberGrid(rows [][]float64) [][]Number {
	out := make([][]Number, len(rows))
	for i, row := range rows {
		out[i] = numbers(row)
	}

	return out
}

// edgeTuples renders MST edges as [from, to, weight] triples.
func edgeTuples(edges []prim_kruskal.Edge) [][3]Number {
	out := make([][3]Number, len(edges))
	for i, e := range edges {
		out[i] = [3]Number{Number(e.From), Number(e.To), Number(e.Weight)}
	}

	return out
}

// intervalPairs renders intervals as [start, end] pairs.
func intervalPairs(ivs []dp.Interval) [][2]Number {
	out := make([][2]Number, len(ivs))
	for i, iv := range ivs {
		out[i] = [2]Number{Number(iv.Start), Number(iv.End)}
	}

	return out
}
