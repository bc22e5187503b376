package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// Output formats command results as tables or JSON.
type Output struct {
	jsonMode bool
	w        io.Writer // data
	errW     io.Writer // messages
}

// NewOutput writes to the command's configured streams.
func NewOutput(cmd *cobra.Command, jsonMode bool) *Output {
	return &Output{
		jsonMode: jsonMode,
		w:        cmd.OutOrStdout(),
		errW:     cmd.ErrOrStderr(),
	}
}

// Print writes rows as a table, or jsonData in JSON mode.
func (o *Output) Print(headers []string, rows [][]string, jsonData any) error {
	if o.jsonMode {
		return o.JSON(jsonData)
	}
	return o.Table(headers, rows)
}

// Table writes an aligned table with a dashed header rule.
func (o *Output) Table(headers []string, rows [][]string) error {
	tw := tabwriter.NewWriter(o.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	dashes := make([]string, len(headers))
	for i, h := range headers {
		dashes[i] = strings.Repeat("-", len(h))
	}
	fmt.Fprintln(tw, strings.Join(dashes, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	return tw.Flush()
}

// JSON writes v indented.
func (o *Output) JSON(v any) error {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Line writes one line of data.
func (o *Output) Line(format string, args ...any) {
	fmt.Fprintf(o.w, format+"\n", args...)
}

// Note writes a message to the message stream.
func (o *Output) Note(msg string) {
	fmt.Fprintln(o.errW, msg)
}
