package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algoviz/visualizer"
)

// NewRunCmd runs one algorithm on a JSON input read from a file or stdin.
func NewRunCmd() *cobra.Command {
	var (
		jsonOutput bool
		seed       int64
		verify     bool
	)

	cmd := &cobra.Command{
		Use:   "run ALGORITHM [FILE|-]",
		Short: "Run an algorithm on a JSON input",
		Long: "Run an algorithm on a JSON object read from FILE, or from stdin when FILE\n" +
			"is omitted or \"-\". Use \"algoviz list\" for ids and input fields.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := readInput(cmd, args[1:])
			if err != nil {
				return err
			}
			var opts []visualizer.Option
			if cmd.Flags().Changed("seed") {
				opts = append(opts, visualizer.WithSeed(seed))
			}

			out := NewOutput(cmd, jsonOutput)
			res, runErr := visualizer.Run(cmd.Context(), args[0], body, opts...)
			if res != nil {
				if err := printResult(out, res); err != nil {
					return err
				}
			}
			if runErr != nil {
				return describe(runErr)
			}
			if verify {
				return reportVerify(cmd, out, args[0], body)
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print the full output as JSON")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for randomized algorithms")
	cmd.Flags().BoolVar(&verify, "verify", false, "cross-check the result against gonum")

	return cmd
}

func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	body, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	return body, nil
}

// printResult writes the numbered trace followed by every result field,
// or the whole output in JSON mode.
func printResult(out *Output, res *visualizer.Output) error {
	if out.jsonMode {
		return out.JSON(res)
	}
	out.Line("algorithm: %s", res.Algorithm)
	for i, s := range res.Steps {
		out.Line("%4d. %s", i+1, s)
	}

	raw, err := json.Marshal(res)
	if err != nil {
		return err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return err
	}
	delete(fields, "algorithm")
	delete(fields, "steps")
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		out.Line("%s: %s", k, fields[k])
	}

	return nil
}

// describe expands invalid-input errors into one line per violation.
func describe(err error) error {
	if len(visualizer.Violations(err)) < 2 {
		return err
	}

	return &violationsError{err: err}
}

type violationsError struct {
	err error
}

func (e *violationsError) Error() string {
	var b strings.Builder
	b.WriteString(visualizer.ErrInvalidInput.Error())
	for _, v := range visualizer.Violations(e.err) {
		b.WriteString("\n  - ")
		b.WriteString(v.Error())
	}

	return b.String()
}

func (e *violationsError) Unwrap() error { return e.err }

func reportVerify(cmd *cobra.Command, out *Output, id string, body []byte) error {
	err := visualizer.Verify(cmd.Context(), id, body)
	switch {
	case err == nil:
		out.Note("verify: ok")
	case errors.Is(err, visualizer.ErrNotVerifiable):
		out.Note("verify: unavailable (" + err.Error() + ")")
	default:
		return fmt.Errorf("verify: %w", err)
	}

	return nil
}
