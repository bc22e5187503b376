package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algoviz/visualizer"
)

// NewListCmd prints the algorithm catalog.
func NewListCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			algs := visualizer.Catalog()
			rows := make([][]string, len(algs))
			for i, a := range algs {
				rows[i] = []string{a.ID, string(a.Category), a.Name, strings.Join(a.Inputs, ", ")}
			}

			return NewOutput(cmd, jsonOutput).Print([]string{"ID", "CATEGORY", "NAME", "INPUTS"}, rows, algs)
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output in JSON format")

	return cmd
}
