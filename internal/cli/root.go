package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd assembles the algoviz command tree. lookupEnv is normally
// os.LookupEnv.
func NewRootCmd(version string, lookupEnv func(string) (string, bool)) *cobra.Command {
	root := &cobra.Command{
		Use:           "algoviz",
		Short:         "Step-traced algorithm visualizer",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		NewServeCmd(lookupEnv),
		NewRunCmd(),
		NewListCmd(),
	)

	return root
}
