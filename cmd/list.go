package cmd

import (
	"github.com/spf13/cobra"

	"github.com/leriomaggio/pyre-check/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List source files with modes and suppression counts",
		Long:  "List every Python source file under the given paths together with its qualifier, resolved mode, version hint and suppression count, without persisting anything.",
		RunE: func(_ *cobra.Command, args []string) error {
			configuration, err := resolveConfiguration()
			if err != nil {
				return err
			}

			return workflow.List(domain.ListArgs{
				Paths:         parsePaths(args),
				Configuration: configuration,
				Threads:       parallelFlag,
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
