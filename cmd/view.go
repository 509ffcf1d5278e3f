package cmd

import (
	"github.com/spf13/cobra"

	"github.com/leriomaggio/pyre-check/internal/domain"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View previously persisted reports",
		Long:  "View previously persisted metadata reports from a reports directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			configuration, err := resolveConfiguration()
			if err != nil {
				return err
			}

			return workflow.View(domain.ViewArgs{Reports: configuration.Reports})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
