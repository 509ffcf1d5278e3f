package cmd

import (
	"github.com/spf13/cobra"

	"github.com/leriomaggio/pyre-check/internal/domain"
)

// scanCmd represents the scan command.
var scanCmd = newScanCmd()

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [paths...]",
		Short: "Extract metadata and persist reports",
		Long:  "Extract metadata for every Python source file under the given paths and persist the reports to the reports directory for later viewing.",
		RunE: func(_ *cobra.Command, args []string) error {
			configuration, err := resolveConfiguration()
			if err != nil {
				return err
			}

			return workflow.Scan(domain.ScanArgs{
				Paths:         parsePaths(args),
				Configuration: configuration,
				Threads:       parallelFlag,
				Reports:       configuration.Reports,
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
