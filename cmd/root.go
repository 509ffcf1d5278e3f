// Package cmd provides the root command and CLI setup for pyrecheck.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/leriomaggio/pyre-check/internal/adapter"
	"github.com/leriomaggio/pyre-check/internal/controller"
	"github.com/leriomaggio/pyre-check/internal/domain"
	m "github.com/leriomaggio/pyre-check/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var configLoader adapter.ConfigLoader
var reportStore adapter.ReportStore
var ui controller.UI
var workflow domain.Workflow

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	configLoader = adapter.NewTOMLConfigLoader()
	reportStore = adapter.NewReportStore()
	workflow = domain.NewWorkflow(fsAdapter, reportStore, ui)
}

const defaultReportsDir = ".pyre-reports"

var strictFlag bool
var declareFlag bool
var inferFlag bool
var excludeFlags []string
var parallelFlag int
var reportsOutputDirFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pyrecheck [paths...]",
		Short: "Python source metadata and suppression scanner",
		Long: `Pyrecheck scans Python source trees and reports, per file, the
type-checking mode, the canonical module qualifier, and every suppression
directive (pyre-ignore, pyre-fixme, type: ignore) with its error codes and
source span.

Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./pkg/...      recursively scan pkg directory
  - ./a ./b        scan multiple directories`,
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
	cmd.PersistentFlags().BoolVar(&strictFlag, "strict", false, "check every file in strict mode")
	cmd.PersistentFlags().BoolVar(&declareFlag, "declare", false, "treat every file as declaration-only")
	cmd.PersistentFlags().BoolVar(&inferFlag, "infer", false, "run in inference mode, overriding all other mode flags")
	cmd.PersistentFlags().StringArrayVarP(&excludeFlags, "exclude", "x", nil, "exclude files matching pattern, gitignore syntax (can be repeated)")
	cmd.PersistentFlags().IntVarP(&parallelFlag, "parallel", "p", 1, "number of parallel workers for extraction")
	cmd.PersistentFlags().StringVarP(&reportsOutputDirFlag, "reports", "r", defaultReportsDir, "directory for persisted reports")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// resolveConfiguration merges the optional pyre.toml with CLI flags; flags
// only ever turn modes on and append excludes, never clear file settings.
func resolveConfiguration() (m.Configuration, error) {
	configuration, _, err := configLoader.Load(".")
	if err != nil {
		return m.Configuration{}, err
	}

	configuration.Infer = configuration.Infer || inferFlag
	configuration.Strict = configuration.Strict || strictFlag
	configuration.Declare = configuration.Declare || declareFlag
	configuration.Exclude = append(configuration.Exclude, excludeFlags...)

	if reportsOutputDirFlag != defaultReportsDir || configuration.Reports == "" {
		configuration.Reports = m.Path(reportsOutputDirFlag)
	}

	return configuration, nil
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
