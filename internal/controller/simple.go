package controller

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/leriomaggio/pyre-check/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayScanInfo shows how many files are being processed and with how many
// workers.
func (s *SimpleUI) DisplayScanInfo(files int, threads int) {
	s.printf("Scanning %d file(s) with %d worker(s)\n", files, threads)
}

// DisplayReports prints the per-file metadata table or the scan error.
func (s *SimpleUI) DisplayReports(reports []m.FileReport, err error) error {
	if err != nil {
		s.printf("scan error: %v\n", err)

		return err
	}

	sorted := make([]m.FileReport, len(reports))
	copy(sorted, reports)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Path < sorted[j].Path
	})

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Qualifier", "Mode", "Version", "Suppressions"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	totalSuppressions := 0

	for _, report := range sorted {
		table.Append([]string{
			string(report.Path),
			strings.Join(report.Qualifier, "."),
			renderMode(report.Mode),
			fmt.Sprintf("%d", report.Metadata.Version),
			fmt.Sprintf("%d", len(report.Metadata.Suppressions)),
		})

		totalSuppressions += len(report.Metadata.Suppressions)
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(sorted)),
		"", "", "",
		fmt.Sprintf("%d", totalSuppressions),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// renderMode highlights the modes that change checking behavior.
func renderMode(mode m.Mode) string {
	switch mode {
	case m.ModeStrict:
		return color.New(color.FgGreen).Sprint(string(mode))
	case m.ModeDeclare:
		return color.New(color.FgYellow).Sprint(string(mode))
	case m.ModeInfer:
		return color.New(color.FgCyan).Sprint(string(mode))
	default:
		return string(mode)
	}
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
