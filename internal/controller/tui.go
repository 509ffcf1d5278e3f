package controller

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	m "github.com/leriomaggio/pyre-check/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplayScanInfo shows how many files are being processed and with how many
// workers.
func (t *TUI) DisplayScanInfo(files int, threads int) {
	_, _ = fmt.Fprintf(t.output, "Scanning %d file(s) with %d worker(s)\n", files, threads)
}

// DisplayReports shows the per-file metadata reports in an interactive list,
// falling back to a static render when everything fits on screen.
func (t *TUI) DisplayReports(reports []m.FileReport, err error) error {
	if err != nil {
		_, _ = fmt.Fprintf(t.output, "scan error: %v\n", err)

		return err
	}

	model := newReportModel(reports)

	// Get initial terminal size
	if f, ok := t.output.(*os.File); ok {
		width, height, sizeErr := term.GetSize(int(f.Fd()))
		if sizeErr == nil {
			model.width = width
			model.height = height
		}
	}

	// If the list is small, just print and exit
	if !model.needsPagination() {
		_, printErr := fmt.Fprint(t.output, model.View())

		return printErr
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, runErr := program.Run(); runErr != nil {
		return runErr
	}

	return nil
}
