package domain

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/leriomaggio/pyre-check/internal/adapter"
	"github.com/leriomaggio/pyre-check/internal/controller"
	m "github.com/leriomaggio/pyre-check/internal/model"
)

// ScanArgs holds parameters for a persisting scan.
type ScanArgs struct {
	Paths         []m.Path
	Configuration m.Configuration
	Threads       int
	Reports       m.Path
}

// ListArgs holds parameters for a display-only scan.
type ListArgs struct {
	Paths         []m.Path
	Configuration m.Configuration
	Threads       int
}

// ViewArgs holds parameters for viewing persisted reports.
type ViewArgs struct {
	Reports m.Path
}

// Workflow defines the interface for metadata scanning operations.
type Workflow interface {
	Scan(args ScanArgs) error
	List(args ListArgs) error
	View(args ViewArgs) error
}

type workflow struct {
	fsAdapter adapter.SourceFSAdapter
	store     adapter.ReportStore
	ui        controller.UI
}

// NewWorkflow creates a Workflow instance with the provided adapters.
func NewWorkflow(fsAdapter adapter.SourceFSAdapter, store adapter.ReportStore, ui controller.UI) Workflow {
	return &workflow{
		fsAdapter: fsAdapter,
		store:     store,
		ui:        ui,
	}
}

// Scan extracts metadata for every source file under the given roots and
// persists the resulting reports before displaying them.
func (w *workflow) Scan(args ScanArgs) error {
	reports, err := w.collectReports(args.Paths, args.Configuration, args.Threads)
	if err != nil {
		return w.ui.DisplayReports(nil, err)
	}

	if err := w.store.SaveReports(args.Reports, reports); err != nil {
		return fmt.Errorf("saving reports: %w", err)
	}

	return w.ui.DisplayReports(reports, nil)
}

// List extracts metadata and displays it without persisting anything.
func (w *workflow) List(args ListArgs) error {
	reports, err := w.collectReports(args.Paths, args.Configuration, args.Threads)

	return w.ui.DisplayReports(reports, err)
}

// View loads previously persisted reports and displays them.
func (w *workflow) View(args ViewArgs) error {
	reports, err := w.store.LoadReports(args.Reports)

	return w.ui.DisplayReports(reports, err)
}

// collectReports walks the roots and extracts a report per file. Files are
// independent, so extraction runs in parallel bounded by threads.
func (w *workflow) collectReports(roots []m.Path, configuration m.Configuration, threads int) ([]m.FileReport, error) {
	paths, err := w.fsAdapter.Get(roots, configuration.Exclude)
	if err != nil {
		return nil, err
	}

	if threads <= 0 {
		threads = 1
	}

	w.ui.DisplayScanInfo(len(paths), threads)

	reports := make([]m.FileReport, len(paths))

	var group errgroup.Group

	group.SetLimit(threads)

	for i, path := range paths {
		i, path := i, path
		group.Go(func() error {
			lines, err := w.fsAdapter.ReadLines(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}

			report, err := buildReport(path, lines, configuration)
			if err != nil {
				return err
			}

			reports[i] = report

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}

func buildReport(path m.Path, lines []string, configuration m.Configuration) (m.FileReport, error) {
	qualifier, err := DeriveQualifier(path)
	if err != nil {
		return m.FileReport{}, err
	}

	metadata := ExtractMetadata(path, lines)

	return m.FileReport{
		Path:      path,
		Qualifier: qualifier,
		Mode:      ResolveMode(metadata, configuration),
		Metadata:  metadata,
	}, nil
}
