package controller

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/leriomaggio/pyre-check/internal/model"
)

// reportItem is a single file row in the report list.
type reportItem struct {
	path         string
	qualifier    string
	mode         m.Mode
	suppressions int
}

func (r reportItem) FilterValue() string {
	return r.path
}

// reportDelegate renders one report row.
type reportDelegate struct{}

func (d reportDelegate) Height() int  { return 1 }
func (d reportDelegate) Spacing() int { return 0 }
func (d reportDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d reportDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	report, ok := item.(reportItem)
	if !ok {
		return
	}

	countStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("11")).
		Bold(true).
		Width(5).
		Align(lipgloss.Right)
	modeStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("10")).
		Width(8)
	pathStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	if index == lm.Index() {
		selected := lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		countStyle = selected.Width(5).Align(lipgloss.Right)
		modeStyle = selected.Width(8)
		pathStyle = selected
	}

	line := fmt.Sprintf("%s  %s  %s",
		countStyle.Render(fmt.Sprintf("%d", report.suppressions)),
		modeStyle.Render(string(report.mode)),
		pathStyle.Render(report.path),
	)
	_, _ = fmt.Fprint(w, line)
}

// reportModel is the Bubble Tea model for browsing file reports.
type reportModel struct {
	fileList     list.Model
	totalFiles   int
	suppressions int
	width        int
	height       int
}

func newReportModel(reports []m.FileReport) reportModel {
	sorted := make([]m.FileReport, len(reports))
	copy(sorted, reports)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Path < sorted[j].Path
	})

	items := make([]list.Item, 0, len(sorted))
	suppressions := 0

	for _, report := range sorted {
		items = append(items, reportItem{
			path:         string(report.Path),
			qualifier:    strings.Join(report.Qualifier, "."),
			mode:         report.Mode,
			suppressions: len(report.Metadata.Suppressions),
		})
		suppressions += len(report.Metadata.Suppressions)
	}

	fileList := list.New(items, reportDelegate{}, 80, 20)
	fileList.SetShowPagination(false)
	fileList.SetShowFilter(true)
	fileList.SetShowHelp(false)
	fileList.SetShowTitle(false)
	fileList.SetShowStatusBar(false)
	fileList.FilterInput.Placeholder = "Filter by path…"

	return reportModel{
		fileList:     fileList,
		totalFiles:   len(sorted),
		suppressions: suppressions,
	}
}

func (rm reportModel) Init() tea.Cmd {
	return nil
}

func (rm reportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		rm.width = msg.Width
		rm.height = msg.Height
		rm.fileList.SetWidth(rm.width)

		return rm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return rm, tea.Quit
		default:
			rm.fileList, cmd = rm.fileList.Update(msg)

			return rm, cmd
		}
	}

	return rm, cmd
}

func (rm reportModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	title := titleStyle.Render("Pyre Source Metadata")

	summary := summaryStyle.Render(fmt.Sprintf(
		"Files: %s   Suppressions: %s",
		accentStyle.Render(fmt.Sprintf("%d", rm.totalFiles)),
		accentStyle.Render(fmt.Sprintf("%d", rm.suppressions)),
	))

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(rm.width)

	footer := footerStyle.Render("↑/k up • ↓/j down • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		rm.renderTable(),
		footer,
	)
}

func (rm reportModel) renderTable() string {
	listHeight := rm.height - 9
	if listHeight < 5 {
		listHeight = 5
	}

	listWidth := rm.width - 6
	if listWidth < 20 {
		listWidth = 20
	}

	rm.fileList.SetHeight(listHeight)
	rm.fileList.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%5s  %-8s  %s", "Supp", "Mode", "File Path"))

	tableContainer := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return tableContainer.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			rm.fileList.View(),
		),
	)
}

// needsPagination reports whether the list is too large to fit on screen.
func (rm reportModel) needsPagination() bool {
	if rm.totalFiles == 0 || rm.height == 0 {
		return false
	}

	return rm.totalFiles > rm.height-9
}
