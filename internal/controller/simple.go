package controller

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "testforge.dev/pkg/testforge/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
// Output calls are serialized so concurrent workers never interleave lines.
type SimpleUI struct {
	cmd    *cobra.Command
	config StartConfig
	mu     sync.Mutex
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd, config: newStartConfig()}
}

// Start records the run options.
func (s *SimpleUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.config = newStartConfig(options...)

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

// DisplayDiscovered prints how many files will be processed.
func (s *SimpleUI) DisplayDiscovered(ctx context.Context, paths []m.Path, threads int) {
	if ctx.Err() != nil {
		return
	}

	s.printf("Generating tests for %d file(s) with %d worker(s)\n", len(paths), threads)
}

// DisplayStarting prints the file about to be sent to the oracle.
func (s *SimpleUI) DisplayStarting(ctx context.Context, path m.Path) {
	if ctx.Err() != nil {
		return
	}

	s.printf("Analyzing %s\n", path)
}

// DisplayOutcome prints one finished file, and its preview on dry runs.
func (s *SimpleUI) DisplayOutcome(_ context.Context, outcome m.FileOutcome) {
	line := formatOutcomeLine(outcome) + "\n"
	if s.config.dryRun && outcome.Preview != "" {
		line += outcome.Preview + "\n"
	}

	s.printf("%s", line)
}

// DisplaySummary prints the per-file table and totals.
func (s *SimpleUI) DisplaySummary(_ context.Context, summary m.RunSummary, reportPath m.Path) {
	s.printf("\n%s", renderSummaryTable(summary))

	if reportPath != "" {
		s.printf("Report: %s\n", reportPath)
	}
}

// DisplayList prints discovered files grouped by extension.
func (s *SimpleUI) DisplayList(ctx context.Context, paths []m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderListTable(paths))

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func formatOutcomeLine(outcome m.FileOutcome) string {
	if outcome.Succeeded() {
		dest := ""
		if outcome.Plan != nil {
			dest = outcome.Plan.TestFilePath
		}

		return fmt.Sprintf("✅ %s -> %s", outcome.Source, dest)
	}

	if outcome.Err != nil {
		return fmt.Sprintf("❌ %s skipped (%s): %v", outcome.Source, outcome.Reason, outcome.Err)
	}

	return fmt.Sprintf("❌ %s skipped (%s)", outcome.Source, outcome.Reason)
}

func renderSummaryTable(summary m.RunSummary) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Source", "Status", "Test File"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, outcome := range summary.Outcomes {
		status := outcome.State.String()
		if outcome.State == m.Skipped {
			status = string(outcome.Reason)
		}

		dest := ""
		if outcome.Plan != nil {
			dest = outcome.Plan.TestFilePath
		}

		table.Append([]string{string(outcome.Source), status, dest})
	}

	written := summary.Written()
	footer := fmt.Sprintf("%d written", written)

	if summary.DryRun {
		footer = fmt.Sprintf("%d would be written", written)
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(summary.Outcomes)),
		footer,
		fmt.Sprintf("%d skipped", len(summary.Outcomes)-written),
	})

	table.Render()

	return tableBuffer.String()
}

func renderListTable(paths []m.Path) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Extension"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	byExt := make(map[string]int)

	for _, path := range paths {
		table.Append([]string{string(path), path.Ext()})
		byExt[path.Ext()]++
	}

	exts := make([]string, 0, len(byExt))
	for ext := range byExt {
		exts = append(exts, ext)
	}

	sort.Strings(exts)

	breakdown := ""
	for i, ext := range exts {
		if i > 0 {
			breakdown += " "
		}

		breakdown += fmt.Sprintf("%s:%d", ext, byExt[ext])
	}

	table.SetFooter([]string{fmt.Sprintf("Total Files %d", len(paths)), breakdown})
	table.Render()

	return tableBuffer.String()
}
