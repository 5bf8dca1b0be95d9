package controller

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	m "testforge.dev/pkg/testforge/internal/model"
)

const maxRecentOutcomes = 8

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	writtenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	skippedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

// TUI implements UI with a live Bubble Tea progress view. The final summary
// and listings are printed as plain tables once the program has exited.
type TUI struct {
	output  io.Writer
	config  StartConfig
	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI writing to the command's output.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{output: cmd.OutOrStdout(), config: newStartConfig()}
}

// Start launches the progress program in generate mode.
func (p *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.config = newStartConfig(options...)
	if p.config.mode != ModeGenerate {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.program = tea.NewProgram(newProgressModel(p.config.dryRun), tea.WithOutput(p.output), tea.WithInput(nil))
	p.done = make(chan struct{})

	go func(program *tea.Program, done chan struct{}) {
		defer close(done)

		_, _ = program.Run()
	}(p.program, p.done)

	return nil
}

// Close stops the progress program if it is still running.
func (p *TUI) Close(_ context.Context) {
	p.stop()
}

func (p *TUI) stop() {
	p.mu.Lock()
	program, done := p.program, p.done
	p.program, p.done = nil, nil
	p.mu.Unlock()

	if program == nil {
		return
	}

	program.Quit()
	<-done
}

func (p *TUI) send(msg tea.Msg) {
	p.mu.Lock()
	program := p.program
	p.mu.Unlock()

	if program != nil {
		program.Send(msg)
	}
}

// DisplayDiscovered sets the progress total.
func (p *TUI) DisplayDiscovered(_ context.Context, paths []m.Path, threads int) {
	p.send(discoveredMsg{total: len(paths), threads: threads})
}

// DisplayStarting marks path as in flight.
func (p *TUI) DisplayStarting(_ context.Context, path m.Path) {
	p.send(startedMsg{path: path})
}

// DisplayOutcome records a finished file.
func (p *TUI) DisplayOutcome(_ context.Context, outcome m.FileOutcome) {
	p.send(outcomeMsg{outcome: outcome})
}

// DisplaySummary ends the live view and prints the summary table.
func (p *TUI) DisplaySummary(_ context.Context, summary m.RunSummary, reportPath m.Path) {
	p.stop()

	if summary.DryRun {
		for _, outcome := range summary.Outcomes {
			if outcome.Preview != "" {
				_, _ = fmt.Fprintf(p.output, "%s\n", outcome.Preview)
			}
		}
	}

	_, _ = fmt.Fprintf(p.output, "\n%s", renderSummaryTable(summary))
	for _, outcome := range summary.Outcomes {
		if !outcome.Succeeded() {
			_, _ = fmt.Fprintf(p.output, "%s\n", skippedStyle.Render(formatOutcomeLine(outcome)))
		}
	}

	if reportPath != "" {
		_, _ = fmt.Fprintf(p.output, "%s\n", faintStyle.Render("Report: "+string(reportPath)))
	}
}

// DisplayList prints discovered files.
func (p *TUI) DisplayList(ctx context.Context, paths []m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(p.output, "%s\n\n%s", titleStyle.Render("testforge - discovered sources"), renderListTable(paths))

	return err
}

type discoveredMsg struct {
	total   int
	threads int
}

type startedMsg struct {
	path m.Path
}

type outcomeMsg struct {
	outcome m.FileOutcome
}

// progressModel is the Bubble Tea model for a running generation.
type progressModel struct {
	spinner  spinner.Model
	dryRun   bool
	total    int
	threads  int
	written  int
	skipped  int
	running  map[m.Path]struct{}
	recent   []m.FileOutcome
	quitting bool
}

func newProgressModel(dryRun bool) progressModel {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return progressModel{
		spinner: s,
		dryRun:  dryRun,
		running: make(map[m.Path]struct{}),
	}
}

func (pm progressModel) Init() tea.Cmd {
	return pm.spinner.Tick
}

func (pm progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case discoveredMsg:
		pm.total = msg.total
		pm.threads = msg.threads

		return pm, nil

	case startedMsg:
		pm.running[msg.path] = struct{}{}

		return pm, nil

	case outcomeMsg:
		delete(pm.running, msg.outcome.Source)

		if msg.outcome.Succeeded() {
			pm.written++
		} else {
			pm.skipped++
		}

		pm.recent = append(pm.recent, msg.outcome)
		if len(pm.recent) > maxRecentOutcomes {
			pm.recent = pm.recent[len(pm.recent)-maxRecentOutcomes:]
		}

		return pm, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			pm.quitting = true
			return pm, tea.Quit
		}

		return pm, nil

	case tea.QuitMsg:
		pm.quitting = true
		return pm, nil
	}

	var cmd tea.Cmd

	pm.spinner, cmd = pm.spinner.Update(msg)

	return pm, cmd
}

func (pm progressModel) View() string {
	var b strings.Builder

	title := "testforge - generating tests"
	if pm.dryRun {
		title += " (dry run)"
	}

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	processed := pm.written + pm.skipped
	fmt.Fprintf(&b, "%s %d/%d files  %s  %s  %s\n",
		pm.spinner.View(), processed, pm.total,
		writtenStyle.Render(fmt.Sprintf("written %d", pm.written)),
		skippedStyle.Render(fmt.Sprintf("skipped %d", pm.skipped)),
		faintStyle.Render(fmt.Sprintf("workers %d", pm.threads)),
	)

	running := make([]string, 0, len(pm.running))
	for path := range pm.running {
		running = append(running, string(path))
	}

	sort.Strings(running)

	for _, path := range running {
		fmt.Fprintf(&b, "  … %s\n", path)
	}

	if len(pm.recent) > 0 {
		b.WriteString("\n")
	}

	for _, outcome := range pm.recent {
		line := formatOutcomeLine(outcome)
		if outcome.Succeeded() {
			b.WriteString(writtenStyle.Render(line))
		} else {
			b.WriteString(skippedStyle.Render(line))
		}

		b.WriteString("\n")
	}

	return b.String()
}
