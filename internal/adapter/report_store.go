package adapter

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	m "testforge.dev/pkg/testforge/internal/model"
)

// ReportStore persists run summaries.
type ReportStore interface {
	SaveReport(ctx context.Context, dir m.Path, summary m.RunSummary) (m.Path, error)
	LoadReport(ctx context.Context, path m.Path) (m.RunSummary, error)
	ListReports(ctx context.Context, dir m.Path) ([]m.Path, error)
}

const (
	reportPrefix = "run-"
	reportSuffix = ".yaml"
)

type yamlReport struct {
	RunID     string        `yaml:"run_id"`
	StartedAt time.Time     `yaml:"started_at"`
	Duration  string        `yaml:"duration"`
	DryRun    bool          `yaml:"dry_run"`
	Written   int           `yaml:"written"`
	Skipped   int           `yaml:"skipped"`
	Files     []yamlOutcome `yaml:"files"`
}

type yamlOutcome struct {
	Source       string `yaml:"source"`
	State        string `yaml:"state"`
	Reason       string `yaml:"reason,omitempty"`
	TestFilePath string `yaml:"test_file_path,omitempty"`
	Language     string `yaml:"language,omitempty"`
	Framework    string `yaml:"framework,omitempty"`
	Error        string `yaml:"error,omitempty"`
	Duration     string `yaml:"duration"`
}

// YAMLReportStore writes one run-<id>.yaml file per run.
type YAMLReportStore struct{}

// NewReportStore constructs a YAMLReportStore.
func NewReportStore() *YAMLReportStore {
	return &YAMLReportStore{}
}

// SaveReport writes summary under dir and returns the file path.
func (s *YAMLReportStore) SaveReport(ctx context.Context, dir m.Path, summary m.RunSummary) (m.Path, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if summary.RunID == "" {
		return "", errors.New("report has no run id")
	}

	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return "", fmt.Errorf("create reports dir: %w", err)
	}

	data, err := yaml.Marshal(toYAMLReport(summary))
	if err != nil {
		return "", fmt.Errorf("encode report: %w", err)
	}

	path := filepath.Join(string(dir), reportPrefix+summary.RunID+reportSuffix)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}

	return m.Path(path), nil
}

// LoadReport reads a report written by SaveReport. Errors are restored as
// plain messages and states as their names.
func (s *YAMLReportStore) LoadReport(ctx context.Context, path m.Path) (m.RunSummary, error) {
	if err := ctx.Err(); err != nil {
		return m.RunSummary{}, err
	}

	// #nosec G304 - report path under the configured reports directory
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.RunSummary{}, err
	}

	var report yamlReport
	if err := yaml.Unmarshal(data, &report); err != nil {
		return m.RunSummary{}, fmt.Errorf("decode report: %w", err)
	}

	return fromYAMLReport(report)
}

// ListReports returns the reports saved under dir, oldest first.
func (s *YAMLReportStore) ListReports(ctx context.Context, dir m.Path) ([]m.Path, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(string(dir))
	if err != nil {
		return nil, fmt.Errorf("read reports dir: %w", err)
	}

	type savedReport struct {
		path    m.Path
		modTime time.Time
	}

	var reports []savedReport

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, reportPrefix) || !strings.HasSuffix(name, reportSuffix) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		reports = append(reports, savedReport{path: m.Path(filepath.Join(string(dir), name)), modTime: info.ModTime()})
	}

	sort.SliceStable(reports, func(i, j int) bool {
		if reports[i].modTime.Equal(reports[j].modTime) {
			return reports[i].path < reports[j].path
		}

		return reports[i].modTime.Before(reports[j].modTime)
	})

	paths := make([]m.Path, 0, len(reports))
	for _, report := range reports {
		paths = append(paths, report.path)
	}

	return paths, nil
}

func toYAMLReport(summary m.RunSummary) yamlReport {
	report := yamlReport{
		RunID:     summary.RunID,
		StartedAt: summary.StartedAt,
		Duration:  summary.Duration.String(),
		DryRun:    summary.DryRun,
		Written:   summary.Written(),
		Skipped:   len(summary.Outcomes) - summary.Written(),
		Files:     make([]yamlOutcome, 0, len(summary.Outcomes)),
	}

	for _, outcome := range summary.Outcomes {
		entry := yamlOutcome{
			Source:   string(outcome.Source),
			State:    outcome.State.String(),
			Reason:   string(outcome.Reason),
			Duration: outcome.Duration.String(),
		}

		if outcome.Plan != nil {
			entry.TestFilePath = outcome.Plan.TestFilePath
			entry.Language = outcome.Plan.Language
			entry.Framework = outcome.Plan.Framework
		}

		if outcome.Err != nil {
			entry.Error = outcome.Err.Error()
		}

		report.Files = append(report.Files, entry)
	}

	return report
}

func fromYAMLReport(report yamlReport) (m.RunSummary, error) {
	duration, _ := time.ParseDuration(report.Duration)

	summary := m.RunSummary{
		RunID:     report.RunID,
		StartedAt: report.StartedAt,
		Duration:  duration,
		DryRun:    report.DryRun,
		Outcomes:  make([]m.FileOutcome, 0, len(report.Files)),
	}

	for _, entry := range report.Files {
		state, ok := parseFileState(entry.State)
		if !ok || !state.IsTerminal() {
			return m.RunSummary{}, fmt.Errorf("decode report: %s has state %q", entry.Source, entry.State)
		}

		outcome := m.FileOutcome{
			Source: m.Path(entry.Source),
			State:  state,
			Reason: m.SkipReason(entry.Reason),
		}
		outcome.Duration, _ = time.ParseDuration(entry.Duration)

		if entry.TestFilePath != "" {
			outcome.Plan = &m.GenerationPlan{
				Language:     entry.Language,
				Framework:    entry.Framework,
				TestFilePath: entry.TestFilePath,
			}
		}

		if entry.Error != "" {
			outcome.Err = errors.New(entry.Error)
		}

		summary.Outcomes = append(summary.Outcomes, outcome)
	}

	return summary, nil
}

func parseFileState(name string) (m.FileState, bool) {
	for state := m.Discovered; state <= m.Skipped; state++ {
		if state.String() == name {
			return state, true
		}
	}

	return m.Skipped, false
}
