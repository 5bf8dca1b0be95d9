package cmd

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"testforge.dev/pkg/testforge/internal/adapter"
	"testforge.dev/pkg/testforge/internal/controller"
	"testforge.dev/pkg/testforge/internal/domain"
	m "testforge.dev/pkg/testforge/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var syntaxAdapter adapter.SyntaxAdapter = adapter.NewLocalSyntaxAdapter()
var reportStore adapter.ReportStore
var discovery domain.Discovery
var planValidator domain.PlanValidator

// workflowFactory builds the workflow for one command invocation. Tests
// replace it to inject a mock.
var workflowFactory = buildWorkflow

func init() {
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore()
	discovery = domain.NewDiscovery(fsAdapter)
	planValidator = domain.NewPlanValidator(syntaxAdapter)
}

// buildWorkflow wires the pipeline for cmd. Only generation needs an oracle;
// a missing credential fails here, before any file is touched. The returned
// func releases the oracle client.
func buildWorkflow(ctx context.Context, cmd *cobra.Command, withOracle bool) (domain.Workflow, func(), error) {
	ui := controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout()))
	cleanup := func() {}

	var orchestrator domain.Orchestrator

	if withOracle {
		oracle, err := adapter.NewOracleAdapter(ctx, oracleConfig())
		if err != nil {
			slog.Error("Oracle configuration failed", "error", err)
			return nil, cleanup, err
		}

		if closer, ok := oracle.(io.Closer); ok {
			cleanup = func() {
				if err := closer.Close(); err != nil {
					slog.Warn("Failed to close oracle client", "error", err)
				}
			}
		}

		writer := domain.NewTestWriter(fsAdapter, m.Path(viper.GetString(baseDirConfigKey)))
		previewer := domain.NewPreviewer(fsAdapter)
		orchestrator = domain.NewOrchestrator(fsAdapter, oracle, planValidator, writer, previewer)
	}

	return domain.NewWorkflow(discovery, orchestrator, reportStore, ui), cleanup, nil
}
