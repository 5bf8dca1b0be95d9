package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"testforge.dev/pkg/testforge/internal/domain"
	domainmocks "testforge.dev/pkg/testforge/internal/domain/mocks"
	m "testforge.dev/pkg/testforge/internal/model"
)

func TestListCmd_PassesRootsWithoutOracle(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	withOracle := true
	useWorkflow(t, mockWorkflow, &withOracle)

	mockWorkflow.EXPECT().List(mock.Anything, mock.MatchedBy(func(args domain.ListArgs) bool {
		return args.File == "" &&
			len(args.Roots) == 2 &&
			args.Roots[0] == m.Path("./src") &&
			args.Roots[1] == m.Path("./lib") &&
			args.UseGitignore
	})).Return(nil)

	cmd := newTestRootCmd(t, newListCmd())
	cmd.SetArgs([]string{logFileArg(t), "--gitignore", "list", "./src", "./lib"})

	require.NoError(t, cmd.Execute())
	assert.False(t, withOracle)
}

func TestListCmd_WithExcludePatterns(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow, nil)

	mockWorkflow.EXPECT().List(mock.Anything, mock.MatchedBy(func(args domain.ListArgs) bool {
		return len(args.Exclude) == 2 &&
			args.Exclude[0] == "^generated_" &&
			args.Exclude[1] == "_pb2\\.py$"
	})).Return(nil)

	cmd := newTestRootCmd(t, newListCmd())
	cmd.SetArgs([]string{logFileArg(t), "list", "-x", "^generated_", "-x", "_pb2\\.py$"})

	require.NoError(t, cmd.Execute())
}

func TestNewListCmd(t *testing.T) {
	cmd := newListCmd()

	assert.Equal(t, "list [paths...]", cmd.Use)
	assert.Equal(t, listLongDescription, cmd.Long)
}
