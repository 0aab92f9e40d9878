package commands_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/winebuild/cmd/winebuild/commands"
	"go.trai.ch/winebuild/internal/adapters/telemetry"
	"go.trai.ch/winebuild/internal/app"
	"go.trai.ch/winebuild/internal/build"
	"go.trai.ch/winebuild/internal/core/domain"
	"go.trai.ch/winebuild/internal/core/ports/mocks"
	"go.trai.ch/winebuild/internal/engine/sequencer"
	"go.uber.org/mock/gomock"
)

// emptyPlan has no steps, so run commands exercise the full load, verify,
// reset, sequence path without any process execution.
func emptyPlan(t *testing.T) *domain.Plan {
	t.Helper()
	return &domain.Plan{
		Pipeline:    domain.NewPipeline(),
		Environment: domain.DefaultEnvironment(),
		Layout:      domain.DefaultLayout(t.TempDir()),
	}
}

type fixture struct {
	loader    *mocks.MockConfigLoader
	workspace *mocks.MockWorkspace
	cli       *commands.CLI
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	loader := mocks.NewMockConfigLoader(ctrl)
	workspace := mocks.NewMockWorkspace(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()

	store := mocks.NewMockReportStore(ctrl)
	store.EXPECT().Get(gomock.Any()).Return(nil, nil).AnyTimes()
	hasher := mocks.NewMockHasher(ctrl)
	hasher.EXPECT().TreeHash(gomock.Any()).Return("d15f", nil).AnyTimes()

	seq := sequencer.NewSequencer(
		mocks.NewMockScriptRunner(ctrl),
		mocks.NewMockLocator(ctrl),
		mocks.NewMockTimestampNormalizer(ctrl),
		hasher,
		store,
		telemetry.NewNoop(),
	)

	cli := commands.New(app.New(loader, workspace, seq, store, hasher, logger))
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

	return &fixture{loader: loader, workspace: workspace, cli: cli}
}

func TestCommands_Run_DefaultConfig(t *testing.T) {
	f := newFixture(t)
	plan := emptyPlan(t)

	f.loader.EXPECT().Load("winebuild.yaml").Return(plan, nil)
	f.workspace.EXPECT().Reset(plan.Layout).Return(nil)

	f.cli.SetArgs([]string{"run"})
	assert.NoError(t, f.cli.Execute(context.Background()))
}

func TestCommands_Run_ConfigFlag(t *testing.T) {
	f := newFixture(t)
	plan := emptyPlan(t)

	f.loader.EXPECT().Load("release.yaml").Return(plan, nil)
	f.workspace.EXPECT().Reset(plan.Layout).Return(nil)

	f.cli.SetArgs([]string{"run", "-c", "release.yaml"})
	assert.NoError(t, f.cli.Execute(context.Background()))
}

func TestCommands_Clean(t *testing.T) {
	f := newFixture(t)
	plan := emptyPlan(t)

	f.loader.EXPECT().Load("winebuild.yaml").Return(plan, nil)
	f.workspace.EXPECT().Clean(plan.Layout, true).Return(nil)

	f.cli.SetArgs([]string{"clean", "--cache"})
	assert.NoError(t, f.cli.Execute(context.Background()))
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(nil)
	stdout := new(bytes.Buffer)
	cli.SetOutput(stdout, new(bytes.Buffer))

	cli.SetArgs([]string{"version"})
	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, stdout.String(), build.Version)
}

func TestCommands_UnknownCommand(t *testing.T) {
	cli := commands.New(nil)
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

	cli.SetArgs([]string{"deploy"})
	assert.Error(t, cli.Execute(context.Background()))
}
