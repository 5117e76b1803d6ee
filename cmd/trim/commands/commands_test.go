package commands_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/trim/cmd/trim/commands"
	"go.trai.ch/trim/internal/adapters/detector"
	"go.trai.ch/trim/internal/adapters/taskgraph"
	"go.trai.ch/trim/internal/adapters/telemetry"
	"go.trai.ch/trim/internal/app"
	"go.trai.ch/trim/internal/core/domain"
	"go.trai.ch/trim/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type cliFixture struct {
	cli    *commands.CLI
	out    *bytes.Buffer
	loader *mocks.MockConfigLoader
	store  *mocks.MockReportStore
}

func newCLI(t *testing.T) *cliFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	store := mocks.NewMockReportStore(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	a := app.New(loader, taskgraph.NewFactory(), store, telemetry.NewNoOp(), logger, detector.Signal{})

	out := &bytes.Buffer{}
	cli := commands.New(a)
	cli.SetOut(out)

	return &cliFixture{cli: cli, out: out, loader: loader, store: store}
}

func testWorkspace() *domain.Workspace {
	return &domain.Workspace{
		Prefix:        "com.acme",
		ActiveVariant: "debug",
		Flags:         domain.Flags{DebugOnly: true},
		Modules: []domain.ModuleConfig{
			{
				Name: "app",
				Path: ":app",
				Kind: domain.KindApplication,
				Variants: []domain.Variant{
					{Name: "debug", BuildType: "debug"},
					{Name: "release", BuildType: "release"},
				},
			},
		},
	}
}

func TestPlan_PrintsModulePlan(t *testing.T) {
	f := newCLI(t)

	f.loader.EXPECT().Load("trim.yaml").Return(testWorkspace(), nil)
	f.store.EXPECT().Get("app").Return(nil, nil)

	f.cli.SetArgs([]string{"plan"})
	err := f.cli.Execute(context.Background())
	require.NoError(t, err)

	output := f.out.String()
	assert.Contains(t, output, "mode: debug-only")
	assert.Contains(t, output, ":app (application) com.acme.app")
	assert.Contains(t, output, "assembleRelease")
}

func TestPlan_ConfigFlag(t *testing.T) {
	f := newCLI(t)

	f.loader.EXPECT().Load("custom.yaml").Return(testWorkspace(), nil)
	f.store.EXPECT().Get("app").Return(nil, nil)

	f.cli.SetArgs([]string{"plan", "-c", "custom.yaml"})
	err := f.cli.Execute(context.Background())
	require.NoError(t, err)
}

func TestPlan_ModeOverrides(t *testing.T) {
	f := newCLI(t)

	// The manifest asks for debug-only; the flags force a full iOS build.
	f.loader.EXPECT().Load("trim.yaml").Return(testWorkspace(), nil)
	f.store.EXPECT().Get("app").Return(nil, nil)

	f.cli.SetArgs([]string{"plan", "--debug-only=false", "--enable-ios"})
	err := f.cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, f.out.String(), "mode: full")
}

func TestPlan_SyncFlag(t *testing.T) {
	f := newCLI(t)

	f.loader.EXPECT().Load("trim.yaml").Return(testWorkspace(), nil)
	f.store.EXPECT().Get("app").Return(nil, nil)

	f.cli.SetArgs([]string{"plan", "--sync"})
	err := f.cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, f.out.String(), "sync session, graph untouched")
}

func TestApply_PersistsReports(t *testing.T) {
	f := newCLI(t)

	f.loader.EXPECT().Load("trim.yaml").Return(testWorkspace(), nil)
	f.store.EXPECT().Get("app").Return(nil, nil).Times(2)
	f.store.EXPECT().Put(gomock.Any()).Return(nil)

	f.cli.SetArgs([]string{"apply"})
	err := f.cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, f.out.String(), "fingerprint:")
}

func TestNamespace_PrintsDerivedNamespace(t *testing.T) {
	f := newCLI(t)

	f.loader.EXPECT().Load("trim.yaml").Return(testWorkspace(), nil)

	f.cli.SetArgs([]string{"namespace", ":data:api-client"})
	err := f.cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "com.acme.data.apiclient", strings.TrimSpace(f.out.String()))
}

func TestNamespace_RequiresPath(t *testing.T) {
	f := newCLI(t)

	f.cli.SetArgs([]string{"namespace"})
	err := f.cli.Execute(context.Background())
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	f := newCLI(t)

	f.cli.SetArgs([]string{"version"})
	err := f.cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, f.out.String(), "trim version")
}

func TestRoot_Help(t *testing.T) {
	f := newCLI(t)

	f.cli.SetArgs([]string{"--help"})
	err := f.cli.Execute(context.Background())
	require.NoError(t, err)
}
