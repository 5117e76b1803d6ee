package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/trim/internal/adapters/config"
	"go.trai.ch/trim/internal/core/domain"
	"go.trai.ch/trim/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "trim.yaml")
	err := os.WriteFile(path, []byte(content), 0o600)
	require.NoError(t, err)
	return path
}

func TestLoad_Success(t *testing.T) {
	content := `
version: "1"
namespace: com.acme
activeVariant: debug
flags:
  debugOnly: true
  enableIos: false
modules:
  app:
    path: ":app"
    kind: application
    compose: true
  core-model:
    path: ":core-model"
    kind: library
    variants:
      - name: debug
        buildType: debug
      - name: release
        buildType: release
      - name: staging
        buildType: release
  shared:
    path: ":shared"
    kind: multiplatform
    iosTargets: ["IosArm64", "IosSimulatorArm64"]
    extraTasks: ["generateBuildConfig"]
  tools:
    path: ":tools"
    kind: jvm
`
	path := writeManifest(t, content)

	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	ws, err := loader.Load(path)
	require.NoError(t, err)
	require.NotNil(t, ws)

	assert.Equal(t, "com.acme", ws.Prefix)
	assert.Equal(t, "debug", ws.ActiveVariant)
	assert.True(t, ws.Flags.DebugOnly)
	assert.False(t, ws.Flags.EnableIOS)

	// Modules come back sorted by name.
	require.Len(t, ws.Modules, 4)
	names := make([]string, len(ws.Modules))
	for i, m := range ws.Modules {
		names[i] = m.Name
	}
	assert.Equal(t, []string{"app", "core-model", "shared", "tools"}, names)

	app := ws.Modules[0]
	assert.Equal(t, domain.ModulePath(":app"), app.Path)
	assert.Equal(t, domain.KindApplication, app.Kind)
	assert.True(t, app.Compose)

	core := ws.Modules[1]
	require.Len(t, core.Variants, 3)
	assert.Equal(t, domain.Variant{Name: "staging", BuildType: "release"}, core.Variants[2])

	shared := ws.Modules[2]
	assert.Equal(t, domain.KindMultiplatform, shared.Kind)
	assert.Equal(t, []string{"IosArm64", "IosSimulatorArm64"}, shared.IOSTargets)
	assert.Equal(t, []string{"generateBuildConfig"}, shared.ExtraTasks)

	tools := ws.Modules[3]
	assert.Equal(t, domain.KindJvm, tools.Kind)
	assert.Empty(t, tools.Variants)
}

func TestLoad_Defaults(t *testing.T) {
	content := `
version: "1"
namespace: com.acme
modules:
  app:
    path: ":app"
    kind: application
    variants:
      - name: internal
`
	path := writeManifest(t, content)

	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	ws, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", ws.ActiveVariant, "active variant defaults to debug")
	assert.False(t, ws.Flags.DebugOnly)
	assert.False(t, ws.Flags.EnableIOS)

	// A variant without a buildType inherits its own name.
	require.Len(t, ws.Modules, 1)
	assert.Equal(t, []domain.Variant{{Name: "internal", BuildType: "internal"}}, ws.Modules[0].Variants)
}

func TestLoad_DefaultVariantMatrix(t *testing.T) {
	content := `
version: "1"
namespace: com.acme
modules:
  core:
    path: ":core"
    kind: library
`
	path := writeManifest(t, content)

	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	ws, err := loader.Load(path)
	require.NoError(t, err)

	require.Len(t, ws.Modules, 1)
	assert.Equal(t, []domain.Variant{
		{Name: "debug", BuildType: "debug"},
		{Name: "release", BuildType: "release"},
	}, ws.Modules[0].Variants)
}

func TestLoad_MissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	_, err := loader.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read manifest")
}

func TestLoad_ParseError(t *testing.T) {
	content := `
version: "1"
namespace: com.acme
modules:
  app: [not a mapping
`
	path := writeManifest(t, content)

	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	_, err := loader.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse manifest")
}

func TestLoad_BlankNamespace(t *testing.T) {
	content := `
version: "1"
namespace: "   "
modules:
  app:
    path: ":app"
    kind: application
`
	path := writeManifest(t, content)

	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	_, err := loader.Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBlankNamespacePrefix))

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, "namespace", zErr.Metadata()["manifest_key"])
}

func TestLoad_NoModules(t *testing.T) {
	content := `
version: "1"
namespace: com.acme
modules: {}
`
	path := writeManifest(t, content)

	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	_, err := loader.Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNoModules))
}

func TestLoad_DuplicateModulePath(t *testing.T) {
	content := `
version: "1"
namespace: com.acme
modules:
  app:
    path: ":app"
    kind: application
  app-clone:
    path: ":app"
    kind: library
`
	path := writeManifest(t, content)

	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	_, err := loader.Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDuplicateModule))

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))

	// Names are processed sorted, so the occurrence order is deterministic.
	meta := zErr.Metadata()
	assert.Equal(t, ":app", meta["path"])
	assert.Equal(t, "app", meta["first_occurrence"])
	assert.Equal(t, "app-clone", meta["duplicate_at"])
}

func TestLoad_UnknownKind(t *testing.T) {
	content := `
version: "1"
namespace: com.acme
modules:
  app:
    path: ":app"
    kind: spaceship
`
	path := writeManifest(t, content)

	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	_, err := loader.Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownModuleKind))

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, "spaceship", zErr.Metadata()["kind"])
	assert.Equal(t, "app", zErr.Metadata()["module"])
}

func TestLoad_BlankModulePath(t *testing.T) {
	content := `
version: "1"
namespace: com.acme
modules:
  app:
    kind: application
`
	path := writeManifest(t, content)

	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	_, err := loader.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "module path is blank")
}

func TestLoad_BlankVariantName(t *testing.T) {
	content := `
version: "1"
namespace: com.acme
modules:
  app:
    path: ":app"
    kind: application
    variants:
      - buildType: debug
`
	path := writeManifest(t, content)

	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	_, err := loader.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "variant name is blank")
}

func TestLoad_JvmVariantsIgnored(t *testing.T) {
	content := `
version: "1"
namespace: com.acme
modules:
  tools:
    path: ":tools"
    kind: jvm
    variants:
      - name: debug
`
	path := writeManifest(t, content)

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().
		Warn(gomock.Any()).
		Do(func(msg string) {
			assert.Contains(t, msg, "tools")
			assert.Contains(t, msg, "ignored")
		})

	loader := config.NewLoader(mockLogger)

	ws, err := loader.Load(path)
	require.NoError(t, err)
	assert.Empty(t, ws.Modules[0].Variants)
}

func TestLoad_IOSTargetsIgnoredOutsideMultiplatform(t *testing.T) {
	content := `
version: "1"
namespace: com.acme
modules:
  core:
    path: ":core"
    kind: library
    iosTargets: ["IosArm64"]
`
	path := writeManifest(t, content)

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().
		Warn(gomock.Any()).
		Do(func(msg string) {
			assert.Contains(t, msg, "iosTargets")
			assert.Contains(t, msg, "ignored")
		})

	loader := config.NewLoader(mockLogger)

	ws, err := loader.Load(path)
	require.NoError(t, err)
	assert.Empty(t, ws.Modules[0].IOSTargets)
}
