package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	// Save original args
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tests := []struct {
		name         string
		setupConfig  func(tmpDir string)
		args         []string
		expectedExit int
	}{
		{
			name: "Success with valid manifest",
			setupConfig: func(tmpDir string) {
				configContent := `version: "1"
namespace: com.acme
flags:
  debugOnly: true
modules:
  app:
    path: ":app"
    kind: application
`
				err := os.WriteFile(tmpDir+"/trim.yaml", []byte(configContent), 0o600)
				if err != nil {
					t.Fatalf("failed to write config: %v", err)
				}
			},
			args:         []string{"trim", "plan"},
			expectedExit: 0,
		},
		{
			name:         "Error with missing manifest",
			setupConfig:  func(string) {},
			args:         []string{"trim", "-c", "nonexistent.yaml", "plan"},
			expectedExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			tt.setupConfig(tmpDir)

			// Change to tmpDir for relative path resolution
			originalWd, _ := os.Getwd()
			err := os.Chdir(tmpDir)
			if err != nil {
				t.Fatalf("failed to chdir: %v", err)
			}
			defer func() {
				_ = os.Chdir(originalWd)
			}()

			os.Args = tt.args

			exitCode := run()
			assert.Equal(t, tt.expectedExit, exitCode)
		})
	}
}

func TestRun_StoreInitError(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tmpDir := t.TempDir()

	configContent := `version: "1"
namespace: com.acme
modules:
  app:
    path: ":app"
    kind: application
`
	err := os.WriteFile(tmpDir+"/trim.yaml", []byte(configContent), 0o600)
	if err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	// Create .trim as a file so creating the state directory fails.
	err = os.WriteFile(tmpDir+"/.trim", []byte("not a directory"), 0o600)
	if err != nil {
		t.Fatalf("failed to create .trim file: %v", err)
	}

	originalWd, _ := os.Getwd()
	err = os.Chdir(tmpDir)
	if err != nil {
		t.Fatalf("failed to chdir: %v", err)
	}
	defer func() {
		_ = os.Chdir(originalWd)
	}()

	os.Args = []string{"trim", "apply"}

	exitCode := run()
	assert.Equal(t, 1, exitCode)
}
