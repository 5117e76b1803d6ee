package state_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.trai.ch/trim/internal/adapters/state"
	"go.trai.ch/trim/internal/core/domain"
)

func TestStore_PutAndGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	store, err := state.NewStore(path)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	report := domain.ModuleReport{
		Module:    "app",
		Path:      ":app",
		Namespace: "com.acme.app",
		Kind:      domain.KindApplication,
		Mode:      domain.BuildMode{DebugOnly: true, IOSEnabled: true},
		Prune: domain.PruneReport{
			Expanded: []string{"lintDebug", "assembleRelease"},
			Disabled: []string{"lintDebug", "assembleRelease"},
		},
		Fingerprint: "0011223344556677",
		Timestamp:   time.Now(),
	}

	if err := store.Put(report); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := store.Get("app")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil {
		t.Fatal("Get returned nil")
	}

	if got.Namespace != report.Namespace {
		t.Errorf("expected Namespace %q, got %q", report.Namespace, got.Namespace)
	}
	if got.Fingerprint != report.Fingerprint {
		t.Errorf("expected Fingerprint %q, got %q", report.Fingerprint, got.Fingerprint)
	}
}

func TestStore_GetAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	store, err := state.NewStore(path)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	got, err := store.Get("never-configured")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for absent module, got %+v", got)
	}
}

func TestStore_Persistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	store1, err := state.NewStore(path)
	if err != nil {
		t.Fatalf("NewStore 1 failed: %v", err)
	}

	report := domain.ModuleReport{
		Module:      "core",
		Kind:        domain.KindLibrary,
		Fingerprint: "1111111111111111",
	}
	if err := store1.Put(report); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	// A fresh instance pointing at the same file sees the saved report.
	store2, err := state.NewStore(path)
	if err != nil {
		t.Fatalf("NewStore 2 failed: %v", err)
	}

	got, err := store2.Get("core")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil {
		t.Fatal("Get returned nil")
	}
	if got.Fingerprint != "1111111111111111" {
		t.Errorf("expected Fingerprint %q, got %q", "1111111111111111", got.Fingerprint)
	}
}

func TestStore_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".trim", "state.json")

	store, err := state.NewStore(path)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	if err := store.Put(domain.ModuleReport{Module: "app"}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected state file to exist: %v", err)
	}
}

func TestStore_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	store, err := state.NewStore(path)
	if err != nil {
		t.Fatalf("expected empty file to be tolerated: %v", err)
	}

	got, err := store.Get("anything")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != nil {
		t.Fatalf("expected empty store, got %+v", got)
	}
}

func TestStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	_, err := state.NewStore(path)
	if err == nil {
		t.Fatal("expected error for corrupt state file")
	}
	if !strings.Contains(err.Error(), "failed to unmarshal state file") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestStore_OmitZero(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	store, err := state.NewStore(path)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	// A report from a sync session has no prune lists and no timestamp.
	report := domain.ModuleReport{
		Module: "app",
		Prune:  domain.PruneReport{SyncSkipped: true},
	}
	if err := store.Put(report); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	//nolint:gosec // Test file with controlled path
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	jsonStr := string(content)
	if strings.Contains(jsonStr, "disabled") {
		t.Error("JSON should not contain 'disabled' for zero value")
	}
	if strings.Contains(jsonStr, "timestamp") {
		t.Error("JSON should not contain 'timestamp' for zero value")
	}
	if !strings.Contains(jsonStr, "sync_skipped") {
		t.Error("JSON should contain 'sync_skipped'")
	}
}
