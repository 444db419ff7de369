package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupLogFileCreatesTimestampedFile(t *testing.T) {
	dir := t.TempDir()

	f, err := SetupLogFile(dir, 5)
	if err != nil {
		t.Fatalf("SetupLogFile: %v", err)
	}
	defer f.Close()

	name := filepath.Base(f.Name())
	if !strings.HasPrefix(name, "server-") || !strings.HasSuffix(name, ".log") {
		t.Errorf("log file name = %q, want server-*.log", name)
	}
	if filepath.Dir(f.Name()) != dir {
		t.Errorf("log file dir = %q, want %q", filepath.Dir(f.Name()), dir)
	}
}

// Older files beyond the retention count are removed; the newest
// files survive because the timestamped names sort chronologically.
func TestSetupLogFilePrunesOldFiles(t *testing.T) {
	dir := t.TempDir()

	old := []string{
		"server-2026-01-01T00-00-00.log",
		"server-2026-01-02T00-00-00.log",
		"server-2026-01-03T00-00-00.log",
	}
	for _, name := range old {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}

	f, err := SetupLogFile(dir, 2)
	if err != nil {
		t.Fatalf("SetupLogFile: %v", err)
	}
	defer f.Close()

	remaining, err := filepath.Glob(filepath.Join(dir, "server-*.log"))
	if err != nil {
		t.Fatal(err)
	}
	if len(remaining) != 2 {
		t.Fatalf("remaining files = %d, want 2: %v", len(remaining), remaining)
	}
	for _, name := range remaining {
		if filepath.Base(name) == old[0] || filepath.Base(name) == old[1] {
			t.Errorf("stale file survived pruning: %s", name)
		}
	}
}
