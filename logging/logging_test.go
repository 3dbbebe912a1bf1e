package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")
	log := New(path, true)
	log.Debugf("[sync] position upload #%d failed", 3)
	Sync(log)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	line := string(data)
	if !strings.Contains(line, "DEBUG") || !strings.Contains(line, "[sync] position upload #3 failed") {
		t.Fatalf("unexpected log line %q", line)
	}
}

func TestInfoLevelDropsDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")
	log := New(path, false)
	log.Debugf("hidden")
	log.Infof("shown")
	Sync(log)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if strings.Contains(string(data), "hidden") {
		t.Error("debug entry written at info level")
	}
	if !strings.Contains(string(data), "shown") {
		t.Error("info entry missing")
	}
}
