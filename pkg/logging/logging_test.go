package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupFileJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "callcost.log")
	l, err := Setup(Options{Level: "debug", Format: "json", Output: path})
	if err != nil {
		t.Fatal(err)
	}

	l.Debug("estimate computed")
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"msg":"estimate computed"`) {
		t.Errorf("unexpected log output: %s", data)
	}
	if !strings.Contains(string(data), `"level":"debug"`) {
		t.Errorf("expected debug level entry: %s", data)
	}
}

func TestSetupLevelFiltering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "callcost.log")
	l, err := Setup(Options{Level: "warn", Format: "console", Output: path})
	if err != nil {
		t.Fatal(err)
	}
	l.Info("hidden")
	l.Warn("shown")
	Sync()

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "hidden") {
		t.Error("info entry should be filtered at warn level")
	}
	if !strings.Contains(string(data), "shown") {
		t.Error("warn entry missing")
	}
}

func TestSetupDiscard(t *testing.T) {
	l, err := Setup(Options{Output: "discard"})
	if err != nil {
		t.Fatal(err)
	}
	l.Info("nothing")
	if l.Core().Enabled(0) {
		t.Error("discard logger should not be enabled")
	}
}

func TestSetupBadPath(t *testing.T) {
	if _, err := Setup(Options{Output: filepath.Join(t.TempDir(), "missing", "x.log")}); err == nil {
		t.Error("expected error for unwritable output")
	}
}
