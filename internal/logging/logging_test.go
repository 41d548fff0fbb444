package logging

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"cratepub/internal/config"
)

func TestNew_noFileIsNop(t *testing.T) {
	log, err := New(config.Log{})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	// A nop logger must swallow writes without side effects.
	log.Info("ignored")
}

func TestNew_badLevel(t *testing.T) {
	if _, err := New(config.Log{File: "x.log", Level: "loud"}); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestNew_writesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cratepub.log")
	log, err := New(config.Log{File: path, Level: "debug"})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	log.Debug("dry-run publish", zap.String("package", "uorm"))
	_ = log.Sync()

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("log file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("log file is empty")
	}
}
