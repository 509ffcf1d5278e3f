package controller

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

func TestNewUI_TTYMode(t *testing.T) {
	cmd := &cobra.Command{}

	ui := NewUI(cmd, true)
	if _, ok := ui.(*TUI); !ok {
		t.Errorf("NewUI(true) returned %T, want *TUI", ui)
	}
}

func TestNewUI_NonTTYMode(t *testing.T) {
	cmd := &cobra.Command{}

	ui := NewUI(cmd, false)
	if _, ok := ui.(*SimpleUI); !ok {
		t.Errorf("NewUI(false) returned %T, want *SimpleUI", ui)
	}
}

func TestIsTTY_NonFileWriter(t *testing.T) {
	if IsTTY(&nopWriter{}) {
		t.Errorf("IsTTY() = true for a non-file writer")
	}
}

func TestIsTTY_RegularFile(t *testing.T) {
	file, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer func() { _ = file.Close() }()

	if IsTTY(file) {
		t.Errorf("IsTTY() = true for a regular file")
	}
}

type nopWriter struct{}

func (*nopWriter) Write(p []byte) (int, error) { return len(p), nil }
