//go:build !fyne

package ui

import (
	"errors"
	"strings"
	"testing"

	"shapedraw/internal/config"
)

func TestRunStub_ReturnsHelpfulError(t *testing.T) {
	err := Run(config.Defaults())
	if !errors.Is(err, ErrNotBuilt) {
		t.Fatalf("expected ErrNotBuilt from Run() in non-fyne build, got %v", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "UI not built") || !strings.Contains(msg, "-tags fyne") || !strings.Contains(msg, "cmd/shapedraw") {
		t.Fatalf("unexpected error message: %q", msg)
	}
}
