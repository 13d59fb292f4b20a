package ui

import (
	"strings"
	"testing"
)

func TestMaxLineWidth(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  int
	}{
		{"empty", []string{}, 0},
		{"single", []string{"hello"}, 5},
		{"multiple", []string{"hi", "hello", "hey"}, 5},
		{"with ansi", []string{"\x1b[31mred\x1b[0m"}, 3}, // visual width is 3
		{"empty lines", []string{"", "", ""}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := maxLineWidth(tt.lines); got != tt.want {
				t.Errorf("maxLineWidth() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestOverlayRow(t *testing.T) {
	tests := []struct {
		name       string
		bgLine     string
		dialogLine string
		startX     int
		width      int
		totalWidth int
	}{
		{"basic centered", "background text here", "[DIALOG]", 5, 8, 20},
		{"dialog at left edge", "background", "[D]", 0, 3, 10},
		{"background shorter than dialog position", "hi", "[DIALOG]", 10, 8, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := overlayRow(tt.bgLine, tt.dialogLine, tt.startX, tt.width, tt.totalWidth)
			if !strings.Contains(got, tt.dialogLine) {
				t.Errorf("overlayRow() missing dialog content %q", tt.dialogLine)
			}
		})
	}
}

func TestOverlayModalCenters(t *testing.T) {
	result := OverlayModal("line1\nline2\nline3\nline4\nline5", "[D]", 10, 5)

	lines := strings.Split(result, "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[2], "[D]") {
		t.Error("dialog not centered on middle line")
	}
}

func TestOverlayModalStripsBackgroundANSI(t *testing.T) {
	result := OverlayModal("\x1b[31mred\x1b[0m\n\x1b[32mgreen\x1b[0m", "X", 10, 3)

	if strings.Contains(result, "\x1b[31m") {
		t.Error("original red ANSI code should be stripped")
	}
	if !strings.Contains(result, "X") {
		t.Error("dialog should be present")
	}
}

func TestOverlayModalTallerThanBackground(t *testing.T) {
	result := OverlayModal("a\nb", "DIALOG", 10, 5)

	lines := strings.Split(result, "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}
	if !strings.Contains(result, "DIALOG") {
		t.Error("dialog not found in result")
	}
}

func TestDimLineStripsANSI(t *testing.T) {
	result := dimLine("\x1b[31mred text\x1b[0m")

	if strings.Contains(result, "\x1b[31m") {
		t.Error("dimLine should strip original ANSI codes")
	}
	if !strings.Contains(result, "red text") {
		t.Error("dimLine should preserve text content")
	}
}
