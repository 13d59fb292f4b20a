// Package ui provides shared view components for the TUI.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// DimStyle is applied to background content behind a dialog. Existing
// ANSI codes are stripped first because SGR 2 (faint) does not combine
// reliably with color codes in most terminals.
var DimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))

func dimLine(s string) string {
	return DimStyle.Render(ansi.Strip(s))
}

func maxLineWidth(lines []string) int {
	w := 0
	for _, line := range lines {
		if lw := ansi.StringWidth(line); lw > w {
			w = lw
		}
	}
	return w
}

// overlayRow splices one dialog line into a dimmed background line at
// column startX.
func overlayRow(bgLine, dialogLine string, startX, dialogWidth, totalWidth int) string {
	var b strings.Builder

	stripped := ansi.Strip(bgLine)
	bgWidth := ansi.StringWidth(stripped)

	if startX > 0 {
		left := ansi.Truncate(stripped, startX, "")
		b.WriteString(DimStyle.Render(left))
		if pad := startX - ansi.StringWidth(left); pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
	}

	b.WriteString(dialogLine)

	if right := startX + dialogWidth; right < totalWidth && bgWidth > right {
		b.WriteString(DimStyle.Render(ansi.Cut(stripped, right, bgWidth)))
	}

	return b.String()
}

// OverlayModal centers dialog over a dimmed background of the given
// terminal dimensions.
func OverlayModal(background, dialog string, width, height int) string {
	bgLines := strings.Split(background, "\n")
	dialogLines := strings.Split(dialog, "\n")

	dialogWidth := maxLineWidth(dialogLines)
	startX := (width - dialogWidth) / 2
	startY := (height - len(dialogLines)) / 2
	if startX < 0 {
		startX = 0
	}
	if startY < 0 {
		startY = 0
	}

	rows := make([]string, 0, height)
	for y := 0; y < height; y++ {
		bgLine := ""
		if y < len(bgLines) {
			bgLine = bgLines[y]
		}
		if i := y - startY; i >= 0 && i < len(dialogLines) {
			rows = append(rows, overlayRow(bgLine, dialogLines[i], startX, dialogWidth, width))
		} else {
			rows = append(rows, dimLine(bgLine))
		}
	}

	return strings.Join(rows, "\n")
}
