package ui

import (
	"strings"
	"testing"
)

func TestNewConfirmDialogDefaults(t *testing.T) {
	d := NewConfirmDialog("Delete note?", "This cannot be undone.")

	if d.Title != "Delete note?" || d.Message != "This cannot be undone." {
		t.Errorf("dialog = %+v", d)
	}
	if d.ConfirmLabel != " Confirm " || d.CancelLabel != " Cancel " {
		t.Errorf("labels = %q, %q", d.ConfirmLabel, d.CancelLabel)
	}
	if d.ConfirmSelected() {
		t.Error("confirm should not be the initial selection")
	}
}

func TestConfirmDialogButtonSwitching(t *testing.T) {
	d := NewConfirmDialog("t", "m")

	d.HandleCommand("switch-button")
	if !d.ConfirmSelected() {
		t.Fatal("switch did not move to confirm")
	}

	done, confirmed := d.HandleCommand("select")
	if !done || !confirmed {
		t.Errorf("select on confirm = done %v, confirmed %v", done, confirmed)
	}
}

func TestConfirmDialogSelectCancel(t *testing.T) {
	d := NewConfirmDialog("t", "m")

	done, confirmed := d.HandleCommand("select")
	if !done || confirmed {
		t.Errorf("select on cancel = done %v, confirmed %v", done, confirmed)
	}
}

func TestConfirmDialogEscapeCancels(t *testing.T) {
	d := NewConfirmDialog("t", "m")
	d.HandleCommand("switch-button")

	done, confirmed := d.HandleCommand("cancel")
	if !done || confirmed {
		t.Errorf("cancel = done %v, confirmed %v", done, confirmed)
	}
}

func TestConfirmDialogIgnoresUnknownCommands(t *testing.T) {
	d := NewConfirmDialog("t", "m")

	done, _ := d.HandleCommand("scroll-down")
	if done {
		t.Error("unknown command closed the dialog")
	}
}

func TestConfirmDialogView(t *testing.T) {
	d := NewConfirmDialog("Delete note?", "Gone for good.")
	d.ConfirmLabel = " Delete "

	out := d.View()
	for _, want := range []string{"Delete note?", "Gone for good.", "Delete", "Cancel"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
