package console

import (
	"strings"
	"testing"
)

func TestRenderStripsTagsWithoutColor(t *testing.T) {
	r := NewRenderer(ColorNever)

	got := r.Render("[green]GUI: :white_check_mark:[/green]")
	want := "GUI: ✔"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderAppliesColor(t *testing.T) {
	r := NewRenderer(ColorAlways)

	got := r.Render("[red]:cross_mark:[/red]")
	if !strings.Contains(got, "\x1b[31m") {
		t.Errorf("Render() = %q, missing red escape", got)
	}
	if !strings.Contains(got, "\x1b[39m") {
		t.Errorf("Render() = %q, missing foreground reset", got)
	}
	if !strings.Contains(got, "✘") {
		t.Errorf("Render() = %q, icon token not resolved", got)
	}
}

func TestRenderDropsUnknownTags(t *testing.T) {
	for _, mode := range []string{ColorAlways, ColorNever} {
		r := NewRenderer(mode)
		if got := r.Render("[bold]text[/bold]"); got != "text" {
			t.Errorf("Render() in %s mode = %q, want %q", mode, got, "text")
		}
	}
}

func TestRenderLeavesContentAlone(t *testing.T) {
	r := NewRenderer(ColorNever)

	const line = "/dev/snd→/dev/snd"
	if got := r.Render(line); got != line {
		t.Errorf("Render() = %q, want %q", got, line)
	}
}

func TestStateColor(t *testing.T) {
	tests := []struct {
		enabled   bool
		wantOpen  string
		wantClose string
	}{
		{true, "[green]", "[/green]"},
		{false, "[orange3]", "[/orange3]"},
	}

	for _, tt := range tests {
		open, closing := StateColor(tt.enabled)
		if open != tt.wantOpen || closing != tt.wantClose {
			t.Errorf("StateColor(%v) = %q, %q, want %q, %q",
				tt.enabled, open, closing, tt.wantOpen, tt.wantClose)
		}
	}
}

func TestBool(t *testing.T) {
	if got := Bool(true); got != IconCheck {
		t.Errorf("Bool(true) = %q, want %q", got, IconCheck)
	}
	if got := Bool(false); got != "[red]"+IconCross+"[/red]" {
		t.Errorf("Bool(false) = %q", got)
	}
}
