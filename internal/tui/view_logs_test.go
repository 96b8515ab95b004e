package tui

import (
	"strings"
	"testing"
)

func manyLines(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = "line"
	}
	return lines
}

func TestLogState_SetLinesJumpsToBottom(t *testing.T) {
	ls := logState{podName: "my-pod"}
	ls.setLines(manyLines(50), 0, 20)

	if len(ls.lines) != 50 {
		t.Errorf("lines count = %d, want 50", len(ls.lines))
	}
	if ls.offset != 30 {
		t.Errorf("offset after setLines = %d, want 30", ls.offset)
	}
}

func TestLogState_SetLinesKeepsTail(t *testing.T) {
	ls := logState{}
	lines := []string{"a", "b", "c", "d", "e"}
	ls.setLines(lines, 2, 20)

	if len(ls.lines) != 2 || ls.lines[0] != "d" || ls.lines[1] != "e" {
		t.Errorf("lines = %v, want [d e]", ls.lines)
	}
	if ls.offset != 0 {
		t.Errorf("offset = %d, want 0", ls.offset)
	}
}

func TestLogState_ScrollDown(t *testing.T) {
	ls := logState{podName: "test"}
	ls.setLines(manyLines(50), 0, 100)

	viewHeight := 20

	ls.scrollDown(10, viewHeight)
	if ls.offset != 10 {
		t.Errorf("offset after scrollDown(10) = %d, want 10", ls.offset)
	}

	// Scroll down beyond max
	ls.scrollDown(100, viewHeight)
	if ls.offset != 30 {
		t.Errorf("offset after overscroll = %d, want 30", ls.offset)
	}

	// viewHeight > lines clamps to 0
	ls.setLines([]string{"one", "two", "three"}, 0, 100)
	ls.scrollDown(10, 100)
	if ls.offset != 0 {
		t.Errorf("offset when viewHeight > lines = %d, want 0", ls.offset)
	}
}

func TestLogState_ScrollUp(t *testing.T) {
	ls := logState{offset: 20}

	ls.scrollUp(5)
	if ls.offset != 15 {
		t.Errorf("offset after scrollUp(5) = %d, want 15", ls.offset)
	}

	ls.scrollUp(100)
	if ls.offset != 0 {
		t.Errorf("offset after overscroll up = %d, want 0", ls.offset)
	}
}

func TestRenderLogs_Empty(t *testing.T) {
	ls := logState{podName: "test"}
	output := renderLogs(&ls, 80, 20)
	if !strings.Contains(output, "No logs available") {
		t.Errorf("renderLogs(empty) = %q", output)
	}
}

func TestRenderLogs_Header(t *testing.T) {
	ls := logState{podName: "web-1", containerName: "app", previous: true}
	ls.setLines([]string{"hello"}, 0, 20)

	output := renderLogs(&ls, 80, 20)
	if !strings.Contains(output, "web-1/app (previous)") {
		t.Errorf("header missing pod/container/mode: %q", output)
	}
}

func TestRenderLogs_Wrap(t *testing.T) {
	ls := logState{podName: "test", wrap: true}
	ls.setLines([]string{strings.Repeat("x", 200)}, 0, 20)

	output := renderLogs(&ls, 82, 20)
	// header + 200/80 -> 3 visual lines
	if got := strings.Count(output, "\n"); got != 4 {
		t.Errorf("wrapped output has %d lines, want 4", got)
	}
}

func TestColorizeLine_KeepsText(t *testing.T) {
	line := "2024-01-01T10:00:00 ERROR GET /api 500"
	got := colorizeLine(line)
	for _, part := range []string{"ERROR", "GET", "/api", "500"} {
		if !strings.Contains(got, part) {
			t.Errorf("colorizeLine dropped %q: %q", part, got)
		}
	}
}

func TestLogHelpKeys(t *testing.T) {
	if got := logHelpKeys(false, true); !strings.Contains(got, "w:nowrap") {
		t.Errorf("logHelpKeys(wrap) = %q, want w:nowrap", got)
	}
	if got := logHelpKeys(true, false); !strings.Contains(got, "[previous]") {
		t.Errorf("logHelpKeys(previous) = %q, want [previous]", got)
	}
}

func TestColorizeLine_NoMatchUnchanged(t *testing.T) {
	line := "plain text without markers"
	if got := colorizeLine(line); got != line {
		t.Errorf("colorizeLine(%q) = %q", line, got)
	}
}

func TestWrapRunes(t *testing.T) {
	tests := []struct {
		line  string
		width int
		want  []string
	}{
		{"", 5, []string{""}},
		{"abc", 5, []string{"abc"}},
		{"abcdefgh", 3, []string{"abc", "def", "gh"}},
		{"ééééé", 2, []string{"éé", "éé", "é"}},
	}
	for _, tt := range tests {
		got := wrapRunes(tt.line, tt.width)
		if strings.Join(got, "|") != strings.Join(tt.want, "|") {
			t.Errorf("wrapRunes(%q, %d) = %q, want %q", tt.line, tt.width, got, tt.want)
		}
	}
}
