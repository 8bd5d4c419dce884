package state

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestParseScriptErrors(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   string
	}{
		{"unknown tool", "tool ellipse", "unknown tool"},
		{"tool without name", "tool", "expected"},
		{"unknown event", "click 1 2", "unknown pointer event"},
		{"missing y", "down 1", "expected"},
		{"bad number", "down 1 abc", "bad y"},
		{"not finite", "move NaN 3", "not a finite number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScript(strings.NewReader(tt.script), ToolSelection)
			if err == nil {
				t.Fatalf("expected error for %q", tt.script)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
			if !strings.Contains(err.Error(), "line 1") {
				t.Errorf("error %q should carry the line number", err)
			}
		})
	}
}

func TestParseTool(t *testing.T) {
	for _, name := range []string{"selection", "Line", " rectangle "} {
		if _, err := ParseTool(name); err != nil {
			t.Errorf("ParseTool(%q): %v", name, err)
		}
	}
	tool, _ := ParseTool("rectangle")
	if k, ok := tool.Kind(); !ok || k != KindRectangle {
		t.Errorf("rectangle tool should draw rectangles")
	}
	if _, ok := ToolSelection.Kind(); ok {
		t.Errorf("selection tool draws nothing")
	}
}

func TestSessionID(t *testing.T) {
	id := NewSessionID()
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("session id %q is not a uuid: %v", id, err)
	}
	if id == NewSessionID() {
		t.Errorf("session ids should differ")
	}
	if got := ShortSession(id); len(got) != 8 || !strings.HasPrefix(id, got) {
		t.Errorf("unexpected short session %q", got)
	}
	if ShortSession("abc") != "abc" {
		t.Errorf("short ids are kept as is")
	}
}
