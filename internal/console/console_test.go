package console

import (
	"bytes"
	"strings"
	"testing"
)

func TestConsole_LevelFiltering(t *testing.T) {
	tests := []struct {
		level      string
		wantDebug  bool
		wantInfo   bool
		wantWarn   bool
		wantError  bool
	}{
		{level: "debug", wantDebug: true, wantInfo: true, wantWarn: true, wantError: true},
		{level: "info", wantInfo: true, wantWarn: true, wantError: true},
		{level: "warn", wantWarn: true, wantError: true},
		{level: "error", wantError: true},
		{level: "", wantInfo: true, wantWarn: true, wantError: true},       // default
		{level: "bogus", wantInfo: true, wantWarn: true, wantError: true}, // unknown falls back to info
	}

	for _, tt := range tests {
		t.Run("level "+tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			c := New(&buf, tt.level)

			c.Debug("debug message")
			c.Info("info message")
			c.Warn("warn message")
			c.Error("error message")

			out := buf.String()
			checks := []struct {
				msg  string
				want bool
			}{
				{"debug message", tt.wantDebug},
				{"info message", tt.wantInfo},
				{"warn message", tt.wantWarn},
				{"error message", tt.wantError},
			}
			for _, check := range checks {
				if got := strings.Contains(out, check.msg); got != check.want {
					t.Errorf("level %q: contains %q = %v, want %v", tt.level, check.msg, got, check.want)
				}
			}
		})
	}
}

func TestConsole_PrintAndSuccessIgnoreLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, "error")

	c.Print("plain %s", "output")
	c.Success("all done")

	out := buf.String()
	if !strings.Contains(out, "plain output") {
		t.Errorf("Print output missing: %q", out)
	}
	if !strings.Contains(out, "all done") {
		t.Errorf("Success output missing: %q", out)
	}
}

func TestConsole_NoColorForNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, "info")

	c.Error("plain red")
	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("buffer writer should not receive ANSI escapes: %q", buf.String())
	}
}

func TestConsole_JSON(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, "info")

	if err := c.JSON(map[string]int{"iad": 2}); err != nil {
		t.Fatalf("JSON failed: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != `{"iad":2}` {
		t.Errorf("JSON output = %q", got)
	}
}
