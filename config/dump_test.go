package config

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestDump_Text(t *testing.T) {
	cfg, err := New(map[string]any{
		"name":   "demo",
		"vmtype": "c1m1",
	}, "")
	if err != nil {
		t.Fatalf("construct config: %v", err)
	}

	var buf bytes.Buffer
	if err := Dump(&buf, cfg); err != nil {
		t.Fatalf("Dump failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"name = demo",
		"vmtype = c1m1",
		"envfile = .env",
		"regions = <unset>",
		"hostname = <unset>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump output should contain %q, got:\n%s", want, out)
		}
	}

	// Fields appear in declaration order.
	if strings.Index(out, "name =") > strings.Index(out, "vmtype =") {
		t.Errorf("fields out of declaration order:\n%s", out)
	}
}

func TestDump_JSON(t *testing.T) {
	cfg, err := New(map[string]any{
		"name":    "demo",
		"regions": map[string]any{"iad": 2},
	}, "")
	if err != nil {
		t.Fatalf("construct config: %v", err)
	}

	var buf bytes.Buffer
	if err := Dump(&buf, cfg, AsJSON(), WithIndent("    ")); err != nil {
		t.Fatalf("Dump failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("dump output is not valid JSON: %v\n%s", err, buf.String())
	}

	if decoded["name"] != "demo" {
		t.Errorf("expected name %q, got %v", "demo", decoded["name"])
	}
	if _, ok := decoded["vmtype"]; ok {
		t.Error("unset optionals should be omitted from JSON output")
	}
	regions, ok := decoded["regions"].(map[string]any)
	if !ok || regions["iad"] != float64(2) {
		t.Errorf("regions encoded incorrectly: %v", decoded["regions"])
	}
}

func TestDump_NilConfig(t *testing.T) {
	var buf bytes.Buffer
	if err := Dump(&buf, nil); err == nil {
		t.Error("expected error for nil config")
	}
}
