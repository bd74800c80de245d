// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultOutputPath(t *testing.T) {
	tests := []struct {
		input string
		name  string
		want  string
	}{
		{"report.csv", "report.csv", "report.md"},
		{"docs/report.csv", "report.csv", "docs/report.md"},
		{"notes", "notes", "notes.md"},
		{"https://example.com/a/b.xlsx?dl=1", "b.xlsx", "b.md"},
	}
	for _, tt := range tests {
		if got := defaultOutputPath(tt.input, tt.name); got != tt.want {
			t.Errorf("defaultOutputPath(%q, %q) = %q, want %q", tt.input, tt.name, got, tt.want)
		}
	}
}

func TestConvertCommand_SaveDerivesOutput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "people.csv")
	if err := os.WriteFile(input, []byte("Name,Age\nAlice,30\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"convert", "--save", input})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("convert --save: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dir, "people.md"))
	if err != nil {
		t.Fatalf("derived output file not written: %v", err)
	}
	if !strings.Contains(string(got), "| Name | Age |") {
		t.Errorf("output %q should contain the rendered table header", got)
	}
	if out.Len() != 0 {
		t.Errorf("stdout should stay empty when writing to a file, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "people.md") {
		t.Errorf("status line %q should name the derived output", errOut.String())
	}
}
