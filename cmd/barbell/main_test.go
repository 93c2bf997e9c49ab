package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tsawler/barbell/htmldoc"
	"github.com/tsawler/barbell/model"
)

var fixture = filepath.Join("..", "..", "testdata", "championships.html")

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func decodeLines[T any](t *testing.T, out string) []T {
	t.Helper()
	var values []T
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		var v T
		if err := json.Unmarshal(sc.Bytes(), &v); err != nil {
			t.Fatalf("invalid JSON line %q: %v", sc.Text(), err)
		}
		values = append(values, v)
	}
	return values
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestParseCommand(t *testing.T) {
	dir := t.TempDir()
	comp := writeFile(t, dir, "comp.yaml", "name: Mistrzostwa Polski\ndate: \"2024-05-11\"\n")

	out, err := run(t, "parse", fixture, "--competition", comp, "--log-format", "json")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	type line struct {
		Competition string `json:"competition"`
		Date        string `json:"date"`
		URL         string `json:"url"`
		Name        string `json:"name"`
		WeightClass string `json:"weight_class"`
		Snatch      []struct {
			Weight  string `json:"weight"`
			Outcome string `json:"outcome"`
		} `json:"snatch"`
	}
	lines := decodeLines[line](t, out)
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), out)
	}
	first := lines[0]
	if first.Competition != "Mistrzostwa Polski" || first.Date != "2024-05-11" || first.URL != fixture {
		t.Errorf("competition fields = %+v", first)
	}
	if first.Name != "Nowak Adam" || first.WeightClass != "Kategoria 73 kg" {
		t.Errorf("first record = %+v", first)
	}
	if len(first.Snatch) != 3 || first.Snatch[1].Outcome != "unsuccessful" {
		t.Errorf("snatch = %+v", first.Snatch)
	}
}

func TestParseCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no files", []string{"parse"}},
		{"missing file", []string{"parse", "missing.html"}},
		{"bad log format", []string{"parse", fixture, "--log-format", "xml"}},
		{"bad log level", []string{"parse", fixture, "--log-level", "loud"}},
		{"bad navigation", []string{"parse", fixture, "--navigation", "some"}},
		{"missing rules", []string{"parse", fixture, "--config", "missing.yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := run(t, tt.args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestBatchCommand(t *testing.T) {
	dir := t.TempDir()
	abs, err := filepath.Abs(fixture)
	if err != nil {
		t.Fatalf("Abs() failed: %v", err)
	}
	list := writeFile(t, dir, "competitions.yaml", `
competitions:
  - name: Seniors
    url: `+abs+`
  - name: Juniors
`)

	out, err := run(t, "batch", list, "--workers", "2", "--diagnostics")
	if err != nil {
		t.Fatalf("batch failed: %v", err)
	}

	diags := decodeLines[model.Diagnostics](t, out)
	if len(diags) != 2 {
		t.Fatalf("got %d diagnostics, want 2:\n%s", len(diags), out)
	}
	if diags[0].Reason != model.ReasonOK || diags[0].RecordCount != 4 {
		t.Errorf("diags[0] = %+v", diags[0])
	}
	if diags[1].Reason != model.ReasonNoURL {
		t.Errorf("diags[1] = %+v", diags[1])
	}
	if diags[0].RunID == "" || diags[0].RunID != diags[1].RunID {
		t.Errorf("run ids = %q, %q", diags[0].RunID, diags[1].RunID)
	}

	out, err = run(t, "batch", list)
	if err != nil {
		t.Fatalf("batch failed: %v", err)
	}
	if n := strings.Count(out, "\n"); n != 4 {
		t.Errorf("got %d record lines, want 4", n)
	}
}

func TestParseNavigation(t *testing.T) {
	tests := []struct {
		in   string
		want htmldoc.NavigationExclusionMode
	}{
		{"none", htmldoc.NavigationExclusionNone},
		{"Explicit", htmldoc.NavigationExclusionExplicit},
		{"", htmldoc.NavigationExclusionStandard},
		{"aggressive", htmldoc.NavigationExclusionAggressive},
	}

	for _, tt := range tests {
		got, err := parseNavigation(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("parseNavigation(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}
