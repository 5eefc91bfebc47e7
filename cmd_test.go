package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestListCommandSortsByDate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.yaml")
	content := "projects:\n" +
		"  - {id: old, title: Old, date: 2020-01-01, role: Lead, ecosystem: Go}\n" +
		"  - {id: new, title: New, date: 2022-06-01, role: Lead, ecosystem: Go}\n" +
		"  - {id: older, title: Older, date: 2019-06-01, role: Lead, ecosystem: Go}\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"list", "--catalog", path, "--sort", "date", "--debug", "--config", writeEmptyConfig(t)})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %q", out.String())
	}
	for i, want := range []string{"2022-06-01", "2020-01-01", "2019-06-01"} {
		if !strings.HasPrefix(lines[i], want) {
			t.Fatalf("line %d = %q, want prefix %s", i, lines[i], want)
		}
	}
}

func TestListCommandRejectsUnknownSort(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"list", "--sort", "stars", "--config", writeEmptyConfig(t)})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected unknown sort to fail")
	}
}

func writeEmptyConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "folio.yaml")
	if err := os.WriteFile(path, []byte("{}\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
