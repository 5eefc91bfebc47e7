package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDefaultCatalogLoads(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	if c.Len() < 3 {
		t.Fatalf("expected a few embedded projects, got %d", c.Len())
	}
	it, ok := c.Item("poolpulse")
	if !ok {
		t.Fatal("expected poolpulse in embedded catalog")
	}
	if !it.Date.Equal(day("2024-02-15")) {
		t.Fatalf("poolpulse date = %v, want 2024-02-15", it.Date)
	}
	if len(it.Gallery) != 2 {
		t.Fatalf("poolpulse gallery = %v, want 2 images", it.Gallery)
	}
}

func TestNewRejectsBadItems(t *testing.T) {
	tests := []struct {
		name  string
		items []Item
		want  error
	}{
		{"empty", nil, ErrEmpty},
		{"no id", []Item{{ID: "  ", Date: day("2020-01-01")}}, ErrEmptyID},
		{"dup", []Item{{ID: "a", Date: day("2020-01-01")}, {ID: "a", Date: day("2021-01-01")}}, ErrDuplicateID},
		{"no date", []Item{{ID: "a"}}, ErrNoDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.items); !errors.Is(err, tt.want) {
				t.Fatalf("New() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNewCopiesAndIndexes(t *testing.T) {
	items := []Item{{ID: "a", Date: day("2020-01-01")}, {ID: "b", Title: "Bee", Date: day("2021-01-01")}}
	c, err := New(items)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	items[0].ID = "mutated"

	if c.Index("a") != 0 || c.Index("b") != 1 || c.Index("zzz") != -1 {
		t.Fatalf("unexpected indexes a=%d b=%d zzz=%d", c.Index("a"), c.Index("b"), c.Index("zzz"))
	}
	if it, _ := c.Item("a"); it.Title != "a" {
		t.Fatalf("expected title to default to id, got %q", it.Title)
	}
	got := c.Items()
	got[1].Title = "changed"
	if it, _ := c.Item("b"); it.Title != "Bee" {
		t.Fatalf("Items() leaked internal storage, title now %q", it.Title)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.yaml")
	content := "projects:\n  - id: one\n    date: 2020-01-01\n    role: Lead\n  - id: two\n    date: 2022-06-01\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Len() != 2 || !c.Has("two") {
		t.Fatalf("unexpected catalog: %+v", c.Items())
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.yaml")
	if err := os.WriteFile(path, []byte("projects: [:"), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected decode error")
	}
}
