package configs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.cue")
	if err := os.WriteFile(path, []byte(`
sim: {
	maxSteps: 100
	tap: "trace.star"
}
`), 0644); err != nil {
		t.Fatal(err)
	}

	loader := NewLoader([]string{path}, simSchema)

	t.Run("first", func(t *testing.T) {
		config := First[SimConfig](loader, "sim")
		if config.MaxSteps != 100 {
			t.Fatalf("got %d", config.MaxSteps)
		}
		if config.Tap != "trace.star" {
			t.Fatalf("got %s", config.Tap)
		}
	})

	t.Run("missing value", func(t *testing.T) {
		type Unknown struct {
			Foo string `json:"foo"`
		}
		value := First[Unknown](loader, "nonexistent")
		if value.Foo != "" {
			t.Fatal()
		}
	})

	t.Run("all", func(t *testing.T) {
		var configs []SimConfig
		for config := range All[SimConfig](loader, "sim") {
			configs = append(configs, config)
		}
		if len(configs) != 1 {
			t.Fatalf("got %d", len(configs))
		}
	})
}

func TestLoaderSchemaViolation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.cue")
	if err := os.WriteFile(path, []byte(`
sim: {
	maxSteps: -1
}
`), 0644); err != nil {
		t.Fatal(err)
	}

	loader := NewLoader([]string{path}, simSchema)
	err := loader.AssignFirst("sim", new(SimConfig))
	if err == nil {
		t.Fatal("expected schema violation")
	}
}

func TestLoaderMissingFile(t *testing.T) {
	loader := NewLoader([]string{"/nonexistent/config.cue"}, "")
	err := loader.AssignFirst("sim", new(SimConfig))
	if err == nil || !strings.Contains(err.Error(), "no such file") {
		t.Fatalf("got %v", err)
	}
}

func TestEmptyLoader(t *testing.T) {
	loader := NewLoader(nil, simSchema)
	config := First[SimConfig](loader, "sim")
	if config.MaxSteps != 0 || config.Tap != "" {
		t.Fatal()
	}
}
