package config

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/matzehuels/treefixture/pkg/errors"
	"github.com/matzehuels/treefixture/pkg/fixture"
	"github.com/matzehuels/treefixture/pkg/generate"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Output != "fixture.json" {
		t.Errorf("Output = %q, want fixture.json", cfg.Output)
	}
	if got := generate.Count(cfg.Levels); got != 110 {
		t.Errorf("default levels produce %d nodes, want 110", got)
	}
	if got := len(cfg.ColumnList()); got != 55 {
		t.Errorf("len(ColumnList()) = %d, want 55", got)
	}
	if _, ok := cfg.Types["folder"]; !ok {
		t.Error("default types missing folder")
	}
}

func TestParseOverridesLevels(t *testing.T) {
	cfg, unknown, err := Parse(`
output = "out.json"
indent = true

[[levels]]
count = 3
title = "Group {i}"
type = "folder"
`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(unknown) != 0 {
		t.Errorf("unknown = %v, want none", unknown)
	}

	want := []generate.LevelSpec{{Count: 3, Title: "Group {i}", Type: "folder"}}
	if !reflect.DeepEqual(cfg.Levels, want) {
		t.Errorf("Levels = %v, want %v", cfg.Levels, want)
	}
	if cfg.Output != "out.json" || !cfg.Indent {
		t.Errorf("Output = %q, Indent = %v", cfg.Output, cfg.Indent)
	}
	if cfg.StateColumns != fixture.DefaultStateColumns {
		t.Errorf("StateColumns = %d, want default", cfg.StateColumns)
	}
}

func TestParseKeepsDefaultLevels(t *testing.T) {
	cfg, _, err := Parse(`state_columns = 2`)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(cfg.Levels, Default().Levels) {
		t.Errorf("Levels = %v, want defaults", cfg.Levels)
	}
	if got := len(cfg.ColumnList()); got != 7 {
		t.Errorf("len(ColumnList()) = %d, want 7", got)
	}
}

func TestParseTypesMerge(t *testing.T) {
	cfg, _, err := Parse(`
[types.document]
icon = "bi bi-file"
`)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Types["document"].Icon != "bi bi-file" {
		t.Errorf("document icon = %q", cfg.Types["document"].Icon)
	}
	if cfg.Types["folder"].Icon != "bi bi-folder" {
		t.Errorf("folder type lost: %v", cfg.Types)
	}
}

func TestParseColumns(t *testing.T) {
	cfg, _, err := Parse(`
[[columns]]
title = "Name"
id = "*"
width = "150px"
`)
	if err != nil {
		t.Fatal(err)
	}
	want := []fixture.Column{{Title: "Name", ID: "*", Width: "150px"}}
	if !reflect.DeepEqual(cfg.ColumnList(), want) {
		t.Errorf("ColumnList() = %v, want %v", cfg.ColumnList(), want)
	}
}

func TestParseUnknownKeys(t *testing.T) {
	_, unknown, err := Parse(`
ouput = "typo.json"

[[levels]]
count = 1
title = "x"
colour = "red"
`)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"ouput", "levels.colour"}
	if !reflect.DeepEqual(unknown, want) {
		t.Errorf("unknown = %v, want %v", unknown, want)
	}
}

func TestParseInvalid(t *testing.T) {
	_, _, err := Parse(`levels = "not a table"`)
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("Parse() error = %v, want %s", err, errors.ErrCodeInvalidConfig)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture.toml")
	if err := os.WriteFile(path, []byte("keys = true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.Keys {
		t.Error("Keys = false, want true")
	}
}

func TestLoadMissing(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load() error = %v, want %s", err, errors.ErrCodeFileNotFound)
	}
}

func TestWriteRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := Default().Write(&buf); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	cfg, unknown, err := Parse(buf.String())
	if err != nil {
		t.Fatalf("Parse() error = %v\n%s", err, buf.String())
	}
	if len(unknown) != 0 {
		t.Errorf("unknown = %v", unknown)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("round trip = %+v, want %+v", cfg, Default())
	}
}

func TestParseHCL(t *testing.T) {
	cfg, err := ParseHCL("fixture.hcl", []byte(`
output        = "grid.json"
keys          = true
state_columns = 3

level {
  count = 4
  title = "Group {i}"
  type  = "folder"
}

level {
  count = 2
  title = "Item {prefix}"
  type  = "article"
}

type "document" {
  icon = "bi bi-file"
}
`))
	if err != nil {
		t.Fatalf("ParseHCL() error = %v", err)
	}

	want := []generate.LevelSpec{
		{Count: 4, Title: "Group {i}", Type: "folder"},
		{Count: 2, Title: "Item {prefix}", Type: "article"},
	}
	if !reflect.DeepEqual(cfg.Levels, want) {
		t.Errorf("Levels = %v, want %v", cfg.Levels, want)
	}
	if cfg.Output != "grid.json" || !cfg.Keys || cfg.Indent {
		t.Errorf("Output = %q, Keys = %v, Indent = %v", cfg.Output, cfg.Keys, cfg.Indent)
	}
	if got := len(cfg.ColumnList()); got != 8 {
		t.Errorf("len(ColumnList()) = %d, want 8", got)
	}
	if cfg.Types["document"].Icon != "bi bi-file" || cfg.Types["folder"].Icon != "bi bi-folder" {
		t.Errorf("Types = %v", cfg.Types)
	}
}

func TestParseHCLDefaults(t *testing.T) {
	cfg, err := ParseHCL("empty.hcl", nil)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("ParseHCL(empty) = %+v, want defaults", cfg)
	}
}

func TestParseHCLErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"syntax", `level {`},
		{"unknown attribute", `ouput = "typo.json"`},
		{"missing title", "level {\n  count = 1\n}\n"},
		{"wrong type", `state_columns = "many"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseHCL("bad.hcl", []byte(tt.src))
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("ParseHCL() error = %v, want %s", err, errors.ErrCodeInvalidConfig)
			}
		})
	}
}

func TestLoadHCL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture.hcl")
	src := "level {\n  count = 5\n  title = \"{i}\"\n}\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, unknown, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if unknown != nil {
		t.Errorf("unknown = %v, want nil", unknown)
	}
	if got := generate.Count(cfg.Levels); got != 5 {
		t.Errorf("Count = %d, want 5", got)
	}
}
