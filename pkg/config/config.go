// Package config loads fixture settings from TOML or HCL files.
//
// A config lists the tree levels, the number of checkbox state columns, the
// type styles and where to write the result. Fields left out of the file keep
// the values from [Default], which reproduces the stock 10×10 fixture:
//
//	output = "fixture.json"
//	state_columns = 50
//
//	[[levels]]
//	count = 10
//	title = "Node {i}"
//	type = "folder"
//
//	[[levels]]
//	count = 10
//	title = "Node {prefix}"
//	type = "article"
//
//	[types.folder]
//	icon = "bi bi-folder"
//	classes = "classo"
package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/treefixture/pkg/errors"
	"github.com/matzehuels/treefixture/pkg/fixture"
	"github.com/matzehuels/treefixture/pkg/generate"
)

// DefaultOutput is the file written when no output is configured.
const DefaultOutput = "fixture.json"

// Config holds everything needed to produce one fixture.
type Config struct {
	Output       string                      `toml:"output"`
	Indent       bool                        `toml:"indent"`
	Keys         bool                        `toml:"keys"`
	StateColumns int                         `toml:"state_columns"`
	Levels       []generate.LevelSpec        `toml:"levels"`
	Columns      []fixture.Column            `toml:"columns,omitempty"`
	Types        map[string]fixture.TypeInfo `toml:"types"`
}

// Default returns the stock fixture configuration.
func Default() *Config {
	return &Config{
		Output:       DefaultOutput,
		StateColumns: fixture.DefaultStateColumns,
		Levels: []generate.LevelSpec{
			{Count: 10, Title: "Node {i}", Type: "folder"},
			{Count: 10, Title: "Node {prefix}", Type: "article"},
		},
		Types: fixture.DefaultTypes(),
	}
}

// Load reads a config from path on top of [Default]. Files ending in .hcl
// are decoded with [ParseHCL]; anything else is TOML. For TOML it also
// returns the keys present in the file that no field consumed, so callers
// can warn about typos.
//
// A [[levels]] array in the file replaces the default levels entirely, and
// [[columns]] replaces the generated column list.
func Load(path string) (*Config, []string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
	}
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeIO, err, "read %s", path)
	}

	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		cfg, err := ParseHCL(path, data)
		return cfg, nil, err
	}
	return Parse(string(data))
}

// Parse decodes TOML text on top of [Default]. See [Load].
func Parse(data string) (*Config, []string, error) {
	cfg := Default()
	cfg.Levels = nil

	md, err := toml.Decode(data, cfg)
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	if !md.IsDefined("levels") {
		cfg.Levels = Default().Levels
	}

	var unknown []string
	for _, k := range md.Undecoded() {
		unknown = append(unknown, k.String())
	}
	return cfg, unknown, nil
}

// ColumnList returns the configured columns, or the default columns with
// StateColumns checkbox columns when none are configured.
func (c *Config) ColumnList() []fixture.Column {
	if len(c.Columns) > 0 {
		return c.Columns
	}
	return fixture.DefaultColumns(c.StateColumns)
}

// Write encodes the config as TOML.
func (c *Config) Write(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "encode config")
	}
	return nil
}
