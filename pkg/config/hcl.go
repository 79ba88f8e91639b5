package config

import (
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/matzehuels/treefixture/pkg/errors"
	"github.com/matzehuels/treefixture/pkg/fixture"
	"github.com/matzehuels/treefixture/pkg/generate"
)

// hclFile is the top-level structure of an HCL config for decoding.
// Optional attributes are pointers so that absent ones keep their defaults.
//
//	output        = "fixture.json"
//	state_columns = 50
//
//	level {
//	  count = 10
//	  title = "Node {i}"
//	  type  = "folder"
//	}
//
//	type "folder" {
//	  icon    = "bi bi-folder"
//	  classes = "classo"
//	}
type hclFile struct {
	Output       *string     `hcl:"output,optional"`
	Indent       *bool       `hcl:"indent,optional"`
	Keys         *bool       `hcl:"keys,optional"`
	StateColumns *int        `hcl:"state_columns,optional"`
	Levels       []hclLevel  `hcl:"level,block"`
	Columns      []hclColumn `hcl:"column,block"`
	Types        []hclType   `hcl:"type,block"`
}

type hclLevel struct {
	Count int    `hcl:"count"`
	Title string `hcl:"title"`
	Type  string `hcl:"type,optional"`
}

type hclColumn struct {
	Title   string `hcl:"title"`
	ID      string `hcl:"id"`
	Width   string `hcl:"width"`
	Classes string `hcl:"classes,optional"`
	HTML    string `hcl:"html,optional"`
}

type hclType struct {
	Name    string `hcl:"name,label"`
	Icon    string `hcl:"icon"`
	Classes string `hcl:"classes,optional"`
}

// ParseHCL decodes HCL source on top of [Default]. filename is only used in
// diagnostics. Unlike TOML, unknown attributes and blocks are decode errors.
//
// Level blocks replace the default levels, column blocks replace the
// generated columns, and type blocks are merged over the default types.
func ParseHCL(filename string, src []byte) (*Config, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, diags, "parse %s", filename)
	}

	var parsed hclFile
	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, diags, "decode %s", filename)
	}

	cfg := Default()
	if parsed.Output != nil {
		cfg.Output = *parsed.Output
	}
	if parsed.Indent != nil {
		cfg.Indent = *parsed.Indent
	}
	if parsed.Keys != nil {
		cfg.Keys = *parsed.Keys
	}
	if parsed.StateColumns != nil {
		cfg.StateColumns = *parsed.StateColumns
	}

	if len(parsed.Levels) > 0 {
		cfg.Levels = make([]generate.LevelSpec, len(parsed.Levels))
		for i, l := range parsed.Levels {
			cfg.Levels[i] = generate.LevelSpec{Count: l.Count, Title: l.Title, Type: l.Type}
		}
	}
	for _, c := range parsed.Columns {
		cfg.Columns = append(cfg.Columns, fixture.Column{
			Title:   c.Title,
			ID:      c.ID,
			Width:   c.Width,
			Classes: c.Classes,
			HTML:    c.HTML,
		})
	}
	for _, t := range parsed.Types {
		cfg.Types[t.Name] = fixture.TypeInfo{Icon: t.Icon, Classes: t.Classes}
	}
	return cfg, nil
}
