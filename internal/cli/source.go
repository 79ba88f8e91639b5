package cli

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/treefixture/pkg/config"
	"github.com/matzehuels/treefixture/pkg/errors"
	"github.com/matzehuels/treefixture/pkg/generate"
)

// sourceOpts holds the flags that select which tree a command works on.
// Flags override the config file, which overrides the defaults.
type sourceOpts struct {
	configPath   string   // TOML config file (defaults if empty)
	levels       []string // --level values, replace configured levels
	stateColumns int      // number of checkbox state columns
	keys         bool     // add deterministic node keys
}

// addSourceFlags registers the shared source flags on cmd.
func addSourceFlags(cmd *cobra.Command, opts *sourceOpts) {
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "config file (.toml or .hcl)")
	cmd.Flags().StringArrayVarP(&opts.levels, "level", "l", nil, `tree level as COUNT:TYPE:TITLE, repeatable (e.g. "10:folder:Node {i}")`)
	cmd.Flags().IntVar(&opts.stateColumns, "state-columns", 0, "number of checkbox state columns")
	cmd.Flags().BoolVar(&opts.keys, "keys", false, "add deterministic node keys")
}

// load resolves the effective config for cmd.
func (o *sourceOpts) load(cmd *cobra.Command, logger *log.Logger) (*config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		loaded, unknown, err := config.Load(o.configPath)
		if err != nil {
			return nil, err
		}
		for _, k := range unknown {
			logger.Warn("unknown config key", "key", k, "file", o.configPath)
		}
		cfg = loaded
	}

	if len(o.levels) > 0 {
		levels, err := parseLevels(o.levels)
		if err != nil {
			return nil, err
		}
		cfg.Levels = levels
	}
	if cmd.Flags().Changed("state-columns") {
		cfg.StateColumns = o.stateColumns
	}
	if cmd.Flags().Changed("keys") {
		cfg.Keys = o.keys
	}
	return cfg, nil
}

func parseLevels(values []string) ([]generate.LevelSpec, error) {
	levels := make([]generate.LevelSpec, 0, len(values))
	for _, v := range values {
		spec, err := parseLevel(v)
		if err != nil {
			return nil, err
		}
		levels = append(levels, spec)
	}
	return levels, nil
}

// parseLevel parses "COUNT:TYPE:TITLE". The title is everything after the
// second colon, so it may itself contain colons.
func parseLevel(s string) (generate.LevelSpec, error) {
	parts := strings.SplitN(s, ":", 3)
	if len(parts) != 3 {
		return generate.LevelSpec{}, errors.New(errors.ErrCodeInvalidConfig, "level %q: want COUNT:TYPE:TITLE", s)
	}
	count, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return generate.LevelSpec{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "level %q: count", s)
	}
	return generate.LevelSpec{
		Count: count,
		Type:  strings.TrimSpace(parts[1]),
		Title: parts[2],
	}, nil
}
