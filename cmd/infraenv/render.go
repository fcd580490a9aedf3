package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/animalet/infraenv/pkg/config"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	formatEnv  = "env"
	formatJSON = "json"
	formatYAML = "yaml"
	formatTOML = "toml"
)

// render writes every published value of cfg to w. The env format keeps the
// declaration order with PREFIX last; the structured formats sort keys.
func render(w io.Writer, cfg config.Config, format string) error {
	switch format {
	case formatEnv:
		for _, k := range config.Names() {
			if _, err := fmt.Fprintf(w, "%s=%s\n", k, cfg.Get(k)); err != nil {
				return errors.Wrap(err, "failed to write output")
			}
		}
		return nil
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(cfg.Values()), "failed to encode JSON")
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg.Values()); err != nil {
			return errors.Wrap(err, "failed to encode YAML")
		}
		return errors.Wrap(enc.Close(), "failed to encode YAML")
	case formatTOML:
		return errors.Wrap(toml.NewEncoder(w).Encode(cfg.Values()), "failed to encode TOML")
	default:
		return errors.Errorf("unsupported format %q", format)
	}
}
