package wire

import (
	"errors"
	"fmt"
	"io"

	"github.com/soypat/sat"
	"gopkg.in/yaml.v3"
)

// LoadConfig reads a YAML tester configuration from r. Fields missing from
// the document keep their sat.DefaultConfig values; an empty document
// yields the default configuration. Unknown fields are rejected.
func LoadConfig(r io.Reader) (sat.Config, error) {
	return LoadConfigOver(r, sat.DefaultConfig())
}

// LoadConfigOver is like LoadConfig but fields missing from the document
// keep their values in base.
func LoadConfigOver(r io.Reader, base sat.Config) (sat.Config, error) {
	cfg := base
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return sat.Config{}, fmt.Errorf("wire: loading config: %w", err)
	}
	if err := cfg.Check(); err != nil {
		return sat.Config{}, fmt.Errorf("wire: invalid config: %w", err)
	}
	return cfg, nil
}
