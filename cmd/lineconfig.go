package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/linesim/linesim/sim"
)

// LoadLineConfig reads a line definition from path, layered over the built-in
// bottling line. Keys absent from the file keep their default values.
// Unknown keys are errors so typos surface.
func LoadLineConfig(path string) (sim.LineConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return sim.LineConfig{}, fmt.Errorf("read line config: %w", err)
	}
	cfg, err := decodeLineConfig(bytes.NewReader(data), sim.DefaultLineConfig())
	if err != nil {
		return sim.LineConfig{}, fmt.Errorf("parse line config %s: %w", path, err)
	}
	return cfg, nil
}

func decodeLineConfig(r io.Reader, base sim.LineConfig) (sim.LineConfig, error) {
	cfg := base
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return sim.LineConfig{}, err
	}
	return cfg, nil
}

// writeLineConfig renders cfg as YAML in the format LoadLineConfig accepts.
func writeLineConfig(w io.Writer, cfg sim.LineConfig) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}
