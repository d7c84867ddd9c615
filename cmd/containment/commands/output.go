package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const (
	outputPlain = "plain"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

// printValue writes v as indented JSON or YAML.
func printValue(w io.Writer, format string, v any) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown output format %q", format)
}

// printVolume writes the uncontained volume with six decimals.
func printVolume(w io.Writer, v float64) error {
	_, err := fmt.Fprintf(w, "%.6f\n", v)
	return err
}
