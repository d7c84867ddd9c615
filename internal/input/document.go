package input

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"containment/internal/domain"
)

// Format selects how a problem is encoded.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat maps a user supplied name onto a Format. The empty string
// selects FormatText.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case "":
		return FormatText, nil
	case FormatText, FormatYAML, FormatJSON:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown input format %q", name)
}

// DetectFormat guesses the format from a file name, defaulting to text.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	}
	return FormatText
}

// document is the YAML/JSON shape of a problem. JSON is read through the
// YAML decoder as well.
type document struct {
	Motes   []int   `yaml:"motes"`
	Devices [][]int `yaml:"devices"`
}

// ParseDocument decodes a YAML or JSON problem document.
func ParseDocument(data []byte, limit int) (domain.Problem, error) {
	if limit <= 0 {
		limit = DefaultMaxEntities
	}
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return domain.Problem{}, &InputError{Field: "document", Err: err}
	}
	if err := checkLimits(len(doc.Motes), len(doc.Devices), limit); err != nil {
		return domain.Problem{}, err
	}

	p := domain.Problem{
		Motes:   make([]domain.Mote, len(doc.Motes)),
		Devices: make([]domain.Device, len(doc.Devices)),
	}
	for i, r := range doc.Motes {
		if r < 0 {
			return domain.Problem{}, &InputError{Field: "mote radius", Position: i + 1, Err: ErrNegative}
		}
		p.Motes[i] = domain.Mote{Radius: r}
	}
	for i, dims := range doc.Devices {
		if len(dims) != 3 {
			return domain.Problem{}, &InputError{
				Field:    "device",
				Position: i + 1,
				Err:      fmt.Errorf("want 3 dimensions, got %d", len(dims)),
			}
		}
		for _, v := range dims {
			if v < 0 {
				return domain.Problem{}, &InputError{Field: "device dimension", Position: i + 1, Err: ErrNegative}
			}
		}
		p.Devices[i] = domain.Device{Length: dims[0], Width: dims[1], Height: dims[2]}
	}
	return p, nil
}

// Read decodes a problem from r in format f.
func Read(r io.Reader, f Format, limit int) (domain.Problem, error) {
	switch f {
	case FormatText, "":
		return ParseText(r, limit)
	case FormatYAML, FormatJSON:
		data, err := io.ReadAll(r)
		if err != nil {
			return domain.Problem{}, fmt.Errorf("reading %s input: %w", f, err)
		}
		return ParseDocument(data, limit)
	}
	return domain.Problem{}, fmt.Errorf("unknown input format %q", f)
}
