package engine

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/danieljhkim/irops/internal/aggregate"
	"github.com/danieljhkim/irops/internal/sink"
)

// Format is the rendering of a result.
type Format string

const (
	// FormatText renders one name, or one "name: count", per line.
	FormatText Format = "text"

	// FormatJSON renders a JSON array of names or of name/count objects.
	FormatJSON Format = "json"

	// FormatYAML renders the same structure as FormatJSON in YAML.
	FormatYAML Format = "yaml"
)

// Formats lists the supported formats.
var Formats = []Format{FormatText, FormatJSON, FormatYAML}

// FormatNames returns the supported formats as a comma-separated list.
func FormatNames() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// ParseFormat converts s to a Format. The empty string selects FormatText.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: unknown format %q (want %s)", ErrValidation, s, FormatNames())
	}
}

// render produces the text delivered to the sink.
func render(format Format, mode aggregate.Mode, names []string, entries []aggregate.Entry) (string, error) {
	var v interface{} = names
	if mode == aggregate.ModeCount {
		v = entries
	}

	switch format {
	case FormatText, "":
		if mode == aggregate.ModeCount {
			return sink.Join(aggregate.Lines(entries)), nil
		}
		return sink.Join(names), nil

	case FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to render JSON: %w", err)
		}
		return string(data), nil

	case FormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("failed to render YAML: %w", err)
		}
		return strings.TrimSuffix(string(data), "\n"), nil

	default:
		return "", fmt.Errorf("%w: unknown format %q", ErrValidation, format)
	}
}
