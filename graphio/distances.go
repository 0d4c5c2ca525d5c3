package graphio

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// OutputFormat selects how WriteDistances renders a result.
type OutputFormat string

const (
	// OutputText prints "[0, 7, 3, 9, 5]", unreachable as "inf".
	OutputText OutputFormat = "text"
	// OutputJSON prints {"source":0,"distances":[0,7,null]}.
	OutputJSON OutputFormat = "json"
	// OutputYAML prints the same structure as OutputJSON in YAML.
	OutputYAML OutputFormat = "yaml"
)

// ParseOutputFormat validates a user-supplied format name.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case OutputText, OutputJSON, OutputYAML:
		return f, nil
	default:
		return "", fmt.Errorf("graphio: output format %q not one of text|json|yaml: %w", s, ErrBadDocument)
	}
}

// distanceReport is the structured form; nil marks an unreachable vertex.
type distanceReport struct {
	Source    int      `json:"source" yaml:"source"`
	Distances []*int64 `json:"distances" yaml:"distances"`
}

// WriteDistances renders dist. Entries equal to math.MaxInt64 are unreachable.
func WriteDistances(w io.Writer, format OutputFormat, source int, dist []int64) error {
	switch format {
	case OutputText:
		parts := make([]string, len(dist))
		for i, d := range dist {
			if d == math.MaxInt64 {
				parts[i] = "inf"
				continue
			}
			parts[i] = strconv.FormatInt(d, 10)
		}
		_, err := fmt.Fprintf(w, "[%s]\n", strings.Join(parts, ", "))
		return err
	case OutputJSON, OutputYAML:
		rep := distanceReport{Source: source, Distances: make([]*int64, len(dist))}
		for i := range dist {
			if dist[i] != math.MaxInt64 {
				d := dist[i]
				rep.Distances[i] = &d
			}
		}
		if format == OutputJSON {
			return json.NewEncoder(w).Encode(rep)
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("graphio: output format %q: %w", string(format), ErrBadDocument)
	}
}
