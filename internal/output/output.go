package output

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mj1618/locator-cli/internal/locator"
	"github.com/mj1618/locator-cli/internal/model"
)

// Format represents the output format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// OutputFormat is the current output format, set by the root command's --format flag.
var OutputFormat Format = FormatYAML

// PrettyOutput enables pretty-printing for JSON output.
var PrettyOutput bool

// SnapshotStats is the top-level output of the `snapshot` command.
type SnapshotStats struct {
	Nodes    int   `yaml:"nodes"     json:"nodes"`
	MaxLevel int   `yaml:"max_level" json:"max_level"`
	BuildMS  int64 `yaml:"build_ms"  json:"build_ms"`
}

// LocateResult is the top-level output of the `locate` command.
type LocateResult struct {
	Locator string           `yaml:"locator" json:"locator"`
	Node    model.NodeRecord `yaml:"node"    json:"node"`
}

// EvalResult is the top-level output of the `eval` command.
type EvalResult struct {
	Locator string          `yaml:"locator" json:"locator"`
	Count   int             `yaml:"count"   json:"count"`
	Matches []locator.Match `yaml:"matches" json:"matches"`
}

// ResolveResult is the top-level output of the `resolve` command.
type ResolveResult struct {
	Name    string       `yaml:"name,omitempty" json:"name,omitempty"`
	Locator string       `yaml:"locator"        json:"locator"`
	RtID    string       `yaml:"rtid"           json:"rtid"`
	Handle  model.Handle `yaml:"handle,omitempty" json:"handle,omitempty"`
	Bounds  model.Rect   `yaml:"bounds"         json:"bounds"`
}

// Print serializes v to stdout in the current output format.
func Print(v interface{}) error {
	switch OutputFormat {
	case FormatJSON:
		if PrettyOutput {
			return PrintPrettyJSON(v)
		}
		return PrintJSON(v)
	case FormatYAML:
		return PrintYAML(v)
	default:
		return fmt.Errorf("unsupported output format: %s", OutputFormat)
	}
}

// PrintJSON serializes v to stdout as compact single-line JSON.
func PrintJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// PrintPrettyJSON serializes v to stdout as indented JSON.
func PrintPrettyJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// PrintYAML serializes v to stdout as YAML.
func PrintYAML(v interface{}) error {
	enc := yaml.NewEncoder(os.Stdout)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}
