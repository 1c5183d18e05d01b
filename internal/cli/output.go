// Package cli provides output formatting for the flagresolve command-line
// tool.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

// OutputFormat specifies the output format for CLI commands
type OutputFormat string

const (
	FormatTable OutputFormat = "table"
	FormatJSON  OutputFormat = "json"
	FormatYAML  OutputFormat = "yaml"
)

// Result is the CLI-facing view of one flag evaluation.
type Result struct {
	Flag         string `json:"flag" yaml:"flag"`
	Value        any    `json:"value" yaml:"value"`
	Variant      string `json:"variant,omitempty" yaml:"variant,omitempty"`
	Reason       string `json:"reason,omitempty" yaml:"reason,omitempty"`
	ErrorCode    string `json:"errorCode,omitempty" yaml:"errorCode,omitempty"`
	ErrorMessage string `json:"errorMessage,omitempty" yaml:"errorMessage,omitempty"`
}

// PrintResult outputs an evaluation result in the specified format
func PrintResult(result *Result, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return printJSON(result)
	case FormatYAML:
		return printYAML(result)
	case FormatTable:
		return printTable(result)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func printJSON(data interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func printYAML(data interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)
	defer encoder.Close()
	encoder.SetIndent(2)
	return encoder.Encode(data)
}

func printTable(result *Result) error {
	table := tablewriter.NewWriter(os.Stdout)

	table.Header("Flag", "Value", "Variant", "Reason", "Error")

	value, err := json.Marshal(result.Value)
	if err != nil {
		return err
	}

	errText := result.ErrorCode
	if result.ErrorMessage != "" {
		errText = fmt.Sprintf("%s: %s", result.ErrorCode, result.ErrorMessage)
	}

	table.Append(
		result.Flag,
		string(value),
		result.Variant,
		result.Reason,
		errText,
	)

	return table.Render()
}
