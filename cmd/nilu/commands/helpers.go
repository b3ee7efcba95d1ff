package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/luftdata/go-nilu/pkg/nilu"
	"github.com/luftdata/go-nilu/pkg/niluclient"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"

	// Output formats.
	OutputFormatTable = "table"
	OutputFormatJSON  = "json"
	OutputFormatYAML  = "yaml"

	// JSON formatting.
	defaultJSONIndent = "  "
)

// CreateClient builds a nilu.Client from viper configuration.
func CreateClient() (nilu.Client, error) {
	config := &nilu.Config{
		BaseURL:     viper.GetString("api"),
		HTTPTimeout: viper.GetDuration("timeout"),
	}

	if viper.GetBool("verbose") {
		logger, err := newZapLogger()
		if err != nil {
			return nil, err
		}

		config.Logger = logger
		config.Debug = true
	}

	client, err := niluclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return client, nil
}

// OutputFormat resolves the requested output format. When none is configured
// and stdout is not a terminal, JSON is used so output can be piped.
func OutputFormat() string {
	output := viper.GetString("output")
	if output != "" {
		return output
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return OutputFormatJSON
	}

	return OutputFormatTable
}

// renderOutput writes data in the configured format. renderTable is only
// called for table output.
func renderOutput(data interface{}, renderTable func() error) error {
	switch OutputFormat() {
	case OutputFormatJSON:
		return outputJSON(data)
	case OutputFormatYAML:
		return outputYAML(data)
	default:
		return renderTable()
	}
}

func outputJSON(data interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", defaultJSONIndent)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("failed to encode as JSON: %w", err)
	}

	return nil
}

func outputYAML(data interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("failed to encode as YAML: %w", err)
	}

	return encoder.Close()
}

// newTable creates a stdout table with the given header.
func newTable(header ...interface{}) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header(header...)

	return table
}

func renderTable(table *tablewriter.Table) error {
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// formatTimestamp renders an optional timestamp for table cells.
func formatTimestamp(ts *nilu.Timestamp) string {
	if ts == nil || ts.IsZero() {
		return NotAvailable
	}

	return ts.Format(nilu.TimestampLayout)
}

// formatValue renders an optional measurement value for table cells.
func formatValue(value *float64) string {
	if value == nil {
		return NotAvailable
	}

	return fmt.Sprintf("%.2f", *value)
}
