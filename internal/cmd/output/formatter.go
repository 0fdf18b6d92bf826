// Package output provides formatters for command output.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Format types for output.
type Format string

const (
	// FormatTable represents table output format.
	FormatTable Format = "table"
	// FormatJSON represents JSON output format.
	FormatJSON Format = "json"
	// FormatYAML represents YAML output format.
	FormatYAML Format = "yaml"
)

// Formatter renders structured command output in one format.
type Formatter interface {
	Format(w io.Writer, data *Data) error
}

// Data is one result set: tabular headers and rows for table output,
// plus the records themselves for structured formats.
type Data struct {
	Headers []string
	Rows    [][]string
	// Records carries the underlying values for json/yaml output. When
	// nil, rows are emitted as maps keyed by header.
	Records any
	// RightAlign marks columns holding numbers.
	RightAlign []int
}

// NewFormatter creates the formatter for a format.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &jsonFormatter{indent: "  "}
	case FormatYAML:
		return &yamlFormatter{}
	default:
		return &tableFormatter{}
	}
}

// ParseFormat converts a string to a Format with validation.
func ParseFormat(s string) (Format, error) {
	format := Format(strings.ToLower(s))
	switch format {
	case FormatTable, FormatJSON, FormatYAML, "":
		return format, nil
	default:
		return "", fmt.Errorf("invalid format %q: must be one of: table, json, yaml", s)
	}
}

// DetectFormat auto-detects the format for unspecified output: tables on
// a terminal, JSON for pipes and redirects.
func DetectFormat(explicitFormat string) Format {
	if explicitFormat != "" {
		return Format(strings.ToLower(explicitFormat))
	}
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return FormatTable
	}
	return FormatJSON
}

type jsonFormatter struct {
	indent string
}

func (f *jsonFormatter) Format(w io.Writer, data *Data) error {
	encoder := json.NewEncoder(w)
	if f.indent != "" {
		encoder.SetIndent("", f.indent)
	}
	return encoder.Encode(f.records(data))
}

func (f *jsonFormatter) records(data *Data) any {
	if data.Records != nil {
		return data.Records
	}
	return rowMaps(data)
}

type yamlFormatter struct{}

func (f *yamlFormatter) Format(w io.Writer, data *Data) error {
	records := data.Records
	if records == nil {
		records = rowMaps(data)
	}
	out, err := yaml.MarshalWithOptions(records,
		yaml.Indent(2),
		yaml.IndentSequence(false),
	)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

type tableFormatter struct{}

func (f *tableFormatter) Format(w io.Writer, data *Data) error {
	config := tablewriter.Config{}
	if len(data.RightAlign) > 0 {
		align := make([]tw.Align, len(data.Headers))
		for i := range align {
			align[i] = tw.Skip
		}
		for _, col := range data.RightAlign {
			if col < len(align) {
				align[col] = tw.AlignRight
			}
		}
		config.Header.Alignment = tw.CellAlignment{PerColumn: align}
		config.Row.Alignment = tw.CellAlignment{PerColumn: align}
	}

	table := tablewriter.NewTable(w, tablewriter.WithConfig(config))

	headers := make([]any, len(data.Headers))
	caser := cases.Title(language.English)
	for i, h := range data.Headers {
		headers[i] = caser.String(h)
	}
	table.Header(headers...)

	for _, row := range data.Rows {
		cells := make([]any, len(row))
		for i, cell := range row {
			cells[i] = cell
		}
		if err := table.Append(cells...); err != nil {
			return err
		}
	}

	return table.Render()
}

// rowMaps converts tabular rows into maps keyed by lowercased header.
func rowMaps(data *Data) []map[string]string {
	records := make([]map[string]string, 0, len(data.Rows))
	for _, row := range data.Rows {
		record := make(map[string]string, len(data.Headers))
		for i, header := range data.Headers {
			if i < len(row) {
				record[strings.ToLower(header)] = row[i]
			}
		}
		records = append(records, record)
	}
	return records
}
