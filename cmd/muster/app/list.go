package app

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/musterpoint/muster/internal/cmd/output"
)

// armyRecord is one army line in structured list output.
type armyRecord struct {
	Name          string `json:"name" yaml:"name"`
	File          string `json:"file" yaml:"file"`
	Points        string `json:"points" yaml:"points"`
	PointsLimit   string `json:"points_limit" yaml:"points_limit"`
	CommandPoints int    `json:"command_points" yaml:"command_points"`
	Detachments   int    `json:"detachments" yaml:"detachments"`
}

// NewListCommand creates the list command.
func (a *App) NewListCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List armies with their point totals",
		Long: `List resolves every army list and prints one line per army with its
point total, limit and command points. Lists that fail to resolve are
reported on stderr and excluded.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsed, err := output.ParseFormat(format)
			if err != nil {
				return err
			}

			m, err := a.Muster()
			if err != nil {
				return err
			}

			result, validateErr := m.Validate(cmd.Context())
			if result == nil {
				return validateErr
			}
			for _, file := range sortedKeys(result.Errors) {
				a.logger.Error().Err(result.Errors[file]).Str("file", file).Msg("roster failed")
			}

			records := make([]armyRecord, 0, len(result.Armies))
			data := &output.Data{
				Headers:    []string{"army", "file", "points", "limit", "cp", "detachments"},
				RightAlign: []int{2, 3, 4, 5},
			}
			for _, army := range result.Armies {
				record := armyRecord{
					Name:          army.Name,
					File:          army.Source.File,
					Points:        army.TotalCost.String(),
					PointsLimit:   army.PointsLimit.String(),
					CommandPoints: army.CommandPoints,
					Detachments:   len(army.Detachments),
				}
				records = append(records, record)
				data.Rows = append(data.Rows, []string{
					record.Name,
					record.File,
					record.Points,
					record.PointsLimit,
					strconv.Itoa(record.CommandPoints),
					strconv.Itoa(record.Detachments),
				})
			}
			data.Records = records

			formatter := output.NewFormatter(output.DetectFormat(string(parsed)))
			if err := formatter.Format(os.Stdout, data); err != nil {
				return err
			}
			return validateErr
		},
	}

	cmd.Flags().StringVarP(&format, "format", "o", "", "output format: table, json, yaml")
	return cmd
}
