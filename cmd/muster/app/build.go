package app

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

// NewBuildCommand creates the build command.
func (a *App) NewBuildCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render every army list into the output directory",
		Long: `Build resolves every army list against the catalog and writes one
document per army plus an index page into the output directory.

A list that fails to resolve is skipped and reported; the remaining
lists still produce documents, and the command exits non-zero.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runBuild(cmd.Context())
		},
	}

	cmd.Flags().BoolVar(&a.config.ShowBuffedStats, "show-buffed-stats", a.config.ShowBuffedStats, "overlay squad equipment buffs onto weapon profiles")
	cmd.Flags().BoolVar(&a.config.PrintLayout, "print", a.config.PrintLayout, "style documents for printing")
	cmd.Flags().BoolVar(&a.config.IncludeNotes, "include-notes", a.config.IncludeNotes, "render army and squad notes")
	cmd.Flags().StringVar(&a.config.DocumentFormat, "document-format", a.config.DocumentFormat, "document format: html, markdown")

	return cmd
}

func (a *App) runBuild(ctx context.Context) error {
	m, err := a.Muster()
	if err != nil {
		return err
	}

	result, err := m.Build(ctx)
	if result != nil {
		for _, file := range sortedKeys(result.Errors) {
			fmt.Printf("FAILED  %s: %v\n", file, result.Errors[file])
		}
		for _, army := range result.Armies {
			fmt.Printf("ok      %s (%s pts, %d CP)\n", army.Name, army.TotalCost, army.CommandPoints)
		}
	}
	return err
}

func sortedKeys(m map[string]error) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
