package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("muster %s\n", a.version)
			fmt.Printf("  commit: %s\n", a.commit)
			fmt.Printf("  built:  %s\n", a.date)
		},
	}
}
