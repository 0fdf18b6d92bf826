package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewValidateCommand creates the validate command.
func (a *App) NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check every army list without writing documents",
		Long: `Validate loads the catalog and resolves every army list, reporting
reference errors and invalid overrides, but writes nothing.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := a.Muster()
			if err != nil {
				return err
			}

			result, err := m.Validate(cmd.Context())
			if result != nil {
				for _, file := range sortedKeys(result.Errors) {
					fmt.Printf("FAILED  %s: %v\n", file, result.Errors[file])
				}
				for _, army := range result.Armies {
					fmt.Printf("ok      %s (%s pts)\n", army.Name, army.TotalCost)
				}
			}
			return err
		},
	}
}
