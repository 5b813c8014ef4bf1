package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func healthCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the conversion service answers on /health",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(flags)
			if err != nil {
				return err
			}
			defer app.close()

			status, err := app.health.Execute(cmd.Context())
			if err != nil {
				return fmt.Errorf("service at %s is not healthy: %w", app.client.Origin(), err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", app.client.Origin(), status)
			return nil
		},
	}
}
