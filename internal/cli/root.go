package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/conversor/internal/infra/logger"
	"github.com/aalvaropc/conversor/internal/ui/tui"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}
	var latestOnly bool

	cmd := &cobra.Command{
		Use:          "conversor",
		Short:        "Conversor de Unidades: temperature, distance and weight via a conversion service",
		SilenceUsage: true,
		RunE: func(c *cobra.Command, _ []string) error {
			app, err := loadApp(flags)
			if err != nil {
				return err
			}
			defer app.close()

			if c.Flags().Changed("latest-only") {
				app.cfg.UI.LatestOnly = latestOnly
			}

			return tui.Run(tui.Deps{
				Submit:          app.submit,
				Origin:          app.client.Origin(),
				DefaultCategory: app.cfg.UI.DefaultCategory,
				LatestOnly:      app.cfg.UI.LatestOnly,
				Logger:          logger.L(),
				Debug:           flags.debug,
				LogPath:         logger.Path(),
			})
		},
	}

	cmd.PersistentFlags().StringVar(&flags.origin, "origin", "", "conversion service origin, e.g. http://127.0.0.1:8000 (overrides conversor.yaml)")
	cmd.PersistentFlags().StringVar(&flags.config, "config", "", "path to conversor.yaml (default: searched upward from the working directory)")
	cmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable verbose logging to .conversor/logs/conversor.log")
	cmd.Flags().BoolVar(&latestOnly, "latest-only", false, "ignore responses that arrive after a newer submission")

	cmd.AddCommand(
		convertCmd(flags),
		unitsCmd(),
		healthCmd(flags),
		versionCmd(),
	)
	return cmd
}
