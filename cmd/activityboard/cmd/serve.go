package cmd

import (
	"github.com/nfrund/activityboard/internal/config"
	"github.com/nfrund/activityboard/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Long: `Start the activity board web server on APP_ADDR. The server shuts down
gracefully on SIGINT or SIGTERM.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, cfg, err := newApp()
		if err != nil {
			return err
		}
		if err := config.ValidateServe(cfg); err != nil {
			return err
		}
		ctx, stop := server.NotifyShutdown(cmd.Context())
		defer stop()
		return a.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
