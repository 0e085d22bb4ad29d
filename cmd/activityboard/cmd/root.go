package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/nfrund/activityboard/internal/app"
	"github.com/nfrund/activityboard/internal/config"
	"github.com/spf13/cobra"
)

var locale string

// loadConfig is replaced in tests.
var loadConfig = config.New

var rootCmd = &cobra.Command{
	Use:   "activityboard",
	Short: "Mergington High School activity sign-up board",
	Long: `activityboard serves the extracurricular activity sign-up page and talks to
the activities service from the command line.

Available commands:
  serve        Start the web server
  list         Print all activities with their participants
  signup       Sign a student up for an activity
  unregister   Remove a student from an activity

Configuration is read from the environment (and a .env file when present).
ACTIVITIES_API_URL and SESSION_SECRET are required.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command. Any error, including a rejected sign-up,
// is printed to stderr and exits with status 1.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&locale, "locale", "", "locale for messages (defaults to DEFAULT_LOCALE)")
}

// newApp loads the configuration and builds the service graph.
func newApp() (*app.App, config.Provider, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	return app.New(cfg), cfg, nil
}

// resolveLocale returns the --locale flag or the configured default.
func resolveLocale(cfg config.Provider) string {
	if locale != "" {
		return locale
	}
	return cfg.GetDefaultLocale()
}
