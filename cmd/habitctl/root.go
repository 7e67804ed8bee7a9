package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"habitrack/client/api"
	"habitrack/shared/date"
)

var (
	client     *api.Client
	configPath string
	serverURL  string
	apiKey     string
	verbose    bool

	// today is replaced in tests.
	today = func() date.Date { return date.Of(time.Now()) }
)

var rootCmd = &cobra.Command{
	Use:   "habitctl",
	Short: "Track daily habits from the terminal",
	Long: `habitctl talks to a habitrack server.

Examples:
  habitctl habits add "Read" --description "20 pages"
  habitctl checkins toggle 1
  habitctl checkins set 1 2024-01-05 missed
  habitctl summary
  habitctl ui`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		level := zerolog.Disabled
		if verbose {
			level = zerolog.DebugLevel
		}

		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
			Level(level).
			With().Timestamp().Logger()

		cfg, err := loadCLIConfig(configPath)
		if err != nil {
			return err
		}

		cfg = cfg.resolve(serverURL, apiKey)
		client = api.New(cfg.ServerURL, api.WithAPIKey(cfg.APIKey))

		log.Debug().Str("server", client.BaseURL()).Msg("client configured")

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath(), "config file")
	rootCmd.PersistentFlags().StringVarP(&serverURL, "server", "s", "", "server URL (overrides "+envServerURL+")")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "API key (overrides "+envAPIKey+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log requests to stderr")
}
