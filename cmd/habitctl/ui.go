package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"habitrack/client/state"
	"habitrack/client/tui"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the interactive weekly calendar",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return tui.Run(state.NewController(client, state.NewStore()), today())
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or update the client configuration",
}

var configSetServerCmd = &cobra.Command{
	Use:   "set-server <url>",
	Short: "Persist the server URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadCLIConfig(configPath)
		if err != nil {
			return err
		}

		cfg.ServerURL = args[0]
		if err = saveCLIConfig(configPath, cfg); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Saved server %s to %s\n", cfg.ServerURL, configPath)

		return nil
	},
}

func init() {
	configCmd.AddCommand(configSetServerCmd)
	rootCmd.AddCommand(uiCmd, configCmd)
}
