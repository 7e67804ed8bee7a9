package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"habitrack/client/api"
)

var summaryCmd = &cobra.Command{
	Use:   "summary [habitID]",
	Short: "Show weekly and monthly completion stats",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if len(args) == 1 {
			id, err := parseHabitID(args[0])
			if err != nil {
				return err
			}

			summary, err := client.HabitSummary(cmd.Context(), id)
			if err != nil {
				return errors.Wrap(err, "failed to get habit summary")
			}

			printHabitPeriod(out, "This week", summary.Weekly)
			printHabitPeriod(out, "This month", summary.Monthly)

			return nil
		}

		summary, err := client.Summary(cmd.Context())
		if err != nil {
			return errors.Wrap(err, "failed to get summary")
		}

		fmt.Fprintf(out, "%s %d\n", color.New(color.Bold).Sprint("Habits:"), summary.TotalHabits)
		printPeriod(out, "This week", summary.Weekly)
		printPeriod(out, "This month", summary.Monthly)

		return nil
	},
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the server is up",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		health, err := client.Health(cmd.Context())
		if err != nil {
			return errors.Wrap(err, "server unhealthy")
		}

		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "%s: %s\n", health.Status, health.Message)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd, healthCmd)
}

func printPeriod(out io.Writer, title string, stats api.PeriodStats) {
	fmt.Fprintf(out, "%s (%s): %s  active %d/%d, done %d, missed %d\n",
		color.New(color.Bold).Sprint(title),
		stats.Period,
		rateColor(stats.CompletionRate).Sprintf("%d%%", stats.CompletionRate),
		stats.CompletedHabits, stats.TotalHabits,
		stats.TotalCompletions, stats.TotalMisses,
	)
}
