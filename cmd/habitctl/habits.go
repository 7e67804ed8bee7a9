package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"habitrack/client/api"
	"habitrack/client/state"
)

var habitsCmd = &cobra.Command{
	Use:     "habits",
	Aliases: []string{"h"},
	Short:   "Manage habits",
}

var habitsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List habits, newest first",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		habits, err := client.ListHabits(cmd.Context())
		if err != nil {
			return errors.Wrap(err, "failed to list habits")
		}

		out := cmd.OutOrStdout()
		if len(habits) == 0 {
			fmt.Fprintln(out, "No habits yet.")

			return nil
		}

		for _, habit := range habits {
			printHabit(out, habit)
		}

		return nil
	},
}

var habitsAddCmd = &cobra.Command{
	Use:     "add [name]",
	Aliases: []string{"a"},
	Short:   "Create a habit",
	Long: `Create a habit. Without a name an interactive form is shown.

Examples:
  habitctl habits add Read --description "20 pages"
  habitctl habits add`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		description, _ := cmd.Flags().GetString("description")

		var name string
		if len(args) == 1 {
			name = args[0]
		} else if err := promptHabit(&name, &description); err != nil {
			return err
		}

		if err := state.ValidateHabitName(name); err != nil {
			return err //nolint:wrapcheck
		}

		habit, err := client.CreateHabit(cmd.Context(), name, description)
		if err != nil {
			return errors.Wrap(err, "failed to create habit")
		}

		out := cmd.OutOrStdout()
		color.New(color.FgGreen).Fprintf(out, "✓ Created habit %q\n", habit.Name)
		printHabit(out, habit)

		return nil
	},
}

var habitsShowCmd = &cobra.Command{
	Use:   "show <habitID>",
	Short: "Show a habit with its weekly and monthly stats",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseHabitID(args[0])
		if err != nil {
			return err
		}

		habit, err := client.GetHabit(cmd.Context(), id)
		if err != nil {
			return errors.Wrap(err, "failed to get habit")
		}

		summary, err := client.HabitSummary(cmd.Context(), id)
		if err != nil {
			return errors.Wrap(err, "failed to get habit summary")
		}

		out := cmd.OutOrStdout()
		printHabit(out, habit)

		if habit.Description != "" {
			fmt.Fprintf(out, "  %s\n", habit.Description)
		}

		printHabitPeriod(out, "This week", summary.Weekly)
		printHabitPeriod(out, "This month", summary.Monthly)

		return nil
	},
}

var habitsRemoveCmd = &cobra.Command{
	Use:     "rm <habitID>",
	Aliases: []string{"remove", "delete"},
	Short:   "Delete a habit and all of its check-ins",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseHabitID(args[0])
		if err != nil {
			return err
		}

		if err = client.DeleteHabit(cmd.Context(), id); err != nil {
			return errors.Wrap(err, "failed to delete habit")
		}

		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Deleted habit %d\n", id)

		return nil
	},
}

func init() {
	habitsAddCmd.Flags().StringP("description", "d", "", "optional description")

	habitsCmd.AddCommand(habitsListCmd, habitsAddCmd, habitsShowCmd, habitsRemoveCmd)
	rootCmd.AddCommand(habitsCmd)
}

func promptHabit(name, description *string) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(name).
				Validate(state.ValidateHabitName),
			huh.NewInput().
				Title("Description").
				Value(description),
		),
	)

	return errors.Wrap(form.Run(), "reading habit")
}

func parseHabitID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid habit id %q", raw)
	}

	return id, nil
}

func printHabit(out io.Writer, habit api.Habit) {
	fmt.Fprintf(out, "%s %s %s\n",
		color.New(color.Faint).Sprintf("#%-4d", habit.ID),
		color.New(color.Bold).Sprint(habit.Name),
		color.New(color.Faint).Sprint(habit.CreatedAt),
	)
}

func printHabitPeriod(out io.Writer, title string, stats api.HabitPeriodStats) {
	fmt.Fprintf(out, "%s (%s): %s  done %d, missed %d, tracked %d\n",
		color.New(color.Bold).Sprint(title),
		stats.Period,
		rateColor(stats.CompletionRate).Sprintf("%d%%", stats.CompletionRate),
		stats.CompletedDays, stats.MissedDays, stats.TotalDays,
	)
}

func rateColor(rate int) *color.Color {
	switch {
	case rate >= 80:
		return color.New(color.FgGreen)
	case rate >= 50:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}
