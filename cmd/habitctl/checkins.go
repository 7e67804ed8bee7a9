package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"habitrack/client/state"
	"habitrack/shared/date"
)

var checkinsCmd = &cobra.Command{
	Use:     "checkins",
	Aliases: []string{"c"},
	Short:   "Record and inspect daily check-ins",
}

var checkinsListCmd = &cobra.Command{
	Use:     "list <habitID>",
	Aliases: []string{"ls"},
	Short:   "List a habit's check-ins, newest first",
	Long: `List a habit's check-ins. Both bounds are optional and inclusive.

Examples:
  habitctl checkins list 1
  habitctl checkins list 1 --start 2024-01-01 --end 2024-01-31`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseHabitID(args[0])
		if err != nil {
			return err
		}

		start, err := dateFlag(cmd, "start")
		if err != nil {
			return err
		}

		end, err := dateFlag(cmd, "end")
		if err != nil {
			return err
		}

		checkins, err := client.ListCheckins(cmd.Context(), id, start, end)
		if err != nil {
			return errors.Wrap(err, "failed to list check-ins")
		}

		out := cmd.OutOrStdout()
		if len(checkins) == 0 {
			fmt.Fprintln(out, "No check-ins.")

			return nil
		}

		for _, checkin := range checkins {
			fmt.Fprintf(out, "%s  %s\n", checkin.Date, statusText(state.Status(checkin.Status)))
		}

		return nil
	},
}

var checkinsAllCmd = &cobra.Command{
	Use:   "all",
	Short: "List every check-in with its habit name",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		checkins, err := client.ListAllCheckins(cmd.Context())
		if err != nil {
			return errors.Wrap(err, "failed to list check-ins")
		}

		out := cmd.OutOrStdout()
		for _, checkin := range checkins {
			fmt.Fprintf(out, "%s  %-24s %s\n", checkin.Date, checkin.HabitName, statusText(state.Status(checkin.Status)))
		}

		return nil
	},
}

var checkinsSetCmd = &cobra.Command{
	Use:   "set <habitID> <date> <done|missed>",
	Short: "Record a status for a day, replacing any previous one",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseHabitID(args[0])
		if err != nil {
			return err
		}

		day, err := date.Parse(args[1])
		if err != nil {
			return err //nolint:wrapcheck
		}

		checkin, err := client.UpsertCheckin(cmd.Context(), id, day, args[2])
		if err != nil {
			return errors.Wrap(err, "failed to record check-in")
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", checkin.Date, statusText(state.Status(checkin.Status)))

		return nil
	},
}

var checkinsRemoveCmd = &cobra.Command{
	Use:     "rm <habitID> <date>",
	Aliases: []string{"remove", "delete"},
	Short:   "Clear the check-in of a day",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseHabitID(args[0])
		if err != nil {
			return err
		}

		day, err := date.Parse(args[1])
		if err != nil {
			return err //nolint:wrapcheck
		}

		if err = client.DeleteCheckin(cmd.Context(), id, day); err != nil {
			return errors.Wrap(err, "failed to delete check-in")
		}

		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Cleared %s\n", day)

		return nil
	},
}

var checkinsToggleCmd = &cobra.Command{
	Use:   "toggle <habitID> [date]",
	Short: "Advance a day through not tracked, done and missed",
	Long: `Advance a day one step: not tracked -> done -> missed -> not tracked.
The date defaults to today.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseHabitID(args[0])
		if err != nil {
			return err
		}

		day := today()
		if len(args) == 2 {
			if day, err = date.Parse(args[1]); err != nil {
				return err //nolint:wrapcheck
			}
		}

		current, err := client.ListCheckins(cmd.Context(), id, day, day)
		if err != nil {
			return errors.Wrap(err, "failed to read check-in")
		}

		store := state.NewStore()
		store.Dispatch(state.SetCheckins{HabitID: id, Range: date.Range{Start: day, End: day}, Checkins: current})

		status, err := state.NewController(client, store).Toggle(cmd.Context(), id, day)
		if err != nil {
			return errors.Wrap(err, "failed to update check-in")
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", day, statusText(status))

		return nil
	},
}

func init() {
	checkinsListCmd.Flags().String("start", "", "first day (yyyy-MM-dd)")
	checkinsListCmd.Flags().String("end", "", "last day (yyyy-MM-dd)")

	checkinsCmd.AddCommand(checkinsListCmd, checkinsAllCmd, checkinsSetCmd, checkinsRemoveCmd, checkinsToggleCmd)
	rootCmd.AddCommand(checkinsCmd)
}

func dateFlag(cmd *cobra.Command, name string) (date.Date, error) {
	raw, _ := cmd.Flags().GetString(name)
	if raw == "" {
		return date.Date{}, nil
	}

	day, err := date.Parse(raw)
	if err != nil {
		return date.Date{}, errors.Wrapf(err, "--%s", name)
	}

	return day, nil
}

func statusText(status state.Status) string {
	switch status {
	case state.StatusDone:
		return color.New(color.FgGreen).Sprint(status.Symbol() + " " + status.Label())
	case state.StatusMissed:
		return color.New(color.FgRed).Sprint(status.Symbol() + " " + status.Label())
	default:
		return color.New(color.Faint).Sprint(status.Symbol() + " " + status.Label())
	}
}
