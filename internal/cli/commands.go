package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/kanso-reading-plan/internal/core/domain"
)

func newTodayCommand(flags *planFlags) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show the reading for a date",
		Long: `Show the reading for a date, today by default. Dates outside the
plan year are mapped onto the same month and day of the plan.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := flags.service(cmd)
			if err != nil {
				return err
			}

			when := time.Now()
			if date != "" {
				when, err = time.Parse(time.DateOnly, date)
				if err != nil {
					return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
				}
			}

			reading := svc.Today(when)
			out := cmd.OutOrStdout()
			if flags.json {
				return writeJSON(out, reading)
			}

			printDay(out, reading.ReadingDay)
			fmt.Fprintf(out, "%s %d\n", labelColor.Sprint("Week:"), reading.Week)
			if reading.Message != "" {
				fmt.Fprintln(out, dimColor.Sprint(reading.Message))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "date to look up (YYYY-MM-DD)")
	return cmd
}

func newDayCommand(flags *planFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "day <id>",
		Short: "Show one reading day by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := flags.service(cmd)
			if err != nil {
				return err
			}

			day, err := svc.Day(args[0])
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			if flags.json {
				return writeJSON(cmd.OutOrStdout(), day)
			}
			printDay(cmd.OutOrStdout(), day)
			return nil
		},
	}
}

func newMonthCommand(flags *planFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "month <1-12>",
		Short: "List every reading day of a month",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			month, err := strconv.Atoi(args[0])
			if err != nil {
				return domain.ErrInvalidMonth
			}

			svc, err := flags.service(cmd)
			if err != nil {
				return err
			}

			days, err := svc.Month(month)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if flags.json {
				return writeJSON(out, days)
			}

			headerColor.Fprintf(out, "%s %d\n", time.Month(month), svc.Plan().Year)
			for _, d := range days {
				fmt.Fprintf(out, "  %s  %s\n", valueColor.Sprint(d.ID), daySummary(d))
			}
			return nil
		},
	}
}

func newVerifyCommand(flags *planFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check that the quota covers the catalog exactly",
		Long: `Compare the catalog size with the sum of daily quotas and the number
of units actually assigned. Exits with an error when they differ.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := flags.service(cmd)
			if err != nil {
				return err
			}

			v := svc.Verify()
			out := cmd.OutOrStdout()
			if flags.json {
				if err := writeJSON(out, v); err != nil {
					return err
				}
			} else {
				fmt.Fprintf(out, "%s %d (%d days, %d reserved)\n", labelColor.Sprint("Year:"), v.Year, v.Days, v.ReservedLeadDays)
				fmt.Fprintf(out, "%s %s\n", labelColor.Sprint("Quota:"), v.QuotaTiers)
				fmt.Fprintf(out, "%s %d\n", labelColor.Sprint("Catalog units:"), v.CatalogUnits)
				fmt.Fprintf(out, "%s %d\n", labelColor.Sprint("Quota total:"), v.QuotaTotal)
				fmt.Fprintf(out, "%s %d\n", labelColor.Sprint("Assigned:"), v.AssignedUnits)
				if v.Consistent {
					successColor.Fprintln(out, "✓ plan is consistent")
				} else {
					warningColor.Fprintf(out, "⚠ %d units unassigned\n", v.Unassigned)
				}
			}

			if !v.Consistent {
				return fmt.Errorf("plan is inconsistent: catalog %d, quota %d", v.CatalogUnits, v.QuotaTotal)
			}
			return nil
		},
	}
}
