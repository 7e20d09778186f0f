package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"saju/internal/calendar"
)

var termsCmd = &cobra.Command{
	Use:   "terms [year]",
	Short: "Show the 12 major solar-term days of a Gregorian year",
	Long: `Prints the day each month-governing solar term falls on. These days are
the month-pillar boundaries: a date belongs to the latest term period whose
day is on or before it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		year, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid year %q: %w", args[0], err)
		}

		table := calendar.NewTermTable()
		days, ok := table.Year(year)
		if !ok {
			return fmt.Errorf("year %d outside supported range %d-%d",
				year, calendar.MinTermYear, calendar.MaxTermYear)
		}
		fmt.Fprint(cmd.OutOrStdout(), renderTerms(year, days))
		return nil
	},
}
