package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"saju/internal/location"
)

var citiesCmd = &cobra.Command{
	Use:   "cities",
	Short: "List the cities the engine can resolve for local-time correction",
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver := location.NewResolver()
		if cfg.PlacesFile != "" {
			if err := resolver.LoadExtra(cfg.PlacesFile); err != nil {
				return err
			}
		}

		names := resolver.Names()
		sort.Strings(names)
		for _, name := range names {
			p, _ := resolver.Resolve(name)
			fmt.Fprintf(cmd.OutOrStdout(), "%-14s %9.4f %8.4f  UTC%+.1f  %+d min\n",
				p.Name, p.Longitude, p.Latitude, p.UTCOffset, p.CorrectionMinutes())
		}
		return nil
	},
}
