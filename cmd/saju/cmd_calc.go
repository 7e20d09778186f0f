package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"saju/internal/datetime"
	"saju/internal/engine"
	"saju/internal/location"
)

var (
	calcHour     int
	calcGender   string
	calcLocation string
	calcLon      float64
	calcLat      float64
	calcUTC      float64
	calcByCoords bool
)

var calcCmd = &cobra.Command{
	Use:   "calc [date]",
	Short: "Calculate the four pillars of a birth moment",
	Long: `Calculates the four pillars and their derived classifications.

The date is Gregorian, formatted 2006-01-02. The hour is the local clock
hour 0-23; minutes are not needed because hour pillars run on two-hour
slots, but longitude correction may still shift the effective day.`,
	Example: `  saju calc 1970-01-01 --hour 0 --gender M --location Seoul
  saju calc 2023-02-04 --hour 12 --location Tokyo
  saju calc 1988-08-08 --hour 14 --coords --lon 129.07 --lat 35.18 --utc 9`,
	Args: cobra.ExactArgs(1),
	RunE: runCalc,
}

func init() {
	calcCmd.Flags().IntVar(&calcHour, "hour", 12, "birth hour, 0-23")
	calcCmd.Flags().StringVar(&calcGender, "gender", "", "M or F (luck-cycle direction only)")
	calcCmd.Flags().StringVar(&calcLocation, "location", "", "birth city for local-time correction")
	calcCmd.Flags().BoolVar(&calcByCoords, "coords", false, "use explicit coordinates instead of a city")
	calcCmd.Flags().Float64Var(&calcLon, "lon", 0, "longitude, with --coords")
	calcCmd.Flags().Float64Var(&calcLat, "lat", 0, "latitude, with --coords")
	calcCmd.Flags().Float64Var(&calcUTC, "utc", 0, "standard UTC offset hours, with --coords")
}

func runCalc(cmd *cobra.Command, args []string) error {
	birthDate, err := time.Parse("2006-01-02", args[0])
	if err != nil {
		return fmt.Errorf("invalid date %q, want 2006-01-02: %w", args[0], err)
	}

	resolver := location.NewResolver()
	if cfg.PlacesFile != "" {
		if err := resolver.LoadExtra(cfg.PlacesFile); err != nil {
			return err
		}
	}

	eng := engine.New(
		engine.WithLogger(logger),
		engine.WithResolver(resolver),
		engine.WithProcessorOptions(datetime.Options{UseLocalTime: cfg.UseLocalTime}),
	)

	opts := []engine.CalcOption{}
	switch calcGender {
	case "":
	case "M", "m":
		opts = append(opts, engine.WithGender(engine.Male))
	case "F", "f":
		opts = append(opts, engine.WithGender(engine.Female))
	default:
		return fmt.Errorf("invalid gender %q, want M or F", calcGender)
	}

	if calcByCoords {
		opts = append(opts, engine.WithCoordinates(location.Place{
			Name:      "custom",
			Longitude: calcLon,
			Latitude:  calcLat,
			UTCOffset: calcUTC,
		}))
	} else {
		place := calcLocation
		if place == "" {
			place = cfg.DefaultLocation
		}
		if place != "" {
			opts = append(opts, engine.WithLocation(place))
		}
	}

	res, err := eng.Calculate(birthDate, calcHour, opts...)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), renderResult(res))
	return nil
}
