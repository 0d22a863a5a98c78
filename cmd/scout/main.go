package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/solvarsaurus/agriculture-programs/config"
	"github.com/solvarsaurus/agriculture-programs/entities"
	"github.com/solvarsaurus/agriculture-programs/pkg/alert"
	"github.com/solvarsaurus/agriculture-programs/pkg/field"
	"github.com/solvarsaurus/agriculture-programs/pkg/geo"
	"github.com/solvarsaurus/agriculture-programs/pkg/weather"
)

var (
	flagOutDir string
	flagLegacy bool
	flagAlert  bool
)

// sender is swapped in tests.
var newSender = func(cfg config.SMTPConfig) interface {
	Send(context.Context, alert.Message) error
} {
	return alert.NewMailer(cfg)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "scout",
		Short:        "Field boundary, coordinate and weather advisory tools.",
		SilenceUsage: true,
	}

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "run the field and coordinate walkthrough",
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, err := distanceFunc(false)
			if err != nil {
				return err
			}
			return runDemo(cmd.OutOrStdout(), flagOutDir, fn)
		},
	}
	demoCmd.Flags().StringVar(&flagOutDir, "outdir", ".", "directory for boundary files")
	rootCmd.AddCommand(demoCmd)

	distanceCmd := &cobra.Command{
		Use:   "distance <lat1> <lon1> <lat2> <lon2>",
		Short: "great-circle distance in km (put -- before negative coordinates)",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseFloats(args)
			if err != nil {
				return err
			}
			fn, err := distanceFunc(flagLegacy)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.3f km\n", fn(geo.FromGeographic(v[0], v[1]), geo.FromGeographic(v[2], v[3])))
			return nil
		},
	}
	distanceCmd.Flags().BoolVar(&flagLegacy, "legacy", false, "use the legacy mixed-index formula")
	rootCmd.AddCommand(distanceCmd)

	adviseCmd := &cobra.Command{
		Use:   "advise <temperature> <humidity>",
		Short: "classify a weather reading",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseFloats(args)
			if err != nil {
				return err
			}
			return runAdvise(cmd.Context(), cmd.OutOrStdout(), v[0], v[1], flagAlert)
		},
	}
	adviseCmd.Flags().BoolVar(&flagAlert, "alert", false, "email the heat alert when too hot")
	rootCmd.AddCommand(adviseCmd)

	return rootCmd
}

// distanceFunc follows HAVERSINE_MODE unless legacy is forced.
func distanceFunc(legacy bool) (geo.DistanceFunc, error) {
	if legacy {
		return geo.LegacyHaversineDistance, nil
	}
	return geo.Distance(config.Load().HaversineMode)
}

func runDemo(w io.Writer, outDir string, distance geo.DistanceFunc) error {
	catalog := field.NewCatalog()
	field1 := catalog.Primary()
	field2 := catalog.Secondary()

	if err := field.SaveBoundaries(field1, filepath.Join(outDir, "field_1_boundaries.txt")); err != nil {
		return err
	}
	if err := field.SaveBoundaries(field2, filepath.Join(outDir, "field_2_boundaries.txt")); err != nil {
		return err
	}

	point1 := entities.Point{X: 3, Y: 4}
	point2 := entities.Point{X: 6, Y: 6}
	fmt.Fprintln(w, "Singleton Field:", field1)
	fmt.Fprintln(w, "New Field:", field2)
	fmt.Fprintln(w, "Point 1 within primary field:", field.ContainsPoint(field1, point1))
	fmt.Fprintln(w, "Point 2 within secondary field:", field.ContainsPoint(field2, point2))

	p1 := geo.FromCartesian(3, 4)
	p2 := geo.FromPolar(5, 0.785)
	p3 := geo.FromGeographic(-23.5505, -46.6333)
	p4 := geo.FromGeographic(-25.4297, -49.2719)
	fmt.Fprintln(w, "Cartesian:", p1)
	fmt.Fprintln(w, "Polar:", p2)
	fmt.Fprintln(w, "Geographic (São Paulo):", p3)
	fmt.Fprintln(w, "Geographic (Curitiba):", p4)
	fmt.Fprintf(w, "Distance between São Paulo and Curitiba: %.3f km\n", distance(p3, p4))

	fmt.Fprintln(w, "Weather Analysis:", weather.Classify(30, 40).Text)
	return nil
}

func runAdvise(ctx context.Context, w io.Writer, temperature, humidity float64, sendAlert bool) error {
	adv := weather.Classify(temperature, humidity)
	fmt.Fprintln(w, "Weather Analysis:", adv.Text)
	if adv != weather.TooHot || !sendAlert {
		return nil
	}
	cfg := config.Load()
	msg := alert.NewMessage(weather.HotAlertSubject, weather.HotAlertMessage, cfg.AlertRecipient)
	if err := newSender(cfg.SMTP).Send(ctx, msg); err != nil {
		return fmt.Errorf("send alert: %w", err)
	}
	fmt.Fprintln(w, "Alert sent to", cfg.AlertRecipient)
	return nil
}

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out[i] = v
	}
	return out, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
