package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/astrolab/starcurve/pkg/units"
)

var queryRadius string

var queryCmd = &cobra.Command{
	Use:   "query [target]",
	Short: "Query the archive for observations of a target",
	Long: `Performs a cone search around a named target (e.g. "TIC 261136679" or
"pi Men") and stores the returned observation metadata in the local
database. The radius accepts any angular unit, e.g. 0.02deg or 1.2arcmin.`,
	Args: cobra.ExactArgs(1),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().StringVar(&queryRadius, "radius", "", "Search radius with unit (default from config, 0.02deg)")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	fmt.Printf("=== Query started at %s ===\n", time.Now().Format("2006-01-02 15:04:05 MST"))

	target := args[0]

	// Load config
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Resolve the search radius
	radius := units.New(cfg.GetRadiusDeg(), units.Degree)
	if queryRadius != "" {
		radius, err = units.ParseQuantity(queryRadius)
		if err != nil {
			return fmt.Errorf("parsing --radius: %w", err)
		}
	}

	// Open database
	db, err := openDB()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	// Query the archive
	client := newArchiveClient(cfg)
	fmt.Printf("Searching for %q (radius %s)...\n", target, radius)
	observations, err := client.QueryByName(context.Background(), target, radius)
	if err != nil {
		return fmt.Errorf("querying archive: %w", err)
	}

	if len(observations) == 0 {
		fmt.Println("No observations found")
		return nil
	}

	// Store observations (duplicates will be ignored by UNIQUE constraint)
	for i := range observations {
		if err := db.InsertObservation(&observations[i]); err != nil {
			return fmt.Errorf("inserting observation: %w", err)
		}
	}

	fmt.Printf("\n%-12s  %-10s  %-20s  %10s  %10s\n", "Obs ID", "Mission", "Target", "RA", "Dec")
	fmt.Println("----------------------------------------------------------------------")
	for _, obs := range observations {
		fmt.Printf("%-12s  %-10s  %-20s  %10.4f  %10.4f\n",
			obs.ObsID, obs.Collection, obs.TargetName, obs.RA, obs.Dec)
	}

	fmt.Printf("\n✓ Stored %d observations\n", len(observations))
	return nil
}
