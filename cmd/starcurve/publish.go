package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/astrolab/starcurve/internal/lightcurve"
	"github.com/astrolab/starcurve/internal/publisher"
)

var publishFormat string

var publishCmd = &cobra.Command{
	Use:   "publish [file...]",
	Short: "Publish light-curve summaries over MQTT",
	Long: `Reads downloaded time-series files (all manifest files when none are
given) and publishes per-column summary statistics to the configured
MQTT broker.`,
	RunE: runPublish,
}

func init() {
	publishCmd.Flags().StringVar(&publishFormat, "format", "tess.fits", "Time-series file format tag")
	rootCmd.AddCommand(publishCmd)
}

func runPublish(cmd *cobra.Command, args []string) error {
	fmt.Printf("=== Publish started at %s ===\n", time.Now().Format("2006-01-02 15:04:05 MST"))

	// Load config
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Resolve the file set from args or the manifest
	files := args
	if len(files) == 0 {
		db, err := openDB()
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		manifest, err := db.ListManifest()
		db.Close()
		if err != nil {
			return fmt.Errorf("listing manifest: %w", err)
		}
		for _, row := range manifest {
			files = append(files, row.LocalPath)
		}
	}

	if len(files) == 0 {
		fmt.Println("No downloaded files to publish (run 'starcurve download' first)")
		return nil
	}

	// Create publisher
	pub, err := publisher.New(cfg.MQTT)
	if err != nil {
		return fmt.Errorf("creating publisher: %w", err)
	}
	defer pub.Close()

	// Publish each file's summary
	published := 0
	for i, path := range files {
		fmt.Printf("[%d/%d] Publishing %s... ", i+1, len(files), path)

		series, err := lightcurve.Read(path, publishFormat)
		if err != nil {
			fmt.Printf("FAILED: %v\n", err)
			continue
		}

		if err := pub.PublishSummary(lightcurve.Summarize(series)); err != nil {
			fmt.Printf("FAILED: %v\n", err)
			continue
		}

		fmt.Printf("✓\n")
		published++
	}

	fmt.Printf("\nSuccessfully published %d/%d summaries\n", published, len(files))
	return nil
}
