package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/astrolab/starcurve/internal/archive"
)

var (
	downloadObsID    string
	downloadMission  string
	downloadType     string
	downloadSubGroup string
	downloadOut      string
)

var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Download matching products to local storage",
	Long: `Downloads the stored products matching the given filters into the data
directory and records each retrieved file in the download manifest.
Existing files at the same path are overwritten. If some files fail the
batch continues; the command reports every failure and exits non-zero.`,
	RunE: runDownload,
}

func init() {
	downloadCmd.Flags().StringVar(&downloadObsID, "obs-id", "", "Only download products of this observation")
	downloadCmd.Flags().StringVar(&downloadMission, "mission", "", "Filter by mission collection (e.g. TESS)")
	downloadCmd.Flags().StringVar(&downloadType, "type", "", "Filter by product type (e.g. SCIENCE)")
	downloadCmd.Flags().StringVar(&downloadSubGroup, "subgroup", "", "Filter by sub-group (e.g. LC)")
	downloadCmd.Flags().StringVar(&downloadOut, "out", "", "Download directory (default from config, ./data)")
	rootCmd.AddCommand(downloadCmd)
}

func runDownload(cmd *cobra.Command, args []string) error {
	fmt.Printf("=== Download started at %s ===\n", time.Now().Format("2006-01-02 15:04:05 MST"))

	// Load config
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	dir := cfg.GetDataDir()
	if downloadOut != "" {
		dir = downloadOut
	}

	// Open database
	db, err := openDB()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	products, err := db.ListProducts(downloadObsID)
	if err != nil {
		return fmt.Errorf("listing stored products: %w", err)
	}

	var predicates []archive.Predicate
	if downloadMission != "" {
		predicates = append(predicates, archive.ByCollection(downloadMission))
	}
	if downloadType != "" {
		predicates = append(predicates, archive.ByProductType(downloadType))
	}
	if downloadSubGroup != "" {
		predicates = append(predicates, archive.BySubGroup(downloadSubGroup))
	}
	filtered := archive.FilterProducts(products, predicates...)

	if len(filtered) == 0 {
		fmt.Println("No stored products match (run 'starcurve products' first)")
		return nil
	}

	// Download the batch
	client := newArchiveClient(cfg)
	fmt.Printf("Downloading %d products to %s...\n", len(filtered), dir)
	manifest, downloadErr := client.Download(context.Background(), filtered, dir)

	// Record what was retrieved even if part of the batch failed
	var total uint64
	for i := range manifest {
		if err := db.InsertManifestRow(&manifest[i]); err != nil {
			return fmt.Errorf("recording manifest row: %w", err)
		}
		total += uint64(manifest[i].Size)
		fmt.Printf("✓ %s (%s)\n", manifest[i].LocalPath, humanize.Bytes(uint64(manifest[i].Size)))
	}

	if downloadErr != nil {
		var perFile *archive.DownloadError
		if errors.As(downloadErr, &perFile) {
			fmt.Printf("⚠ Some downloads failed:\n%v\n", downloadErr)
		}
		return fmt.Errorf("downloaded %d/%d files: %w", len(manifest), len(filtered), downloadErr)
	}

	fmt.Printf("\n✓ Downloaded %d files (%s)\n", len(manifest), humanize.Bytes(total))
	return nil
}
