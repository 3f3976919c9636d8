package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var listTarget string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored observations and downloaded files",
	Long:  `Displays the stored observation records and the download manifest.`,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listTarget, "target", "", "Filter observations by target name")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	// Open database
	db, err := openDB()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	observations, err := db.ListObservations(listTarget)
	if err != nil {
		return fmt.Errorf("listing observations: %w", err)
	}

	if len(observations) == 0 {
		fmt.Println("No stored observations")
	} else {
		fmt.Println("\nObservations:")
		fmt.Println("----------------------------------------------------------------------")
		fmt.Printf("%-12s  %-10s  %-20s  %10s  %10s\n", "Obs ID", "Mission", "Target", "RA", "Dec")
		fmt.Println("----------------------------------------------------------------------")
		for _, obs := range observations {
			fmt.Printf("%-12s  %-10s  %-20s  %10.4f  %10.4f\n",
				obs.ObsID, obs.Collection, obs.TargetName, obs.RA, obs.Dec)
		}
		fmt.Printf("Total: %d observations\n", len(observations))
	}

	manifest, err := db.ListManifest()
	if err != nil {
		return fmt.Errorf("listing manifest: %w", err)
	}

	if len(manifest) == 0 {
		fmt.Println("\nNo downloaded files")
		return nil
	}

	fmt.Println("\nDownloaded files:")
	fmt.Println("----------------------------------------------------------------------")
	fmt.Printf("%-40s  %-10s  %s\n", "Local path", "Size", "Downloaded")
	fmt.Println("----------------------------------------------------------------------")
	var total uint64
	for _, row := range manifest {
		fmt.Printf("%-40s  %-10s  %s\n",
			row.LocalPath, humanize.Bytes(uint64(row.Size)), row.DownloadedAt.Format("2006-01-02 15:04:05"))
		total += uint64(row.Size)
	}
	fmt.Printf("Total: %d files (%s)\n", len(manifest), humanize.Bytes(total))

	return nil
}
