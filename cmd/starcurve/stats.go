package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/astrolab/starcurve/internal/lightcurve"
)

var statsFormat string

var statsCmd = &cobra.Command{
	Use:   "stats [file]",
	Short: "Summarize a downloaded light curve",
	Long:  `Reads a downloaded time-series file and prints per-column statistics.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().StringVar(&statsFormat, "format", "tess.fits", "Time-series file format tag")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	path := args[0]

	series, err := lightcurve.Read(path, statsFormat)
	if err != nil {
		return fmt.Errorf("reading light curve: %w", err)
	}

	s := lightcurve.Summarize(series)

	fmt.Printf("%s\n", s.Name)
	fmt.Printf("Cadences: %d  Time: %.4f – %.4f (%.4f days)\n",
		s.Points, s.TimeStart, s.TimeEnd, s.TimeEnd-s.TimeStart)
	fmt.Println("----------------------------------------------------------------------")
	fmt.Printf("%-14s  %8s  %14s  %14s  %14s\n", "Column", "Valid", "Min", "Mean", "Max")
	fmt.Println("----------------------------------------------------------------------")
	for _, col := range s.Columns {
		fmt.Printf("%-14s  %8d  %14.4f  %14.4f  %14.4f\n",
			col.Name, col.Count, col.Min, col.Mean, col.Max)
	}

	return nil
}
