package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/astrolab/starcurve/internal/lightcurve"
	"github.com/astrolab/starcurve/internal/plot"
)

var (
	plotFormat     string
	plotColumn     string
	plotLabel      string
	plotMarkerSize float64
	plotTitle      string
	plotOut        string
)

var plotCmd = &cobra.Command{
	Use:   "plot [file]",
	Short: "Plot a light-curve column from a downloaded file",
	Long: `Reads a downloaded time-series file and renders a scatter plot of one
measurement column against time. The output format follows the file
extension of --out (.png, .svg, .pdf).`,
	Args: cobra.ExactArgs(1),
	RunE: runPlot,
}

func init() {
	plotCmd.Flags().StringVar(&plotFormat, "format", "tess.fits", "Time-series file format tag")
	plotCmd.Flags().StringVar(&plotColumn, "column", "PDCSAP_FLUX", "Measurement column to plot")
	plotCmd.Flags().StringVar(&plotLabel, "label", "", "Legend label for the marker layer (default: column name)")
	plotCmd.Flags().Float64Var(&plotMarkerSize, "marker-size", 1.5, "Marker radius in points")
	plotCmd.Flags().StringVar(&plotTitle, "title", "", "Plot title (default: file name)")
	plotCmd.Flags().StringVar(&plotOut, "out", "lightcurve.png", "Output image path")
	rootCmd.AddCommand(plotCmd)
}

func runPlot(cmd *cobra.Command, args []string) error {
	path := args[0]

	series, err := lightcurve.Read(path, plotFormat)
	if err != nil {
		return fmt.Errorf("reading light curve: %w", err)
	}
	fmt.Printf("Read %d cadences from %s\n", series.Len(), path)

	title := plotTitle
	if title == "" {
		title = path
	}
	label := plotLabel
	if label == "" {
		label = plotColumn
	}

	p := plot.New(title)
	p.SetXLabel("Time (days)")
	p.SetYLabel("Flux (e-/s)")

	layer, err := p.AddMarkers(series, plotColumn, label, plotMarkerSize)
	if err != nil {
		return fmt.Errorf("adding markers: %w", err)
	}

	if err := p.Render(plotOut); err != nil {
		return err
	}

	fmt.Printf("✓ Plotted %d points to %s\n", layer.Points, plotOut)
	return nil
}
