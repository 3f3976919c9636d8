package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/astrolab/starcurve/pkg/units"
)

var (
	radianceTemp string
	radianceFreq string
)

var radianceCmd = &cobra.Command{
	Use:   "radiance",
	Short: "Compute Rayleigh-Jeans blackbody spectral radiance",
	Long: `Computes the Rayleigh-Jeans approximation 2 f² k_B T / c² for a
temperature and a frequency, printing the composed-unit result, its SI
decomposition and the flux-density equivalent in janskys.

Example: starcurve radiance --temp 5800K --freq 10GHz`,
	RunE: runRadiance,
}

func init() {
	radianceCmd.Flags().StringVar(&radianceTemp, "temp", "", "Blackbody temperature, e.g. 5800K")
	radianceCmd.Flags().StringVar(&radianceFreq, "freq", "", "Observing frequency, e.g. 10GHz")
	radianceCmd.MarkFlagRequired("temp")
	radianceCmd.MarkFlagRequired("freq")
	rootCmd.AddCommand(radianceCmd)
}

func runRadiance(cmd *cobra.Command, args []string) error {
	temp, err := units.ParseQuantity(radianceTemp)
	if err != nil {
		return fmt.Errorf("parsing --temp: %w", err)
	}
	freq, err := units.ParseQuantity(radianceFreq)
	if err != nil {
		return fmt.Errorf("parsing --freq: %w", err)
	}

	radiance, err := units.RayleighJeans(temp, freq)
	if err != nil {
		return err
	}

	si := radiance.SI()
	jansky, err := radiance.To(units.Jansky)
	if err != nil {
		return fmt.Errorf("converting to Jy: %w", err)
	}

	fmt.Printf("B(%s, %s) = %s\n", temp, freq, radiance)
	fmt.Printf("          = %s\n", si)
	fmt.Printf("          = %s (per sr)\n", jansky)
	return nil
}
