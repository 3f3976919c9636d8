package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/astrolab/starcurve/pkg/units"
)

var convertCmd = &cobra.Command{
	Use:   "convert [quantity] [unit]",
	Short: "Convert a quantity between compatible units",
	Long: `Converts a quantity like "10GHz" or "1.2 km" to another unit of the
same physical dimension. Converting across dimensions is an error.

Example: starcurve convert 10GHz MHz`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	q, err := units.ParseQuantity(args[0])
	if err != nil {
		return err
	}
	target, err := units.ParseUnit(args[1])
	if err != nil {
		return err
	}

	converted, err := q.To(target)
	if err != nil {
		return err
	}

	fmt.Printf("%s = %s\n", q, converted)
	return nil
}
