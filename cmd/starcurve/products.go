package main

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/astrolab/starcurve/internal/archive"
	"github.com/astrolab/starcurve/pkg/models"
)

var (
	productsTarget   string
	productsMission  string
	productsType     string
	productsSubGroup string
)

var productsCmd = &cobra.Command{
	Use:   "products [obs-id...]",
	Short: "List downloadable products for observations",
	Long: `Fetches the product listing for the given observation IDs (or for all
stored observations of --target) and stores it in the local database.
Rows can be narrowed with equality filters on mission, product type and
sub-group.`,
	RunE: runProducts,
}

func init() {
	productsCmd.Flags().StringVar(&productsTarget, "target", "", "Use stored observations for this target")
	productsCmd.Flags().StringVar(&productsMission, "mission", "", "Filter by mission collection (e.g. TESS)")
	productsCmd.Flags().StringVar(&productsType, "type", "", "Filter by product type (e.g. SCIENCE)")
	productsCmd.Flags().StringVar(&productsSubGroup, "subgroup", "", "Filter by sub-group (e.g. LC)")
	rootCmd.AddCommand(productsCmd)
}

// selectObservations resolves the observation set from args or the database
func selectObservations(args []string) ([]models.Observation, error) {
	db, err := openDB()
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if len(args) > 0 {
		observations := make([]models.Observation, 0, len(args))
		for _, id := range args {
			observations = append(observations, models.Observation{ObsID: id})
		}
		return observations, nil
	}

	observations, err := db.ListObservations(productsTarget)
	if err != nil {
		return nil, fmt.Errorf("listing stored observations: %w", err)
	}
	if len(observations) == 0 {
		if productsTarget != "" {
			return nil, fmt.Errorf("no stored observations for %q (run 'starcurve query' first)", productsTarget)
		}
		return nil, fmt.Errorf("no stored observations (run 'starcurve query' first)")
	}
	return observations, nil
}

// productFilters builds the predicate list from the filter flags
func productFilters() []archive.Predicate {
	var predicates []archive.Predicate
	if productsMission != "" {
		predicates = append(predicates, archive.ByCollection(productsMission))
	}
	if productsType != "" {
		predicates = append(predicates, archive.ByProductType(productsType))
	}
	if productsSubGroup != "" {
		predicates = append(predicates, archive.BySubGroup(productsSubGroup))
	}
	return predicates
}

func runProducts(cmd *cobra.Command, args []string) error {
	// Load config
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	observations, err := selectObservations(args)
	if err != nil {
		return err
	}

	// Fetch the product listing
	client := newArchiveClient(cfg)
	fmt.Printf("Listing products for %d observations...\n", len(observations))
	products, err := client.ListProducts(context.Background(), observations)
	if err != nil {
		return fmt.Errorf("listing products: %w", err)
	}

	// Store the full listing before filtering
	db, err := openDB()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()
	for i := range products {
		if err := db.InsertProduct(&products[i]); err != nil {
			return fmt.Errorf("inserting product: %w", err)
		}
	}

	filtered := archive.FilterProducts(products, productFilters()...)
	if len(filtered) == 0 {
		fmt.Printf("No products match (of %d returned)\n", len(products))
		return nil
	}

	fmt.Printf("\n%-12s  %-8s  %-8s  %-10s  %s\n", "Obs ID", "Type", "Group", "Size", "Data URI")
	fmt.Println("--------------------------------------------------------------------------")
	for _, p := range filtered {
		fmt.Printf("%-12s  %-8s  %-8s  %-10s  %s\n",
			p.ObsID, p.ProductType, p.SubGroup, humanize.Bytes(uint64(p.Size)), p.DataURI)
	}

	fmt.Printf("\n✓ %d of %d products match filters\n", len(filtered), len(products))
	return nil
}
