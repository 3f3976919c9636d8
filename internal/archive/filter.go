package archive

import "github.com/astrolab/starcurve/pkg/models"

// Predicate selects product rows by column value.
type Predicate func(models.Product) bool

// ByCollection matches products from a mission collection (e.g. "TESS").
func ByCollection(name string) Predicate {
	return func(p models.Product) bool { return p.Collection == name }
}

// ByProductType matches products of a type (e.g. "SCIENCE").
func ByProductType(productType string) Predicate {
	return func(p models.Product) bool { return p.ProductType == productType }
}

// BySubGroup matches products of a sub-group (e.g. "LC").
func BySubGroup(subGroup string) Predicate {
	return func(p models.Product) bool { return p.SubGroup == subGroup }
}

// FilterProducts returns the products matching every predicate,
// preserving input order. No match yields an empty result, not an error.
func FilterProducts(products []models.Product, predicates ...Predicate) []models.Product {
	filtered := []models.Product{}
	for _, p := range products {
		keep := true
		for _, match := range predicates {
			if !match(p) {
				keep = false
				break
			}
		}
		if keep {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
