package archive

import (
	"testing"

	"github.com/astrolab/starcurve/pkg/models"
)

func testProducts() []models.Product {
	return []models.Product{
		{ObsID: "obs-1", Collection: "TESS", ProductType: "SCIENCE", SubGroup: "LC", DataURI: "a"},
		{ObsID: "obs-1", Collection: "TESS", ProductType: "AUXILIARY", SubGroup: "TP", DataURI: "b"},
		{ObsID: "obs-2", Collection: "HST", ProductType: "SCIENCE", SubGroup: "LC", DataURI: "c"},
		{ObsID: "obs-3", Collection: "TESS", ProductType: "SCIENCE", SubGroup: "LC", DataURI: "d"},
	}
}

func TestFilterProducts(t *testing.T) {
	tcs := []struct {
		name       string
		predicates []Predicate
		wantURIs   []string
	}{
		{"no predicates keeps all", nil, []string{"a", "b", "c", "d"}},
		{"by collection", []Predicate{ByCollection("TESS")}, []string{"a", "b", "d"}},
		{"by type", []Predicate{ByProductType("SCIENCE")}, []string{"a", "c", "d"}},
		{"combined", []Predicate{ByCollection("TESS"), ByProductType("SCIENCE"), BySubGroup("LC")}, []string{"a", "d"}},
		{"no match", []Predicate{ByCollection("JWST")}, []string{}},
	}

	for _, tc := range tcs {
		got := FilterProducts(testProducts(), tc.predicates...)
		if len(got) != len(tc.wantURIs) {
			t.Fatalf("%s: got %d products; want %d", tc.name, len(got), len(tc.wantURIs))
		}
		for i, p := range got {
			if p.DataURI != tc.wantURIs[i] {
				t.Fatalf("%s: row %d = %q; want %q (order must be preserved)",
					tc.name, i, p.DataURI, tc.wantURIs[i])
			}
		}
	}
}
