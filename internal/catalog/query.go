package catalog

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/veloura/storefront/internal/model"
)

// SortKey selects the ordering of a catalog view.
type SortKey string

const (
	// SortNone preserves the filtered order (original catalog order).
	SortNone SortKey = "none"
	// SortPriceAsc orders by ascending numeric price.
	SortPriceAsc SortKey = "price-asc"
	// SortPriceDesc orders by descending numeric price.
	SortPriceDesc SortKey = "price-desc"
	// SortNameAsc orders by locale-sensitive product name.
	SortNameAsc SortKey = "name-asc"
)

// ParseSortKey maps a request parameter to a SortKey. It accepts the
// canonical key names plus the labels the storefront UI uses in its sort
// dropdown.
func ParseSortKey(raw string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "none", "default":
		return SortNone, nil
	case "price-asc", "price-low":
		return SortPriceAsc, nil
	case "price-desc", "price-high":
		return SortPriceDesc, nil
	case "name-asc", "name":
		return SortNameAsc, nil
	default:
		return SortNone, fmt.Errorf("unknown sort key: %q", raw)
	}
}

// FilterAndSort derives a catalog view: products matching the search term, in
// the order the sort key demands. The input slice is never mutated and the
// result is a fresh slice, so repeated calls with the same arguments always
// yield the same sequence.
//
// Matching is a case-insensitive substring test against name, description and
// category. An empty or whitespace-only term matches everything.
func FilterAndSort(products []model.Product, term string, key SortKey) []model.Product {
	needle := strings.ToLower(strings.TrimSpace(term))

	view := make([]model.Product, 0, len(products))
	for _, p := range products {
		if needle == "" || matches(p, needle) {
			view = append(view, p)
		}
	}

	switch key {
	case SortPriceAsc:
		sort.SliceStable(view, func(i, j int) bool { return view[i].Price < view[j].Price })
	case SortPriceDesc:
		sort.SliceStable(view, func(i, j int) bool { return view[i].Price > view[j].Price })
	case SortNameAsc:
		coll := collate.New(language.English)
		sort.SliceStable(view, func(i, j int) bool {
			return coll.CompareString(view[i].Name, view[j].Name) < 0
		})
	}

	return view
}

func matches(p model.Product, needle string) bool {
	return strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle) ||
		strings.Contains(strings.ToLower(p.Category), needle)
}
