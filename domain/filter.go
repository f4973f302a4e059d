package domain

// Sort orders accepted by FilterSet.SortBy.
const (
	SortFeatured   = "featured"
	SortPriceLow   = "price-low"
	SortPriceHigh  = "price-high"
	SortRating     = "rating"
	SortNewest     = "newest"
	SortPopularity = "popularity"
	SortDiscount   = "discount"
)

// MaxPriceBound is the upper price limit that means "unconstrained".
const MaxPriceBound = 5000

// FilterSet is the combined set of constraints applied to a catalog query.
// Zero values mean unconstrained, except MaxPrice whose unconstrained value
// is MaxPriceBound. The set is replaced wholesale on every filter change.
type FilterSet struct {
	Category     string
	Brand        string
	MinRating    float64
	MinPrice     float64
	MaxPrice     float64
	InStock      bool
	FastDelivery bool
	SortBy       string
}

// DefaultFilters returns the unconstrained filter set.
func DefaultFilters() FilterSet {
	return FilterSet{
		MaxPrice: MaxPriceBound,
		SortBy:   SortFeatured,
	}
}

// Normalize enforces MinPrice <= MaxPrice and falls back to the featured
// sort for unknown SortBy values.
func (f FilterSet) Normalize() FilterSet {
	if f.MaxPrice < f.MinPrice {
		f.MinPrice, f.MaxPrice = f.MaxPrice, f.MinPrice
	}
	switch f.SortBy {
	case SortFeatured, SortPriceLow, SortPriceHigh, SortRating, SortNewest, SortPopularity, SortDiscount:
	default:
		f.SortBy = SortFeatured
	}
	return f
}
