package domain

import "testing"

func TestDefaultFilters(t *testing.T) {
	f := DefaultFilters()
	if f.Category != "" || f.Brand != "" || f.MinRating != 0 ||
		f.MinPrice != 0 || f.MaxPrice != MaxPriceBound ||
		f.InStock || f.FastDelivery || f.SortBy != SortFeatured {
		t.Fatalf("unexpected defaults: %+v", f)
	}
}

func TestFilterSetNormalize(t *testing.T) {
	t.Run("swaps inverted price bounds", func(t *testing.T) {
		f := FilterSet{MinPrice: 200, MaxPrice: 100}.Normalize()
		if f.MinPrice != 100 || f.MaxPrice != 200 {
			t.Fatalf("bounds not normalized: %+v", f)
		}
	})

	t.Run("unknown sort falls back to featured", func(t *testing.T) {
		f := FilterSet{SortBy: "cheapest"}.Normalize()
		if f.SortBy != SortFeatured {
			t.Fatalf("SortBy = %q, want %q", f.SortBy, SortFeatured)
		}
	})

	t.Run("known sorts preserved", func(t *testing.T) {
		for _, s := range []string{SortFeatured, SortPriceLow, SortPriceHigh, SortRating, SortNewest, SortPopularity, SortDiscount} {
			if got := (FilterSet{SortBy: s}).Normalize().SortBy; got != s {
				t.Fatalf("SortBy %q changed to %q", s, got)
			}
		}
	})
}

func TestErrorPredicates(t *testing.T) {
	if !IsProductNotFoundError(NewProductNotFoundError(7)) {
		t.Fatal("IsProductNotFoundError failed")
	}
	if !IsInvalidProductError(NewInvalidProductError("name", "empty", "")) {
		t.Fatal("IsInvalidProductError failed")
	}
	if !IsDuplicateProductError(NewDuplicateProductError(7)) {
		t.Fatal("IsDuplicateProductError failed")
	}
	if !IsInvalidCredentialsError(NewInvalidCredentialsError("email required")) {
		t.Fatal("IsInvalidCredentialsError failed")
	}
	if IsProductNotFoundError(NewInvalidCredentialsError("x")) {
		t.Fatal("predicate matched the wrong type")
	}
}
