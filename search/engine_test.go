package search

import (
	"context"
	"reflect"
	"testing"

	"shopfront/catalog"
	"shopfront/domain"
	"shopfront/store"
)

func testCatalog(t *testing.T, products []domain.Product) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(products)
	if err != nil {
		t.Fatalf("test catalog: %v", err)
	}
	return c
}

func newEngine(t *testing.T, products []domain.Product) (*Engine, *store.InMemoryStore) {
	t.Helper()
	kv := store.NewInMemoryStore()
	return New(context.Background(), testCatalog(t, products), kv), kv
}

var fixture = []domain.Product{
	{ID: 1, Name: "iPhone 15", Brand: "Apple", Category: "Electronics", Price: 100,
		Rating: 4.8, Reviews: 200, InStock: true, FastDelivery: true,
		Features: []string{"5G", "OLED display"}, Description: "Flagship phone"},
	{ID: 2, Name: "Budget Phone", Brand: "Nokia", Category: "Electronics", Price: 50,
		Rating: 3.9, Reviews: 900, InStock: true,
		Features: []string{"Long battery"}},
	{ID: 3, Name: "Air Max", Brand: "Nike", Category: "Footwear", Price: 120,
		OriginalPrice: 160, Rating: 4.4, Reviews: 500, InStock: false, FastDelivery: true,
		Features: []string{"Air cushioning"}},
	{ID: 4, Name: "Leather Wallet", Brand: "Fossil", Category: "Accessories", Price: 45,
		OriginalPrice: 50, Rating: 4.1, Reviews: 60, InStock: true},
}

func ids(products []domain.Product) []int {
	out := make([]int, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestSearchPriceLowScenario(t *testing.T) {
	e, _ := newEngine(t, []domain.Product{
		{ID: 1, Name: "A", Price: 100},
		{ID: 2, Name: "B", Price: 50},
	})
	f := domain.DefaultFilters()
	f.SortBy = domain.SortPriceLow

	got := ids(e.Search(context.Background(), "", f))
	if !reflect.DeepEqual(got, []int{2, 1}) {
		t.Fatalf("results = %v, want [2 1]", got)
	}
}

func TestSearchIsIdempotent(t *testing.T) {
	e, _ := newEngine(t, fixture)
	ctx := context.Background()
	first := e.Search(ctx, "", domain.DefaultFilters())
	second := e.Search(ctx, "", domain.DefaultFilters())
	if !reflect.DeepEqual(first, second) {
		t.Fatal("repeated identical searches differ")
	}
}

func TestSearchTermMatchesAllTextFields(t *testing.T) {
	e, _ := newEngine(t, fixture)
	ctx := context.Background()
	f := domain.DefaultFilters()

	tests := []struct {
		name string
		term string
		want []int
	}{
		{"name match", "iphone", []int{1}},
		{"brand match", "nokia", []int{2}},
		{"category match", "footwear", []int{3}},
		{"description match", "flagship", []int{1}},
		{"feature match", "battery", []int{2}},
		{"trimmed term", "  wallet  ", []int{4}},
		{"no match yields empty, not error", "zzz", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(e.Search(ctx, tt.term, f))
			want := tt.want
			if len(got) == 0 && len(want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, want) {
				t.Fatalf("Search(%q) = %v, want %v", tt.term, got, want)
			}
		})
	}
}

func TestFilterPredicatesHold(t *testing.T) {
	e, _ := newEngine(t, fixture)
	ctx := context.Background()

	tests := []struct {
		name    string
		filters domain.FilterSet
		check   func(domain.Product) bool
	}{
		{"category", domain.FilterSet{Category: "Electronics", MaxPrice: domain.MaxPriceBound},
			func(p domain.Product) bool { return p.Category == "Electronics" }},
		{"brand", domain.FilterSet{Brand: "Nike", MaxPrice: domain.MaxPriceBound},
			func(p domain.Product) bool { return p.Brand == "Nike" }},
		{"min rating", domain.FilterSet{MinRating: 4.2, MaxPrice: domain.MaxPriceBound},
			func(p domain.Product) bool { return p.Rating >= 4.2 }},
		{"price range", domain.FilterSet{MinPrice: 50, MaxPrice: 110},
			func(p domain.Product) bool { return p.Price >= 50 && p.Price <= 110 }},
		{"in stock", domain.FilterSet{InStock: true, MaxPrice: domain.MaxPriceBound},
			func(p domain.Product) bool { return p.InStock }},
		{"fast delivery", domain.FilterSet{FastDelivery: true, MaxPrice: domain.MaxPriceBound},
			func(p domain.Product) bool { return p.FastDelivery }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := e.Search(ctx, "", tt.filters)
			if len(results) == 0 {
				t.Fatal("fixture should match at least one product")
			}
			cat := testCatalog(t, fixture)
			for _, p := range results {
				if !tt.check(p) {
					t.Fatalf("product %d violates predicate", p.ID)
				}
				if _, err := cat.ByID(p.ID); err != nil {
					t.Fatalf("result %d not in catalog", p.ID)
				}
			}
		})
	}
}

func TestTighteningAFilterNeverGrowsResults(t *testing.T) {
	e, _ := newEngine(t, fixture)
	ctx := context.Background()

	loose := domain.DefaultFilters()
	base := len(e.Search(ctx, "", loose))

	for rating := 1.0; rating <= 5.0; rating++ {
		f := loose
		f.MinRating = rating
		n := len(e.Search(ctx, "", f))
		if n > base {
			t.Fatalf("minRating=%v grew results from %d to %d", rating, base, n)
		}
		base = n
	}
}

func TestSortOrders(t *testing.T) {
	e, _ := newEngine(t, fixture)
	ctx := context.Background()

	sorted := func(sortBy string, le func(a, b domain.Product) bool) {
		t.Helper()
		f := domain.DefaultFilters()
		f.SortBy = sortBy
		results := e.Search(ctx, "", f)
		for i := 1; i < len(results); i++ {
			if !le(results[i-1], results[i]) {
				t.Fatalf("%s: products %d and %d out of order", sortBy, results[i-1].ID, results[i].ID)
			}
		}
	}

	sorted(domain.SortPriceLow, func(a, b domain.Product) bool { return a.Price <= b.Price })
	sorted(domain.SortPriceHigh, func(a, b domain.Product) bool { return a.Price >= b.Price })
	sorted(domain.SortRating, func(a, b domain.Product) bool { return a.Rating >= b.Rating })
	sorted(domain.SortNewest, func(a, b domain.Product) bool { return a.ID >= b.ID })
	sorted(domain.SortPopularity, func(a, b domain.Product) bool { return a.Reviews >= b.Reviews })
	sorted(domain.SortDiscount, func(a, b domain.Product) bool {
		return a.DiscountPercent() >= b.DiscountPercent()
	})
}

func TestFeaturedKeepsCatalogOrder(t *testing.T) {
	e, _ := newEngine(t, fixture)
	got := ids(e.Search(context.Background(), "", domain.DefaultFilters()))
	if !reflect.DeepEqual(got, []int{1, 2, 3, 4}) {
		t.Fatalf("featured order = %v, want catalog order", got)
	}
}

func TestSuggestions(t *testing.T) {
	e, _ := newEngine(t, fixture)

	t.Run("short terms clear suggestions", func(t *testing.T) {
		if got := e.GenerateSuggestions("i"); got != nil {
			t.Fatalf("expected nil for 1-char term, got %v", got)
		}
	})

	t.Run("matches across fields in scan order", func(t *testing.T) {
		got := e.GenerateSuggestions("air")
		// product 3 contributes its name first, then its feature
		want := []string{"Air Max", "Air cushioning"}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("suggestions = %v, want %v", got, want)
		}
	})

	t.Run("capped at eight", func(t *testing.T) {
		var many []domain.Product
		for i := 1; i <= 12; i++ {
			many = append(many, domain.Product{
				ID: i, Name: "Giga Gadget " + string(rune('A'+i-1)), Brand: "Giga",
				Category: "Gigaware", Price: 1,
			})
		}
		big, _ := newEngine(t, many)
		if got := big.GenerateSuggestions("giga"); len(got) != 8 {
			t.Fatalf("suggestion count = %d, want 8", len(got))
		}
	})

	t.Run("deduplicates repeated values", func(t *testing.T) {
		dup := []domain.Product{
			{ID: 1, Name: "Widget", Brand: "Acme", Category: "Tools", Price: 1},
			{ID: 2, Name: "Widget Pro", Brand: "Acme", Category: "Tools", Price: 2},
		}
		d, _ := newEngine(t, dup)
		got := d.GenerateSuggestions("acme")
		if !reflect.DeepEqual(got, []string{"Acme"}) {
			t.Fatalf("suggestions = %v, want [Acme]", got)
		}
	})
}

func TestRecentSearches(t *testing.T) {
	ctx := context.Background()

	t.Run("most recent first with dedup", func(t *testing.T) {
		e, _ := newEngine(t, fixture)
		f := domain.DefaultFilters()
		e.Search(ctx, "phone", f)
		e.Search(ctx, "wallet", f)
		e.Search(ctx, "phone", f)

		if got := e.Recent(); !reflect.DeepEqual(got, []string{"phone", "wallet"}) {
			t.Fatalf("recent = %v, want [phone wallet]", got)
		}
	})

	t.Run("repeating the newest term does not duplicate", func(t *testing.T) {
		e, _ := newEngine(t, fixture)
		f := domain.DefaultFilters()
		e.Search(ctx, "phone", f)
		e.Search(ctx, "phone", f)
		if got := e.Recent(); !reflect.DeepEqual(got, []string{"phone"}) {
			t.Fatalf("recent = %v, want [phone]", got)
		}
	})

	t.Run("empty terms are not recorded", func(t *testing.T) {
		e, _ := newEngine(t, fixture)
		f := domain.DefaultFilters()
		e.Search(ctx, "", f)
		e.Search(ctx, "   ", f)
		if got := e.Recent(); len(got) != 0 {
			t.Fatalf("recent = %v, want empty", got)
		}
	})

	t.Run("capped at ten", func(t *testing.T) {
		e, _ := newEngine(t, fixture)
		f := domain.DefaultFilters()
		terms := []string{"a1", "a2", "a3", "a4", "a5", "a6", "a7", "a8", "a9", "a10", "a11", "a12"}
		for _, term := range terms {
			e.Search(ctx, term, f)
		}
		got := e.Recent()
		if len(got) != 10 {
			t.Fatalf("recent length = %d, want 10", len(got))
		}
		if got[0] != "a12" || got[9] != "a3" {
			t.Fatalf("recent window wrong: %v", got)
		}
	})

	t.Run("persists and rehydrates", func(t *testing.T) {
		kv := store.NewInMemoryStore()
		cat := testCatalog(t, fixture)
		e1 := New(ctx, cat, kv)
		e1.Search(ctx, "phone", domain.DefaultFilters())
		e1.Search(ctx, "wallet", domain.DefaultFilters())

		e2 := New(ctx, cat, kv)
		if got := e2.Recent(); !reflect.DeepEqual(got, []string{"wallet", "phone"}) {
			t.Fatalf("rehydrated recent = %v", got)
		}
	})

	t.Run("corrupt persisted list is discarded", func(t *testing.T) {
		kv := store.NewInMemoryStore()
		_ = kv.Set(ctx, domain.KeyRecentSearches, "{corrupt")
		e := New(ctx, testCatalog(t, fixture), kv)
		if got := e.Recent(); len(got) != 0 {
			t.Fatalf("recent = %v, want empty after corrupt state", got)
		}
		if _, ok, _ := kv.Get(ctx, domain.KeyRecentSearches); ok {
			t.Fatal("corrupt value should have been deleted")
		}
	})

	t.Run("clear removes the persisted key", func(t *testing.T) {
		kv := store.NewInMemoryStore()
		e := New(ctx, testCatalog(t, fixture), kv)
		e.Search(ctx, "phone", domain.DefaultFilters())
		e.ClearRecent(ctx)
		if len(e.Recent()) != 0 {
			t.Fatal("recent not cleared")
		}
		if _, ok, _ := kv.Get(ctx, domain.KeyRecentSearches); ok {
			t.Fatal("persisted recent searches not deleted")
		}
	})
}

func TestTrendingSearches(t *testing.T) {
	ctx := context.Background()
	e, _ := newEngine(t, fixture)

	got := e.TrendingSearches()
	if len(got) != 5 {
		t.Fatalf("trending length = %d, want 5", len(got))
	}

	// searching one of the trending terms excludes it
	e.Search(ctx, "iPhone", domain.DefaultFilters())
	got = e.TrendingSearches()
	for _, term := range got {
		if term == "iPhone" {
			t.Fatal("recently searched term still trending")
		}
	}
	if len(got) != 5 {
		t.Fatalf("trending should backfill to 5, got %d", len(got))
	}
}

func TestPopularCategories(t *testing.T) {
	e, _ := newEngine(t, fixture)
	got := e.PopularCategories()
	// Electronics has two products; Footwear and Accessories tie at one and
	// keep first-appearance order
	want := []string{"Electronics", "Footwear", "Accessories"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("categories = %v, want %v", got, want)
	}
}

func TestClearFiltersDoesNotRecompute(t *testing.T) {
	ctx := context.Background()
	e, _ := newEngine(t, fixture)

	f := domain.DefaultFilters()
	f.Category = "Electronics"
	before := e.Search(ctx, "", f)

	e.ClearFilters()
	if e.Filters() != domain.DefaultFilters() {
		t.Fatal("filters not reset")
	}
	if !reflect.DeepEqual(e.Results(), before) {
		t.Fatal("results changed without a new search")
	}
	if !e.HasSearched() {
		t.Fatal("hasSearched should survive a filter reset")
	}
}

func TestClearSearch(t *testing.T) {
	ctx := context.Background()
	e, _ := newEngine(t, fixture)
	e.SetTerm("phone")
	e.Search(ctx, "phone", domain.DefaultFilters())

	e.ClearSearch()
	if e.Term() != "" || e.HasSearched() || len(e.Results()) != 0 || len(e.Suggestions()) != 0 {
		t.Fatal("clear search left state behind")
	}
	if len(e.Recent()) == 0 {
		t.Fatal("clear search must keep recent searches")
	}
}

func TestSetTermRegeneratesSuggestions(t *testing.T) {
	e, _ := newEngine(t, fixture)
	got := e.SetTerm("nokia")
	if !reflect.DeepEqual(got, []string{"Nokia"}) {
		t.Fatalf("suggestions = %v, want [Nokia]", got)
	}
	if e.Term() != "nokia" {
		t.Fatalf("term = %q", e.Term())
	}
}

func TestSetSortKeepsOtherFilters(t *testing.T) {
	e, _ := newEngine(t, fixture)
	f := domain.DefaultFilters()
	f.Category = "Electronics"
	e.SetFilters(f)
	e.SetSort(domain.SortPriceHigh)

	got := e.Filters()
	if got.Category != "Electronics" || got.SortBy != domain.SortPriceHigh {
		t.Fatalf("filters = %+v", got)
	}
}
