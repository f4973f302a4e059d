// Package search implements the catalog query engine: free-text search with
// filters, suggestion generation, and recent/trending search history.
package search

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"shopfront/catalog"
	"shopfront/domain"
)

const (
	maxSuggestions    = 8
	maxRecentSearches = 10
	maxTrending       = 5
)

// trendingTerms is the curated fallback shown before a user builds up
// search history.
var trendingTerms = []string{"iPhone", "Laptop", "Headphones", "Sneakers", "Smart TV", "Camera"}

// Engine owns all query-side state: the current term, derived suggestion
// and result lists, recent-search history and the active filter set. All
// recomputation is deterministic over the injected immutable catalog.
type Engine struct {
	mu      sync.RWMutex
	catalog *catalog.Catalog
	storage domain.Storage

	term        string
	suggestions []string
	recent      []string
	results     []domain.Product
	hasSearched bool
	filters     domain.FilterSet
}

// New constructs an Engine over the given catalog, rehydrating recent
// searches from storage. A corrupt persisted list is discarded.
func New(ctx context.Context, cat *catalog.Catalog, storage domain.Storage) *Engine {
	e := &Engine{
		catalog: cat,
		storage: storage,
		filters: domain.DefaultFilters(),
	}
	if raw, ok, err := storage.Get(ctx, domain.KeyRecentSearches); err == nil && ok {
		var recent []string
		if err := json.Unmarshal([]byte(raw), &recent); err != nil {
			slog.Warn("discarding corrupt recent searches", "error", err)
			_ = storage.Delete(ctx, domain.KeyRecentSearches)
		} else {
			if len(recent) > maxRecentSearches {
				recent = recent[:maxRecentSearches]
			}
			e.recent = recent
		}
	}
	return e
}

// GenerateSuggestions recomputes the suggestion list for the given term.
// Terms shorter than two characters clear the list. Matching is a
// case-insensitive substring scan over product names, brands, categories
// and features, deduplicated in first-match order and capped at eight.
func (e *Engine) GenerateSuggestions(term string) []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.suggestions = suggest(e.catalog.Products(), term)
	return append([]string(nil), e.suggestions...)
}

func suggest(products []domain.Product, term string) []string {
	if utf8.RuneCountInString(term) < 2 {
		return nil
	}
	needle := strings.ToLower(term)
	seen := make(map[string]bool)
	var out []string
	add := func(s string) {
		if len(out) >= maxSuggestions || seen[s] {
			return
		}
		if strings.Contains(strings.ToLower(s), needle) {
			seen[s] = true
			out = append(out, s)
		}
	}
	for _, p := range products {
		add(p.Name)
		add(p.Brand)
		add(p.Category)
		for _, f := range p.Features {
			add(f)
		}
	}
	return out
}

// Search runs the filter pipeline for the given term and filter set and
// records the outcome as the engine's current results. A non-empty term is
// promoted to the front of the recent-search history. Search never fails;
// an empty result list is a valid outcome.
func (e *Engine) Search(ctx context.Context, term string, filters domain.FilterSet) []domain.Product {
	e.mu.Lock()
	defer e.mu.Unlock()

	filters = filters.Normalize()
	results := apply(e.catalog.Products(), term, filters)

	if trimmed := strings.TrimSpace(term); trimmed != "" {
		e.rememberLocked(ctx, trimmed)
	}
	e.term = term
	e.filters = filters
	e.results = results
	e.hasSearched = true
	return append([]domain.Product(nil), results...)
}

// SearchCurrent re-runs the pipeline with the stored term and filters.
func (e *Engine) SearchCurrent(ctx context.Context) []domain.Product {
	e.mu.RLock()
	term, filters := e.term, e.filters
	e.mu.RUnlock()
	return e.Search(ctx, term, filters)
}

// apply is the query pipeline: each stage filters the previous stage's
// output and only the final sort may reorder.
func apply(products []domain.Product, term string, f domain.FilterSet) []domain.Product {
	results := products

	if needle := strings.ToLower(strings.TrimSpace(term)); needle != "" {
		results = keep(results, func(p domain.Product) bool {
			return matchesTerm(p, needle)
		})
	}
	if f.Category != "" {
		results = keep(results, func(p domain.Product) bool { return p.Category == f.Category })
	}
	if f.Brand != "" {
		results = keep(results, func(p domain.Product) bool { return p.Brand == f.Brand })
	}
	if f.MinRating > 0 {
		results = keep(results, func(p domain.Product) bool { return p.Rating >= f.MinRating })
	}
	if f.MinPrice > 0 || f.MaxPrice < domain.MaxPriceBound {
		results = keep(results, func(p domain.Product) bool {
			return p.Price >= f.MinPrice && p.Price <= f.MaxPrice
		})
	}
	if f.InStock {
		results = keep(results, func(p domain.Product) bool { return p.InStock })
	}
	if f.FastDelivery {
		results = keep(results, func(p domain.Product) bool { return p.FastDelivery })
	}

	switch f.SortBy {
	case domain.SortPriceLow:
		sort.SliceStable(results, func(i, j int) bool { return results[i].Price < results[j].Price })
	case domain.SortPriceHigh:
		sort.SliceStable(results, func(i, j int) bool { return results[i].Price > results[j].Price })
	case domain.SortRating:
		sort.SliceStable(results, func(i, j int) bool { return results[i].Rating > results[j].Rating })
	case domain.SortNewest:
		sort.SliceStable(results, func(i, j int) bool { return results[i].ID > results[j].ID })
	case domain.SortPopularity:
		sort.SliceStable(results, func(i, j int) bool { return results[i].Reviews > results[j].Reviews })
	case domain.SortDiscount:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].DiscountPercent() > results[j].DiscountPercent()
		})
	default:
		// featured keeps pipeline order
	}
	return results
}

func matchesTerm(p domain.Product, needle string) bool {
	if strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Brand), needle) ||
		strings.Contains(strings.ToLower(p.Category), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle) {
		return true
	}
	for _, f := range p.Features {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

func keep(in []domain.Product, pred func(domain.Product) bool) []domain.Product {
	out := in[:0:0]
	for _, p := range in {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}

// rememberLocked promotes term to the front of the recent list, dropping
// any earlier occurrence and capping the list. Callers hold e.mu.
func (e *Engine) rememberLocked(ctx context.Context, term string) {
	if len(e.recent) > 0 && e.recent[0] == term {
		return
	}
	next := make([]string, 0, len(e.recent)+1)
	next = append(next, term)
	for _, s := range e.recent {
		if s != term {
			next = append(next, s)
		}
	}
	if len(next) > maxRecentSearches {
		next = next[:maxRecentSearches]
	}
	e.recent = next
	e.persistRecentLocked(ctx)
}

func (e *Engine) persistRecentLocked(ctx context.Context) {
	b, err := json.Marshal(e.recent)
	if err != nil {
		return
	}
	if err := e.storage.Set(ctx, domain.KeyRecentSearches, string(b)); err != nil {
		slog.Warn("persist recent searches failed", "error", err)
	}
}

// TrendingSearches returns the curated trending terms the user has not
// already searched for, capped at five.
func (e *Engine) TrendingSearches() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	seen := make(map[string]bool, len(e.recent))
	for _, s := range e.recent {
		seen[s] = true
	}
	var out []string
	for _, t := range trendingTerms {
		if seen[t] {
			continue
		}
		out = append(out, t)
		if len(out) == maxTrending {
			break
		}
	}
	return out
}

// PopularCategories returns category names ordered by descending product
// count, ties broken by first appearance in the catalog.
func (e *Engine) PopularCategories() []string {
	counts := make(map[string]int)
	var order []string
	for _, p := range e.catalog.Products() {
		if _, seen := counts[p.Category]; !seen {
			order = append(order, p.Category)
		}
		counts[p.Category]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	return order
}

// SetTerm records the live input term and regenerates suggestions for it.
func (e *Engine) SetTerm(term string) []string {
	e.mu.Lock()
	e.term = term
	e.mu.Unlock()
	return e.GenerateSuggestions(term)
}

// SetFilters replaces the filter set wholesale.
func (e *Engine) SetFilters(f domain.FilterSet) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.filters = f.Normalize()
}

// SetSort changes only the sort order of the active filter set.
func (e *Engine) SetSort(sortBy string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	f := e.filters
	f.SortBy = sortBy
	e.filters = f.Normalize()
}

// ClearFilters resets the filter set to defaults. Results are not
// recomputed; callers re-run Search to refresh them.
func (e *Engine) ClearFilters() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.filters = domain.DefaultFilters()
}

// ClearSearch drops the term, suggestions and results. Recent searches are
// kept.
func (e *Engine) ClearSearch() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.term = ""
	e.suggestions = nil
	e.results = nil
	e.hasSearched = false
}

// ClearRecent empties the recent-search history, including its persisted
// copy.
func (e *Engine) ClearRecent(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.recent = nil
	if err := e.storage.Delete(ctx, domain.KeyRecentSearches); err != nil {
		slog.Warn("clear recent searches failed", "error", err)
	}
}

// Term returns the current search term.
func (e *Engine) Term() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.term
}

// Filters returns the active filter set.
func (e *Engine) Filters() domain.FilterSet {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.filters
}

// Results returns a copy of the last computed result list.
func (e *Engine) Results() []domain.Product {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]domain.Product(nil), e.results...)
}

// Suggestions returns a copy of the current suggestion list.
func (e *Engine) Suggestions() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]string(nil), e.suggestions...)
}

// Recent returns a copy of the recent-search history, most recent first.
func (e *Engine) Recent() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]string(nil), e.recent...)
}

// HasSearched reports whether a search has run since the last clear.
func (e *Engine) HasSearched() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.hasSearched
}
