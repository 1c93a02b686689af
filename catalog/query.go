package catalog

import (
	"sort"

	"kitabdunyasi/models"
	"kitabdunyasi/utils"
)

// Sort orders accepted by Query.
const (
	SortNameAsc    = "name-asc"
	SortNameDesc   = "name-desc"
	SortPriceAsc   = "price-asc"
	SortPriceDesc  = "price-desc"
	SortRatingDesc = "rating-desc"
)

// Options is the filter specification for a catalog query. Absent
// predicates impose no constraint; present ones are ANDed.
type Options struct {
	Search   string
	Category string
	MinPrice *float64
	MaxPrice *float64
	Sort     string
	Page     int
	Limit    int
}

// Query filters, sorts and paginates a catalog snapshot. It is a pure
// function of its arguments: identical inputs always produce identical
// output order and total. A page past the end returns an empty slice with
// the correct total, not an error.
func Query(items []models.Book, opts Options) ([]models.Book, int) {
	filtered := make([]models.Book, 0, len(items))
	for _, b := range items {
		if !matches(b, opts) {
			continue
		}
		filtered = append(filtered, b)
	}

	applySort(filtered, opts.Sort)

	total := len(filtered)

	page := opts.Page
	if page < 1 {
		page = 1
	}
	limit := opts.Limit
	if limit < 1 {
		limit = 12
	}

	start := (page - 1) * limit
	if start >= total {
		return []models.Book{}, total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return filtered[start:end], total
}

func matches(b models.Book, opts Options) bool {
	if opts.Search != "" {
		if !utils.ContainsIgnoreCase(b.Title, opts.Search) &&
			!utils.ContainsIgnoreCase(b.Author, opts.Search) &&
			!utils.ContainsIgnoreCase(b.Description, opts.Search) {
			return false
		}
	}
	if opts.Category != "" && b.Category != opts.Category {
		return false
	}
	if opts.MinPrice != nil && b.Price < *opts.MinPrice {
		return false
	}
	if opts.MaxPrice != nil && b.Price > *opts.MaxPrice {
		return false
	}
	return true
}

// applySort sorts in place. Stable, so ties keep their input order and
// repeated queries stay deterministic.
func applySort(books []models.Book, order string) {
	switch order {
	case SortNameDesc:
		sort.SliceStable(books, func(i, j int) bool { return books[i].Title > books[j].Title })
	case SortPriceAsc:
		sort.SliceStable(books, func(i, j int) bool { return books[i].Price < books[j].Price })
	case SortPriceDesc:
		sort.SliceStable(books, func(i, j int) bool { return books[i].Price > books[j].Price })
	case SortRatingDesc:
		sort.SliceStable(books, func(i, j int) bool { return books[i].Rating > books[j].Rating })
	default: // SortNameAsc
		sort.SliceStable(books, func(i, j int) bool { return books[i].Title < books[j].Title })
	}
}

// Featured returns up to n featured books in catalog order.
func Featured(items []models.Book, n int) []models.Book {
	out := make([]models.Book, 0, n)
	for _, b := range items {
		if !b.Featured {
			continue
		}
		out = append(out, b)
		if len(out) == n {
			break
		}
	}
	return out
}
