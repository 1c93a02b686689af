package catalog

import (
	"net/http"
	"strconv"
)

// ParseOptions reads the products-page query string into Options.
func ParseOptions(r *http.Request) Options {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}

	limit, _ := strconv.Atoi(q.Get("limit"))
	if limit < 1 {
		limit = 12
	}

	opts := Options{
		Search:   q.Get("search"),
		Category: q.Get("category"),
		Sort:     q.Get("sort"),
		Page:     page,
		Limit:    limit,
	}

	if s := q.Get("minPrice"); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			opts.MinPrice = &v
		}
	}
	if s := q.Get("maxPrice"); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			opts.MaxPrice = &v
		}
	}

	return opts
}
