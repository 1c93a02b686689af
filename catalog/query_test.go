package catalog

import (
	"testing"

	"kitabdunyasi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func fixtureBooks() []models.Book {
	return []models.Book{
		{ID: 1, Title: "Koroğlu", Author: "Xalq yaradıcılığı", Category: models.CategoryTarixi, Price: 12.5, Rating: 4.8},
		{ID: 2, Title: "Sevil", Author: "Cəfər Cabbarlı", Category: models.CategoryDram, Price: 9.9, Rating: 4.1},
		{ID: 3, Title: "Əli və Nino", Author: "Qurban Səid", Category: models.CategoryRoman, Price: 16.0, Rating: 4.6},
		{ID: 4, Title: "Aşıq Qərib", Author: "Xalq yaradıcılığı", Category: models.CategoryPoeziya, Price: 10.75, Rating: 4.3},
		{ID: 5, Title: "Dədə Qorqud", Author: "Xalq yaradıcılığı", Category: models.CategoryTarixi, Price: 18.25, Rating: 4.7},
	}
}

func TestQuerySearchMatchesTitleAndAuthor(t *testing.T) {
	books := fixtureBooks()

	got, total := Query(books, Options{Search: "koroğlu"})
	require.Equal(t, 1, total)
	assert.Equal(t, 1, got[0].ID)

	got, total = Query(books, Options{Search: "xalq"})
	assert.Equal(t, 3, total)
	assert.Len(t, got, 3)
}

func TestQueryCategoryAndPriceBand(t *testing.T) {
	books := fixtureBooks()
	min, max := 10.0, 17.0

	got, total := Query(books, Options{Category: models.CategoryTarixi})
	assert.Equal(t, 2, total)
	for _, b := range got {
		assert.Equal(t, models.CategoryTarixi, b.Category)
	}

	got, total = Query(books, Options{MinPrice: &min, MaxPrice: &max})
	assert.Equal(t, 3, total)
	for _, b := range got {
		assert.GreaterOrEqual(t, b.Price, min)
		assert.LessOrEqual(t, b.Price, max)
	}
}

func TestQuerySortOrders(t *testing.T) {
	books := fixtureBooks()

	got, _ := Query(books, Options{Sort: SortPriceAsc})
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].Price, got[i].Price)
	}

	got, _ = Query(books, Options{Sort: SortRatingDesc})
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Rating, got[i].Rating)
	}
}

func TestQueryPagination(t *testing.T) {
	books := fixtureBooks()

	page1, total := Query(books, Options{Limit: 2, Page: 1})
	require.Equal(t, 5, total)
	require.Len(t, page1, 2)

	page3, total := Query(books, Options{Limit: 2, Page: 3})
	require.Equal(t, 5, total)
	require.Len(t, page3, 1)

	// a page past the end is empty, not an error, and keeps the total
	beyond, total := Query(books, Options{Limit: 2, Page: 9})
	assert.Equal(t, 5, total)
	assert.Empty(t, beyond)
}

func TestQueryDefaultsPageAndLimit(t *testing.T) {
	books := fixtureBooks()
	got, total := Query(books, Options{Page: -3, Limit: 0})
	assert.Equal(t, 5, total)
	assert.Len(t, got, 5)
}

func TestFeaturedCapsAtN(t *testing.T) {
	books := fixtureBooks()
	for i := range books {
		books[i].Featured = true
	}
	assert.Len(t, Featured(books, 4), 4)
	assert.Len(t, Featured(books[:2], 4), 2)
}

func TestQueryDeterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 30).Draw(t, "n")
		books := make([]models.Book, n)
		for i := range books {
			books[i] = models.Book{
				ID:     i + 1,
				Title:  rapid.StringMatching(`[a-z]{1,8}`).Draw(t, "title"),
				Price:  float64(rapid.IntRange(0, 5000).Draw(t, "price")) / 100,
				Rating: float64(rapid.IntRange(0, 50).Draw(t, "rating")) / 10,
			}
		}
		opts := Options{
			Search: rapid.StringMatching(`[a-z]{0,3}`).Draw(t, "search"),
			Sort:   rapid.SampledFrom([]string{SortNameAsc, SortNameDesc, SortPriceAsc, SortPriceDesc, SortRatingDesc}).Draw(t, "sort"),
			Page:   rapid.IntRange(1, 5).Draw(t, "page"),
			Limit:  rapid.IntRange(1, 10).Draw(t, "limit"),
		}

		first, firstTotal := Query(books, opts)
		second, secondTotal := Query(books, opts)
		require.Equal(t, firstTotal, secondTotal)
		require.Equal(t, first, second)
	})
}

func TestQueryPriceBoundsHold(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 30).Draw(t, "n")
		books := make([]models.Book, n)
		for i := range books {
			books[i] = models.Book{
				ID:    i + 1,
				Title: rapid.StringMatching(`[a-z]{1,6}`).Draw(t, "title"),
				Price: float64(rapid.IntRange(0, 5000).Draw(t, "price")) / 100,
			}
		}
		lo := float64(rapid.IntRange(0, 2500).Draw(t, "lo")) / 100
		hi := lo + float64(rapid.IntRange(0, 2500).Draw(t, "span"))/100

		got, _ := Query(books, Options{MinPrice: &lo, MaxPrice: &hi, Limit: n + 1})
		for _, b := range got {
			require.GreaterOrEqual(t, b.Price, lo)
			require.LessOrEqual(t, b.Price, hi)
		}
	})
}
