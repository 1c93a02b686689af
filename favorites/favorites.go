package favorites

import (
	"sort"
	"time"

	"kitabdunyasi/models"
	"kitabdunyasi/store"
)

// Sort orders for the favourites page. DateAdded follows insertion order,
// newest first.
const (
	SortDateAdded = "date-added"
	SortNameAsc   = "name-asc"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
)

type Service struct {
	st *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{st: st}
}

// Toggle flips a book in or out of the favourites list and reports
// whether it ended up added.
func (s *Service) Toggle(bookID int) (bool, error) {
	var added bool
	err := s.st.RunExclusive(func(tx *store.Tx) error {
		favs, err := tx.Favorites()
		if err != nil {
			return err
		}
		for i, id := range favs {
			if id == bookID {
				favs = append(favs[:i], favs[i+1:]...)
				return tx.SaveFavorites(favs)
			}
		}
		added = true
		return tx.SaveFavorites(append(favs, bookID))
	})
	return added, err
}

func (s *Service) Remove(bookID int) error {
	return s.st.RunExclusive(func(tx *store.Tx) error {
		favs, err := tx.Favorites()
		if err != nil {
			return err
		}
		for i, id := range favs {
			if id == bookID {
				return tx.SaveFavorites(append(favs[:i], favs[i+1:]...))
			}
		}
		return nil
	})
}

func (s *Service) Clear() error {
	return s.st.RunExclusive(func(tx *store.Tx) error {
		return tx.SaveFavorites([]int{})
	})
}

// List hydrates the favourites against the live catalog. Vanished books
// are dropped from the view but kept in the stored list.
func (s *Service) List(sortBy string) ([]models.Book, error) {
	var out []models.Book
	err := s.st.RunExclusive(func(tx *store.Tx) error {
		favs, err := tx.Favorites()
		if err != nil {
			return err
		}
		books, err := tx.Books()
		if err != nil {
			return err
		}
		out = make([]models.Book, 0, len(favs))
		for _, id := range favs {
			for _, b := range books {
				if b.ID == id {
					out = append(out, b)
					break
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	applySort(out, sortBy)
	return out, nil
}

// AddAllToCart pushes every favourite into the cart, one copy each.
// Out-of-stock books are skipped and counted.
func (s *Service) AddAllToCart() (added, skipped int, err error) {
	err = s.st.RunExclusive(func(tx *store.Tx) error {
		favs, err := tx.Favorites()
		if err != nil {
			return err
		}
		books, err := tx.Books()
		if err != nil {
			return err
		}
		entries, err := tx.Cart()
		if err != nil {
			return err
		}

		for _, id := range favs {
			var book *models.Book
			for i := range books {
				if books[i].ID == id {
					book = &books[i]
					break
				}
			}
			if book == nil || book.Stock <= 0 {
				skipped++
				continue
			}

			bumped := false
			for i := range entries {
				if entries[i].BookID != id {
					continue
				}
				if entries[i].Quantity >= book.Stock {
					skipped++
				} else {
					entries[i].Quantity++
					added++
				}
				bumped = true
				break
			}
			if !bumped {
				entries = append(entries, models.CartEntry{
					BookID:   id,
					Quantity: 1,
					AddedAt:  time.Now(),
				})
				added++
			}
		}
		return tx.SaveCart(entries)
	})
	return added, skipped, err
}

func applySort(books []models.Book, sortBy string) {
	switch sortBy {
	case SortNameAsc:
		sort.SliceStable(books, func(i, j int) bool { return books[i].Title < books[j].Title })
	case SortPriceAsc:
		sort.SliceStable(books, func(i, j int) bool { return books[i].Price < books[j].Price })
	case SortPriceDesc:
		sort.SliceStable(books, func(i, j int) bool { return books[i].Price > books[j].Price })
	case SortDateAdded:
		// stored order is insertion order; newest first
		for i, j := 0, len(books)-1; i < j; i, j = i+1, j-1 {
			books[i], books[j] = books[j], books[i]
		}
	}
}
