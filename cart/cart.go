package cart

import (
	"errors"
	"math"
	"time"

	"kitabdunyasi/bonus"
	"kitabdunyasi/models"
	"kitabdunyasi/store"
)

// Shipping is free from 50 AZN, otherwise a flat 5 AZN.
const (
	FreeShippingFrom = 50.0
	ShippingFee      = 5.0
)

var (
	ErrOutOfStock   = errors.New("cart: book is out of stock")
	ErrStockLimit   = errors.New("cart: quantity would exceed available stock")
	ErrBookNotFound = errors.New("cart: book not found")
)

// Service maintains the session cart. Every mutation re-reads the live
// catalog, applies the change and persists the whole cart immediately.
type Service struct {
	st *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{st: st}
}

// Add puts one copy of a book into the cart, or bumps an existing entry by
// one. Zero live stock fails with ErrOutOfStock; bumping past live stock
// leaves the entry untouched and fails with ErrStockLimit.
func (s *Service) Add(bookID int) error {
	return s.st.RunExclusive(func(tx *store.Tx) error {
		books, err := tx.Books()
		if err != nil {
			return err
		}
		book, ok := findBook(books, bookID)
		if !ok {
			return ErrBookNotFound
		}
		if book.Stock <= 0 {
			return ErrOutOfStock
		}

		entries, err := tx.Cart()
		if err != nil {
			return err
		}
		for i := range entries {
			if entries[i].BookID != bookID {
				continue
			}
			if entries[i].Quantity >= book.Stock {
				return ErrStockLimit
			}
			entries[i].Quantity++
			return tx.SaveCart(entries)
		}

		entries = append(entries, models.CartEntry{
			BookID:   bookID,
			Quantity: 1,
			AddedAt:  time.Now(),
		})
		return tx.SaveCart(entries)
	})
}

// SetQuantity sets an entry's quantity. Zero or less removes the entry.
// A quantity above live stock is clamped to live stock; the hard check
// happens again at settlement.
func (s *Service) SetQuantity(bookID, qty int) error {
	if qty <= 0 {
		return s.Remove(bookID)
	}
	return s.st.RunExclusive(func(tx *store.Tx) error {
		books, err := tx.Books()
		if err != nil {
			return err
		}
		book, ok := findBook(books, bookID)
		if !ok {
			return ErrBookNotFound
		}
		if qty > book.Stock {
			qty = book.Stock
		}

		entries, err := tx.Cart()
		if err != nil {
			return err
		}
		for i := range entries {
			if entries[i].BookID == bookID {
				entries[i].Quantity = qty
				return tx.SaveCart(entries)
			}
		}
		return ErrBookNotFound
	})
}

func (s *Service) Remove(bookID int) error {
	return s.st.RunExclusive(func(tx *store.Tx) error {
		entries, err := tx.Cart()
		if err != nil {
			return err
		}
		for i := range entries {
			if entries[i].BookID == bookID {
				entries = append(entries[:i], entries[i+1:]...)
				return tx.SaveCart(entries)
			}
		}
		return nil
	})
}

func (s *Service) Clear() error {
	return s.st.RunExclusive(func(tx *store.Tx) error {
		return tx.SaveCart([]models.CartEntry{})
	})
}

// Items returns the cart hydrated against the live catalog. Entries whose
// book vanished from the catalog are dropped from the view.
func (s *Service) Items() ([]models.CartItem, error) {
	var items []models.CartItem
	err := s.st.RunExclusive(func(tx *store.Tx) error {
		var err error
		items, err = ItemsIn(tx)
		return err
	})
	return items, err
}

// ItemsIn hydrates the cart within an already-held transaction.
func ItemsIn(tx *store.Tx) ([]models.CartItem, error) {
	entries, err := tx.Cart()
	if err != nil {
		return nil, err
	}
	books, err := tx.Books()
	if err != nil {
		return nil, err
	}
	items := make([]models.CartItem, 0, len(entries))
	for _, e := range entries {
		book, ok := findBook(books, e.BookID)
		if !ok {
			continue
		}
		items = append(items, models.CartItem{
			CartEntry: e,
			Title:     book.Title,
			Author:    book.Author,
			Price:     book.Price,
			Image:     book.Image,
			Stock:     book.Stock,
		})
	}
	return items, nil
}

// Summary computes the totals for the cart page. redeemPoints is clamped
// to the redemption rules here, at the input boundary: zero below the
// minimum, never more than the user's balance.
func (s *Service) Summary(redeemPoints, balance int) (models.CartSummary, error) {
	items, err := s.Items()
	if err != nil {
		return models.CartSummary{}, err
	}

	var sum models.CartSummary
	for _, it := range items {
		sum.Subtotal += it.Price * float64(it.Quantity)
		sum.ItemCount += it.Quantity
	}
	sum.Shipping = ShippingFor(sum.Subtotal)

	if redeemPoints > balance {
		redeemPoints = balance
	}
	if redeemPoints < bonus.MinRedemption {
		redeemPoints = 0
	}
	sum.RedeemedPoints = redeemPoints
	sum.BonusDiscount = bonus.DiscountFor(redeemPoints)
	sum.Total = math.Max(0, sum.Subtotal+sum.Shipping-sum.BonusDiscount)
	return sum, nil
}

// ShippingFor applies the flat-fee rule for a subtotal.
func ShippingFor(subtotal float64) float64 {
	if subtotal >= FreeShippingFrom {
		return 0
	}
	return ShippingFee
}

func findBook(books []models.Book, id int) (models.Book, bool) {
	for _, b := range books {
		if b.ID == id {
			return b, true
		}
	}
	return models.Book{}, false
}
