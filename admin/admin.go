package admin

import (
	"errors"
	"sort"
	"strings"

	"kitabdunyasi/models"
	"kitabdunyasi/store"
)

var (
	ErrBookNotFound  = errors.New("admin: book not found")
	ErrOrderNotFound = errors.New("admin: order not found")
	ErrUserNotFound  = errors.New("admin: user not found")
	ErrBadStatus     = errors.New("admin: unknown order status")
	ErrBadBook       = errors.New("admin: book is missing required fields")
)

type Service struct {
	st *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{st: st}
}

// Stats is the back-office dashboard summary.
type Stats struct {
	TotalBooks    int     `json:"totalBooks"`
	TotalUsers    int     `json:"totalUsers"`
	TotalOrders   int     `json:"totalOrders"`
	Revenue       float64 `json:"revenue"`
	PendingOrders int     `json:"pendingOrders"`
	OutOfStock    int     `json:"outOfStock"`
}

func (s *Service) Stats() (Stats, error) {
	var stats Stats
	err := s.st.RunExclusive(func(tx *store.Tx) error {
		books, err := tx.Books()
		if err != nil {
			return err
		}
		users, err := tx.Users()
		if err != nil {
			return err
		}
		orders, err := tx.Orders()
		if err != nil {
			return err
		}

		stats.TotalBooks = len(books)
		stats.TotalUsers = len(users)
		stats.TotalOrders = len(orders)
		for _, b := range books {
			if b.Stock == 0 {
				stats.OutOfStock++
			}
		}
		for _, o := range orders {
			if o.Status == models.OrderPending {
				stats.PendingOrders++
			}
			if o.Status != models.OrderCancelled {
				stats.Revenue += o.Total
			}
		}
		return nil
	})
	return stats, err
}

// CreateBook adds a catalog entry. The new ID is one past the current
// maximum so deleted IDs are never reused within a session.
func (s *Service) CreateBook(book models.Book) (models.Book, error) {
	if err := checkBook(book); err != nil {
		return models.Book{}, err
	}
	err := s.st.RunExclusive(func(tx *store.Tx) error {
		books, err := tx.Books()
		if err != nil {
			return err
		}
		maxID := 0
		for _, b := range books {
			if b.ID > maxID {
				maxID = b.ID
			}
		}
		book.ID = maxID + 1
		return tx.SaveBooks(append(books, book))
	})
	if err != nil {
		return models.Book{}, err
	}
	return book, nil
}

func (s *Service) UpdateBook(id int, book models.Book) (models.Book, error) {
	if err := checkBook(book); err != nil {
		return models.Book{}, err
	}
	book.ID = id
	err := s.st.RunExclusive(func(tx *store.Tx) error {
		books, err := tx.Books()
		if err != nil {
			return err
		}
		for i := range books {
			if books[i].ID == id {
				books[i] = book
				return tx.SaveBooks(books)
			}
		}
		return ErrBookNotFound
	})
	if err != nil {
		return models.Book{}, err
	}
	return book, nil
}

func (s *Service) DeleteBook(id int) error {
	return s.st.RunExclusive(func(tx *store.Tx) error {
		books, err := tx.Books()
		if err != nil {
			return err
		}
		for i := range books {
			if books[i].ID == id {
				books = append(books[:i], books[i+1:]...)
				return tx.SaveBooks(books)
			}
		}
		return ErrBookNotFound
	})
}

// Orders returns the global order ledger, newest first.
func (s *Service) Orders() ([]models.Order, error) {
	var orders []models.Order
	err := s.st.RunExclusive(func(tx *store.Tx) error {
		var err error
		orders, err = tx.Orders()
		return err
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].OrderDate.After(orders[j].OrderDate)
	})
	return orders, nil
}

// UpdateOrderStatus moves an order to a new status, keeping the copy
// embedded in the buyer's account in step.
func (s *Service) UpdateOrderStatus(orderID, status string) (models.Order, error) {
	valid := false
	for _, st := range models.OrderStatuses {
		if st == status {
			valid = true
			break
		}
	}
	if !valid {
		return models.Order{}, ErrBadStatus
	}

	var updated models.Order
	err := s.st.RunExclusive(func(tx *store.Tx) error {
		orders, err := tx.Orders()
		if err != nil {
			return err
		}
		found := false
		for i := range orders {
			if orders[i].ID == orderID {
				orders[i].Status = status
				updated = orders[i]
				found = true
				break
			}
		}
		if !found {
			return ErrOrderNotFound
		}
		if err := tx.SaveOrders(orders); err != nil {
			return err
		}

		users, err := tx.Users()
		if err != nil {
			return err
		}
		for i := range users {
			if users[i].ID != updated.UserID {
				continue
			}
			for j := range users[i].Orders {
				if users[i].Orders[j].ID == orderID {
					users[i].Orders[j].Status = status
				}
			}
		}
		return tx.SaveUsers(users)
	})
	if err != nil {
		return models.Order{}, err
	}
	return updated, nil
}

func (s *Service) DeleteOrder(orderID string) error {
	return s.st.RunExclusive(func(tx *store.Tx) error {
		orders, err := tx.Orders()
		if err != nil {
			return err
		}
		for i := range orders {
			if orders[i].ID == orderID {
				orders = append(orders[:i], orders[i+1:]...)
				return tx.SaveOrders(orders)
			}
		}
		return ErrOrderNotFound
	})
}

// Users lists every account for the back office.
func (s *Service) Users() ([]models.User, error) {
	var users []models.User
	err := s.st.RunExclusive(func(tx *store.Tx) error {
		var err error
		users, err = tx.Users()
		return err
	})
	return users, err
}

func (s *Service) DeleteUser(userID string) error {
	return s.st.RunExclusive(func(tx *store.Tx) error {
		users, err := tx.Users()
		if err != nil {
			return err
		}
		for i := range users {
			if users[i].ID == userID {
				users = append(users[:i], users[i+1:]...)
				if err := tx.SaveUsers(users); err != nil {
					return err
				}
				sess, err := tx.Session()
				if err != nil {
					return err
				}
				if sess != nil && sess.UserID == userID {
					return tx.ClearSession()
				}
				return nil
			}
		}
		return ErrUserNotFound
	})
}

// TopSelling ranks books by settled quantity across the order ledger.
type TopSeller struct {
	BookID   int     `json:"bookId"`
	Title    string  `json:"title"`
	Sold     int     `json:"sold"`
	Revenue  float64 `json:"revenue"`
	Category string  `json:"category"`
}

func (s *Service) TopSelling(limit int) ([]TopSeller, error) {
	if limit <= 0 {
		limit = 5
	}
	var orders []models.Order
	var books []models.Book
	err := s.st.RunExclusive(func(tx *store.Tx) error {
		var err error
		if orders, err = tx.Orders(); err != nil {
			return err
		}
		books, err = tx.Books()
		return err
	})
	if err != nil {
		return nil, err
	}

	byBook := map[int]*TopSeller{}
	for _, o := range orders {
		if o.Status == models.OrderCancelled {
			continue
		}
		for _, it := range o.Items {
			ts, ok := byBook[it.BookID]
			if !ok {
				ts = &TopSeller{BookID: it.BookID, Title: it.Title}
				for _, b := range books {
					if b.ID == it.BookID {
						ts.Category = b.Category
						break
					}
				}
				byBook[it.BookID] = ts
			}
			ts.Sold += it.Quantity
			ts.Revenue += it.Price * float64(it.Quantity)
		}
	}

	ranked := make([]TopSeller, 0, len(byBook))
	for _, ts := range byBook {
		ranked = append(ranked, *ts)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Sold != ranked[j].Sold {
			return ranked[i].Sold > ranked[j].Sold
		}
		return ranked[i].Title < ranked[j].Title
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

func checkBook(book models.Book) error {
	if strings.TrimSpace(book.Title) == "" || strings.TrimSpace(book.Author) == "" {
		return ErrBadBook
	}
	if book.Price < 0 || book.Stock < 0 {
		return ErrBadBook
	}
	if book.Category != "" {
		if _, ok := models.CategoryNames[book.Category]; !ok {
			return ErrBadBook
		}
	}
	return nil
}
