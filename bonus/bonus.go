package bonus

import (
	"errors"
	"fmt"
	"math"
	"time"

	"kitabdunyasi/models"
	"kitabdunyasi/store"
)

// Loyalty constants: 1 point earned per whole manat of order total; each
// redeemed point is worth 0.01 AZN; at least 10 points per redemption.
const (
	ConversionRate = 0.01
	MinRedemption  = 10
	WelcomeBonus   = 50
	WelcomeType    = "welcome"
	OrderEarnType  = "order"
	OrderSpendType = "redeem"
)

var ErrUserNotFound = errors.New("bonus: user not found")

// Service is the per-user reward-point ledger. Every credit and debit
// appends a transaction and adjusts the balance in one read-modify-write.
// Nothing stops the balance from going negative if the caller debits more
// than the user holds; the ledger records what it is told.
type Service struct {
	st *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{st: st}
}

// Credit adds amount points. Amount must be non-negative; the sign is
// implied by the operation.
func (s *Service) Credit(userID string, amount int, typ, orderID string) error {
	return s.st.RunExclusive(func(tx *store.Tx) error {
		return Credit(tx, userID, amount, typ, orderID)
	})
}

// Debit removes amount points.
func (s *Service) Debit(userID string, amount int, typ, orderID string) error {
	return s.st.RunExclusive(func(tx *store.Tx) error {
		return Debit(tx, userID, amount, typ, orderID)
	})
}

func (s *Service) Balance(userID string) (int, error) {
	users, err := s.st.Users()
	if err != nil {
		return 0, err
	}
	for _, u := range users {
		if u.ID == userID {
			return u.Bonus, nil
		}
	}
	return 0, ErrUserNotFound
}

// History returns the user's transactions newest first.
func (s *Service) History(userID string) ([]models.BonusTransaction, error) {
	users, err := s.st.Users()
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.ID == userID {
			history := make([]models.BonusTransaction, len(u.BonusHistory))
			copy(history, u.BonusHistory)
			for i, j := 0, len(history)-1; i < j; i, j = i+1, j-1 {
				history[i], history[j] = history[j], history[i]
			}
			return history, nil
		}
	}
	return nil, ErrUserNotFound
}

// Credit and Debit also come in Tx form so settlement can run them inside
// its own exclusive sequence.

func Credit(tx *store.Tx, userID string, amount int, typ, orderID string) error {
	return apply(tx, userID, amount, typ, orderID)
}

func Debit(tx *store.Tx, userID string, amount int, typ, orderID string) error {
	return apply(tx, userID, -amount, typ, orderID)
}

func apply(tx *store.Tx, userID string, delta int, typ, orderID string) error {
	if typ == "" {
		return fmt.Errorf("bonus: transaction needs a type (user %s, amount %d)", userID, delta)
	}

	users, err := tx.Users()
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID != userID {
			continue
		}
		users[i].Bonus += delta
		users[i].BonusHistory = append(users[i].BonusHistory, models.BonusTransaction{
			Type:    typ,
			Amount:  delta,
			Date:    time.Now(),
			OrderID: orderID,
		})
		return tx.SaveUsers(users)
	}
	return ErrUserNotFound
}

// EarnedFor converts an order total into earned points: one point per
// whole currency unit, floored.
func EarnedFor(total float64) int {
	return int(math.Floor(total))
}

// DiscountFor converts redeemed points into a currency discount.
func DiscountFor(points int) float64 {
	return float64(points) * ConversionRate
}
