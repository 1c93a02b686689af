package checkout

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"kitabdunyasi/bonus"
	"kitabdunyasi/cart"
	"kitabdunyasi/models"
	"kitabdunyasi/store"
	"kitabdunyasi/utils"

	"github.com/google/uuid"
)

// Settlement moves through these states. A validation failure keeps the
// draft alive so the buyer can correct the form; a stock shortfall rejects
// the settlement without touching any collection.
const (
	StateDrafting   = "drafting"
	StateValidating = "validating"
	StateCommitting = "committing"
	StateSucceeded  = "succeeded"
	StateRejected   = "rejected"
)

var (
	ErrNotAuthenticated = errors.New("checkout: no authenticated buyer")
	ErrEmptyCart        = errors.New("checkout: cart is empty")
	ErrNoDraft          = errors.New("checkout: no active draft")
	ErrStockShortfall   = errors.New("checkout: item quantity exceeds live stock")
	ErrCommitFailure    = errors.New("checkout: commit interrupted mid-sequence")
)

type Service struct {
	st    *store.Store
	bonus *bonus.Service

	// paymentDelay simulates the gateway round trip. Zero by default so
	// tests settle immediately.
	paymentDelay time.Duration
}

func NewService(st *store.Store, bonusSvc *bonus.Service) *Service {
	return &Service{
		st:           st,
		bonus:        bonusSvc,
		paymentDelay: paymentDelayFromEnv(),
	}
}

// Begin freezes the cart into a settlement draft. It refuses to start
// without a buyer or with an empty cart, and writes nothing in either case.
func (s *Service) Begin(userID string, redeemPoints int) (models.CheckoutDraft, error) {
	if userID == "" {
		return models.CheckoutDraft{}, ErrNotAuthenticated
	}

	var draft models.CheckoutDraft
	err := s.st.RunExclusive(func(tx *store.Tx) error {
		items, err := cart.ItemsIn(tx)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrEmptyCart
		}

		balance := 0
		users, err := tx.Users()
		if err != nil {
			return err
		}
		for _, u := range users {
			if u.ID == userID {
				balance = u.Bonus
				break
			}
		}

		var subtotal float64
		for _, it := range items {
			subtotal += it.Price * float64(it.Quantity)
		}
		if redeemPoints > balance {
			redeemPoints = balance
		}
		if redeemPoints < bonus.MinRedemption {
			redeemPoints = 0
		}
		shipping := cart.ShippingFor(subtotal)
		discount := bonus.DiscountFor(redeemPoints)

		draft = models.CheckoutDraft{
			UserID:         userID,
			Items:          snapshotItems(items),
			Subtotal:       subtotal,
			Shipping:       shipping,
			BonusDiscount:  discount,
			RedeemedPoints: redeemPoints,
			Total:          math.Max(0, subtotal+shipping-discount),
			CreatedAt:      time.Now(),
		}
		return tx.SaveDraft(draft)
	})
	if err != nil {
		return models.CheckoutDraft{}, err
	}
	return draft, nil
}

// Draft returns the active settlement draft for the buyer.
func (s *Service) Draft(userID string) (models.CheckoutDraft, error) {
	var draft *models.CheckoutDraft
	err := s.st.RunExclusive(func(tx *store.Tx) error {
		var err error
		draft, err = tx.Draft()
		return err
	})
	if err != nil {
		return models.CheckoutDraft{}, err
	}
	if draft == nil || draft.UserID != userID {
		return models.CheckoutDraft{}, ErrNoDraft
	}
	return *draft, nil
}

// Cancel drops the draft and returns the buyer to the cart.
func (s *Service) Cancel(userID string) error {
	return s.st.RunExclusive(func(tx *store.Tx) error {
		draft, err := tx.Draft()
		if err != nil {
			return err
		}
		if draft == nil || draft.UserID != userID {
			return ErrNoDraft
		}
		return tx.ClearDraft()
	})
}

// ConfirmInput carries the billing form submitted against the draft.
type ConfirmInput struct {
	Billing       models.BillingInfo `json:"billing"`
	PaymentMethod string             `json:"paymentMethod"`
	Card          CardInput          `json:"card"`
	Notes         string             `json:"notes"`
}

// Confirm runs validation and, if it passes, commits the settlement. A
// *ValidationError return keeps the draft so the form can be corrected
// and resubmitted. ErrStockShortfall rejects the settlement with every
// collection left exactly as it was.
func (s *Service) Confirm(ctx context.Context, userID string, in ConfirmInput) (models.Order, error) {
	draft, err := s.Draft(userID)
	if err != nil {
		return models.Order{}, err
	}
	if err := validateBilling(in.Billing); err != nil {
		return models.Order{}, err
	}
	if err := validatePayment(in.PaymentMethod, in.Card); err != nil {
		return models.Order{}, err
	}

	if err := s.processPayment(ctx); err != nil {
		return models.Order{}, err
	}

	order := models.Order{
		ID:            uuid.New().String(),
		OrderNumber:   NewOrderNumber(),
		UserID:        userID,
		Items:         draft.Items,
		BillingInfo:   in.Billing,
		PaymentMethod: in.PaymentMethod,
		Subtotal:      draft.Subtotal,
		Shipping:      draft.Shipping,
		BonusDiscount: draft.BonusDiscount,
		Total:         draft.Total,
		Status:        models.OrderPending,
		OrderDate:     time.Now(),
		Notes:         in.Notes,
	}
	earned := bonus.EarnedFor(order.Total)

	err = s.st.RunExclusive(func(tx *store.Tx) error {
		books, err := tx.Books()
		if err != nil {
			return err
		}
		for _, it := range draft.Items {
			live, ok := bookByID(books, it.BookID)
			if !ok || it.Quantity > live.Stock {
				return ErrStockShortfall
			}
		}

		intentID, err := tx.BeginIntent("settlement", order)
		if err != nil {
			return err
		}

		orders, err := tx.Orders()
		if err != nil {
			return commitFailed(err)
		}
		orders = append(orders, order)
		if err := tx.SaveOrders(orders); err != nil {
			return commitFailed(err)
		}

		users, err := tx.Users()
		if err != nil {
			return commitFailed(err)
		}
		for i := range users {
			if users[i].ID == userID {
				users[i].Orders = append(users[i].Orders, order)
			}
		}
		if err := tx.SaveUsers(users); err != nil {
			return commitFailed(err)
		}

		if draft.RedeemedPoints > 0 {
			if err := bonus.Debit(tx, userID, draft.RedeemedPoints, bonus.OrderSpendType, order.ID); err != nil {
				return commitFailed(err)
			}
		}
		if earned > 0 {
			if err := bonus.Credit(tx, userID, earned, bonus.OrderEarnType, order.ID); err != nil {
				return commitFailed(err)
			}
		}

		for i := range books {
			for _, it := range draft.Items {
				if books[i].ID == it.BookID {
					books[i].Stock -= it.Quantity
					if books[i].Stock < 0 {
						books[i].Stock = 0
					}
				}
			}
		}
		if err := tx.SaveBooks(books); err != nil {
			return commitFailed(err)
		}

		if err := tx.SaveCart([]models.CartEntry{}); err != nil {
			return commitFailed(err)
		}
		if err := tx.ClearDraft(); err != nil {
			return commitFailed(err)
		}
		return tx.CompleteIntent(intentID)
	})
	if err != nil {
		return models.Order{}, err
	}
	return order, nil
}

func commitFailed(err error) error {
	return fmt.Errorf("%w: %v", ErrCommitFailure, err)
}

// processPayment waits out the simulated gateway delay, bailing early if
// the request is cancelled.
func (s *Service) processPayment(ctx context.Context) error {
	if s.paymentDelay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.paymentDelay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// NewOrderNumber builds a human-readable order number from the tail of
// the millisecond clock plus a short random suffix.
func NewOrderNumber() string {
	ms := strconv.FormatInt(time.Now().UnixMilli(), 10)
	if len(ms) > 6 {
		ms = ms[len(ms)-6:]
	}
	return ms + utils.GenerateBase36String(4)
}

// snapshotItems freezes the hydrated cart lines into order items so later
// catalog edits cannot reach into the draft or the settled order.
func snapshotItems(items []models.CartItem) []models.OrderItem {
	out := make([]models.OrderItem, 0, len(items))
	for _, it := range items {
		out = append(out, models.OrderItem{
			BookID:   it.BookID,
			Title:    it.Title,
			Author:   it.Author,
			Price:    it.Price,
			Quantity: it.Quantity,
			Image:    it.Image,
		})
	}
	return out
}

func bookByID(books []models.Book, id int) (models.Book, bool) {
	for _, b := range books {
		if b.ID == id {
			return b, true
		}
	}
	return models.Book{}, false
}

func paymentDelayFromEnv() time.Duration {
	raw := os.Getenv("PAYMENT_DELAY")
	if raw == "" {
		return 0
	}
	ms, err := strconv.Atoi(raw)
	if err != nil || ms < 0 {
		return 0
	}
	return time.Duration(ms) * time.Millisecond
}
