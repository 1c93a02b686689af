package profile

import (
	"errors"
	"sort"
	"strings"

	"kitabdunyasi/models"
	"kitabdunyasi/store"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotFound  = errors.New("profile: user not found")
	ErrWrongPassword = errors.New("profile: current password does not match")
	ErrWeakSecret    = errors.New("profile: new password shorter than 6 characters")
)

type Service struct {
	st *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{st: st}
}

// Get returns the account record. The password hash never leaves the
// store because of the json tag on the field.
func (s *Service) Get(userID string) (models.User, error) {
	var user models.User
	err := s.st.RunExclusive(func(tx *store.Tx) error {
		users, err := tx.Users()
		if err != nil {
			return err
		}
		for _, u := range users {
			if u.ID == userID {
				user = u
				return nil
			}
		}
		return ErrUserNotFound
	})
	return user, err
}

// UpdateInput carries the editable profile fields. Empty strings leave
// the stored value alone.
type UpdateInput struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	City    string `json:"city"`
	Address string `json:"address"`
}

func (s *Service) Update(userID string, in UpdateInput) (models.User, error) {
	var user models.User
	err := s.st.RunExclusive(func(tx *store.Tx) error {
		users, err := tx.Users()
		if err != nil {
			return err
		}
		for i := range users {
			if users[i].ID != userID {
				continue
			}
			if strings.TrimSpace(in.Name) != "" {
				users[i].Name = strings.TrimSpace(in.Name)
			}
			if in.Phone != "" {
				users[i].Phone = in.Phone
			}
			if in.City != "" {
				users[i].City = in.City
			}
			if in.Address != "" {
				users[i].Address = in.Address
			}
			user = users[i]
			if err := tx.SaveUsers(users); err != nil {
				return err
			}
			return syncSession(tx, user)
		}
		return ErrUserNotFound
	})
	return user, err
}

// ChangePassword verifies the current password before swapping in the
// new hash.
func (s *Service) ChangePassword(userID, current, next string) error {
	if len(next) < 6 {
		return ErrWeakSecret
	}
	return s.st.RunExclusive(func(tx *store.Tx) error {
		users, err := tx.Users()
		if err != nil {
			return err
		}
		for i := range users {
			if users[i].ID != userID {
				continue
			}
			if bcrypt.CompareHashAndPassword([]byte(users[i].Password), []byte(current)) != nil {
				return ErrWrongPassword
			}
			hashed, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			users[i].Password = string(hashed)
			return tx.SaveUsers(users)
		}
		return ErrUserNotFound
	})
}

func (s *Service) UpdateSettings(userID string, settings models.NotificationSettings) error {
	return s.st.RunExclusive(func(tx *store.Tx) error {
		users, err := tx.Users()
		if err != nil {
			return err
		}
		for i := range users {
			if users[i].ID == userID {
				users[i].Settings = settings
				return tx.SaveUsers(users)
			}
		}
		return ErrUserNotFound
	})
}

// Orders returns the account's order history, newest first.
func (s *Service) Orders(userID string) ([]models.Order, error) {
	user, err := s.Get(userID)
	if err != nil {
		return nil, err
	}
	orders := make([]models.Order, len(user.Orders))
	copy(orders, user.Orders)
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].OrderDate.After(orders[j].OrderDate)
	})
	return orders, nil
}

// Stats summarises the account for the profile dashboard.
type Stats struct {
	OrderCount int     `json:"orderCount"`
	TotalSpent float64 `json:"totalSpent"`
	Bonus      int     `json:"bonus"`
}

func (s *Service) Stats(userID string) (Stats, error) {
	user, err := s.Get(userID)
	if err != nil {
		return Stats{}, err
	}
	st := Stats{Bonus: user.Bonus}
	for _, o := range user.Orders {
		if o.Status == models.OrderCancelled {
			continue
		}
		st.OrderCount++
		st.TotalSpent += o.Total
	}
	return st, nil
}

// DeleteAccount removes the user and everything scoped to the session.
// Settled orders stay in the global ledger for the back office.
func (s *Service) DeleteAccount(userID string) error {
	return s.st.RunExclusive(func(tx *store.Tx) error {
		users, err := tx.Users()
		if err != nil {
			return err
		}
		kept := users[:0]
		found := false
		for _, u := range users {
			if u.ID == userID {
				found = true
				continue
			}
			kept = append(kept, u)
		}
		if !found {
			return ErrUserNotFound
		}
		if err := tx.SaveUsers(kept); err != nil {
			return err
		}
		if err := tx.SaveCart([]models.CartEntry{}); err != nil {
			return err
		}
		if err := tx.SaveFavorites([]int{}); err != nil {
			return err
		}
		if err := tx.ClearDraft(); err != nil {
			return err
		}
		return tx.ClearSession()
	})
}

// syncSession refreshes the stored session projection after a profile
// edit, if the session belongs to this user.
func syncSession(tx *store.Tx, user models.User) error {
	sess, err := tx.Session()
	if err != nil {
		return err
	}
	if sess == nil || sess.UserID != user.ID {
		return nil
	}
	sess.Name = user.Name
	sess.Email = user.Email
	sess.Bonus = user.Bonus
	return tx.SaveSession(*sess)
}
