package models

import "time"

// User is the authoritative account record. Order history and bonus history
// are embedded, matching the shape of the users collection on disk. The
// users collection is persisted through this same JSON shape, so the bcrypt
// hash must serialize; strip it with Public before answering a request.
type User struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	Email        string               `json:"email"`
	Password     string               `json:"password,omitempty"` // bcrypt hash
	Bonus        int                  `json:"bonus"`
	BonusHistory []BonusTransaction   `json:"bonusHistory"`
	Orders       []Order              `json:"orders"`
	RegisteredAt time.Time            `json:"registeredAt"`
	Phone        string               `json:"phone,omitempty"`
	City         string               `json:"city,omitempty"`
	Address      string               `json:"address,omitempty"`
	Settings     NotificationSettings `json:"notificationSettings"`
}

// Public returns the user with the credential hash blanked, for API
// responses. omitempty keeps the blank field out of the payload.
func (u User) Public() User {
	u.Password = ""
	return u
}

type NotificationSettings struct {
	Email  bool `json:"emailNotifications"`
	Promo  bool `json:"promoNotifications"`
	Orders bool `json:"orderNotifications"`
}

// Session is the public projection of the logged-in user, persisted
// separately from the authoritative User record.
type Session struct {
	UserID       string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Bonus        int       `json:"bonus"`
	RegisteredAt time.Time `json:"registeredAt"`
}

// AdminSession is the role-tagged back-office session.
type AdminSession struct {
	ID       string    `json:"id"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
	LoginAt  time.Time `json:"loginAt"`
}

// BonusTransaction is one append-only ledger entry. Amount is signed:
// credits positive, debits negative.
type BonusTransaction struct {
	Type    string    `json:"type"`
	Amount  int       `json:"amount"`
	Date    time.Time `json:"date"`
	OrderID string    `json:"orderId,omitempty"`
}
