package models

import "time"

// CartEntry is one (book, quantity) pair in the session cart. The cart is
// session-scoped, not user-keyed: switching accounts in the same browser
// context inherits it. That matches the original behavior and is kept.
type CartEntry struct {
	BookID   int       `json:"bookId"`
	Quantity int       `json:"quantity"`
	AddedAt  time.Time `json:"addedAt"`
}

// CartItem is a cart entry hydrated against the live catalog for display.
type CartItem struct {
	CartEntry
	Title  string  `json:"title"`
	Author string  `json:"author"`
	Price  float64 `json:"price"`
	Image  string  `json:"image"`
	Stock  int     `json:"stock"` // live stock at read time
}

// CartSummary carries the running totals shown on the cart page.
type CartSummary struct {
	ItemCount      int     `json:"itemCount"`
	Subtotal       float64 `json:"subtotal"`
	Shipping       float64 `json:"shipping"`
	BonusDiscount  float64 `json:"bonusDiscount"`
	RedeemedPoints int     `json:"redeemedPoints"`
	Total          float64 `json:"total"`
}
