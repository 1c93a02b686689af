package models

import "time"

// Order statuses.
const (
	OrderPending    = "pending"
	OrderProcessing = "processing"
	OrderCompleted  = "completed"
	OrderCancelled  = "cancelled"
)

var OrderStatuses = []string{OrderPending, OrderProcessing, OrderCompleted, OrderCancelled}

// OrderItem is a frozen snapshot of a book at purchase time. Later catalog
// edits must not alter historical orders, so nothing here references the
// live Book beyond its id.
type OrderItem struct {
	BookID   int     `json:"bookId"`
	Title    string  `json:"title"`
	Author   string  `json:"author"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image"`
}

type BillingInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	City    string `json:"city"`
	Address string `json:"address"`
}

// Order is written once at settlement and is immutable afterwards except
// for status changes and deletion by the admin. A copy lives in the global
// orders collection and another inside the owning user's order history.
type Order struct {
	ID            string      `json:"id"`
	OrderNumber   string      `json:"orderNumber"`
	UserID        string      `json:"userId"`
	Items         []OrderItem `json:"items"`
	BillingInfo   BillingInfo `json:"billingInfo"`
	PaymentMethod string      `json:"paymentMethod"` // "card" or "cash"
	Subtotal      float64     `json:"subtotal"`
	Shipping      float64     `json:"shipping"`
	BonusDiscount float64     `json:"bonusDiscount"`
	Total         float64     `json:"total"`
	Status        string      `json:"status"`
	OrderDate     time.Time   `json:"orderDate"`
	Notes         string      `json:"notes,omitempty"`
}

// CheckoutDraft bridges the cart and payment pages: the frozen pre-commit
// snapshot of the order being prepared. Removed on commit or abandonment.
type CheckoutDraft struct {
	UserID         string      `json:"userId"`
	Items          []OrderItem `json:"items"`
	Subtotal       float64     `json:"subtotal"`
	Shipping       float64     `json:"shipping"`
	BonusDiscount  float64     `json:"bonusDiscount"`
	RedeemedPoints int         `json:"redeemedPoints"`
	Total          float64     `json:"total"`
	CreatedAt      time.Time   `json:"createdAt"`
}
