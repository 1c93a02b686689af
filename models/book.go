package models

// Book categories available in the catalog.
const (
	CategoryRoman   = "roman"
	CategoryElmi    = "elmi"
	CategoryTarixi  = "tarixi"
	CategoryUsaq    = "uşaq"
	CategoryPoeziya = "poeziya"
	CategoryDram    = "dram"
)

var Categories = []string{
	CategoryRoman,
	CategoryElmi,
	CategoryTarixi,
	CategoryUsaq,
	CategoryPoeziya,
	CategoryDram,
}

// CategoryNames maps category tags to their display names.
var CategoryNames = map[string]string{
	CategoryRoman:   "Roman",
	CategoryElmi:    "Elmi",
	CategoryTarixi:  "Tarixi",
	CategoryUsaq:    "Uşaq",
	CategoryPoeziya: "Poeziya",
	CategoryDram:    "Dram",
}

// Book is a catalog item. IDs are assigned monotonically by the admin
// back-office (max existing id + 1).
type Book struct {
	ID            int     `json:"id"`
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	Category      string  `json:"category"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"originalPrice,omitempty"` // pre-discount price, shown struck through
	Image         string  `json:"image"`
	Description   string  `json:"description"`
	Rating        float64 `json:"rating"`
	RatingCount   int     `json:"ratingCount"`
	Stock         int     `json:"stock"`
	Featured      bool    `json:"featured,omitempty"`
}
