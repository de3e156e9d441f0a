package model

// Product represents a catalog item. The catalog is loaded once at startup
// and never mutated afterwards; identity is the ID.
type Product struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Price       int    `json:"price"`
	Image       string `json:"image"`
	Description string `json:"description"`
	Category    string `json:"category"`
}
