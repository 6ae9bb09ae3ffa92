package domain

import "fmt"

// ShopID identifies one of the two inventory-holding locations.
type ShopID string

const (
	Shop1 ShopID = "shop-1"
	Shop2 ShopID = "shop-2"
)

// IsValid reports whether the shop is one of the two known locations.
func (s ShopID) IsValid() bool {
	return s == Shop1 || s == Shop2
}

// Opposite returns the other shop. Transfers always move stock between the pair.
func (s ShopID) Opposite() ShopID {
	if s == Shop1 {
		return Shop2
	}
	return Shop1
}

// Warning is a non-fatal integrity finding about a request (e.g. a line item without a name).
// Warnings are logged and never block the operation.
type Warning struct {
	Index   int    `json:"index"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (w Warning) String() string {
	return fmt.Sprintf("item %d: %s %s", w.Index, w.Field, w.Message)
}
