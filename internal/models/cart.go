// internal/models/cart.go
package models

// CartLine is one row of the persisted cart blob. The full line set is stored
// as a single serialized value under the session's storage key; lines are never
// persisted individually.
type CartLine struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CartItem is the enriched view of a line joined with its product. It is
// recomputed from the store on every read and never cached.
type CartItem struct {
	CartLine
	Product *Product `json:"product,omitempty"`
}

// WishlistEntry is the product snapshot kept in the wishlist blob.
type WishlistEntry struct {
	ProductID     string   `json:"product_id"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"original_price,omitempty"`
	Image         string   `json:"image,omitempty"`
	Rating        float64  `json:"rating,omitempty"`
	ReviewsCount  int64    `json:"reviews_count,omitempty"`
}

// StorageRecord backs the device-local key-value store: one serialized blob per
// storage key, last write wins.
type StorageRecord struct {
	Key       string `json:"key" gorm:"primaryKey;size:255"`
	Data      []byte `json:"data" gorm:"type:jsonb"`
	UpdatedAt int64  `json:"updated_at" gorm:"autoUpdateTime:milli"`
}
