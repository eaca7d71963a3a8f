package domain

// CartEntry is one line in a cart. Two lines with the same product but a
// different size or color are distinct.
type CartEntry struct {
	ProductID     string          `json:"productId"`
	Snapshot      ProductSnapshot `json:"snapshot"`
	Quantity      int             `json:"quantity"`
	SelectedSize  string          `json:"selectedSize,omitempty"`
	SelectedColor string          `json:"selectedColor,omitempty"`
}

// SameLine reports whether another entry shares this entry's dedup key.
func (e CartEntry) SameLine(productID, size, color string) bool {
	return e.ProductID == productID && e.SelectedSize == size && e.SelectedColor == color
}

// LineTotalCents is the entry's contribution to the cart total.
func (e CartEntry) LineTotalCents() int64 {
	return e.Snapshot.PriceCents * int64(e.Quantity)
}

// WishlistEntry is one saved product. Dedup key is the product id alone.
type WishlistEntry struct {
	ProductID string          `json:"productId"`
	Snapshot  ProductSnapshot `json:"snapshot"`
}
