package domain

type Product struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Brand              string   `json:"brand"`
	PriceCents         int64    `json:"priceCents"`
	OriginalPriceCents int64    `json:"originalPriceCents,omitempty"`
	DiscountPercent    int      `json:"discountPercent,omitempty"`
	Rating             float64  `json:"rating"`
	ReviewCount        int      `json:"reviewCount"`
	Images             []string `json:"images"`
	Category           string   `json:"category"`
	Description        string   `json:"description,omitempty"`
	Sizes              []string `json:"sizes,omitempty"`
	Colors             []string `json:"colors,omitempty"`
	Badge              string   `json:"badge,omitempty"`
	InStock            bool     `json:"inStock"`
}

// Snapshot copies the fields a collection entry denormalizes at add time.
func (p Product) Snapshot() ProductSnapshot {
	images := make([]string, len(p.Images))
	copy(images, p.Images)
	return ProductSnapshot{
		Name:       p.Name,
		Brand:      p.Brand,
		PriceCents: p.PriceCents,
		Images:     images,
		Badge:      p.Badge,
	}
}

// ProductSnapshot is the denormalized product view frozen into cart and
// wishlist entries. It is copied at add time and never re-fetched, so a later
// catalog change does not rewrite what the shopper already put in the basket.
type ProductSnapshot struct {
	Name       string   `json:"name"`
	Brand      string   `json:"brand"`
	PriceCents int64    `json:"priceCents"`
	Images     []string `json:"images,omitempty"`
	Badge      string   `json:"badge,omitempty"`
}
