package domain

import "time"

// Review is a per-product annotation. It is keyed by product, not by account:
// the author is a free-text name and nothing ties it back to a credential.
type Review struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
}
