package review

import (
	"fmt"
	"math"
)

// Summary is a fabricated review overlay for products nobody has reviewed
// yet, so detail pages never look empty. Posted reviews always win over it.
type Summary struct {
	Reviews     []MockReview `json:"reviews"`
	AvgRating   float64      `json:"avgRating"`
	ReviewCount int          `json:"reviewsCount"`
	BoughtCount int          `json:"boughtCount"`
}

// MockReview is one fabricated review.
type MockReview struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Rating int    `json:"rating"`
	Text   string `json:"text"`
}

var mockNames = []string{
	"Ananya", "Rahul", "Priya", "Karan", "Meera",
	"Siddharth", "Nisha", "Vikram", "Pooja", "Rohan",
}

var mockTemplates = []string{
	"Loved it. Beautiful fabric and fit, received so many compliments!",
	"Good value for money. Colour was slightly different than the photos but still pretty.",
	"Fast delivery and packaging was great. Looked even better in person.",
	"Stitching quality is excellent. I washed it once and it still looks new.",
	"Comfortable and elegant. Perfect for festivals and parties.",
}

const mockCount = 5

// MockSummary fabricates a summary for the product. The generator is seeded
// from the product id, so the same product always shows the same reviews.
func MockSummary(productID string) Summary {
	next := seeded(productID)
	bought := 40 + int(next()*960)

	reviews := make([]MockReview, 0, mockCount)
	sum := 0
	for i := 0; i < mockCount; i++ {
		text := mockTemplates[int(next()*float64(len(mockTemplates)))%len(mockTemplates)]
		name := mockNames[int(next()*float64(len(mockNames)))%len(mockNames)]
		rating := 3 + int(next()*3)%3
		sum += rating
		reviews = append(reviews, MockReview{
			ID:     fmt.Sprintf("%s_r_%d", productID, i),
			Name:   name,
			Rating: rating,
			Text:   text,
		})
	}

	avg := math.Round(float64(sum)/float64(mockCount)*10) / 10
	return Summary{
		Reviews:     reviews,
		AvgRating:   avg,
		ReviewCount: mockCount,
		BoughtCount: bought,
	}
}

// seeded returns a deterministic pseudo-random sequence in [0,1) derived
// from an FNV-1a hash of the seed string.
func seeded(seed string) func() float64 {
	h := uint32(2166136261)
	for i := 0; i < len(seed); i++ {
		h ^= uint32(seed[i])
		h *= 16777619
	}
	return func() float64 {
		h += 0x6D2B79F5
		t := h
		t = (t ^ (t >> 15)) * (t | 1)
		t ^= t + (t^(t>>7))*(t|61)
		return float64(t^(t>>14)) / float64(1<<32)
	}
}
