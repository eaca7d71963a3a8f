package review

import (
	"testing"
	"time"

	"github.com/gitsish/aaishop-ibm-project/internal/storage"
)

func newReviews(t *testing.T) *Store {
	t.Helper()
	s, err := New(storage.NewMemory(), nil)
	if err != nil {
		t.Fatalf("new review store: %v", err)
	}
	return s
}

func TestNewRequiresStorage(t *testing.T) {
	if _, err := New(nil, nil); err == nil {
		t.Fatalf("expected construction error without storage")
	}
}

func TestAverageRatingEmpty(t *testing.T) {
	s := newReviews(t)
	if got := s.AverageRating("1"); got != 0 {
		t.Fatalf("no reviews should average 0, got %v", got)
	}
}

func TestAverageRatingRounded(t *testing.T) {
	s := newReviews(t)
	for _, r := range []int{5, 4, 3} {
		s.Post("1", "A", "text", r)
	}
	if got := s.AverageRating("1"); got != 4.0 {
		t.Fatalf("average of 5,4,3 = %v, want 4.0", got)
	}

	s.Post("2", "A", "text", 5)
	s.Post("2", "A", "text", 4)
	s.Post("2", "A", "text", 4)
	// 13/3 = 4.333..., one decimal place.
	if got := s.AverageRating("2"); got != 4.3 {
		t.Fatalf("average = %v, want 4.3", got)
	}
}

func TestPostPrependsMostRecentFirst(t *testing.T) {
	s := newReviews(t)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	calls := 0
	s.now = func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * time.Minute)
	}

	s.Post("1", "First", "older", 4)
	s.Post("1", "Second", "newer", 5)

	list := s.ListFor("1")
	if len(list) != 2 {
		t.Fatalf("want 2 reviews, got %d", len(list))
	}
	if list[0].Author != "Second" || list[1].Author != "First" {
		t.Fatalf("most recent should come first: %+v", list)
	}
	if !list[0].CreatedAt.After(list[1].CreatedAt) {
		t.Fatalf("timestamps out of order: %v then %v", list[0].CreatedAt, list[1].CreatedAt)
	}
}

func TestPostClampsRatingAndDefaultsAuthor(t *testing.T) {
	s := newReviews(t)
	low := s.Post("1", "  ", "text", -3)
	high := s.Post("1", "B", "text", 11)

	if low.Rating != 1 || high.Rating != 5 {
		t.Fatalf("ratings should clamp to 1..5, got %d and %d", low.Rating, high.Rating)
	}
	if low.Author != "Anonymous" {
		t.Fatalf("blank author should default, got %q", low.Author)
	}
}

func TestListsAreIndependentPerProduct(t *testing.T) {
	s := newReviews(t)
	s.Post("1", "A", "text", 5)
	if got := len(s.ListFor("2")); got != 0 {
		t.Fatalf("product 2 should have no reviews, got %d", got)
	}
}

func TestMockSummaryDeterministic(t *testing.T) {
	a := MockSummary("42")
	b := MockSummary("42")
	if a.AvgRating != b.AvgRating || a.BoughtCount != b.BoughtCount {
		t.Fatalf("same product should fabricate the same summary: %+v vs %+v", a, b)
	}
	if len(a.Reviews) != mockCount {
		t.Fatalf("want %d fabricated reviews, got %d", mockCount, len(a.Reviews))
	}
	for i := range a.Reviews {
		if a.Reviews[i] != b.Reviews[i] {
			t.Fatalf("review %d differs: %+v vs %+v", i, a.Reviews[i], b.Reviews[i])
		}
		if r := a.Reviews[i].Rating; r < 3 || r > 5 {
			t.Fatalf("fabricated rating out of range: %d", r)
		}
	}
	if a.BoughtCount < 40 || a.BoughtCount > 999 {
		t.Fatalf("bought count out of range: %d", a.BoughtCount)
	}

	other := MockSummary("43")
	same := true
	for i := range a.Reviews {
		if a.Reviews[i] != other.Reviews[i] {
			same = false
			break
		}
	}
	if same && a.BoughtCount == other.BoughtCount {
		t.Fatalf("different products should not share a summary")
	}
}
