// Package review keeps per-product review lists. Reviews are annotations on
// the catalog, keyed by product id and deliberately independent of the
// identity store: the author is just a name the poster typed.
package review

import (
	"errors"
	"io"
	"log"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/gitsish/aaishop-ibm-project/internal/domain"
	"github.com/gitsish/aaishop-ibm-project/internal/storage"
	"github.com/google/uuid"
)

const keyPrefix = "reviews."

// Key returns the storage key for a product's review list.
func Key(productID string) string {
	return keyPrefix + productID
}

// Store reads and appends review lists. Lists are ordered most recent first.
type Store struct {
	store  storage.Store
	logger *log.Logger
	now    func() time.Time

	mu sync.Mutex
}

// New returns a review store over the given storage.
func New(store storage.Store, logger *log.Logger) (*Store, error) {
	if store == nil {
		return nil, errors.New("review: storage is required")
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Store{store: store, logger: logger, now: time.Now}, nil
}

// ListFor returns the posted reviews for a product, most recent first.
func (s *Store) ListFor(productID string) []domain.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(productID)
}

// Post prepends a review with the current timestamp and persists the list.
// Ratings outside 1..5 are clamped.
func (s *Store) Post(productID, author, text string, rating int) domain.Review {
	if rating < 1 {
		rating = 1
	}
	if rating > 5 {
		rating = 5
	}
	author = strings.TrimSpace(author)
	if author == "" {
		author = "Anonymous"
	}
	r := domain.Review{
		ID:        uuid.NewString(),
		ProductID: productID,
		Author:    author,
		Text:      strings.TrimSpace(text),
		Rating:    rating,
		CreatedAt: s.now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	list := append([]domain.Review{r}, s.loadLocked(productID)...)
	storage.Save(s.store, Key(productID), list)
	s.logger.Printf("review posted for product %s (rating %d)", productID, rating)
	return r
}

// AverageRating is the mean of posted ratings rounded to one decimal place,
// or 0 when nothing has been posted.
func (s *Store) AverageRating(productID string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.loadLocked(productID)
	if len(list) == 0 {
		return 0
	}
	sum := 0
	for _, r := range list {
		sum += r.Rating
	}
	return math.Round(float64(sum)/float64(len(list))*10) / 10
}

func (s *Store) loadLocked(productID string) []domain.Review {
	var list []domain.Review
	storage.Load(s.store, Key(productID), &list)
	return list
}
