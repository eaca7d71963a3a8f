package seed

import (
	"fmt"
	"log"

	"github.com/gitsish/aaishop-ibm-project/internal/app"
	"github.com/gitsish/aaishop-ibm-project/internal/catalog"
	"github.com/gitsish/aaishop-ibm-project/internal/identity"
	"github.com/gitsish/aaishop-ibm-project/internal/storage"
)

// Demo account written by Apply. Handy for manual poking at the API.
const (
	DemoName     = "Demo Shopper"
	DemoEmail    = "demo@aaishop.local"
	DemoPassword = "demo1234"
)

type reviewSeed struct {
	author string
	text   string
	rating int
}

var reviewSeeds = []reviewSeed{
	{"Ananya", "Gorgeous colour, exactly like the photos. Fits perfectly.", 5},
	{"Rahul", "Decent quality for the price. Delivery took a while.", 4},
	{"Meera", "Bought this for a wedding and got so many compliments.", 5},
}

// Apply writes a demo account and starter reviews for the first few catalog
// products into the store, so a fresh checkout has something to show.
// Idempotent: it backs off entirely once a credential table exists.
func Apply(store storage.Store, logger *log.Logger) error {
	var users []interface{}
	if storage.Load(store, identity.UsersKey, &users) && len(users) > 0 {
		logger.Printf("store already seeded (%d users), skipping", len(users))
		return nil
	}

	cat := catalog.New()
	a, err := app.New(store, cat, logger)
	if err != nil {
		return fmt.Errorf("build app: %w", err)
	}

	if _, err := a.Identity.Register(DemoName, DemoEmail, DemoPassword); err != nil {
		return fmt.Errorf("register demo account: %w", err)
	}
	// Seeding must not leave a session behind.
	a.Identity.Logout()

	products := cat.List(catalog.Filter{})
	for i, rs := range reviewSeeds {
		if i >= len(products) {
			break
		}
		a.Reviews.Post(products[i].ID, rs.author, rs.text, rs.rating)
	}

	logger.Printf("seeded demo account %s and %d reviews", DemoEmail, len(reviewSeeds))
	return nil
}
