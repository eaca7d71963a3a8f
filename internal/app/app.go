// Package app is the composition root: it builds every store against one
// storage adapter and wires the identity-changed rebind, so callers and
// tests get a fully-connected storefront from a single constructor instead
// of ambient singletons.
package app

import (
	"errors"
	"io"
	"log"

	"github.com/gitsish/aaishop-ibm-project/internal/cart"
	"github.com/gitsish/aaishop-ibm-project/internal/catalog"
	"github.com/gitsish/aaishop-ibm-project/internal/domain"
	"github.com/gitsish/aaishop-ibm-project/internal/identity"
	"github.com/gitsish/aaishop-ibm-project/internal/review"
	"github.com/gitsish/aaishop-ibm-project/internal/storage"
	"github.com/gitsish/aaishop-ibm-project/internal/wishlist"
)

// App aggregates the storefront stores over one storage adapter.
type App struct {
	Catalog  *catalog.Catalog
	Identity *identity.Store
	Cart     *cart.Store
	Wishlist *wishlist.Store
	Reviews  *review.Store
}

// New builds and wires the storefront. The cart starts under the restored
// session's namespace (or guest) and the wishlist under the restored
// identity (or unbound); afterwards every identity change re-namespaces both
// stores synchronously before the triggering call returns.
func New(store storage.Store, cat *catalog.Catalog, logger *log.Logger) (*App, error) {
	if store == nil {
		return nil, errors.New("app: storage is required")
	}
	if cat == nil {
		return nil, errors.New("app: catalog is required")
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	ids, err := identity.New(store, logger)
	if err != nil {
		return nil, err
	}
	cartStore, err := cart.New(store, logger)
	if err != nil {
		return nil, err
	}
	wishStore, err := wishlist.New(store, logger)
	if err != nil {
		return nil, err
	}
	reviewStore, err := review.New(store, logger)
	if err != nil {
		return nil, err
	}

	a := &App{
		Catalog:  cat,
		Identity: ids,
		Cart:     cartStore,
		Wishlist: wishStore,
		Reviews:  reviewStore,
	}

	// Initial binding reflects the session restored from disk.
	if current, ok := ids.Current(); ok {
		cartStore.Rebind(domain.NamespaceFor(&current))
		wishStore.Rebind(current.ID)
	} else {
		cartStore.Rebind(domain.GuestNamespace)
	}

	ids.Subscribe(func(id *domain.Identity) {
		cartStore.Rebind(domain.NamespaceFor(id))
		if id == nil {
			wishStore.Rebind("")
		} else {
			wishStore.Rebind(id.ID)
		}
	})

	return a, nil
}
