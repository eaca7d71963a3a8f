package cart

import (
	"testing"

	"github.com/gitsish/aaishop-ibm-project/internal/domain"
	"github.com/gitsish/aaishop-ibm-project/internal/storage"
)

func product(id string, priceCents int64) domain.Product {
	return domain.Product{
		ID:         id,
		Name:       "Product " + id,
		Brand:      "TestBrand",
		PriceCents: priceCents,
		Images:     []string{"img-" + id},
	}
}

func newCart(t *testing.T, mem *storage.Memory) *Store {
	t.Helper()
	s, err := New(mem, nil)
	if err != nil {
		t.Fatalf("new cart: %v", err)
	}
	return s
}

func TestNewRequiresStorage(t *testing.T) {
	if _, err := New(nil, nil); err == nil {
		t.Fatalf("expected construction error without storage")
	}
}

func TestAddDedupsOnProductSizeColor(t *testing.T) {
	s := newCart(t, storage.NewMemory())

	s.Add(product("7", 100), "M", "Red")
	s.Add(product("7", 100), "M", "Red")
	entries := s.Entries()
	if len(entries) != 1 {
		t.Fatalf("same line twice should merge, got %d entries", len(entries))
	}
	if entries[0].Quantity != 2 {
		t.Fatalf("merged quantity = %d, want 2", entries[0].Quantity)
	}

	s.Add(product("7", 100), "L", "Red")
	if got := len(s.Entries()); got != 2 {
		t.Fatalf("different size should be a distinct line, got %d entries", got)
	}
}

func TestSnapshotFrozenAtAddTime(t *testing.T) {
	s := newCart(t, storage.NewMemory())
	p := product("1", 500)
	s.Add(p, "M", "")

	p.Name = "Renamed"
	p.PriceCents = 9999

	e := s.Entries()[0]
	if e.Snapshot.Name != "Product 1" || e.Snapshot.PriceCents != 500 {
		t.Fatalf("snapshot should not track the product: %+v", e.Snapshot)
	}
}

func TestRemove(t *testing.T) {
	s := newCart(t, storage.NewMemory())
	s.Add(product("1", 100), "M", "")
	s.Add(product("1", 100), "L", "")
	s.Add(product("2", 200), "", "")

	s.Remove("1")
	entries := s.Entries()
	if len(entries) != 1 || entries[0].ProductID != "2" {
		t.Fatalf("remove should drop every line for the product: %+v", entries)
	}
}

func TestUpdateQuantity(t *testing.T) {
	s := newCart(t, storage.NewMemory())
	s.Add(product("1", 100), "M", "")
	s.Add(product("1", 100), "M", "") // qty 2

	s.UpdateQuantity("1", 5)
	if e := s.Entries()[0]; e.Quantity != 5 || e.SelectedSize != "M" {
		t.Fatalf("quantity update changed the wrong fields: %+v", e)
	}

	s.UpdateQuantity("missing", 3)
	if got := len(s.Entries()); got != 1 {
		t.Fatalf("unknown id should be a no-op, got %d entries", got)
	}
}

func TestUpdateQuantityFloorRemoves(t *testing.T) {
	s := newCart(t, storage.NewMemory())
	s.Add(product("1", 100), "M", "")
	s.UpdateQuantity("1", 0)
	if len(s.Entries()) != 0 {
		t.Fatalf("quantity 0 should remove the line")
	}

	s.Add(product("1", 100), "M", "")
	s.UpdateQuantity("1", -5)
	if len(s.Entries()) != 0 {
		t.Fatalf("negative quantity should remove the line")
	}
}

func TestTotals(t *testing.T) {
	s := newCart(t, storage.NewMemory())
	if s.TotalItems() != 0 || s.TotalPriceCents() != 0 {
		t.Fatalf("empty cart totals should be zero")
	}

	s.Add(product("1", 59900), "M", "")
	s.Add(product("1", 59900), "M", "")
	s.Add(product("2", 149900), "30", "Blue")

	if got := s.TotalItems(); got != 3 {
		t.Fatalf("TotalItems = %d, want 3", got)
	}
	if got := s.TotalPriceCents(); got != 2*59900+149900 {
		t.Fatalf("TotalPriceCents = %d", got)
	}
}

func TestClearPersistsEmptyList(t *testing.T) {
	mem := storage.NewMemory()
	s := newCart(t, mem)
	s.Add(product("1", 100), "", "")
	s.Clear()

	if len(s.Entries()) != 0 {
		t.Fatalf("clear left entries in memory")
	}
	var persisted []domain.CartEntry
	if !storage.Load(mem, Key(domain.GuestNamespace), &persisted) {
		t.Fatalf("clear should persist an empty list, not delete the key")
	}
	if len(persisted) != 0 {
		t.Fatalf("persisted list not empty: %+v", persisted)
	}
}

func TestRebindIsolatesNamespaces(t *testing.T) {
	mem := storage.NewMemory()
	s := newCart(t, mem)

	s.Rebind("user-a")
	s.Add(product("1", 100), "M", "Red")

	s.Rebind("user-b")
	if got := len(s.Entries()); got != 0 {
		t.Fatalf("user-b should start empty, got %d entries", got)
	}
	s.Add(product("2", 200), "", "")

	s.Rebind("user-a")
	entries := s.Entries()
	if len(entries) != 1 || entries[0].ProductID != "1" {
		t.Fatalf("user-a entries should reappear unchanged: %+v", entries)
	}
	if entries[0].SelectedSize != "M" || entries[0].SelectedColor != "Red" {
		t.Fatalf("entry fields lost across rebind: %+v", entries[0])
	}
}

func TestRoundTripThroughFreshStore(t *testing.T) {
	mem := storage.NewMemory()
	first := newCart(t, mem)
	first.Add(product("1", 100), "M", "Red")
	first.Add(product("2", 200), "L", "")
	want := first.Entries()

	// Simulated restart.
	second := newCart(t, mem)
	got := second.Entries()
	if len(got) != len(want) {
		t.Fatalf("entry count changed across restart: %d vs %d", len(got), len(want))
	}
	for i := range want {
		if got[i].ProductID != want[i].ProductID || got[i].Quantity != want[i].Quantity ||
			got[i].SelectedSize != want[i].SelectedSize || got[i].SelectedColor != want[i].SelectedColor ||
			got[i].Snapshot.Name != want[i].Snapshot.Name || got[i].Snapshot.PriceCents != want[i].Snapshot.PriceCents {
			t.Fatalf("entry %d differs: %+v vs %+v", i, got[i], want[i])
		}
	}
}
