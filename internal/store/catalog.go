package store

import (
	"sync"

	"storefront/internal/catalog"
)

// FetchPhase describes the catalog load lifecycle as a tagged state, so a
// loading flag and an error message can never be set at the same time.
type FetchPhase int

const (
	FetchIdle FetchPhase = iota
	FetchLoading
	FetchLoaded
	FetchFailed
)

func (p FetchPhase) String() string {
	switch p {
	case FetchLoading:
		return "loading"
	case FetchLoaded:
		return "loaded"
	case FetchFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Catalog caches the remote product collection along with the fetch phase and
// the selected category filter. Products are read-only snapshots owned by the
// remote catalog.
type Catalog struct {
	mu       sync.RWMutex
	phase    FetchPhase
	products []catalog.Product
	errMsg   string
	category string
}

func NewCatalog() *Catalog {
	return &Catalog{category: "all"}
}

// BeginFetch marks a fetch in flight and clears any previous error. Fetches
// are not deduplicated; whichever completion settles last wins.
func (c *Catalog) BeginFetch() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.phase = FetchLoading
	c.errMsg = ""
}

// CompleteFetch replaces the product collection wholesale.
func (c *Catalog) CompleteFetch(products []catalog.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.phase = FetchLoaded
	c.products = products
	c.errMsg = ""
}

// FailFetch records the failure message. The existing product collection is
// left untouched; stale data beats no data.
func (c *Catalog) FailFetch(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.phase = FetchFailed
	c.errMsg = msg
}

// SetCategory accepts any string, including ones with no matching products.
// It never touches the product collection or the fetch phase.
func (c *Catalog) SetCategory(category string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.category = category
}

type CatalogView struct {
	Products []catalog.Product
	Phase    FetchPhase
	Error    string
	Category string
}

// View returns a copy of the current catalog state. Filtering is left to the
// presentation layer and recomputed on every read.
func (c *Catalog) View() CatalogView {
	c.mu.RLock()
	defer c.mu.RUnlock()

	products := make([]catalog.Product, len(c.products))
	copy(products, c.products)

	return CatalogView{
		Products: products,
		Phase:    c.phase,
		Error:    c.errMsg,
		Category: c.category,
	}
}

// Product looks up a cached product by id.
func (c *Catalog) Product(id int) (catalog.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return catalog.Product{}, false
}

// Categories returns the distinct categories of the cached products in
// first-seen order.
func (c *Catalog) Categories() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	seen := make(map[string]bool)
	var out []string
	for _, p := range c.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}
