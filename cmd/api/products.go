package main

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"storefront/internal/catalog"
	"storefront/internal/store"

	"github.com/go-chi/chi/v5"
)

type productListResponse struct {
	Products []catalog.Product `json:"products"`
	Phase    string            `json:"phase"`
	Loading  bool              `json:"loading"`
	Error    string            `json:"error,omitempty"`
	Category string            `json:"category"`
}

// filterProducts applies the category filter ("all" or empty matches
// everything) intersected with a case-insensitive title substring match. It
// is recomputed on every read, never persisted.
func filterProducts(products []catalog.Product, category, query string) []catalog.Product {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if category != "" && category != "all" && p.Category != category {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(p.Title), q) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// listProductsHandler returns the catalog fetch state plus the filtered
// product view. Explicit query params override the store-held filter.
func (app *application) listProductsHandler(w http.ResponseWriter, r *http.Request) {
	view := app.store.Catalog.View()

	category := r.URL.Query().Get("category")
	if category == "" {
		category = view.Category
	}
	query := r.URL.Query().Get("q")

	resp := productListResponse{
		Products: filterProducts(view.Products, category, query),
		Phase:    view.Phase.String(),
		Loading:  view.Phase == store.FetchLoading,
		Error:    view.Error,
		Category: category,
	}

	if err := app.jsonResponse(w, http.StatusOK, resp); err != nil {
		app.internalServerError(w, r, err)
	}
}

// refreshCatalogHandler triggers an asynchronous catalog fetch and returns
// immediately; clients poll /products for the outcome.
func (app *application) refreshCatalogHandler(w http.ResponseWriter, r *http.Request) {
	app.fetchCatalogInBackground()

	if err := app.jsonResponse(w, http.StatusAccepted, map[string]string{"status": "refreshing"}); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) listCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	// Prefer the cached catalog; fall back to the collaborator before the
	// first successful fetch.
	if categories := app.store.Catalog.Categories(); len(categories) > 0 {
		if err := app.jsonResponse(w, http.StatusOK, categories); err != nil {
			app.internalServerError(w, r, err)
		}
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	categories, err := app.catalog.ListCategories(ctx)
	if err != nil {
		app.upstreamErrorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, categories); err != nil {
		app.internalServerError(w, r, err)
	}
}

type setCategoryFilterPayload struct {
	Category string `json:"category" validate:"required"`
}

// setCategoryFilterHandler mutates the selected filter. Any string is
// accepted, including ones with no matching products.
func (app *application) setCategoryFilterHandler(w http.ResponseWriter, r *http.Request) {
	var payload setCategoryFilterPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	app.store.Catalog.SetCategory(payload.Category)

	if err := app.jsonResponse(w, http.StatusOK, map[string]string{"category": payload.Category}); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) getProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "productID"))
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("invalid product id"))
		return
	}

	if p, ok := app.store.Catalog.Product(id); ok {
		if err := app.jsonResponse(w, http.StatusOK, p); err != nil {
			app.internalServerError(w, r, err)
		}
		return
	}

	// Not cached; ask the collaborator for a single-item lookup.
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	p, err := app.catalog.GetProduct(ctx, id)
	if err != nil {
		app.upstreamErrorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, p); err != nil {
		app.internalServerError(w, r, err)
	}
}
