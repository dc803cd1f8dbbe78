package main

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"storefront/internal/catalog"

	"github.com/go-chi/chi/v5"
)

// resolveProduct finds the product reference for a cart or wishlist mutation:
// the cached catalog first, then a collaborator lookup for products the list
// fetch has not seen yet.
func (app *application) resolveProduct(r *http.Request, id int) (catalog.Product, error) {
	if p, ok := app.store.Catalog.Product(id); ok {
		return p, nil
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	p, err := app.catalog.GetProduct(ctx, id)
	if err != nil {
		return catalog.Product{}, fmt.Errorf("unknown product %d: %w", id, err)
	}
	return *p, nil
}

func (app *application) getCartHandler(w http.ResponseWriter, r *http.Request) {
	if err := app.jsonResponse(w, http.StatusOK, app.store.Cart.View()); err != nil {
		app.internalServerError(w, r, err)
	}
}

type addCartItemPayload struct {
	ProductID int `json:"product_id" validate:"required"`
	Quantity  int `json:"quantity"`
}

// addCartItemHandler upserts a line item. A missing quantity defaults to one;
// the product's title, price and image are snapshotted at add time.
func (app *application) addCartItemHandler(w http.ResponseWriter, r *http.Request) {
	var payload addCartItemPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	product, err := app.resolveProduct(r, payload.ProductID)
	if err != nil {
		app.notFoundResponse(w, r, err)
		return
	}

	app.store.Cart.AddItem(product, payload.Quantity)

	if err := app.jsonResponse(w, http.StatusCreated, app.store.Cart.View()); err != nil {
		app.internalServerError(w, r, err)
	}
}

type updateCartItemPayload struct {
	Quantity int `json:"quantity"`
}

// updateCartItemHandler sets a line's quantity; zero or less removes the
// line. Unknown ids are a no-op, not an error.
func (app *application) updateCartItemHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "productID"))
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("invalid product id"))
		return
	}

	var payload updateCartItemPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	app.store.Cart.UpdateQuantity(id, payload.Quantity)

	if err := app.jsonResponse(w, http.StatusOK, app.store.Cart.View()); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) removeCartItemHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "productID"))
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("invalid product id"))
		return
	}

	app.store.Cart.RemoveItem(id)

	if err := app.jsonResponse(w, http.StatusOK, app.store.Cart.View()); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) clearCartHandler(w http.ResponseWriter, r *http.Request) {
	app.store.Cart.Clear()

	if err := app.jsonResponse(w, http.StatusOK, app.store.Cart.View()); err != nil {
		app.internalServerError(w, r, err)
	}
}
