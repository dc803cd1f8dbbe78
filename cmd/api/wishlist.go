package main

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func (app *application) getWishlistHandler(w http.ResponseWriter, r *http.Request) {
	if err := app.jsonResponse(w, http.StatusOK, app.store.Wishlist.Entries()); err != nil {
		app.internalServerError(w, r, err)
	}
}

type addWishlistEntryPayload struct {
	ProductID int `json:"product_id" validate:"required"`
}

// addWishlistEntryHandler saves a product snapshot. Adding an already-saved
// product is a no-op, so the handler is idempotent.
func (app *application) addWishlistEntryHandler(w http.ResponseWriter, r *http.Request) {
	var payload addWishlistEntryPayload
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

	app.store.Wishlist.Add(product)

	if err := app.jsonResponse(w, http.StatusCreated, app.store.Wishlist.Entries()); err != nil {
		app.internalServerError(w, r, err)
	}
}

// wishlistContainsHandler is the membership query presentation uses to toggle
// the save affordance.
func (app *application) wishlistContainsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "productID"))
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("invalid product id"))
		return
	}

	data := map[string]any{
		"product_id": id,
		"saved":      app.store.Wishlist.Contains(id),
	}

	if err := app.jsonResponse(w, http.StatusOK, data); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) removeWishlistEntryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "productID"))
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("invalid product id"))
		return
	}

	app.store.Wishlist.Remove(id)

	if err := app.jsonResponse(w, http.StatusOK, app.store.Wishlist.Entries()); err != nil {
		app.internalServerError(w, r, err)
	}
}
