package main

import (
	"errors"
	"fmt"
	"net/http"

	"storefront/internal/store"
)

// Field presence is the only rule checked; card details are captured but
// never verified, the payment round trip is simulated.
type submitCheckoutPayload struct {
	Email      string `json:"email" validate:"required"`
	FirstName  string `json:"first_name" validate:"required"`
	LastName   string `json:"last_name" validate:"required"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	ZipCode    string `json:"zip_code" validate:"required"`
	CardNumber string `json:"card_number" validate:"required"`
	ExpiryDate string `json:"expiry_date" validate:"required"`
	CVV        string `json:"cvv" validate:"required"`
}

func (app *application) submitCheckoutHandler(w http.ResponseWriter, r *http.Request) {
	var payload submitCheckoutPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if app.store.Cart.View().ItemCount == 0 {
		app.badRequestResponse(w, r, fmt.Errorf("cart is empty"))
		return
	}

	order, err := app.store.Checkout.Submit(store.OrderForm{
		Email:      payload.Email,
		FirstName:  payload.FirstName,
		LastName:   payload.LastName,
		Address:    payload.Address,
		City:       payload.City,
		ZipCode:    payload.ZipCode,
		CardNumber: payload.CardNumber,
		ExpiryDate: payload.ExpiryDate,
		CVV:        payload.CVV,
	})
	if err != nil {
		if errors.Is(err, store.ErrCheckoutInProgress) {
			app.conflictResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	data := map[string]any{
		"status":       store.CheckoutProcessing,
		"confirmation": order.Confirmation,
		"item_count":   order.ItemCount,
		"total":        order.Total,
	}

	if err := app.jsonResponse(w, http.StatusAccepted, data); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) checkoutStatusHandler(w http.ResponseWriter, r *http.Request) {
	status, order := app.store.Checkout.View()

	data := map[string]any{"status": status}
	if order != nil {
		data["confirmation"] = order.Confirmation
		data["item_count"] = order.ItemCount
		data["total"] = order.Total
		data["submitted_at"] = order.SubmittedAt
	}
	if status == store.CheckoutComplete {
		// Navigation signal back to the entry point.
		data["redirect_to"] = "/"
	}

	if err := app.jsonResponse(w, http.StatusOK, data); err != nil {
		app.internalServerError(w, r, err)
	}
}
