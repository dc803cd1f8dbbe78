package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testForm() OrderForm {
	return OrderForm{
		Email:      "jane@example.com",
		FirstName:  "Jane",
		LastName:   "Doe",
		Address:    "1 Main St",
		City:       "Springfield",
		ZipCode:    "12345",
		CardNumber: "4242424242424242",
		ExpiryDate: "12/30",
		CVV:        "123",
	}
}

func TestCheckoutRunsToCompletion(t *testing.T) {
	cart := NewCart()
	cart.AddItem(product(1, 10), 2)

	co := NewCheckout(cart, "test-secret", 10*time.Millisecond, 10*time.Millisecond)

	order, err := co.Submit(testForm())
	require.NoError(t, err)
	assert.Equal(t, 2, order.ItemCount)
	assert.Equal(t, 20.0, order.Total)

	status, _ := co.View()
	assert.Equal(t, CheckoutProcessing, status)

	// Processing delay elapses: order completes and the cart is emptied.
	assert.Eventually(t, func() bool {
		status, _ := co.View()
		return status == CheckoutComplete
	}, time.Second, time.Millisecond)
	assert.Equal(t, 0, cart.View().ItemCount)

	// Redirect delay elapses: back to the entry point.
	assert.Eventually(t, func() bool {
		status, order := co.View()
		return status == CheckoutIdle && order == nil
	}, time.Second, time.Millisecond)
}

func TestCheckoutRefusesConcurrentSubmission(t *testing.T) {
	cart := NewCart()
	cart.AddItem(product(1, 10), 1)

	co := NewCheckout(cart, "test-secret", 500*time.Millisecond, 500*time.Millisecond)

	_, err := co.Submit(testForm())
	require.NoError(t, err)

	_, err = co.Submit(testForm())
	assert.ErrorIs(t, err, ErrCheckoutInProgress)
}

func TestCheckoutSnapshotsTotalsAtSubmitTime(t *testing.T) {
	cart := NewCart()
	cart.AddItem(product(1, 10), 1)

	co := NewCheckout(cart, "test-secret", 50*time.Millisecond, 50*time.Millisecond)

	order, err := co.Submit(testForm())
	require.NoError(t, err)

	// Mutations after submit do not change the captured order.
	cart.AddItem(product(2, 99), 5)

	_, current := co.View()
	require.NotNil(t, current)
	assert.Equal(t, order.ItemCount, current.ItemCount)
	assert.Equal(t, order.Total, current.Total)
}

func TestConfirmationNumberShape(t *testing.T) {
	cart := NewCart()
	cart.AddItem(product(1, 10), 1)

	co := NewCheckout(cart, "test-secret", time.Hour, time.Hour)
	defer co.Stop()

	order, err := co.Submit(testForm())
	require.NoError(t, err)

	parts := strings.Split(order.Confirmation, "-")
	require.Len(t, parts, 3)
	assert.Equal(t, "SHOP", parts[0])
	assert.Len(t, parts[1], 4)
	assert.Len(t, parts[2], 4)
}

func TestStopCancelsPendingTransition(t *testing.T) {
	cart := NewCart()
	cart.AddItem(product(1, 10), 1)

	co := NewCheckout(cart, "test-secret", 10*time.Millisecond, 10*time.Millisecond)

	_, err := co.Submit(testForm())
	require.NoError(t, err)

	co.Stop()
	time.Sleep(50 * time.Millisecond)

	status, _ := co.View()
	assert.Equal(t, CheckoutProcessing, status)
	assert.Equal(t, 1, cart.View().ItemCount)
}
