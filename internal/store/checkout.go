package store

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base32"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

type CheckoutStatus string

const (
	CheckoutIdle       CheckoutStatus = "idle"
	CheckoutProcessing CheckoutStatus = "processing"
	CheckoutComplete   CheckoutStatus = "complete"
)

var ErrCheckoutInProgress = errors.New("a checkout is already in progress")

// OrderForm carries the captured checkout fields. Presence is enforced at the
// boundary; nothing here is verified against any external rule.
type OrderForm struct {
	Email      string `json:"email"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Address    string `json:"address"`
	City       string `json:"city"`
	ZipCode    string `json:"zip_code"`
	CardNumber string `json:"card_number"`
	ExpiryDate string `json:"expiry_date"`
	CVV        string `json:"cvv"`
}

// Order is the snapshot taken at submit time: the form plus the cart totals
// as they were when the user confirmed.
type Order struct {
	Confirmation string    `json:"confirmation"`
	Form         OrderForm `json:"form"`
	ItemCount    int       `json:"item_count"`
	Total        float64   `json:"total"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

// Checkout walks a submission through Idle → Processing → Complete and back
// to Idle. The two delays stand in for a payment round trip and for the
// redirect back to the entry point. Transitions are timer-driven; Stop exists
// as a cancellation seam for a real payment integration, the simulated flow
// never aborts once submitted.
type Checkout struct {
	mu            sync.Mutex
	status        CheckoutStatus
	order         *Order
	cart          *Cart
	secret        string
	processDelay  time.Duration
	redirectDelay time.Duration
	timer         *time.Timer
}

func NewCheckout(cart *Cart, secret string, processDelay, redirectDelay time.Duration) *Checkout {
	return &Checkout{
		status:        CheckoutIdle,
		cart:          cart,
		secret:        secret,
		processDelay:  processDelay,
		redirectDelay: redirectDelay,
	}
}

// Submit captures the form and the current cart totals, assigns a
// confirmation number and schedules the completion transition. It refuses to
// start while a previous run is still in flight.
func (c *Checkout) Submit(form OrderForm) (Order, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status != CheckoutIdle {
		return Order{}, ErrCheckoutInProgress
	}

	cart := c.cart.View()
	order := Order{
		Confirmation: c.confirmationNumber(),
		Form:         form,
		ItemCount:    cart.ItemCount,
		Total:        cart.Total,
		SubmittedAt:  time.Now(),
	}

	c.status = CheckoutProcessing
	c.order = &order
	c.timer = time.AfterFunc(c.processDelay, c.complete)

	return order, nil
}

// complete finishes the simulated payment round trip: the cart is emptied and
// the machine shows Complete until the redirect delay elapses.
func (c *Checkout) complete() {
	c.mu.Lock()
	if c.status != CheckoutProcessing {
		c.mu.Unlock()
		return
	}
	c.status = CheckoutComplete
	c.timer = time.AfterFunc(c.redirectDelay, c.reset)
	c.mu.Unlock()

	// Cart has its own lock; clear it outside ours.
	c.cart.Clear()
}

// reset is the navigation signal back to the entry point.
func (c *Checkout) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status != CheckoutComplete {
		return
	}
	c.status = CheckoutIdle
	c.order = nil
	c.timer = nil
}

// Stop cancels any pending transition timer. The handlers never call it; it
// is the seam a real payment integration would hook into.
func (c *Checkout) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// View returns the current status and, while a run is active, the order
// snapshot.
func (c *Checkout) View() (CheckoutStatus, *Order) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.order == nil {
		return c.status, nil
	}
	order := *c.order
	return c.status, &order
}

// confirmationNumber builds a short human-readable code from an HMAC tag
// over a random nonce.
func (c *Checkout) confirmationNumber() string {
	nonce := uuid.NewString()

	mac := hmac.New(sha256.New, []byte(c.secret))
	mac.Write([]byte("order|nonce:" + nonce))

	tag := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(mac.Sum(nil))

	return fmt.Sprintf(
		"SHOP-%s-%s",
		strings.ToUpper(tag[:4]),
		strings.ToUpper(uuid.NewString()[:4]),
	)
}
