package store

import "time"

// Storage bundles the storefront's state containers. It is constructed once
// in main and passed down through the application struct; nothing in this
// package is a module-level singleton.
type Storage struct {
	Catalog  *Catalog
	Cart     *Cart
	Wishlist *Wishlist
	Checkout *Checkout
}

type CheckoutConfig struct {
	Secret        string
	ProcessDelay  time.Duration
	RedirectDelay time.Duration
}

func NewStorage(checkout CheckoutConfig) Storage {
	cart := NewCart()

	return Storage{
		Catalog:  NewCatalog(),
		Cart:     cart,
		Wishlist: NewWishlist(),
		Checkout: NewCheckout(cart, checkout.Secret, checkout.ProcessDelay, checkout.RedirectDelay),
	}
}
