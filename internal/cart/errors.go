package cart

import "errors"

var (
	ErrNotAuthenticated = errors.New("log in to place an order")
	ErrNoAddress        = errors.New("a delivery address is required to place an order")
	ErrEmptyCart        = errors.New("cart is empty, nothing to order")
)
