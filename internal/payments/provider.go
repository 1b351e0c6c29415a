package payments

import "context"

// Order is a gateway order awaiting payment.
type Order struct {
	ID     string `json:"order_id"`
	Amount int    `json:"amount"`
}

// Provider mints orders with the payment gateway. Creating an order never
// touches slot state; the reservation remains the source of truth until the
// callback is verified.
type Provider interface {
	CreateOrder(ctx context.Context, amount int, receipt string) (*Order, error)
}
