package payments

import (
	"context"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

// MercadoPago creates checkout preferences for slot payments.
type MercadoPago struct {
	preferences preference.Client
	currency    string
}

func NewMercadoPago(accessToken, currency string) (*MercadoPago, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, err
	}

	return &MercadoPago{
		preferences: preference.NewClient(cfg),
		currency:    currency,
	}, nil
}

func (m *MercadoPago) CreateOrder(
	ctx context.Context,
	amount int,
	receipt string,
) (*Order, error) {

	resp, err := m.preferences.Create(ctx, preference.Request{
		ExternalReference: receipt,
		Items: []preference.ItemRequest{
			{
				Title:      "Turf slot booking",
				Quantity:   1,
				UnitPrice:  float64(amount),
				CurrencyID: m.currency,
			},
		},
	})
	if err != nil {
		return nil, err
	}

	return &Order{ID: resp.ID, Amount: amount}, nil
}

var _ Provider = (*MercadoPago)(nil)
