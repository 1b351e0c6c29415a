package payment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	domain "github.com/harshitgawli/Turf-Booking/internal/domain/slot"
	"github.com/harshitgawli/Turf-Booking/internal/httperr"
	"github.com/harshitgawli/Turf-Booking/internal/payments"
)

type CreateOrder struct {
	repo     domain.Repository
	provider payments.Provider
}

func NewCreateOrder(
	repo domain.Repository,
	provider payments.Provider,
) *CreateOrder {
	return &CreateOrder{
		repo:     repo,
		provider: provider,
	}
}

// Execute mints a gateway order for a slot the caller has already reserved.
// Requiring the reservation first means a slot can never be paid for by one
// user while held or offline-booked by another. No slot state changes here;
// the transition happens when the callback verifies.
func (uc *CreateOrder) Execute(
	ctx context.Context,
	userID uint,
	slotID uint,
) (*payments.Order, error) {

	s, err := uc.repo.GetSlot(ctx, slotID)
	if err != nil {
		return nil, err
	}

	if s.Status != string(domain.StatusPending) {
		return nil, httperr.ErrBusiness("slot_conflict")
	}
	if s.ReservedByID == nil || *s.ReservedByID != userID {
		return nil, httperr.ErrBusiness("not_slot_holder")
	}

	receipt := fmt.Sprintf("slot-%d-%s", s.ID, uuid.NewString())

	return uc.provider.CreateOrder(ctx, s.Price, receipt)
}
