package booking

import (
	"context"

	"github.com/harshitgawli/Turf-Booking/internal/audit"
	domain "github.com/harshitgawli/Turf-Booking/internal/domain/slot"
	"github.com/harshitgawli/Turf-Booking/internal/metrics"
	"github.com/harshitgawli/Turf-Booking/internal/models"
)

type CancelBooking struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewCancelBooking(
	repo domain.Repository,
	audit audit.Recorder,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		audit: audit,
	}
}

// Execute returns any held slot (pending or booked, online or offline) to
// available and clears every occupancy field: holder, request code, booking
// number, payment type and offline customer.
func (uc *CancelBooking) Execute(
	ctx context.Context,
	adminID uint,
	slotID uint,
) (*models.Slot, error) {

	updated, err := uc.repo.ReleaseIfOccupied(
		ctx,
		slotID,
		domain.ReleaseChanges(),
	)
	metrics.ObserveTransition("cancel", err)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "booking_cancelled",
		Entity:   "slot",
		EntityID: &updated.ID,
	})

	return updated, nil
}
