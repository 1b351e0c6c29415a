package booking

import (
	"context"

	"github.com/harshitgawli/Turf-Booking/internal/audit"
	domain "github.com/harshitgawli/Turf-Booking/internal/domain/slot"
	"github.com/harshitgawli/Turf-Booking/internal/httperr"
	"github.com/harshitgawli/Turf-Booking/internal/metrics"
	"github.com/harshitgawli/Turf-Booking/internal/models"
)

type OfflineBookInput struct {
	SlotID uint
	Name   string
	Mobile string
}

type OfflineBook struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewOfflineBook(
	repo domain.Repository,
	audit audit.Recorder,
) *OfflineBook {
	return &OfflineBook{
		repo:  repo,
		audit: audit,
	}
}

// Execute records an admin-entered cash booking for a walk-in customer,
// going straight from available to booked.
func (uc *OfflineBook) Execute(
	ctx context.Context,
	adminID uint,
	in OfflineBookInput,
) (*models.Slot, error) {

	if in.Name == "" || in.Mobile == "" {
		return nil, httperr.ErrBusiness("missing_customer")
	}

	number := domain.NewCode()

	updated, err := uc.repo.UpdateIfStatus(
		ctx,
		in.SlotID,
		domain.StatusAvailable,
		domain.OfflineChanges(in.Name, in.Mobile, number),
	)
	metrics.ObserveTransition("offline_book", err)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "slot_offline_booked",
		Entity:   "slot",
		EntityID: &updated.ID,
		Metadata: map[string]any{"customer": in.Name},
	})

	return updated, nil
}
