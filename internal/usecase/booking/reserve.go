package booking

import (
	"context"

	"github.com/harshitgawli/Turf-Booking/internal/audit"
	domain "github.com/harshitgawli/Turf-Booking/internal/domain/slot"
	"github.com/harshitgawli/Turf-Booking/internal/metrics"
	"github.com/harshitgawli/Turf-Booking/internal/models"
)

type ReserveSlot struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewReserveSlot(
	repo domain.Repository,
	audit audit.Recorder,
) *ReserveSlot {
	return &ReserveSlot{
		repo:  repo,
		audit: audit,
	}
}

// Execute moves an available slot to pending, held by userID. The returned
// request code is the out-of-band confirmation token the user quotes to the
// admin. A lost race surfaces as "slot_conflict"; the caller may re-read and
// pick another slot, never retry against a different expected state.
func (uc *ReserveSlot) Execute(
	ctx context.Context,
	userID uint,
	slotID uint,
) (*models.Slot, string, error) {

	code := domain.NewCode()

	updated, err := uc.repo.UpdateIfStatus(
		ctx,
		slotID,
		domain.StatusAvailable,
		domain.ReserveChanges(userID, code),
	)
	metrics.ObserveTransition("reserve", err)
	if err != nil {
		return nil, "", err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "slot_reserved",
		Entity:   "slot",
		EntityID: &updated.ID,
	})

	return updated, code, nil
}
