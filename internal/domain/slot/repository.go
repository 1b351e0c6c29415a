package slot

import (
	"context"

	"github.com/harshitgawli/Turf-Booking/internal/models"
)

type ListFilter struct {
	Date   string
	Status Status
}

type Repository interface {
	// -------- Reads --------

	// ListSlots returns slots matching the filter, ordered by (date, time).
	ListSlots(ctx context.Context, filter ListFilter) ([]models.Slot, error)

	GetSlot(ctx context.Context, id uint) (*models.Slot, error)

	ListByReserver(ctx context.Context, userID uint, status Status) ([]models.Slot, error)

	ListByStatuses(ctx context.Context, statuses []Status) ([]models.Slot, error)

	// -------- Day generation --------

	// CreateDaySlots persists a whole day's grid in one transaction. It
	// fails with the business code "day_already_generated" when any slot
	// for that date already exists; idempotency is at the date grain.
	CreateDaySlots(ctx context.Context, date string, slots []models.Slot) error

	// -------- Conditional transitions --------
	//
	// Each of these is a single conditional write against the store (UPDATE
	// ... WHERE id AND status), never read-then-write. A zero-row result is
	// reported as "slot_not_found" or "slot_conflict" ("slot_already_available"
	// for ReleaseIfOccupied, "not_slot_holder" for UpdateIfHeldBy).

	UpdateIfStatus(ctx context.Context, id uint, expected Status, changes map[string]any) (*models.Slot, error)

	UpdateIfHeldBy(ctx context.Context, id uint, expected Status, userID uint, changes map[string]any) (*models.Slot, error)

	ReleaseIfOccupied(ctx context.Context, id uint, changes map[string]any) (*models.Slot, error)
}
