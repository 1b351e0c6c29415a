package booking

import (
	"context"

	domain "github.com/harshitgawli/Turf-Booking/internal/domain/slot"
	"github.com/harshitgawli/Turf-Booking/internal/models"
)

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

// Execute is the admin view of live bookings: pending reservations plus
// confirmed bookings, or pending only.
func (uc *ListBookings) Execute(
	ctx context.Context,
	pendingOnly bool,
) ([]models.Slot, error) {

	statuses := []domain.Status{domain.StatusPending, domain.StatusBooked}
	if pendingOnly {
		statuses = []domain.Status{domain.StatusPending}
	}

	return uc.repo.ListByStatuses(ctx, statuses)
}
