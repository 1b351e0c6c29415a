package booking

import (
	"context"

	domain "github.com/harshitgawli/Turf-Booking/internal/domain/slot"
	"github.com/harshitgawli/Turf-Booking/internal/models"
)

type MyBookings struct {
	repo domain.Repository
}

func NewMyBookings(repo domain.Repository) *MyBookings {
	return &MyBookings{repo: repo}
}

// Execute lists the caller's confirmed bookings only; pending reservations
// are visible on the slot grid itself.
func (uc *MyBookings) Execute(
	ctx context.Context,
	userID uint,
) ([]models.Slot, error) {

	return uc.repo.ListByReserver(ctx, userID, domain.StatusBooked)
}
