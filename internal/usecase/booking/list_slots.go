package booking

import (
	"context"

	domain "github.com/harshitgawli/Turf-Booking/internal/domain/slot"
	"github.com/harshitgawli/Turf-Booking/internal/httperr"
	"github.com/harshitgawli/Turf-Booking/internal/models"
)

type ListSlots struct {
	repo domain.Repository
}

func NewListSlots(repo domain.Repository) *ListSlots {
	return &ListSlots{repo: repo}
}

func (uc *ListSlots) Execute(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Slot, error) {

	if filter.Status != "" && !domain.ValidFilter(filter.Status) {
		return nil, httperr.ErrBusiness("invalid_status_filter")
	}

	return uc.repo.ListSlots(ctx, filter)
}
