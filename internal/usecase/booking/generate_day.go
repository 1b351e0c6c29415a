package booking

import (
	"context"
	"time"

	"github.com/harshitgawli/Turf-Booking/internal/audit"
	domain "github.com/harshitgawli/Turf-Booking/internal/domain/slot"
	"github.com/harshitgawli/Turf-Booking/internal/httperr"
	"github.com/harshitgawli/Turf-Booking/internal/models"
)

type GenerateDaySlots struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewGenerateDaySlots(
	repo domain.Repository,
	audit audit.Recorder,
) *GenerateDaySlots {
	return &GenerateDaySlots{
		repo:  repo,
		audit: audit,
	}
}

// Execute creates the full hourly grid for a date: 18 available slots from
// 06:00 to 24:00, priced by the rate card. Generation is idempotent per
// date: a second call fails with "day_already_generated" and changes
// nothing.
func (uc *GenerateDaySlots) Execute(
	ctx context.Context,
	adminID uint,
	date string,
) ([]models.Slot, error) {

	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	slots := make([]models.Slot, 0, domain.ClosingHour-domain.OpeningHour)
	for h := domain.OpeningHour; h < domain.ClosingHour; h++ {
		slots = append(slots, models.Slot{
			Date:   date,
			Time:   domain.TimeLabel(h),
			Price:  domain.PriceFor(h),
			Status: string(domain.StatusAvailable),
		})
	}

	if err := uc.repo.CreateDaySlots(ctx, date, slots); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "day_slots_generated",
		Entity:   "slot",
		Metadata: map[string]any{"date": date, "count": len(slots)},
	})

	return slots, nil
}
