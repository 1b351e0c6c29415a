package booking

import (
	"context"
	"fmt"

	"github.com/harshitgawli/Turf-Booking/internal/audit"
	domain "github.com/harshitgawli/Turf-Booking/internal/domain/slot"
	"github.com/harshitgawli/Turf-Booking/internal/mailer"
	"github.com/harshitgawli/Turf-Booking/internal/metrics"
	"github.com/harshitgawli/Turf-Booking/internal/models"
)

type ConfirmBooking struct {
	repo  domain.Repository
	mail  mailer.Notifier
	audit audit.Recorder
}

func NewConfirmBooking(
	repo domain.Repository,
	mail mailer.Notifier,
	audit audit.Recorder,
) *ConfirmBooking {
	return &ConfirmBooking{
		repo:  repo,
		mail:  mail,
		audit: audit,
	}
}

// Execute is the admin confirmation of a pending reservation: the user paid
// (or will pay) cash, so the booking number is issued here. The confirmation
// mail is dispatched after the transition commits and never rolls it back.
func (uc *ConfirmBooking) Execute(
	ctx context.Context,
	adminID uint,
	slotID uint,
) (*models.Slot, error) {

	number := domain.NewCode()

	updated, err := uc.repo.UpdateIfStatus(
		ctx,
		slotID,
		domain.StatusPending,
		domain.ConfirmChanges(number, domain.PaymentCash),
	)
	metrics.ObserveTransition("confirm", err)
	if err != nil {
		return nil, err
	}

	if updated.ReservedBy != nil {
		uc.mail.Dispatch(confirmationMail(updated))
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "booking_confirmed",
		Entity:   "slot",
		EntityID: &updated.ID,
	})

	return updated, nil
}

func confirmationMail(s *models.Slot) mailer.Message {
	number := ""
	if s.BookingNumber != nil {
		number = *s.BookingNumber
	}

	return mailer.Message{
		To:      s.ReservedBy.Email,
		Subject: "Your turf booking is confirmed",
		Body: fmt.Sprintf(
			"Hi %s,\n\nYour booking for %s, %s is confirmed.\nBooking number: %s\n\nSee you on the turf!",
			s.ReservedBy.Name, s.Date, s.Time, number,
		),
	}
}
