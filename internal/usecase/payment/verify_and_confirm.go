package payment

import (
	"context"
	"fmt"

	"github.com/harshitgawli/Turf-Booking/internal/audit"
	domain "github.com/harshitgawli/Turf-Booking/internal/domain/slot"
	"github.com/harshitgawli/Turf-Booking/internal/httperr"
	"github.com/harshitgawli/Turf-Booking/internal/mailer"
	"github.com/harshitgawli/Turf-Booking/internal/metrics"
	"github.com/harshitgawli/Turf-Booking/internal/models"
	"github.com/harshitgawli/Turf-Booking/internal/payments"
)

type VerifyInput struct {
	SlotID    uint
	OrderID   string
	PaymentID string
	Signature string
}

type VerifyAndConfirm struct {
	repo   domain.Repository
	secret []byte
	mail   mailer.Notifier
	audit  audit.Recorder
}

func NewVerifyAndConfirm(
	repo domain.Repository,
	secret []byte,
	mail mailer.Notifier,
	audit audit.Recorder,
) *VerifyAndConfirm {
	return &VerifyAndConfirm{
		repo:   repo,
		secret: secret,
		mail:   mail,
		audit:  audit,
	}
}

// Execute is the payment-gated confirm: the callback signature must be the
// HMAC of "orderID|paymentID" under the server secret. It fails closed: a
// bad signature changes nothing and sends nothing. On success the slot moves
// pending → booked in one conditional write that also re-checks the holder.
func (uc *VerifyAndConfirm) Execute(
	ctx context.Context,
	userID uint,
	in VerifyInput,
) (*models.Slot, error) {

	if !payments.VerifySignature(in.OrderID, in.PaymentID, in.Signature, uc.secret) {
		err := httperr.ErrBusiness("invalid_payment_signature")
		metrics.ObserveTransition("pay_and_confirm", err)
		return nil, err
	}

	number := domain.NewCode()

	updated, err := uc.repo.UpdateIfHeldBy(
		ctx,
		in.SlotID,
		domain.StatusPending,
		userID,
		domain.ConfirmChanges(number, domain.PaymentOnline),
	)
	metrics.ObserveTransition("pay_and_confirm", err)
	if err != nil {
		return nil, err
	}

	if updated.ReservedBy != nil {
		uc.mail.Dispatch(mailer.Message{
			To:      updated.ReservedBy.Email,
			Subject: "Your turf booking is confirmed",
			Body: fmt.Sprintf(
				"Hi %s,\n\nPayment received. Your booking for %s, %s is confirmed.\nBooking number: %s\n\nSee you on the turf!",
				updated.ReservedBy.Name, updated.Date, updated.Time, number,
			),
		})
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "booking_paid_online",
		Entity:   "slot",
		EntityID: &updated.ID,
		Metadata: map[string]any{
			"order_id":   in.OrderID,
			"payment_id": in.PaymentID,
		},
	})

	return updated, nil
}
