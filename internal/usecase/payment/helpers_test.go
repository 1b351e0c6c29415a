package payment

import (
	"context"
	"sync"

	"github.com/harshitgawli/Turf-Booking/internal/audit"
	domain "github.com/harshitgawli/Turf-Booking/internal/domain/slot"
	"github.com/harshitgawli/Turf-Booking/internal/domain/slot/slottest"
	"github.com/harshitgawli/Turf-Booking/internal/mailer"
	"github.com/harshitgawli/Turf-Booking/internal/models"
	"github.com/harshitgawli/Turf-Booking/internal/payments"
)

type recorderStub struct {
	mu     sync.Mutex
	events []audit.Event
}

func (r *recorderStub) Dispatch(ev audit.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

type mailStub struct {
	mu   sync.Mutex
	sent []mailer.Message
}

func (m *mailStub) Dispatch(msg mailer.Message) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
}

func (m *mailStub) messages() []mailer.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]mailer.Message(nil), m.sent...)
}

type providerStub struct {
	lastAmount  int
	lastReceipt string
	err         error
}

func (p *providerStub) CreateOrder(ctx context.Context, amount int, receipt string) (*payments.Order, error) {
	p.lastAmount = amount
	p.lastReceipt = receipt
	if p.err != nil {
		return nil, p.err
	}
	return &payments.Order{ID: "order_test", Amount: amount}, nil
}

// seedPending puts a pending slot held by the given user into the repo.
func seedPending(repo *slottest.Repo, user models.User, price int) *models.Slot {
	repo.AddUser(user)

	code := "123456"
	s := models.Slot{
		Date:         "2025-06-01",
		Time:         "18:00 - 19:00",
		Price:        price,
		Status:       string(domain.StatusPending),
		ReservedByID: &user.ID,
		ReservedBy:   &user,
		RequestCode:  &code,
	}
	return repo.Add(s)
}
