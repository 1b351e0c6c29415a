package booking

import (
	"sync"

	"github.com/harshitgawli/Turf-Booking/internal/audit"
	domain "github.com/harshitgawli/Turf-Booking/internal/domain/slot"
	"github.com/harshitgawli/Turf-Booking/internal/domain/slot/slottest"
	"github.com/harshitgawli/Turf-Booking/internal/mailer"
	"github.com/harshitgawli/Turf-Booking/internal/models"
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

func (r *recorderStub) actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Action)
	}
	return out
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

func availableSlot(date, timeLabel string, price int) models.Slot {
	return models.Slot{
		Date:   date,
		Time:   timeLabel,
		Price:  price,
		Status: string(domain.StatusAvailable),
	}
}

// seedReserved puts a pending slot held by the given user into the repo.
func seedReserved(repo *slottest.Repo, user models.User, code string) *models.Slot {
	repo.AddUser(user)

	s := availableSlot("2025-06-01", "18:00 - 19:00", domain.EveningRate)
	s.Status = string(domain.StatusPending)
	s.ReservedByID = &user.ID
	s.ReservedBy = &user
	s.RequestCode = &code
	return repo.Add(s)
}
