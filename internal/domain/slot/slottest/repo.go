// Package slottest provides an in-memory slot.Repository for tests. Every
// conditional transition is applied under one mutex, matching the atomicity
// the real store guarantees with conditional UPDATEs.
package slottest

import (
	"context"
	"sort"
	"sync"

	domain "github.com/harshitgawli/Turf-Booking/internal/domain/slot"
	"github.com/harshitgawli/Turf-Booking/internal/httperr"
	"github.com/harshitgawli/Turf-Booking/internal/models"
)

type Repo struct {
	mu    sync.Mutex
	seq   uint
	slots map[uint]*models.Slot
	users map[uint]models.User
}

func NewRepo() *Repo {
	return &Repo{
		slots: make(map[uint]*models.Slot),
		users: make(map[uint]models.User),
	}
}

// Add seeds a slot and returns it with its assigned ID.
func (r *Repo) Add(s models.Slot) *models.Slot {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	s.ID = r.seq
	r.slots[s.ID] = &s
	return clone(&s)
}

// AddUser seeds a user so reserved slots can resolve their holder.
func (r *Repo) AddUser(u models.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = u
}

func (r *Repo) ListSlots(ctx context.Context, filter domain.ListFilter) ([]models.Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Slot
	for _, s := range r.slots {
		if filter.Date != "" && s.Date != filter.Date {
			continue
		}
		if filter.Status != "" && s.Status != string(filter.Status) {
			continue
		}
		out = append(out, *clone(s))
	}
	sortSlots(out)
	return out, nil
}

func (r *Repo) GetSlot(ctx context.Context, id uint) (*models.Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.slots[id]
	if !ok {
		return nil, httperr.ErrBusiness("slot_not_found")
	}
	return clone(s), nil
}

func (r *Repo) ListByReserver(ctx context.Context, userID uint, status domain.Status) ([]models.Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Slot
	for _, s := range r.slots {
		if s.ReservedByID != nil && *s.ReservedByID == userID && s.Status == string(status) {
			out = append(out, *clone(s))
		}
	}
	sortSlots(out)
	return out, nil
}

func (r *Repo) ListByStatuses(ctx context.Context, statuses []domain.Status) ([]models.Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Slot
	for _, s := range r.slots {
		for _, st := range statuses {
			if s.Status == string(st) {
				out = append(out, *clone(s))
				break
			}
		}
	}
	sortSlots(out)
	return out, nil
}

func (r *Repo) CreateDaySlots(ctx context.Context, date string, slots []models.Slot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.slots {
		if s.Date == date {
			return httperr.ErrBusiness("day_already_generated")
		}
	}
	for i := range slots {
		r.seq++
		slots[i].ID = r.seq
		r.slots[slots[i].ID] = clone(&slots[i])
	}
	return nil
}

func (r *Repo) UpdateIfStatus(ctx context.Context, id uint, expected domain.Status, changes map[string]any) (*models.Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.slots[id]
	if !ok {
		return nil, httperr.ErrBusiness("slot_not_found")
	}
	if s.Status != string(expected) {
		return nil, httperr.ErrBusiness("slot_conflict")
	}
	r.apply(s, changes)
	return clone(s), nil
}

func (r *Repo) UpdateIfHeldBy(ctx context.Context, id uint, expected domain.Status, userID uint, changes map[string]any) (*models.Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.slots[id]
	if !ok {
		return nil, httperr.ErrBusiness("slot_not_found")
	}
	if s.Status != string(expected) {
		return nil, httperr.ErrBusiness("slot_conflict")
	}
	if s.ReservedByID == nil || *s.ReservedByID != userID {
		return nil, httperr.ErrBusiness("not_slot_holder")
	}
	r.apply(s, changes)
	return clone(s), nil
}

func (r *Repo) ReleaseIfOccupied(ctx context.Context, id uint, changes map[string]any) (*models.Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.slots[id]
	if !ok {
		return nil, httperr.ErrBusiness("slot_not_found")
	}
	if s.Status == string(domain.StatusAvailable) {
		return nil, httperr.ErrBusiness("slot_already_available")
	}
	r.apply(s, changes)
	return clone(s), nil
}

func (r *Repo) apply(s *models.Slot, changes map[string]any) {
	for col, val := range changes {
		switch col {
		case "status":
			s.Status = val.(string)
		case "reserved_by_id":
			if val == nil {
				s.ReservedByID = nil
				s.ReservedBy = nil
			} else {
				id := val.(uint)
				s.ReservedByID = &id
				if u, ok := r.users[id]; ok {
					s.ReservedBy = &u
				}
			}
		case "request_code":
			s.RequestCode = strPtr(val)
		case "booking_number":
			s.BookingNumber = strPtr(val)
		case "payment_type":
			s.PaymentType = strPtr(val)
		case "offline_name":
			s.OfflineName = strPtr(val)
		case "offline_mobile":
			s.OfflineMobile = strPtr(val)
		}
	}
}

func strPtr(val any) *string {
	if val == nil {
		return nil
	}
	v := val.(string)
	return &v
}

func clone(s *models.Slot) *models.Slot {
	out := *s
	out.ReservedByID = copyPtr(s.ReservedByID)
	out.RequestCode = copyPtr(s.RequestCode)
	out.BookingNumber = copyPtr(s.BookingNumber)
	out.PaymentType = copyPtr(s.PaymentType)
	out.OfflineName = copyPtr(s.OfflineName)
	out.OfflineMobile = copyPtr(s.OfflineMobile)
	if s.ReservedBy != nil {
		u := *s.ReservedBy
		out.ReservedBy = &u
	}
	return &out
}

func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func sortSlots(slots []models.Slot) {
	sort.Slice(slots, func(i, j int) bool {
		if slots[i].Date != slots[j].Date {
			return slots[i].Date < slots[j].Date
		}
		return slots[i].Time < slots[j].Time
	})
}

var _ domain.Repository = (*Repo)(nil)
