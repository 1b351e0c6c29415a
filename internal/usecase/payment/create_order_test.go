package payment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/harshitgawli/Turf-Booking/internal/domain/slot"
	"github.com/harshitgawli/Turf-Booking/internal/domain/slot/slottest"
	"github.com/harshitgawli/Turf-Booking/internal/httperr"
	"github.com/harshitgawli/Turf-Booking/internal/models"
)

func TestCreateOrder(t *testing.T) {
	repo := slottest.NewRepo()
	provider := &providerStub{}
	uc := NewCreateOrder(repo, provider)

	user := models.User{Name: "Asha", Email: "asha@example.com"}
	user.ID = 42
	seeded := seedPending(repo, user, domain.EveningRate)

	order, err := uc.Execute(context.Background(), 42, seeded.ID)
	require.NoError(t, err)

	assert.Equal(t, "order_test", order.ID)
	assert.Equal(t, domain.EveningRate, order.Amount)
	assert.Equal(t, domain.EveningRate, provider.lastAmount)
	assert.Contains(t, provider.lastReceipt, "slot-")

	// minting an order never moves the slot
	s, err := repo.GetSlot(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), s.Status)
}

func TestCreateOrderRequiresReservationFirst(t *testing.T) {
	repo := slottest.NewRepo()
	uc := NewCreateOrder(repo, &providerStub{})

	seeded := repo.Add(models.Slot{
		Date:   "2025-06-01",
		Time:   "10:00 - 11:00",
		Price:  domain.DaytimeRate,
		Status: string(domain.StatusAvailable),
	})

	_, err := uc.Execute(context.Background(), 42, seeded.ID)
	require.Error(t, err)
	assert.Equal(t, "slot_conflict", httperr.BusinessCode(err))
}

func TestCreateOrderRejectsNonHolder(t *testing.T) {
	repo := slottest.NewRepo()
	provider := &providerStub{}
	uc := NewCreateOrder(repo, provider)

	user := models.User{Name: "Asha", Email: "asha@example.com"}
	user.ID = 42
	seeded := seedPending(repo, user, domain.EveningRate)

	_, err := uc.Execute(context.Background(), 43, seeded.ID)
	require.Error(t, err)
	assert.Equal(t, "not_slot_holder", httperr.BusinessCode(err))
	assert.Empty(t, provider.lastReceipt, "the gateway must not be called for a non-holder")
}

func TestCreateOrderSlotNotFound(t *testing.T) {
	uc := NewCreateOrder(slottest.NewRepo(), &providerStub{})

	_, err := uc.Execute(context.Background(), 42, 999)
	require.Error(t, err)
	assert.Equal(t, "slot_not_found", httperr.BusinessCode(err))
}

func TestCreateOrderPropagatesProviderError(t *testing.T) {
	repo := slottest.NewRepo()
	provider := &providerStub{err: errors.New("gateway down")}
	uc := NewCreateOrder(repo, provider)

	user := models.User{Name: "Asha", Email: "asha@example.com"}
	user.ID = 42
	seeded := seedPending(repo, user, domain.EveningRate)

	_, err := uc.Execute(context.Background(), 42, seeded.ID)
	require.Error(t, err)
	assert.Empty(t, httperr.BusinessCode(err), "provider failures are not business errors")
}
