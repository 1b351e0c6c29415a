package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/harshitgawli/Turf-Booking/internal/domain/slot"
	"github.com/harshitgawli/Turf-Booking/internal/domain/slot/slottest"
	"github.com/harshitgawli/Turf-Booking/internal/httperr"
)

func TestGenerateDaySlots(t *testing.T) {
	repo := slottest.NewRepo()
	rec := &recorderStub{}
	uc := NewGenerateDaySlots(repo, rec)

	slots, err := uc.Execute(context.Background(), 1, "2025-06-01")
	require.NoError(t, err)
	require.Len(t, slots, 18)

	stored, err := repo.ListSlots(context.Background(), domain.ListFilter{Date: "2025-06-01"})
	require.NoError(t, err)
	require.Len(t, stored, 18)

	first := stored[0]
	assert.Equal(t, "06:00 - 07:00", first.Time)
	assert.Equal(t, domain.MorningRate, first.Price)
	assert.Equal(t, string(domain.StatusAvailable), first.Status)

	last := stored[17]
	assert.Equal(t, "23:00 - 24:00", last.Time)
	assert.Equal(t, domain.EveningRate, last.Price)

	// rate card by starting hour
	byTime := map[string]int{}
	for _, s := range stored {
		byTime[s.Time] = s.Price
	}
	assert.Equal(t, 499, byTime["09:00 - 10:00"])
	assert.Equal(t, 399, byTime["10:00 - 11:00"])
	assert.Equal(t, 399, byTime["16:00 - 17:00"])
	assert.Equal(t, 649, byTime["17:00 - 18:00"])

	assert.Contains(t, rec.actions(), "day_slots_generated")
}

func TestGenerateDaySlotsIsIdempotentPerDate(t *testing.T) {
	repo := slottest.NewRepo()
	uc := NewGenerateDaySlots(repo, &recorderStub{})

	_, err := uc.Execute(context.Background(), 1, "2025-06-01")
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), 1, "2025-06-01")
	require.Error(t, err)
	assert.Equal(t, "day_already_generated", httperr.BusinessCode(err))

	stored, err := repo.ListSlots(context.Background(), domain.ListFilter{Date: "2025-06-01"})
	require.NoError(t, err)
	assert.Len(t, stored, 18, "failed generation must not add or change slots")

	// another date is still fine
	_, err = uc.Execute(context.Background(), 1, "2025-06-02")
	assert.NoError(t, err)
}

func TestGenerateDaySlotsRejectsBadDate(t *testing.T) {
	uc := NewGenerateDaySlots(slottest.NewRepo(), &recorderStub{})

	for _, date := range []string{"", "01-06-2025", "2025-13-01", "next tuesday"} {
		_, err := uc.Execute(context.Background(), 1, date)
		require.Error(t, err, "date %q", date)
		assert.Equal(t, "invalid_date", httperr.BusinessCode(err))
	}
}
