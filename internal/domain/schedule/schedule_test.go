//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"mechmobile/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var montreal = func() *time.Location {
	loc, err := time.LoadLocation("America/Toronto")
	if err != nil {
		panic(err)
	}
	return loc
}()

func newPlanner(t *testing.T) *schedule.Planner {
	t.Helper()
	p, err := schedule.NewPlanner(schedule.DefaultBusinessHours(), 72*time.Hour, montreal)
	require.NoError(t, err)
	return p
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, montreal)
}

func TestAvailableSlots(t *testing.T) {
	p := newPlanner(t)
	now := time.Date(2026, time.September, 1, 9, 0, 0, 0, montreal)

	t.Run("open weekday with no busy intervals yields three available slots", func(t *testing.T) {
		date := day(2026, time.September, 8) // Tuesday, a week out
		slots := p.AvailableSlots(date, nil, now)
		require.Len(t, slots, 3)
		assert.Equal(t, "8h00 - 11h00", slots[0].Label)
		assert.Equal(t, "11h00 - 14h00", slots[1].Label)
		assert.Equal(t, "14h00 - 17h00", slots[2].Label)
		for _, s := range slots {
			assert.True(t, s.Available)
		}
	})

	t.Run("busy interval matching a slot exactly marks only that slot busy", func(t *testing.T) {
		date := day(2026, time.September, 8)
		busy := []schedule.Interval{
			{
				Start: time.Date(2026, time.September, 8, 11, 0, 0, 0, montreal),
				End:   time.Date(2026, time.September, 8, 14, 0, 0, 0, montreal),
			},
		}
		slots := p.AvailableSlots(date, busy, now)
		require.Len(t, slots, 3)
		assert.True(t, slots[0].Available)
		assert.False(t, slots[1].Available)
		assert.True(t, slots[2].Available)
	})

	t.Run("one-minute sliver straddling a boundary blocks both slots", func(t *testing.T) {
		date := day(2026, time.September, 8)
		busy := []schedule.Interval{
			{
				Start: time.Date(2026, time.September, 8, 10, 59, 0, 0, montreal),
				End:   time.Date(2026, time.September, 8, 11, 1, 0, 0, montreal),
			},
		}
		slots := p.AvailableSlots(date, busy, now)
		require.Len(t, slots, 3)
		assert.False(t, slots[0].Available)
		assert.False(t, slots[1].Available)
		assert.True(t, slots[2].Available)
	})

	t.Run("booking ending exactly at a slot start does not block it", func(t *testing.T) {
		date := day(2026, time.September, 8)
		busy := []schedule.Interval{
			{
				Start: time.Date(2026, time.September, 8, 8, 0, 0, 0, montreal),
				End:   time.Date(2026, time.September, 8, 11, 0, 0, 0, montreal),
			},
		}
		slots := p.AvailableSlots(date, busy, now)
		require.Len(t, slots, 3)
		assert.False(t, slots[0].Available)
		assert.True(t, slots[1].Available)
	})

	t.Run("date inside the lead time yields no slots", func(t *testing.T) {
		date := now.Add(60 * time.Hour)
		assert.Empty(t, p.AvailableSlots(date, nil, now))
	})

	t.Run("date just past the lead time yields slots", func(t *testing.T) {
		date := now.Add(73 * time.Hour)
		assert.NotEmpty(t, p.AvailableSlots(date, nil, now))
	})

	t.Run("closed weekday yields no slots", func(t *testing.T) {
		hours := schedule.DefaultBusinessHours()
		hours.OpenDays[time.Sunday] = false
		closed, err := schedule.NewPlanner(hours, 72*time.Hour, montreal)
		require.NoError(t, err)
		sunday := day(2026, time.September, 13)
		assert.Empty(t, closed.AvailableSlots(sunday, nil, now))
	})
}

func TestCanonicalSlots(t *testing.T) {
	t.Run("slots fit default hours", func(t *testing.T) {
		slots, err := schedule.CanonicalSlots(schedule.DefaultBusinessHours())
		require.NoError(t, err)
		assert.Len(t, slots, 3)
	})

	t.Run("narrow hours reject out-of-range slots", func(t *testing.T) {
		hours := schedule.DefaultBusinessHours()
		hours.CloseHour = 16
		_, err := schedule.CanonicalSlots(hours)
		assert.Error(t, err)
	})
}

func TestAllSlotsOpen(t *testing.T) {
	p := newPlanner(t)
	slots := p.AllSlotsOpen(day(2026, time.September, 8))
	require.Len(t, slots, 3)
	for _, s := range slots {
		assert.True(t, s.Available)
	}
}

func TestSlotByLabel(t *testing.T) {
	p := newPlanner(t)
	date := day(2026, time.September, 8)

	slot, ok := p.SlotByLabel(date, "11h00 - 14h00")
	require.True(t, ok)
	assert.Equal(t, 11, slot.Start.Hour())
	assert.Equal(t, 14, slot.End.Hour())

	_, ok = p.SlotByLabel(date, "17h00 - 20h00")
	assert.False(t, ok)
}

func TestCancelPolicy(t *testing.T) {
	policy := schedule.NewCancelPolicy(23.98)
	now := time.Date(2026, time.September, 1, 9, 0, 0, 0, montreal)

	tests := []struct {
		name  string
		start time.Time
		want  bool
	}{
		{name: "25 hours out is cancellable", start: now.Add(25 * time.Hour), want: true},
		{name: "23 hours out is locked", start: now.Add(23 * time.Hour), want: false},
		{name: "exactly at cutoff is locked", start: now.Add(time.Duration(23.98 * float64(time.Hour))), want: false},
		{name: "already started is locked", start: now.Add(-time.Hour), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.CanCancel(tt.start, now))
		})
	}
}
