package booking_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smashcourt/smashcourt-backend/internal/booking"
)

func TestFreeSlots(t *testing.T) {
	day := time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC)

	at := func(hour, min int) time.Time {
		return time.Date(2026, 2, 9, hour, min, 0, 0, time.UTC)
	}
	confirmed := func(start, end time.Time) *booking.Booking {
		return &booking.Booking{StartTime: start, EndTime: end, Status: booking.StatusConfirmed}
	}

	tests := []struct {
		name     string
		bookings []*booking.Booking
		want     []booking.TimeSlot
	}{
		{
			name:     "no bookings yields the whole day",
			bookings: nil,
			want: []booking.TimeSlot{
				{StartTime: at(6, 0), EndTime: at(23, 0)},
			},
		},
		{
			name: "single booking splits the day",
			bookings: []*booking.Booking{
				confirmed(at(10, 0), at(12, 0)),
			},
			want: []booking.TimeSlot{
				{StartTime: at(6, 0), EndTime: at(10, 0)},
				{StartTime: at(12, 0), EndTime: at(23, 0)},
			},
		},
		{
			name: "adjacent bookings leave no gap between them",
			bookings: []*booking.Booking{
				confirmed(at(10, 0), at(12, 0)),
				confirmed(at(12, 0), at(14, 0)),
			},
			want: []booking.TimeSlot{
				{StartTime: at(6, 0), EndTime: at(10, 0)},
				{StartTime: at(14, 0), EndTime: at(23, 0)},
			},
		},
		{
			name: "unsorted overlapping bookings merge",
			bookings: []*booking.Booking{
				confirmed(at(13, 0), at(15, 0)),
				confirmed(at(10, 0), at(14, 0)),
			},
			want: []booking.TimeSlot{
				{StartTime: at(6, 0), EndTime: at(10, 0)},
				{StartTime: at(15, 0), EndTime: at(23, 0)},
			},
		},
		{
			name: "cancelled bookings do not block",
			bookings: []*booking.Booking{
				{StartTime: at(10, 0), EndTime: at(12, 0), Status: booking.StatusCancelled},
			},
			want: []booking.TimeSlot{
				{StartTime: at(6, 0), EndTime: at(23, 0)},
			},
		},
		{
			name: "booking spilling past opening hours is clamped",
			bookings: []*booking.Booking{
				confirmed(at(5, 0), at(7, 0)),
				confirmed(at(22, 0), at(23, 30)),
			},
			want: []booking.TimeSlot{
				{StartTime: at(7, 0), EndTime: at(22, 0)},
			},
		},
		{
			name: "fully booked day has no free slots",
			bookings: []*booking.Booking{
				confirmed(at(6, 0), at(23, 0)),
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := booking.FreeSlots(day, "06:00", "23:00", tt.bookings)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFreeSlotsInvalidClock(t *testing.T) {
	day := time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC)

	_, err := booking.FreeSlots(day, "late", "23:00", nil)
	assert.Error(t, err)

	_, err = booking.FreeSlots(day, "23:00", "06:00", nil)
	assert.Error(t, err)
}
