package booking

import (
	"fmt"
	"sort"
	"time"
)

// parseClock reads "HH:MM" or "HH:MM:SS" and anchors it to the given date.
func parseClock(date time.Time, clock string) (time.Time, error) {
	layouts := []string{"15:04", "15:04:05"}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, clock); err == nil {
			return time.Date(
				date.Year(), date.Month(), date.Day(),
				t.Hour(), t.Minute(), t.Second(), 0, date.Location(),
			), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid clock time %q", clock)
}

// FreeSlots computes the open intervals of a court's day: the complement of
// its blocking bookings within [open, close). Cancelled bookings never
// block. Input bookings may be unsorted and may overlap each other.
func FreeSlots(date time.Time, openClock, closeClock string, bookings []*Booking) ([]TimeSlot, error) {
	open, err := parseClock(date, openClock)
	if err != nil {
		return nil, err
	}
	close, err := parseClock(date, closeClock)
	if err != nil {
		return nil, err
	}
	if !close.After(open) {
		return nil, fmt.Errorf("closing time %q must be after opening time %q", closeClock, openClock)
	}

	// Collect blocking intervals clamped to opening hours.
	var blocked []TimeSlot
	for _, b := range bookings {
		if b.Status == StatusCancelled {
			continue
		}
		start, end := b.StartTime, b.EndTime
		if start.Before(open) {
			start = open
		}
		if end.After(close) {
			end = close
		}
		if end.After(start) {
			blocked = append(blocked, TimeSlot{StartTime: start, EndTime: end})
		}
	}

	sort.Slice(blocked, func(i, j int) bool {
		return blocked[i].StartTime.Before(blocked[j].StartTime)
	})

	var free []TimeSlot
	cursor := open
	for _, b := range blocked {
		if b.StartTime.After(cursor) {
			free = append(free, TimeSlot{StartTime: cursor, EndTime: b.StartTime})
		}
		if b.EndTime.After(cursor) {
			cursor = b.EndTime
		}
	}
	if cursor.Before(close) {
		free = append(free, TimeSlot{StartTime: cursor, EndTime: close})
	}

	return free, nil
}
