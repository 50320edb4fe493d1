package trip

import (
	"fmt"
	"strconv"
	"strings"

	"reisdesk/models"
)

// Duration bounds applied when a flexible slot does not declare its own.
const (
	defaultMinDurationHours = 1
	defaultMaxDurationHours = 8
)

// SlotCheck is the outcome of validating a candidate time range against a slot.
type SlotCheck struct {
	Valid bool    `json:"valid"`
	Hours float64 `json:"hours"`
}

// ValidateTimeslot checks a candidate (startTime, endTime) range against a
// tour timeslot. An end at or before the start is treated as crossing
// midnight. Fixed slots bypass validation and report their literal duration.
func ValidateTimeslot(slot models.TimeSlot, startTime, endTime string) SlotCheck {
	if !slot.IsFlexibleStart && !slot.IsFlexibleEnd {
		hours, ok := clockSpanHours(slot.StartTime, slot.EndTime)
		if !ok {
			return SlotCheck{}
		}
		return SlotCheck{Valid: true, Hours: hours}
	}

	hours, ok := clockSpanHours(startTime, endTime)
	if !ok {
		return SlotCheck{}
	}

	minHours := slot.MinDurationHours
	if minHours <= 0 {
		minHours = defaultMinDurationHours
	}
	maxHours := slot.MaxDurationHours
	if maxHours <= 0 {
		maxHours = defaultMaxDurationHours
	}

	return SlotCheck{
		Valid: hours >= minHours && hours <= maxHours,
		Hours: hours,
	}
}

// clockSpanHours computes the duration in hours between two "HH:MM" clock
// values, adding 24h when the end does not come after the start.
func clockSpanHours(startTime, endTime string) (float64, bool) {
	start, ok := parseClock(startTime)
	if !ok {
		return 0, false
	}
	end, ok := parseClock(endTime)
	if !ok {
		return 0, false
	}
	if end <= start {
		end += 24
	}
	return end - start, true
}

// parseClock converts "HH:MM" to fractional hours since midnight.
func parseClock(value string) (float64, bool) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 {
		return 0, false
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, false
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, false
	}
	return float64(hours) + float64(minutes)/60, true
}

// normalizeClock reformats a clock value as zero-padded "HH:MM" so slot
// times from different sources compare equal.
func normalizeClock(value string) string {
	hours, ok := parseClock(value)
	if !ok {
		return strings.TrimSpace(value)
	}
	whole := int(hours)
	minutes := int((hours-float64(whole))*60 + 0.5)
	return fmt.Sprintf("%02d:%02d", whole, minutes)
}
