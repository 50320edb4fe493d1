package trip

import (
	"testing"

	"reisdesk/models"

	"github.com/stretchr/testify/assert"
)

func flexibleSlot(minHours, maxHours float64) models.TimeSlot {
	return models.TimeSlot{
		SlotName:         "Flexible",
		IsFlexibleStart:  true,
		IsFlexibleEnd:    true,
		MinDurationHours: minHours,
		MaxDurationHours: maxHours,
	}
}

func TestValidateTimeslotBoundaries(t *testing.T) {
	slot := flexibleSlot(4, 10)

	check := ValidateTimeslot(slot, "09:00", "13:00")
	assert.True(t, check.Valid)
	assert.Equal(t, 4.0, check.Hours)

	check = ValidateTimeslot(slot, "09:00", "19:00")
	assert.True(t, check.Valid)
	assert.Equal(t, 10.0, check.Hours)

	// One minute short of the minimum.
	check = ValidateTimeslot(slot, "09:01", "13:00")
	assert.False(t, check.Valid)

	// One minute past the maximum.
	check = ValidateTimeslot(slot, "09:00", "19:01")
	assert.False(t, check.Valid)
}

func TestValidateTimeslotCrossesMidnight(t *testing.T) {
	slot := flexibleSlot(4, 10)

	check := ValidateTimeslot(slot, "22:00", "02:00")
	assert.True(t, check.Valid)
	assert.Equal(t, 4.0, check.Hours)

	// Equal start and end reads as a full day, over the maximum.
	check = ValidateTimeslot(slot, "08:00", "08:00")
	assert.False(t, check.Valid)
	assert.Equal(t, 24.0, check.Hours)
}

func TestValidateTimeslotDefaultBounds(t *testing.T) {
	slot := flexibleSlot(0, 0)

	assert.False(t, ValidateTimeslot(slot, "09:00", "09:30").Valid)
	assert.True(t, ValidateTimeslot(slot, "09:00", "10:00").Valid)
	assert.True(t, ValidateTimeslot(slot, "09:00", "17:00").Valid)
	assert.False(t, ValidateTimeslot(slot, "09:00", "18:00").Valid)
}

func TestValidateTimeslotFixedSlotBypasses(t *testing.T) {
	slot := models.TimeSlot{
		SlotName:         "Morning",
		StartTime:        "09:00",
		EndTime:          "11:30",
		MinDurationHours: 4,
		MaxDurationHours: 10,
	}

	// Candidate times are ignored for fixed slots.
	check := ValidateTimeslot(slot, "01:00", "23:00")
	assert.True(t, check.Valid)
	assert.Equal(t, 2.5, check.Hours)
}

func TestValidateTimeslotRejectsUnparseableTimes(t *testing.T) {
	slot := flexibleSlot(1, 8)

	assert.False(t, ValidateTimeslot(slot, "nine", "13:00").Valid)
	assert.False(t, ValidateTimeslot(slot, "09:00", "25:00").Valid)
	assert.False(t, ValidateTimeslot(slot, "", "").Valid)
}

func TestNormalizeClock(t *testing.T) {
	assert.Equal(t, "09:05", normalizeClock("9:05"))
	assert.Equal(t, "09:00", normalizeClock(" 09:00 "))
	assert.Equal(t, "garbage", normalizeClock("garbage"))
}
