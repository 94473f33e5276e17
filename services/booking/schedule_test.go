package booking

import (
	"testing"
	"time"

	"serviciohogar/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateOptionsOffersNextThreeDays(t *testing.T) {
	// Monday 2026-08-31.
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

	options := DateOptions(now)

	require.Len(t, options, 3)
	assert.Equal(t, "2026-09-01", options[0].Date)
	assert.Equal(t, "2026-09-02", options[1].Date)
	assert.Equal(t, "2026-09-03", options[2].Date)
	assert.Equal(t, "mar. 1", options[0].Display)
	assert.Equal(t, "mié. 2", options[1].Display)
	assert.Equal(t, "jue. 3", options[2].Display)
}

func TestDateOptionsCrossesMonthBoundary(t *testing.T) {
	now := time.Date(2026, 1, 31, 23, 0, 0, 0, time.UTC)

	options := DateOptions(now)

	assert.Equal(t, "2026-02-01", options[0].Date)
	assert.Equal(t, "2026-02-03", options[2].Date)
}

func TestValidSchedule(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

	assert.True(t, validSchedule(now, "2026-09-01", models.SlotMorning))
	assert.True(t, validSchedule(now, "2026-09-03", models.SlotEvening))
	assert.False(t, validSchedule(now, "2026-08-31", models.SlotMorning), "today is not offered")
	assert.False(t, validSchedule(now, "2026-09-04", models.SlotMorning), "beyond the three candidates")
	assert.False(t, validSchedule(now, "2026-09-01", "midnight"), "unknown slot")
}

func TestSlotLabels(t *testing.T) {
	assert.Equal(t, "Mañana (09:00 - 13:00)", SlotLabel(models.SlotMorning))
	assert.Equal(t, "Tarde (14:00 - 18:00)", SlotLabel(models.SlotAfternoon))
	assert.Equal(t, "Noche (19:00 - 22:00)", SlotLabel(models.SlotEvening))
	assert.Equal(t, "whatever", SlotLabel("whatever"))
}
