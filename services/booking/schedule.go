// File: services/booking/schedule.go
package booking

import (
	"fmt"
	"time"

	"serviciohogar/models"
)

// spanishWeekdays are the es-ES short weekday forms used for display.
var spanishWeekdays = [7]string{"dom.", "lun.", "mar.", "mié.", "jue.", "vie.", "sáb."}

// slotLabels maps slot tags to their display windows.
var slotLabels = map[string]string{
	models.SlotMorning:   "Mañana (09:00 - 13:00)",
	models.SlotAfternoon: "Tarde (14:00 - 18:00)",
	models.SlotEvening:   "Noche (19:00 - 22:00)",
}

// DateOptions returns the three offered appointment days: tomorrow through
// three days out, in the local calendar of now. There is no availability
// check against other bookings; every session is offered the same days.
func DateOptions(now time.Time) []models.DateOption {
	options := make([]models.DateOption, 0, 3)
	for i := 1; i <= 3; i++ {
		d := now.AddDate(0, 0, i)
		options = append(options, models.DateOption{
			Date:    d.Format("2006-01-02"),
			Display: fmt.Sprintf("%s %d", spanishWeekdays[d.Weekday()], d.Day()),
		})
	}
	return options
}

// Slots returns the bookable time-slot tags in display order.
func Slots() []string {
	return []string{models.SlotMorning, models.SlotAfternoon, models.SlotEvening}
}

// SlotLabel returns the display window for a slot tag, or the tag itself
// when unknown.
func SlotLabel(tag string) string {
	if label, ok := slotLabels[tag]; ok {
		return label
	}
	return tag
}

// validSchedule checks the chosen date against the offered candidates and
// the slot against the known tags.
func validSchedule(now time.Time, date, slot string) bool {
	if _, ok := slotLabels[slot]; !ok {
		return false
	}
	for _, opt := range DateOptions(now) {
		if opt.Date == date {
			return true
		}
	}
	return false
}

// displayDate returns the display form for a previously chosen ISO date.
func displayDate(date string) string {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%s %d", spanishWeekdays[d.Weekday()], d.Day())
}
