package models

import "time"

// BookingStep identifies the wizard step a session is currently on.
// Transitions move strictly forward or backward by one step.
type BookingStep string

const (
	StepService   BookingStep = "service"
	StepDiagnose  BookingStep = "diagnose"
	StepSchedule  BookingStep = "schedule"
	StepConfirm   BookingStep = "confirm"
	StepSubmitted BookingStep = "submitted"
)

// TimeSlot tags for the three bookable windows of a day.
const (
	SlotMorning   = "morning"   // 09:00 - 13:00
	SlotAfternoon = "afternoon" // 14:00 - 18:00
	SlotEvening   = "evening"   // 19:00 - 22:00
)

// BookingContact holds the customer details collected on the confirm step.
type BookingContact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// BookingSession holds the wizard state between steps. Sessions live in the
// booking cache with a TTL and are never persisted once submitted; the only
// durable output is the WhatsApp handoff message.
type BookingSession struct {
	SessionID string            `json:"sessionId"`
	Step      BookingStep       `json:"step"`
	ServiceID string            `json:"serviceId,omitempty"`
	Answers   map[string]Answer `json:"answers"`
	Urgent    bool              `json:"urgent"`
	Date      string            `json:"date,omitempty"` // ISO date of the chosen candidate
	TimeSlot  string            `json:"timeSlot,omitempty"`
	Contact   BookingContact    `json:"contact"`
	CreatedAt time.Time         `json:"createdAt"`
}

// DateOption is one of the three offered appointment days.
type DateOption struct {
	Date    string `json:"date"`    // ISO 8601, e.g. "2026-09-01"
	Display string `json:"display"` // localized short form, e.g. "mar. 1"
}

// QuoteLine is one labelled amount of a price breakdown.
type QuoteLine struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// Quote is the estimated price band for a booking. Max is always the
// rounded 1.3x markup over Min; a zero quote with an empty breakdown means
// no service has been selected yet.
type Quote struct {
	Min       float64     `json:"min"`
	Max       float64     `json:"max"`
	Breakdown []QuoteLine `json:"breakdown"`
}

// UrgencyNotice is attached to a session response when an urgent question
// was just answered affirmatively, offering an immediate phone call.
type UrgencyNotice struct {
	Message  string `json:"message"`
	CallLink string `json:"callLink"` // tel: deep link
}

// BookingHandoff is the result of confirming a booking: the formatted
// summary and the pre-filled messaging deep link the client should open.
type BookingHandoff struct {
	Message     string `json:"message"`
	WhatsAppURL string `json:"whatsappUrl"`
}

// BookingSessionView is the wire representation of a session returned to
// the client after every operation.
type BookingSessionView struct {
	Session   BookingSession       `json:"session"`
	Services  []ServiceItem        `json:"services,omitempty"`
	Questions []DiagnosticQuestion `json:"questions,omitempty"`
	Dates     []DateOption         `json:"dates,omitempty"`
	Slots     []string             `json:"slots,omitempty"`
	Quote     Quote                `json:"quote"`
	Urgency   *UrgencyNotice       `json:"urgency,omitempty"`
	Handoff   *BookingHandoff      `json:"handoff,omitempty"`
}
