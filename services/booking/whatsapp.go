// File: services/booking/whatsapp.go
package booking

import (
	"fmt"
	"net/url"
	"strings"

	"serviciohogar/models"
)

// digitsOnly strips everything but digits from a phone number, as required
// by the wa.me link format.
func digitsOnly(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// BuildHandoff formats the booking summary and the pre-filled WhatsApp deep
// link. This is the only durable output of a confirmed booking: the session
// itself is never persisted, and delivery is entirely the messaging app's
// responsibility.
func BuildHandoff(session models.BookingSession, service models.ServiceItem, quote models.Quote, contact models.ContactInfo) models.BookingHandoff {
	var diagnosis strings.Builder
	for _, q := range QuestionsFor(session.ServiceID) {
		a, ok := session.Answers[q.ID]
		if !ok {
			continue
		}
		var display string
		switch {
		case a.Bool != nil && *a.Bool:
			display = "Sí"
		case a.Bool != nil:
			display = "No"
		case a.Choice != nil:
			display = *a.Choice
		}
		fmt.Fprintf(&diagnosis, "- %s: %s\n", q.Label, display)
	}

	message := strings.TrimSpace(fmt.Sprintf(`*NUEVA RESERVA ONLINE* 📅
-----------------------
🛠 *Servicio:* %s
👤 *Cliente:* %s
📱 *Tel:* %s

📝 *Diagnóstico:*
%s
🗓 *Fecha:* %s
⏰ *Turno:* %s

💰 *Presupuesto Est:* %.0f€ - %.0f€
-----------------------
Solicito confirmación de cita.`,
		service.Title,
		session.Contact.Name,
		session.Contact.Phone,
		diagnosis.String(),
		displayDate(session.Date),
		SlotLabel(session.TimeSlot),
		quote.Min,
		quote.Max,
	))

	return models.BookingHandoff{
		Message:     message,
		WhatsAppURL: fmt.Sprintf("https://wa.me/%s?text=%s", digitsOnly(contact.WhatsApp), url.QueryEscape(message)),
	}
}
