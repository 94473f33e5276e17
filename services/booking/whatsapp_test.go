package booking

import (
	"strings"
	"testing"

	"serviciohogar/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildHandoff(t *testing.T) {
	session := models.BookingSession{
		ServiceID: "1",
		Answers: map[string]models.Answer{
			"q_leak":     models.BoolAnswer(true),
			"q_clog":     models.BoolAnswer(false),
			"q_location": models.ChoiceAnswer("Kitchen"),
		},
		Date:     "2026-09-01",
		TimeSlot: models.SlotMorning,
		Contact:  models.BookingContact{Name: "Maria Garcia", Phone: "600123456"},
	}
	service := models.ServiceItem{ID: "1", Title: "Fontanería Urgente", Price: 55}
	quote := ComputeQuote(&service, session.Answers, testPricing)
	contact := models.ContactInfo{WhatsApp: "+34 602 698 605"}

	handoff := BuildHandoff(session, service, quote, contact)

	assert.Contains(t, handoff.Message, "*Servicio:* Fontanería Urgente")
	assert.Contains(t, handoff.Message, "*Cliente:* Maria Garcia")
	assert.Contains(t, handoff.Message, "*Tel:* 600123456")
	assert.Contains(t, handoff.Message, "- ¿Hay una fuga de agua activa?: Sí")
	assert.Contains(t, handoff.Message, "- ¿Es un atasco?: No")
	assert.Contains(t, handoff.Message, "- Ubicación: Kitchen")
	assert.Contains(t, handoff.Message, "*Turno:* Mañana (09:00 - 13:00)")
	assert.Contains(t, handoff.Message, "*Presupuesto Est:* 135€ - 176€")
	assert.True(t, strings.HasPrefix(handoff.WhatsAppURL, "https://wa.me/34602698605?text="))
	assert.NotContains(t, handoff.WhatsAppURL[len("https://wa.me/34602698605?text="):], " ")
}

func TestBuildHandoffSkipsUnansweredQuestions(t *testing.T) {
	session := models.BookingSession{
		ServiceID: "3",
		Answers:   map[string]models.Answer{"q_locked_out": models.BoolAnswer(true)},
		Date:      "2026-09-02",
		TimeSlot:  models.SlotEvening,
	}
	service := models.ServiceItem{ID: "3", Title: "Cerrajería 24h", Price: 80}
	quote := ComputeQuote(&service, session.Answers, testPricing)

	handoff := BuildHandoff(session, service, quote, models.ContactInfo{WhatsApp: "+34600000000"})

	assert.Contains(t, handoff.Message, "¿No puedes entrar a casa?: Sí")
	assert.NotContains(t, handoff.Message, "¿Llave rota dentro?")
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "34602698605", digitsOnly("+34 602 698 605"))
	assert.Equal(t, "600123456", digitsOnly("600-123-456"))
	assert.Equal(t, "", digitsOnly("no phone"))
}
