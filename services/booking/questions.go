// File: services/booking/questions.go
package booking

import "serviciohogar/models"

// serviceQuestions is the static diagnostic catalog, keyed by service id.
// It is not user-editable; answers are validated against it at the API
// boundary.
var serviceQuestions = map[string][]models.DiagnosticQuestion{
	"1": { // Plumbing
		{ID: "q_leak", Label: "¿Hay una fuga de agua activa?", Type: models.QuestionBoolean, Urgent: true},
		{ID: "q_clog", Label: "¿Es un atasco?", Type: models.QuestionBoolean},
		{ID: "q_location", Label: "Ubicación", Type: models.QuestionSelect, Options: []string{"Kitchen", "Bathroom", "General"}},
	},
	"2": { // Electricity
		{ID: "q_outage", Label: "¿Sin luz en toda la casa?", Type: models.QuestionBoolean, Urgent: true},
		{ID: "q_spark", Label: "¿Hubo chispas o humo?", Type: models.QuestionBoolean, Urgent: true},
		{ID: "q_location", Label: "Ubicación de la avería", Type: models.QuestionSelect, Options: []string{"Panel", "Socket", "Lighting"}},
	},
	"3": { // Locksmith
		{ID: "q_locked_out", Label: "¿No puedes entrar a casa?", Type: models.QuestionBoolean, Urgent: true},
		{ID: "q_broken_key", Label: "¿Llave rota dentro?", Type: models.QuestionBoolean},
	},
	"4": { // HVAC
		{ID: "q_wont_start", Label: "¿El equipo no enciende?", Type: models.QuestionBoolean},
		{ID: "q_leaking_water", Label: "¿Gotea agua?", Type: models.QuestionBoolean},
	},
	"5": { // Heater
		{ID: "q_no_hot_water", Label: "¿No sale agua caliente?", Type: models.QuestionBoolean, Urgent: true},
		{ID: "q_gas_smell", Label: "¿Huele a gas?", Type: models.QuestionBoolean, Urgent: true},
	},
}

// QuestionsFor returns the diagnostic questions for a service. Services
// without a catalog entry simply have no questions.
func QuestionsFor(serviceID string) []models.DiagnosticQuestion {
	return serviceQuestions[serviceID]
}

// findQuestion looks a question up within a service's catalog.
func findQuestion(serviceID, questionID string) (models.DiagnosticQuestion, bool) {
	for _, q := range serviceQuestions[serviceID] {
		if q.ID == questionID {
			return q, true
		}
	}
	return models.DiagnosticQuestion{}, false
}

// ValidateAnswer checks that the answer matches the question's type, and
// for select questions, that the choice is one of the listed options.
func ValidateAnswer(q models.DiagnosticQuestion, a models.Answer) error {
	switch q.Type {
	case models.QuestionBoolean:
		if a.Bool == nil || a.Choice != nil {
			return ErrInvalidAnswer
		}
	case models.QuestionSelect:
		if a.Choice == nil || a.Bool != nil {
			return ErrInvalidAnswer
		}
		for _, opt := range q.Options {
			if opt == *a.Choice {
				return nil
			}
		}
		return ErrInvalidAnswer
	default:
		return ErrInvalidAnswer
	}
	return nil
}

// HasUrgentAnswer reports whether any urgent-flagged question of the
// service has an affirmative answer.
func HasUrgentAnswer(serviceID string, answers map[string]models.Answer) bool {
	for _, q := range serviceQuestions[serviceID] {
		if q.Urgent && answers[q.ID].IsYes() {
			return true
		}
	}
	return false
}
