// File: services/booking/pricing.go
package booking

import (
	"math"

	"serviciohogar/models"
)

// Breakdown line labels, shown as-is in the quote sidebar and the handoff
// message.
const (
	LineCallOut = "Desplazamiento"
	LineService = "Servicio Base"
	LineUrgency = "Plus Urgencia"
)

// quoteMarkup is the fixed band between the minimum and maximum estimate.
const quoteMarkup = 1.3

// ComputeQuote calculates the estimated price band for a booking. With no
// service selected the quote is all zeroes with no breakdown, which callers
// must treat as "unset" rather than a real estimate. The urgency fee is
// added at most once no matter how many urgent questions were answered
// affirmatively. The function is pure: identical inputs yield identical
// quotes.
func ComputeQuote(service *models.ServiceItem, answers map[string]models.Answer, pricing models.PricingConfig) models.Quote {
	if service == nil {
		return models.Quote{}
	}

	total := pricing.BaseFee
	breakdown := []models.QuoteLine{{Label: LineCallOut, Amount: pricing.BaseFee}}

	total += service.Price
	breakdown = append(breakdown, models.QuoteLine{Label: LineService, Amount: service.Price})

	if HasUrgentAnswer(service.ID, answers) {
		total += pricing.UrgencyFee
		breakdown = append(breakdown, models.QuoteLine{Label: LineUrgency, Amount: pricing.UrgencyFee})
	}

	return models.Quote{
		Min:       total,
		Max:       math.Round(total * quoteMarkup),
		Breakdown: breakdown,
	}
}
