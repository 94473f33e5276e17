package booking

import (
	"math"
	"testing"

	"serviciohogar/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPricing = models.PricingConfig{BaseFee: 35, UrgencyFee: 45, NightFee: 30}

func plumbing() *models.ServiceItem {
	return &models.ServiceItem{ID: "1", Title: "Fontanería Urgente", Price: 55}
}

func TestComputeQuoteWithUrgency(t *testing.T) {
	answers := map[string]models.Answer{
		"q_leak": models.BoolAnswer(true),
	}

	quote := ComputeQuote(plumbing(), answers, testPricing)

	assert.Equal(t, 135.0, quote.Min)
	assert.Equal(t, 176.0, quote.Max)
	require.Len(t, quote.Breakdown, 3)
	assert.Equal(t, models.QuoteLine{Label: LineCallOut, Amount: 35}, quote.Breakdown[0])
	assert.Equal(t, models.QuoteLine{Label: LineService, Amount: 55}, quote.Breakdown[1])
	assert.Equal(t, models.QuoteLine{Label: LineUrgency, Amount: 45}, quote.Breakdown[2])
}

func TestComputeQuoteWithoutUrgency(t *testing.T) {
	answers := map[string]models.Answer{
		"q_clog": models.BoolAnswer(true), // not flagged urgent
		"q_leak": models.BoolAnswer(false),
	}

	quote := ComputeQuote(plumbing(), answers, testPricing)

	assert.Equal(t, 90.0, quote.Min)
	assert.Equal(t, 117.0, quote.Max)
	require.Len(t, quote.Breakdown, 2)
}

func TestUrgencyFeeAddedExactlyOnce(t *testing.T) {
	// Electricity has two urgent questions; answering both "yes" must not
	// double the surcharge.
	electricity := &models.ServiceItem{ID: "2", Title: "Electricistas Autorizados", Price: 65}
	answers := map[string]models.Answer{
		"q_outage": models.BoolAnswer(true),
		"q_spark":  models.BoolAnswer(true),
	}

	quote := ComputeQuote(electricity, answers, testPricing)

	assert.Equal(t, 35.0+65.0+45.0, quote.Min)
	urgencyLines := 0
	for _, line := range quote.Breakdown {
		if line.Label == LineUrgency {
			urgencyLines++
		}
	}
	assert.Equal(t, 1, urgencyLines)
}

func TestComputeQuoteNoServiceIsUnset(t *testing.T) {
	quote := ComputeQuote(nil, nil, testPricing)

	assert.Zero(t, quote.Min)
	assert.Zero(t, quote.Max)
	assert.Empty(t, quote.Breakdown)
}

func TestComputeQuoteMarkupBand(t *testing.T) {
	services := []*models.ServiceItem{
		{ID: "1", Price: 55},
		{ID: "3", Price: 80},
		{ID: "5", Price: 60},
	}
	for _, svc := range services {
		quote := ComputeQuote(svc, nil, testPricing)
		assert.Equal(t, math.Round(quote.Min*1.3), quote.Max)
	}
}

func TestComputeQuoteIgnoresSelectAnswersAndMissingOnes(t *testing.T) {
	answers := map[string]models.Answer{
		"q_location": models.ChoiceAnswer("Kitchen"),
	}

	quote := ComputeQuote(plumbing(), answers, testPricing)

	assert.Equal(t, 90.0, quote.Min)
}

func TestComputeQuoteIsIdempotent(t *testing.T) {
	answers := map[string]models.Answer{"q_leak": models.BoolAnswer(true)}

	first := ComputeQuote(plumbing(), answers, testPricing)
	second := ComputeQuote(plumbing(), answers, testPricing)

	assert.Equal(t, first, second)
}
