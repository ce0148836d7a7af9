// Package pricing turns a flight assessment into a mission quote. Quotes
// price the fleet the physics says is needed, not the single best-case
// platform: the overprovisioning factor from the flight screen multiplies
// the whole base cost.
package pricing

import (
	"math"

	"stratosim/internal/domain/models"
)

// Quote amortizes hardware over its flight life, adds per-flight costs and
// scales by the overprovisioning factor before applying margin.
func Quote(platform models.Platform, payload models.Payload, flight models.FlightQuickLook, marginPercent float64) models.Quote {
	flights := max(1, platform.AmortizationFlights)

	platformCost := platform.Capex / float64(flights)
	payloadCost := payload.Capex / float64(flights)

	base := platformCost + payloadCost + platform.LaunchCost + platform.ConsumablesCost

	k := math.Max(1.0, flight.OverprovisioningFactor)
	total := base * k

	return models.Quote{
		PlatformCostPerFlight: round2(platformCost),
		PayloadCostPerFlight:  round2(payloadCost),
		LaunchCost:            platform.LaunchCost,
		ConsumablesCost:       platform.ConsumablesCost,
		BaseMissionCost:       round2(base),
		OverprovisioningCost:  round2(total - base),
		TotalCost:             round2(total),
		MarginPercent:         marginPercent,
		TotalPrice:            round2(total * (1 + marginPercent)),
	}
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
