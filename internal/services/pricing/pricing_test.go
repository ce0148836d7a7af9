package pricing

import (
	"math"
	"testing"

	"stratosim/internal/domain/models"
)

func testPlatform() models.Platform {
	return models.Platform{
		Capex:               30000,
		LaunchCost:          2000,
		ConsumablesCost:     1833,
		AmortizationFlights: 5,
	}
}

func testPayload() models.Payload {
	return models.Payload{Capex: 10000}
}

func TestQuoteAmortization(t *testing.T) {
	q := Quote(testPlatform(), testPayload(), models.FlightQuickLook{OverprovisioningFactor: 1.0}, 0)

	if q.PlatformCostPerFlight != 6000 {
		t.Fatalf("expected 6000 platform cost per flight, got %v", q.PlatformCostPerFlight)
	}
	if q.PayloadCostPerFlight != 2000 {
		t.Fatalf("expected 2000 payload cost per flight, got %v", q.PayloadCostPerFlight)
	}
	if q.BaseMissionCost != 6000+2000+2000+1833 {
		t.Fatalf("unexpected base cost: %v", q.BaseMissionCost)
	}
	if q.OverprovisioningCost != 0 || q.TotalCost != q.BaseMissionCost {
		t.Fatalf("K=1 should add nothing: %+v", q)
	}
	if q.TotalPrice != q.TotalCost {
		t.Fatalf("zero margin should not mark up: %+v", q)
	}
}

func TestQuoteOverprovisioningAndMargin(t *testing.T) {
	q := Quote(testPlatform(), testPayload(), models.FlightQuickLook{OverprovisioningFactor: 1.5}, 0.3)

	if math.Abs(q.TotalCost-q.BaseMissionCost*1.5) > 0.01 {
		t.Fatalf("total %v is not base %v times K", q.TotalCost, q.BaseMissionCost)
	}
	if math.Abs(q.OverprovisioningCost-(q.TotalCost-q.BaseMissionCost)) > 0.01 {
		t.Fatalf("overprovisioning cost inconsistent: %+v", q)
	}
	if math.Abs(q.TotalPrice-q.TotalCost*1.3) > 0.01 {
		t.Fatalf("price %v is not total %v plus 30%% margin", q.TotalPrice, q.TotalCost)
	}
}

func TestQuoteGuards(t *testing.T) {
	p := testPlatform()
	p.AmortizationFlights = 0
	q := Quote(p, testPayload(), models.FlightQuickLook{OverprovisioningFactor: 0}, 0)

	if q.PlatformCostPerFlight != 30000 {
		t.Fatalf("zero amortization should mean single-flight capex, got %v", q.PlatformCostPerFlight)
	}
	if q.TotalCost != q.BaseMissionCost {
		t.Fatalf("K below 1 should floor at 1: %+v", q)
	}
}
