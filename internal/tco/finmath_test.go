package tco

import (
	"math"
	"testing"
)

func TestPMT_ZeroRateSpreadsEvenly(t *testing.T) {
	nearlyEqual(t, "pmt", PMT(0, 12, 1200), 100)
}

func TestPMT_MatchesAmortizationIdentity(t *testing.T) {
	for _, tc := range []struct {
		rate float64
		n    int
		pv   float64
	}{
		{rate: 0.01, n: 24, pv: 10000},
		{rate: 0.075 / 12, n: 60, pv: 20000},
		{rate: 0.2 / 12, n: 12, pv: 500},
	} {
		payment := PMT(tc.rate, tc.n, tc.pv)
		if payment*float64(tc.n) <= tc.pv {
			t.Fatalf("rate=%v n=%d: total repaid %v not above principal %v", tc.rate, tc.n, payment*float64(tc.n), tc.pv)
		}

		// Discounting every payment back must recover the principal.
		var pv float64
		for k := 1; k <= tc.n; k++ {
			pv += payment / math.Pow(1+tc.rate, float64(k))
		}
		nearlyEqual(t, "present value", pv, tc.pv)
	}
}

func TestPMT_ZeroTermIsNonFinite(t *testing.T) {
	if got := PMT(0, 0, 1000); !math.IsInf(got, 1) {
		t.Fatalf("PMT(0, 0, 1000) = %v, want +Inf", got)
	}
	if got := PMT(0.01, 0, 1000); !math.IsInf(got, 1) {
		t.Fatalf("PMT(0.01, 0, 1000) = %v, want +Inf", got)
	}
}

func TestCompoundDepreciation(t *testing.T) {
	nearlyEqual(t, "age 0", CompoundDepreciation(20000, 0, 5, DefaultDepreciationRate), 20000)
	nearlyEqual(t, "age 2", CompoundDepreciation(20000, 2, 5, DefaultDepreciationRate), 14450)
	nearlyEqual(t, "totalYears ignored", CompoundDepreciation(20000, 2, 10, DefaultDepreciationRate), 14450)
}

func TestCompoundDepreciationDiffersFromFlatLoss(t *testing.T) {
	in := baseInput()
	in.ResaleValue = CompoundDepreciation(in.PurchasePrice, in.OwnershipYears, in.OwnershipYears, DefaultDepreciationRate)

	r := CalculateCarCosts(in)

	nearlyEqual(t, "depreciationLoss", r.DepreciationLoss, in.PurchasePrice-in.ResaleValue)
}
