package report

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Simplici0/carcost/internal/tco"
)

func sampleInput() tco.Input {
	return tco.Input{
		Make:              "Ford",
		Model:             "Focus",
		Condition:         tco.ConditionUsed,
		FuelType:          tco.FuelPetrol,
		PurchasePrice:     20000,
		FinanceType:       tco.FinanceCash,
		AnnualMileage:     8000,
		OwnershipYears:    5,
		DriverAge:         40,
		FuelEfficiency:    50,
		FuelPrice:         1.75,
		ElectricityPrice:  0.3,
		InsuranceGroup:    25,
		RoadTaxBand:       tco.BandD,
		AnnualMaintenance: 500,
		ServicingInterval: 12000,
		ResaleValue:       10000,
	}
}

func TestBreakdownSumsToTotalForCash(t *testing.T) {
	res := tco.CalculateCarCosts(sampleInput())

	lines := Breakdown(res)
	require.Len(t, lines, 6)
	assert.Equal(t, "Purchase/Finance", lines[0].Label)
	assert.Equal(t, "Depreciation", lines[5].Label)

	var sum float64
	for _, l := range lines {
		sum += l.Value
	}
	assert.InDelta(t, res.TotalCostOfOwnership, sum, 1e-6)
}

func TestBreakdownFoldsInterestIntoPurchase(t *testing.T) {
	res := tco.Result{UpfrontCost: 2000, TotalInterest: 1500}

	assert.Equal(t, 3500.0, Breakdown(res)[0].Value)
}

func TestAnnualRunningCost(t *testing.T) {
	in := sampleInput()
	res := tco.Result{AnnualFuelCost: 1000, AnnualInsurance: 400, AnnualRoadTax: 100}

	assert.Equal(t, 300.0, AnnualRunningCost(in, res))
}

func TestHandleRendersReport(t *testing.T) {
	in := sampleInput()
	res := tco.CalculateCarCosts(in)

	var buf bytes.Buffer
	err := NewReporter(&buf, nil).Handle(in, res, []string{"parking and congestion charges are not included in the total"})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Cost Analysis: Ford Focus")
	assert.Contains(t, out, "used petrol, cash finance, 8,000 miles/year over 5 years")
	assert.Contains(t, out, "Monthly Payment:         N/A")
	assert.Contains(t, out, "| Road Tax                 |           £750 |")
	assert.Contains(t, out, "Break-even estimate:     3.5 years, 10,000 miles")
	assert.Contains(t, out, "GBP/mile")
	assert.Contains(t, out, "Warnings:\n  - parking and congestion charges are not included in the total")
}

func TestHandleShowsFinancePaymentAndInfiniteBreakEven(t *testing.T) {
	in := sampleInput()
	in.FinanceType = tco.FinanceLease
	res := tco.CalculateCarCosts(in)
	res.BreakEvenMileage = math.Inf(1)

	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf, nil).Handle(in, res, nil))

	out := buf.String()
	assert.Contains(t, out, "Monthly Payment:         £400")
	assert.Contains(t, out, "∞ miles")
	assert.NotContains(t, out, "Warnings:")
}

func TestHandleBands(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf, nil).HandleBands(tco.Bands()))

	out := buf.String()
	assert.Contains(t, out, "Band A  up to 0 g/km     £0\n")
	assert.Contains(t, out, "Band M  unbounded        £520\n")
}
