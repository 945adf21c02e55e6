// Package tco estimates the total cost of owning a car over a multi-year period.
//
// CalculateCarCosts is a pure function: it never fails, never validates and
// keeps no state. Degenerate inputs (zero mileage, unknown codes, resale above
// purchase price) produce zeros, defaults or non-finite values instead of errors.
package tco

import "math"

const (
	// BreakEvenYearsEstimate is a fixed placeholder, not derived from the finance schedule.
	BreakEvenYearsEstimate = 3.5
	// BreakEvenMileageEstimate is a fixed placeholder returned when electric running costs undercut petrol.
	BreakEvenMileageEstimate = 10000.0
)

// CalculateCarCosts derives every cost figure for one ownership scenario.
func CalculateCarCosts(in Input) Result {
	fin := calculateFinancing(in)
	fuel := calculateFuel(in)
	insurance := calculateInsurance(in)
	roadTax := calculateRoadTax(in)
	maintenance := calculateMaintenance(in)

	// Flat: compounding lives in CompoundDepreciation and is not applied here.
	depreciationLoss := in.PurchasePrice - in.ResaleValue

	total := fin.UpfrontCost + fuel.Total + insurance.Total +
		roadTax.Total + maintenance.Total + depreciationLoss

	totalMiles := in.AnnualMileage * float64(in.OwnershipYears)

	return Result{
		UpfrontCost:          fin.UpfrontCost,
		MonthlyPayment:       fin.MonthlyPayment,
		TotalInterest:        fin.TotalInterest,
		AnnualFuelCost:       fuel.Annual,
		TotalFuelCost:        fuel.Total,
		AnnualInsurance:      insurance.Annual,
		TotalInsurance:       insurance.Total,
		AnnualRoadTax:        roadTax.Annual,
		TotalRoadTax:         roadTax.Total,
		AnnualMOT:            maintenance.AnnualMOT,
		TotalMaintenance:     maintenance.Total,
		DepreciationLoss:     depreciationLoss,
		TotalCostOfOwnership: total,
		CostPerMile:          total / totalMiles,
		BreakEvenYears:       breakEvenYears(in),
		BreakEvenMileage:     breakEvenMileage(in),
		// Resale is already netted through DepreciationLoss; it is subtracted again here.
		NetCost: total - in.ResaleValue,
	}
}

func breakEvenYears(Input) float64 {
	return BreakEvenYearsEstimate
}

// breakEvenMileage is +Inf when electricity per mile is not cheaper than
// petrol per mile at the same efficiency figure.
func breakEvenMileage(in Input) float64 {
	petrolPerMile := (litresPerUKGallon / in.FuelEfficiency) * in.FuelPrice
	electricPerMile := in.ElectricityPrice / in.FuelEfficiency

	if electricPerMile >= petrolPerMile {
		return math.Inf(1)
	}
	return BreakEvenMileageEstimate
}
