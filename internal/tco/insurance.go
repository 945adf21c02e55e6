package tco

import "math"

const (
	basePremium = 600.0

	noClaimsStep        = 0.1
	maxNoClaimsDiscount = 0.7

	neutralInsuranceGroup = 25
	insuranceGroupStep    = 0.05

	highMileage = 12000
	lowMileage  = 6000
)

type insuranceCosts struct {
	Annual float64
	Total  float64
}

// calculateInsurance applies the multipliers in a fixed order: age, no-claims
// discount, insurance group, mileage.
func calculateInsurance(in Input) insuranceCosts {
	premium := basePremium

	switch {
	case in.DriverAge < 25:
		premium *= 2.5
	case in.DriverAge < 30:
		premium *= 1.8
	case in.DriverAge > 60:
		premium *= 1.2
	}

	discount := math.Min(float64(in.NoClaimsYears)*noClaimsStep, maxNoClaimsDiscount)
	premium *= 1 - discount

	premium *= 1 + float64(in.InsuranceGroup-neutralInsuranceGroup)*insuranceGroupStep

	switch {
	case in.AnnualMileage > highMileage:
		premium *= 1.2
	case in.AnnualMileage < lowMileage:
		premium *= 0.9
	}

	return insuranceCosts{
		Annual: premium,
		Total:  overPeriod(premium, in),
	}
}
