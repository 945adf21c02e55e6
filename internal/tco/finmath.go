package tco

import "math"

// DefaultDepreciationRate is the conventional annual loss used with CompoundDepreciation.
const DefaultDepreciationRate = 0.15

// PMT returns the fixed periodic payment that amortizes pv over nper periods
// at the given periodic rate. A zero rate spreads pv evenly.
func PMT(rate float64, nper int, pv float64) float64 {
	n := float64(nper)
	if rate == 0 {
		return pv / n
	}
	pvif := math.Pow(1+rate, n)
	return (rate * pv * pvif) / (pvif - 1)
}

// CompoundDepreciation returns the value of a car bought at purchasePrice
// after age years of losing rate (a fraction, e.g. 0.15) of its value per year.
// totalYears is accepted for call-site symmetry and does not affect the result.
//
// CalculateCarCosts does not use this; its depreciation is flat.
func CompoundDepreciation(purchasePrice float64, age, totalYears int, rate float64) float64 {
	_ = totalYears
	return purchasePrice * math.Pow(1-rate, float64(age))
}
