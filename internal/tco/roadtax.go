package tco

import "strings"

// TaxBand is a VED band letter, A (cleanest) to M.
type TaxBand string

const (
	BandA TaxBand = "A"
	BandB TaxBand = "B"
	BandC TaxBand = "C"
	BandD TaxBand = "D"
	BandE TaxBand = "E"
	BandF TaxBand = "F"
	BandG TaxBand = "G"
	BandH TaxBand = "H"
	BandI TaxBand = "I"
	BandJ TaxBand = "J"
	BandK TaxBand = "K"
	BandL TaxBand = "L"
	BandM TaxBand = "M"
)

// DefaultTaxBand is charged when a band is missing or unknown.
const DefaultTaxBand = BandE

// BandRate is one row of the VED schedule.
type BandRate struct {
	Band TaxBand
	// MaxCO2 is the upper bound in g/km; negative means unbounded.
	MaxCO2    int
	AnnualTax float64
}

var vedSchedule = []BandRate{
	{Band: BandA, MaxCO2: 0, AnnualTax: 0},
	{Band: BandB, MaxCO2: 50, AnnualTax: 25},
	{Band: BandC, MaxCO2: 75, AnnualTax: 110},
	{Band: BandD, MaxCO2: 90, AnnualTax: 150},
	{Band: BandE, MaxCO2: 100, AnnualTax: 180},
	{Band: BandF, MaxCO2: 110, AnnualTax: 200},
	{Band: BandG, MaxCO2: 130, AnnualTax: 240},
	{Band: BandH, MaxCO2: 150, AnnualTax: 290},
	{Band: BandI, MaxCO2: 170, AnnualTax: 320},
	{Band: BandJ, MaxCO2: 190, AnnualTax: 365},
	{Band: BandK, MaxCO2: 225, AnnualTax: 400},
	{Band: BandL, MaxCO2: 255, AnnualTax: 470},
	{Band: BandM, MaxCO2: -1, AnnualTax: 520},
}

// Bands returns the VED schedule ordered from A to M.
func Bands() []BandRate {
	out := make([]BandRate, len(vedSchedule))
	copy(out, vedSchedule)
	return out
}

// ParseTaxBand maps a band letter, in either case, to a TaxBand.
func ParseTaxBand(s string) (TaxBand, bool) {
	b := TaxBand(strings.ToUpper(strings.TrimSpace(s)))
	return b, b.Valid()
}

// Valid reports whether b is one of the thirteen schedule bands.
func (b TaxBand) Valid() bool {
	_, ok := bandRate(b)
	return ok
}

// AnnualTax returns the yearly duty for b, falling back to DefaultTaxBand.
func (b TaxBand) AnnualTax() float64 {
	if rate, ok := bandRate(b); ok {
		return rate
	}
	rate, _ := bandRate(DefaultTaxBand)
	return rate
}

// BandForEmissions returns the band whose CO2 range contains co2 (g/km).
// Negative readings are treated as zero-emission.
func BandForEmissions(co2 int) TaxBand {
	for _, r := range vedSchedule {
		if r.MaxCO2 < 0 || co2 <= r.MaxCO2 {
			return r.Band
		}
	}
	return BandM
}

func bandRate(b TaxBand) (float64, bool) {
	for _, r := range vedSchedule {
		if r.Band == b {
			return r.AnnualTax, true
		}
	}
	return 0, false
}

type roadTaxCosts struct {
	Annual float64
	Total  float64
}

// Road tax is a policy lookup, so no inflation is applied over the period.
func calculateRoadTax(in Input) roadTaxCosts {
	annual := in.RoadTaxBand.AnnualTax()
	return roadTaxCosts{
		Annual: annual,
		Total:  annual * float64(in.OwnershipYears),
	}
}
