package report

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/Simplici0/carcost/internal/format"
	"github.com/Simplici0/carcost/internal/tco"
)

// Float encodes non-finite values as the strings "Infinity", "-Infinity" and
// "NaN", which JSON numbers cannot represent.
type Float float64

func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	switch {
	case math.IsNaN(v):
		return []byte(`"NaN"`), nil
	case math.IsInf(v, 1):
		return []byte(`"Infinity"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-Infinity"`), nil
	}
	return json.Marshal(v)
}

// ResultView is the wire shape of tco.Result.
type ResultView struct {
	UpfrontCost          Float `json:"upfrontCost"`
	MonthlyPayment       Float `json:"monthlyPayment"`
	TotalInterest        Float `json:"totalInterest"`
	AnnualFuelCost       Float `json:"annualFuelCost"`
	TotalFuelCost        Float `json:"totalFuelCost"`
	AnnualInsurance      Float `json:"annualInsurance"`
	TotalInsurance       Float `json:"totalInsurance"`
	AnnualRoadTax        Float `json:"annualRoadTax"`
	TotalRoadTax         Float `json:"totalRoadTax"`
	AnnualMOT            Float `json:"annualMOT"`
	TotalMaintenance     Float `json:"totalMaintenance"`
	DepreciationLoss     Float `json:"depreciationLoss"`
	TotalCostOfOwnership Float `json:"totalCostOfOwnership"`
	CostPerMile          Float `json:"costPerMile"`
	BreakEvenYears       Float `json:"breakEvenYears"`
	BreakEvenMileage     Float `json:"breakEvenMileage"`
	NetCost              Float `json:"netCost"`
}

func NewResultView(r tco.Result) ResultView {
	return ResultView{
		UpfrontCost:          Float(r.UpfrontCost),
		MonthlyPayment:       Float(r.MonthlyPayment),
		TotalInterest:        Float(r.TotalInterest),
		AnnualFuelCost:       Float(r.AnnualFuelCost),
		TotalFuelCost:        Float(r.TotalFuelCost),
		AnnualInsurance:      Float(r.AnnualInsurance),
		TotalInsurance:       Float(r.TotalInsurance),
		AnnualRoadTax:        Float(r.AnnualRoadTax),
		TotalRoadTax:         Float(r.TotalRoadTax),
		AnnualMOT:            Float(r.AnnualMOT),
		TotalMaintenance:     Float(r.TotalMaintenance),
		DepreciationLoss:     Float(r.DepreciationLoss),
		TotalCostOfOwnership: Float(r.TotalCostOfOwnership),
		CostPerMile:          Float(r.CostPerMile),
		BreakEvenYears:       Float(r.BreakEvenYears),
		BreakEvenMileage:     Float(r.BreakEvenMileage),
		NetCost:              Float(r.NetCost),
	}
}

type LineView struct {
	Label     string `json:"label"`
	Value     Float  `json:"value"`
	Formatted string `json:"formatted"`
}

// Formatted holds the headline figures as display strings.
type Formatted struct {
	Locale               string `json:"locale"`
	Currency             string `json:"currency"`
	TotalCostOfOwnership string `json:"totalCostOfOwnership"`
	MonthlyPayment       string `json:"monthlyPayment"`
	AnnualRunningCost    string `json:"annualRunningCost"`
	CostPerMile          string `json:"costPerMile"`
	NetCost              string `json:"netCost"`
	BreakEvenMileage     string `json:"breakEvenMileage"`
}

// Summary is the machine-readable counterpart of the text report.
type Summary struct {
	Result    ResultView `json:"result"`
	Breakdown []LineView `json:"breakdown"`
	Formatted Formatted  `json:"formatted"`
	Warnings  []string   `json:"warnings"`
}

// Summarize builds a Summary. Monthly payment reads "N/A" for cash purchases.
func Summarize(in tco.Input, res tco.Result, warnings []string, f *format.Formatter) Summary {
	if f == nil {
		f = format.Default()
	}

	lines := Breakdown(res)
	breakdown := make([]LineView, 0, len(lines))
	for _, l := range lines {
		breakdown = append(breakdown, LineView{Label: l.Label, Value: Float(l.Value), Formatted: f.Currency(l.Value)})
	}

	monthly := "N/A"
	if in.FinanceType != tco.FinanceCash {
		monthly = f.Currency(res.MonthlyPayment)
	}

	if warnings == nil {
		warnings = []string{}
	}

	return Summary{
		Result:    NewResultView(res),
		Breakdown: breakdown,
		Formatted: Formatted{
			Locale:               f.Locale().String(),
			Currency:             f.CurrencyCode(),
			TotalCostOfOwnership: f.Currency(res.TotalCostOfOwnership),
			MonthlyPayment:       monthly,
			AnnualRunningCost:    f.Currency(AnnualRunningCost(in, res)),
			CostPerMile:          f.Number(res.CostPerMile, 2),
			NetCost:              f.Currency(res.NetCost),
			BreakEvenMileage:     f.Number(res.BreakEvenMileage, 0),
		},
		Warnings: warnings,
	}
}

// JSON writes the indented Summary.
func (r *Reporter) JSON(in tco.Input, res tco.Result, warnings []string) error {
	enc := json.NewEncoder(r.writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Summarize(in, res, warnings, r.formatter)); err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}
	return nil
}
