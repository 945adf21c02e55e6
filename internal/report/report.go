// Package report renders cost results for people.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/Simplici0/carcost/internal/format"
	"github.com/Simplici0/carcost/internal/tco"
)

// Line is one labelled component of the total cost of ownership.
type Line struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Breakdown splits the total cost of ownership into the six headline components.
// Purchase/Finance combines the upfront payment with total interest.
func Breakdown(r tco.Result) []Line {
	return []Line{
		{Label: "Purchase/Finance", Value: r.UpfrontCost + r.TotalInterest},
		{Label: "Fuel/Energy", Value: r.TotalFuelCost},
		{Label: "Insurance", Value: r.TotalInsurance},
		{Label: "Road Tax", Value: r.TotalRoadTax},
		{Label: "Maintenance", Value: r.TotalMaintenance},
		{Label: "Depreciation", Value: r.DepreciationLoss},
	}
}

// AnnualRunningCost is the headline running-cost figure: annual fuel,
// insurance and road tax divided by the ownership years.
func AnnualRunningCost(in tco.Input, r tco.Result) float64 {
	return (r.AnnualFuelCost + r.AnnualInsurance + r.AnnualRoadTax) / float64(in.OwnershipYears)
}

// TableConfig sets the column widths of the breakdown table.
type TableConfig struct {
	LabelWidth int
	ValueWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{LabelWidth: 24, ValueWidth: 14}
}

// Reporter writes text reports.
type Reporter struct {
	writer    io.Writer
	formatter *format.Formatter
	config    TableConfig
}

// NewReporter returns a Reporter writing to w (stdout when nil) using f
// (en-GB / GBP when nil).
func NewReporter(w io.Writer, f *format.Formatter) *Reporter {
	if w == nil {
		w = os.Stdout
	}
	if f == nil {
		f = format.Default()
	}
	return &Reporter{writer: w, formatter: f, config: DefaultTableConfig()}
}

type reportData struct {
	Input     tco.Input
	Result    tco.Result
	Breakdown []Line
	Running   float64
	Warnings  []string
}

const reportTemplate = `Cost Analysis: {{.Input.Make}} {{.Input.Model}}
{{.Input.Condition}} {{.Input.FuelType}}, {{.Input.FinanceType}} finance, {{number .Input.AnnualMileage 0}} miles/year over {{.Input.OwnershipYears}} years

Total Cost of Ownership: {{money .Result.TotalCostOfOwnership}}
Monthly Payment:         {{if eq (print .Input.FinanceType) "cash"}}N/A{{else}}{{money .Result.MonthlyPayment}}{{end}}
Annual Running Cost:     {{money .Running}}
Cost per Mile:           {{perMile .Result.CostPerMile}}

{{separator}}
{{range .Breakdown}}{{row .Label (money .Value)}}
{{end}}{{separator}}
{{row "Total" (money .Result.TotalCostOfOwnership)}}
{{separator}}

Net cost after resale:   {{money .Result.NetCost}}
Break-even estimate:     {{number .Result.BreakEvenYears 1}} years, {{miles .Result.BreakEvenMileage}}
{{- if .Warnings}}

Warnings:
{{- range .Warnings}}
  - {{.}}
{{- end}}
{{- end}}
`

// Handle renders one result with any input warnings.
func (r *Reporter) Handle(in tco.Input, res tco.Result, warnings []string) error {
	funcMap := template.FuncMap{
		"money":  r.formatter.Currency,
		"number": r.formatter.Number,
		"perMile": func(v float64) string {
			return r.formatter.Number(v, 2) + " " + r.formatter.CurrencyCode() + "/mile"
		},
		"miles": func(v float64) string {
			return r.formatter.Number(v, 0) + " miles"
		},
		"row": func(label, value string) string {
			return fmt.Sprintf("| %-*s | %*s |", r.config.LabelWidth, label, r.config.ValueWidth, value)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+",
				strings.Repeat("-", r.config.LabelWidth+2),
				strings.Repeat("-", r.config.ValueWidth+2))
		},
	}

	tmpl, err := template.New("report").Funcs(funcMap).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("parse report template: %w", err)
	}

	data := reportData{
		Input:     in,
		Result:    res,
		Breakdown: Breakdown(res),
		Running:   AnnualRunningCost(in, res),
		Warnings:  warnings,
	}
	if err := tmpl.Execute(r.writer, data); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

// HandleBands writes the VED schedule.
func (r *Reporter) HandleBands(bands []tco.BandRate) error {
	for _, b := range bands {
		co2 := fmt.Sprintf("up to %d g/km", b.MaxCO2)
		if b.MaxCO2 < 0 {
			co2 = "unbounded"
		}
		if _, err := fmt.Fprintf(r.writer, "Band %s  %-16s %s\n", b.Band, co2, r.formatter.Currency(b.AnnualTax)); err != nil {
			return fmt.Errorf("write band %s: %w", b.Band, err)
		}
	}
	return nil
}
