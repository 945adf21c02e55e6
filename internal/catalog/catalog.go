// Package catalog holds the statically seeded reference data offered next to
// the cost engine: vehicle models, postcode areas and a fuel-price sheet.
package catalog

import (
	"errors"
	"strings"
	"time"

	"github.com/Simplici0/carcost/internal/scenario"
	"github.com/Simplici0/carcost/internal/tco"
)

var (
	// ErrNotFound is returned when a model or postcode area is not in the catalog.
	ErrNotFound = errors.New("catalog: not found")
	// ErrInvalid wraps every rejected write.
	ErrInvalid = errors.New("catalog: invalid record")
)

// InsuranceRisk grades a postcode area.
type InsuranceRisk string

const (
	RiskLow    InsuranceRisk = "low"
	RiskMedium InsuranceRisk = "medium"
	RiskHigh   InsuranceRisk = "high"
)

func (r InsuranceRisk) Valid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	}
	return false
}

// CarModel is one vehicle in the reference catalog.
type CarModel struct {
	ID             string       `json:"id"`
	Make           string       `json:"make" validate:"required"`
	Model          string       `json:"model" validate:"required"`
	Year           int          `json:"year" validate:"min=1990,max=2100"`
	FuelType       tco.FuelType `json:"fuelType" validate:"required"`
	FuelEfficiency float64      `json:"fuelEfficiency" validate:"gt=0"`
	InsuranceGroup int          `json:"insuranceGroup" validate:"min=1,max=50"`
	TaxBand        tco.TaxBand  `json:"taxBand"`
	CO2Emissions   int          `json:"co2Emissions" validate:"min=0"`
	AveragePrice   float64      `json:"averagePrice" validate:"min=0"`
}

// ApplyTo overrides the vehicle fields of req with the catalog values.
func (m CarModel) ApplyTo(req scenario.Request) scenario.Request {
	req.ModelID = m.ID
	req.Make = m.Make
	req.Model = m.Model
	req.FuelType = string(m.FuelType)
	req.FuelEfficiency = m.FuelEfficiency
	req.InsuranceGroup = m.InsuranceGroup
	req.RoadTaxBand = string(m.TaxBand)
	return req
}

// PostcodeArea is the reference data for one outward code.
type PostcodeArea struct {
	Outward          string        `json:"outward"`
	Region           string        `json:"region"`
	InsuranceRisk    InsuranceRisk `json:"insuranceRisk"`
	CongestionZones  []string      `json:"congestionZones"`
	AverageInsurance float64       `json:"averageInsurance"`
}

// FuelPrices is the reference fuel-price sheet, per litre or per kWh.
type FuelPrices struct {
	Petrol            float64   `json:"petrol" validate:"min=0.01,max=3"`
	Diesel            float64   `json:"diesel" validate:"min=0.01,max=3"`
	ElectricityHome   float64   `json:"electricityHome" validate:"min=0.01,max=1"`
	ElectricityPublic float64   `json:"electricityPublic" validate:"min=0.01,max=1"`
	LastUpdated       time.Time `json:"lastUpdated"`
}

// PriceFor returns the per-unit price the engine expects for a fuel type:
// per litre for combustion fuels and per kWh at home for electric.
func (p FuelPrices) PriceFor(ft tco.FuelType) float64 {
	switch ft {
	case tco.FuelDiesel:
		return p.Diesel
	case tco.FuelElectric:
		return p.ElectricityHome
	default:
		return p.Petrol
	}
}

func splitZones(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}
