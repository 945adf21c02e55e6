// Package scenario is the input-collection side of the cost engine: it holds
// the wire shape of an ownership scenario, its defaults and its validation,
// and converts an accepted request into a tco.Input.
package scenario

import (
	"strings"

	"github.com/Simplici0/carcost/internal/tco"
)

// Request is an ownership scenario as submitted by a client or read from a file.
type Request struct {
	ModelID string `json:"modelId,omitempty" mapstructure:"modelId"`

	Make     string `json:"make" mapstructure:"make" validate:"required"`
	Model    string `json:"model" mapstructure:"model" validate:"required"`
	CarType  string `json:"carType" mapstructure:"carType" validate:"condition"`
	FuelType string `json:"fuelType" mapstructure:"fuelType" validate:"fueltype"`

	PurchasePrice  float64 `json:"purchasePrice" mapstructure:"purchasePrice" validate:"min=1,max=200000"`
	FinanceType    string  `json:"financeType" mapstructure:"financeType" validate:"financetype"`
	Deposit        float64 `json:"deposit" mapstructure:"deposit" validate:"min=0,ltefield=PurchasePrice"`
	LoanTerm       int     `json:"loanTerm" mapstructure:"loanTerm" validate:"min=12,max=84"`
	InterestRate   float64 `json:"interestRate" mapstructure:"interestRate" validate:"min=0,max=20"`
	BalloonPayment float64 `json:"balloonPayment" mapstructure:"balloonPayment" validate:"min=0,ltefield=PurchasePrice"`
	LeaseTerm      int     `json:"leaseTerm" mapstructure:"leaseTerm" validate:"min=24,max=60"`
	LeaseMileage   float64 `json:"leaseMileage" mapstructure:"leaseMileage" validate:"min=5000,max=30000"`

	AnnualMileage  float64 `json:"annualMileage" mapstructure:"annualMileage" validate:"min=1000,max=50000"`
	OwnershipYears int     `json:"ownershipYears" mapstructure:"ownershipYears" validate:"min=1,max=10"`
	DriverAge      int     `json:"driverAge" mapstructure:"driverAge" validate:"min=17,max=100"`
	NoClaimsYears  int     `json:"noClaimsYears" mapstructure:"noClaimsYears" validate:"min=0,max=10"`
	Postcode       string  `json:"postcode" mapstructure:"postcode" validate:"omitempty,ukpostcode"`

	FuelEfficiency          float64 `json:"fuelEfficiency" mapstructure:"fuelEfficiency" validate:"gt=0"`
	FuelPrice               float64 `json:"fuelPrice" mapstructure:"fuelPrice" validate:"min=0.01,max=3"`
	ElectricityPrice        float64 `json:"electricityPrice" mapstructure:"electricityPrice" validate:"min=0.01,max=1"`
	HomeCharging            bool    `json:"homeCharging" mapstructure:"homeCharging"`
	PublicChargingFrequency float64 `json:"publicChargingFrequency" mapstructure:"publicChargingFrequency" validate:"min=0,max=100"`

	InsuranceGroup    int     `json:"insuranceGroup" mapstructure:"insuranceGroup" validate:"min=1,max=50"`
	RoadTaxBand       string  `json:"roadTaxBand" mapstructure:"roadTaxBand" validate:"taxband"`
	AnnualMaintenance float64 `json:"annualMaintenance" mapstructure:"annualMaintenance" validate:"min=0"`
	AnnualParking     float64 `json:"annualParking" mapstructure:"annualParking" validate:"min=0"`
	CongestionZone    bool    `json:"congestionZone" mapstructure:"congestionZone"`
	MOTFrequency      int     `json:"motFrequency" mapstructure:"motFrequency" validate:"min=0"`
	ServicingInterval float64 `json:"servicingInterval" mapstructure:"servicingInterval" validate:"gt=0"`
	TyreReplacement   float64 `json:"tyreReplacement" mapstructure:"tyreReplacement" validate:"min=0"`
	BreakdownCover    bool    `json:"breakdownCover" mapstructure:"breakdownCover"`
	BreakdownCost     float64 `json:"breakdownCost" mapstructure:"breakdownCost" validate:"min=0"`
	WarrantyLength    int     `json:"warrantyLength" mapstructure:"warrantyLength" validate:"min=0,max=10"`

	DepreciationRate float64 `json:"depreciationRate" mapstructure:"depreciationRate" validate:"min=0,max=50"`
	InflationRate    float64 `json:"inflationRate" mapstructure:"inflationRate" validate:"min=0,max=10"`
	ResaleValue      float64 `json:"resaleValue" mapstructure:"resaleValue" validate:"min=0"`
}

// Defaults returns the starting scenario offered to a new user. Make and
// model are left blank and must be supplied.
func Defaults() Request {
	return Request{
		CarType:                 string(tco.ConditionNew),
		FuelType:                string(tco.FuelPetrol),
		PurchasePrice:           25000,
		FinanceType:             string(tco.FinanceCash),
		LoanTerm:                60,
		InterestRate:            7.5,
		LeaseTerm:               36,
		LeaseMileage:            10000,
		AnnualMileage:           8000,
		OwnershipYears:          5,
		DriverAge:               30,
		FuelEfficiency:          50,
		FuelPrice:               1.75,
		ElectricityPrice:        0.30,
		HomeCharging:            true,
		PublicChargingFrequency: 20,
		InsuranceGroup:          25,
		RoadTaxBand:             string(tco.BandD),
		AnnualMaintenance:       500,
		MOTFrequency:            1,
		ServicingInterval:       12000,
		TyreReplacement:         20000,
		BreakdownCover:          true,
		BreakdownCost:           150,
		WarrantyLength:          3,
		DepreciationRate:        15,
		InflationRate:           2.5,
		ResaleValue:             15000,
	}
}

// Input converts the request into an engine input. It does not validate;
// unknown codes are passed through and handled by the engine's defaults.
func (r Request) Input() tco.Input {
	band, ok := tco.ParseTaxBand(r.RoadTaxBand)
	if !ok {
		band = tco.TaxBand(r.RoadTaxBand)
	}

	return tco.Input{
		Make:      strings.TrimSpace(r.Make),
		Model:     strings.TrimSpace(r.Model),
		Condition: tco.Condition(r.CarType),
		FuelType:  tco.FuelType(r.FuelType),

		PurchasePrice:   r.PurchasePrice,
		FinanceType:     tco.FinanceType(r.FinanceType),
		Deposit:         r.Deposit,
		LoanTermMonths:  r.LoanTerm,
		InterestRate:    r.InterestRate,
		BalloonPayment:  r.BalloonPayment,
		LeaseTermMonths: r.LeaseTerm,
		LeaseMileage:    r.LeaseMileage,

		AnnualMileage:  r.AnnualMileage,
		OwnershipYears: r.OwnershipYears,
		DriverAge:      r.DriverAge,
		NoClaimsYears:  r.NoClaimsYears,
		Postcode:       r.Postcode,

		FuelEfficiency:          r.FuelEfficiency,
		FuelPrice:               r.FuelPrice,
		ElectricityPrice:        r.ElectricityPrice,
		HomeCharging:            r.HomeCharging,
		PublicChargingFrequency: r.PublicChargingFrequency,

		InsuranceGroup:       r.InsuranceGroup,
		RoadTaxBand:          band,
		AnnualMaintenance:    r.AnnualMaintenance,
		AnnualParking:        r.AnnualParking,
		CongestionZone:       r.CongestionZone,
		MOTFrequency:         r.MOTFrequency,
		ServicingInterval:    r.ServicingInterval,
		TyreReplacementMiles: r.TyreReplacement,
		BreakdownCover:       r.BreakdownCover,
		BreakdownCost:        r.BreakdownCost,
		WarrantyYears:        r.WarrantyLength,

		DepreciationRate: r.DepreciationRate,
		InflationRate:    r.InflationRate,
		ResaleValue:      r.ResaleValue,
	}
}
