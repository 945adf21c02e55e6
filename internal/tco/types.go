package tco

// Condition is the state the car is bought in.
type Condition string

const (
	ConditionNew  Condition = "new"
	ConditionUsed Condition = "used"
)

// ParseCondition maps a raw code to a Condition.
func ParseCondition(s string) (Condition, bool) {
	c := Condition(s)
	return c, c.Valid()
}

// Valid reports whether c is a known condition.
func (c Condition) Valid() bool {
	switch c {
	case ConditionNew, ConditionUsed:
		return true
	}
	return false
}

// FuelType selects the energy formula used for running costs.
type FuelType string

const (
	FuelPetrol   FuelType = "petrol"
	FuelDiesel   FuelType = "diesel"
	FuelElectric FuelType = "electric"
	FuelHybrid   FuelType = "hybrid"
)

// ParseFuelType maps a raw code to a FuelType.
func ParseFuelType(s string) (FuelType, bool) {
	f := FuelType(s)
	return f, f.Valid()
}

// Valid reports whether f is a known fuel type.
func (f FuelType) Valid() bool {
	switch f {
	case FuelPetrol, FuelDiesel, FuelElectric, FuelHybrid:
		return true
	}
	return false
}

// FinanceType selects how the purchase is paid for.
type FinanceType string

const (
	FinanceCash  FinanceType = "cash"
	FinanceLoan  FinanceType = "loan"
	FinancePCP   FinanceType = "pcp"
	FinanceHP    FinanceType = "hp"
	FinanceLease FinanceType = "lease"
)

// ParseFinanceType maps a raw code to a FinanceType.
func ParseFinanceType(s string) (FinanceType, bool) {
	f := FinanceType(s)
	return f, f.Valid()
}

// Valid reports whether f is a known finance type.
func (f FinanceType) Valid() bool {
	switch f {
	case FinanceCash, FinanceLoan, FinancePCP, FinanceHP, FinanceLease:
		return true
	}
	return false
}

// Input describes one ownership scenario. Every field is consumed as-is;
// range checks belong to the caller.
type Input struct {
	// Identity and classification.
	Make      string
	Model     string
	Condition Condition
	FuelType  FuelType

	// Acquisition.
	PurchasePrice   float64
	FinanceType     FinanceType
	Deposit         float64
	LoanTermMonths  int
	InterestRate    float64 // annual percentage
	BalloonPayment  float64
	LeaseTermMonths int
	LeaseMileage    float64

	// Usage.
	AnnualMileage  float64
	OwnershipYears int
	DriverAge      int
	NoClaimsYears  int
	Postcode       string

	// Running costs. FuelEfficiency is miles per UK gallon for petrol,
	// diesel and hybrid, miles per kWh for electric.
	FuelEfficiency          float64
	FuelPrice               float64 // per litre
	ElectricityPrice        float64 // per kWh
	HomeCharging            bool
	PublicChargingFrequency float64 // percentage of charging done publicly

	// Fixed costs.
	InsuranceGroup       int
	RoadTaxBand          TaxBand
	AnnualMaintenance    float64
	AnnualParking        float64
	CongestionZone       bool
	MOTFrequency         int
	ServicingInterval    float64 // miles
	TyreReplacementMiles float64
	BreakdownCover       bool
	BreakdownCost        float64
	WarrantyYears        int

	// Economic assumptions.
	DepreciationRate float64 // percentage per year
	InflationRate    float64 // percentage per year
	ResaleValue      float64
}

// Result holds every figure derived from an Input.
type Result struct {
	UpfrontCost    float64
	MonthlyPayment float64
	TotalInterest  float64

	AnnualFuelCost float64
	TotalFuelCost  float64

	AnnualInsurance float64
	TotalInsurance  float64

	AnnualRoadTax float64
	TotalRoadTax  float64

	AnnualMOT        float64
	TotalMaintenance float64

	DepreciationLoss     float64
	TotalCostOfOwnership float64
	CostPerMile          float64

	BreakEvenYears   float64
	BreakEvenMileage float64

	NetCost float64
}
