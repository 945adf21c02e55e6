package tco

const (
	litresPerUKGallon = 4.546

	homeChargeFactor   = 0.8
	publicChargeFactor = 1.5

	hybridPetrolShare = 0.5
	// The electric half of a hybrid is treated as half as efficient.
	hybridElectricPenalty = 2
)

type fuelCosts struct {
	Annual float64
	Total  float64
}

func calculateFuel(in Input) fuelCosts {
	var annual float64

	switch in.FuelType {
	case FuelPetrol, FuelDiesel:
		litresPerMile := litresPerUKGallon / in.FuelEfficiency
		annual = in.AnnualMileage * litresPerMile * in.FuelPrice

	case FuelElectric:
		homeRate := in.ElectricityPrice * homeChargeFactor
		publicRate := in.ElectricityPrice * publicChargeFactor
		homePortion := (100 - in.PublicChargingFrequency) / 100
		publicPortion := in.PublicChargingFrequency / 100

		blended := homeRate*homePortion + publicRate*publicPortion
		annual = in.AnnualMileage * blended / in.FuelEfficiency

	case FuelHybrid:
		petrolMiles := in.AnnualMileage * hybridPetrolShare
		electricMiles := in.AnnualMileage * (1 - hybridPetrolShare)

		petrolCost := (litresPerUKGallon / in.FuelEfficiency) * petrolMiles * in.FuelPrice
		electricCost := (electricMiles * in.ElectricityPrice) / (in.FuelEfficiency * hybridElectricPenalty)
		annual = petrolCost + electricCost
	}

	return fuelCosts{
		Annual: annual,
		Total:  overPeriod(annual, in),
	}
}

// overPeriod scales an annual figure to the ownership period with a single
// flat inflation uplift.
func overPeriod(annual float64, in Input) float64 {
	return annual * float64(in.OwnershipYears) * (1 + in.InflationRate/100)
}
