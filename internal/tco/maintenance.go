package tco

const (
	// MOTFee is the statutory annual MOT test fee.
	MOTFee = 54.85

	serviceCost = 300.0
)

type maintenanceCosts struct {
	AnnualMOT float64
	Total     float64
}

func calculateMaintenance(in Input) maintenanceCosts {
	servicing := (in.AnnualMileage / in.ServicingInterval) * serviceCost

	breakdown := 0.0
	if in.BreakdownCover {
		breakdown = in.BreakdownCost
	}

	annual := in.AnnualMaintenance + MOTFee + servicing + breakdown

	return maintenanceCosts{
		AnnualMOT: MOTFee,
		Total:     overPeriod(annual, in),
	}
}
