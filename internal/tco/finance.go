package tco

const (
	leasePriceFactor   = 0.02
	leaseMileageFactor = 0.0001
)

type financing struct {
	UpfrontCost    float64
	MonthlyPayment float64
	TotalInterest  float64
}

func calculateFinancing(in Input) financing {
	switch in.FinanceType {
	case FinanceCash:
		return financing{UpfrontCost: in.PurchasePrice}

	case FinanceLoan, FinanceHP:
		principal := in.PurchasePrice - in.Deposit
		payment := PMT(monthlyRate(in.InterestRate), in.LoanTermMonths, principal)
		totalPaid := payment * float64(in.LoanTermMonths)
		return financing{
			UpfrontCost:    in.Deposit,
			MonthlyPayment: payment,
			TotalInterest:  totalPaid - principal,
		}

	case FinancePCP:
		principal := in.PurchasePrice - in.Deposit - in.BalloonPayment
		payment := PMT(monthlyRate(in.InterestRate), in.LoanTermMonths, principal)
		totalPaid := payment*float64(in.LoanTermMonths) + in.BalloonPayment
		return financing{
			UpfrontCost:    in.Deposit,
			MonthlyPayment: payment,
			TotalInterest:  totalPaid - (in.PurchasePrice - in.Deposit),
		}

	case FinanceLease:
		// Flat approximation; leases carry no interest line.
		return financing{
			UpfrontCost:    in.Deposit,
			MonthlyPayment: in.PurchasePrice*leasePriceFactor + in.LeaseMileage*leaseMileageFactor,
		}
	}

	return financing{}
}

func monthlyRate(annualPercent float64) float64 {
	return annualPercent / 100 / 12
}
