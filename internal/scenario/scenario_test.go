package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Simplici0/carcost/internal/tco"
)

func validRequest() Request {
	req := Defaults()
	req.Make = "Kia"
	req.Model = "Niro"
	return req
}

func fieldsOf(t *testing.T, err error) []string {
	t.Helper()

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	names := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		names = append(names, f.Field)
	}
	return names
}

func TestDefaultsNeedMakeAndModel(t *testing.T) {
	err := Defaults().Validate()

	assert.ElementsMatch(t, []string{"make", "model"}, fieldsOf(t, err))
	assert.Contains(t, err.Error(), "field make is a required field")
}

func TestValidRequestPasses(t *testing.T) {
	req := validRequest()
	req.Postcode = "sw1a 1aa"
	req.RoadTaxBand = "g"

	assert.NoError(t, req.Validate())
}

func TestValidateRejectsUnknownCodes(t *testing.T) {
	req := validRequest()
	req.CarType = "refurbished"
	req.FuelType = "lpg"
	req.FinanceType = "barter"
	req.RoadTaxBand = "Z"

	err := req.Validate()

	assert.ElementsMatch(t, []string{"carType", "fuelType", "financeType", "roadTaxBand"}, fieldsOf(t, err))
	assert.Contains(t, err.Error(), "must be a band from A to M")
}

func TestValidateRanges(t *testing.T) {
	req := validRequest()
	req.DriverAge = 16
	req.InsuranceGroup = 51
	req.Deposit = 30000
	req.FuelEfficiency = 0
	req.Postcode = "not a postcode"

	err := req.Validate()

	assert.ElementsMatch(t, []string{"driverAge", "insuranceGroup", "deposit", "fuelEfficiency", "postcode"}, fieldsOf(t, err))
	assert.Contains(t, err.Error(), "field driverAge must be at least 17")
	assert.Contains(t, err.Error(), "field deposit must not exceed purchasePrice")
	assert.Contains(t, err.Error(), "field postcode is not a valid UK postcode")
}

func TestWarnings(t *testing.T) {
	req := validRequest()
	assert.Empty(t, req.Warnings())

	req.ResaleValue = 30000
	req.FinanceType = string(tco.FinanceLoan)
	req.Deposit = 25000
	req.BalloonPayment = 1000
	req.FuelType = string(tco.FuelElectric)
	req.HomeCharging = false
	req.AnnualParking = 600

	assert.Len(t, req.Warnings(), 5)
}

func TestInputConversion(t *testing.T) {
	req := validRequest()
	req.Make = "  Kia "
	req.RoadTaxBand = "b"
	req.FinanceType = string(tco.FinancePCP)
	req.LoanTerm = 48

	in := req.Input()

	assert.Equal(t, "Kia", in.Make)
	assert.Equal(t, tco.BandB, in.RoadTaxBand)
	assert.Equal(t, tco.FinancePCP, in.FinanceType)
	assert.Equal(t, 48, in.LoanTermMonths)
	assert.Equal(t, 20000.0, in.TyreReplacementMiles)
	assert.Equal(t, 15000.0, in.ResaleValue)

	req.RoadTaxBand = "Z"
	assert.Equal(t, tco.TaxBand("Z"), req.Input().RoadTaxBand)
}

func TestLoadMergesFileOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	content := []byte(`
make: Tesla
model: Model 3
fuelType: electric
fuelEfficiency: 4
financeType: lease
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))
	t.Setenv("TCO_DRIVERAGE", "45")

	req, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Tesla", req.Make)
	assert.Equal(t, "Model 3", req.Model)
	assert.Equal(t, "electric", req.FuelType)
	assert.Equal(t, 4.0, req.FuelEfficiency)
	assert.Equal(t, "lease", req.FinanceType)
	assert.Equal(t, 45, req.DriverAge)
	assert.Equal(t, 25000.0, req.PurchasePrice)
	assert.True(t, req.HomeCharging)
	assert.NoError(t, req.Validate())
}

func TestLoadWithoutFileReturnsDefaults(t *testing.T) {
	req, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, Defaults(), req)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
