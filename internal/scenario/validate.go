package scenario

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator"

	"github.com/Simplici0/carcost/internal/postcode"
	"github.com/Simplici0/carcost/internal/tco"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	mustRegister(v, "condition", func(fl validator.FieldLevel) bool {
		_, ok := tco.ParseCondition(fl.Field().String())
		return ok
	})
	mustRegister(v, "fueltype", func(fl validator.FieldLevel) bool {
		_, ok := tco.ParseFuelType(fl.Field().String())
		return ok
	})
	mustRegister(v, "financetype", func(fl validator.FieldLevel) bool {
		_, ok := tco.ParseFinanceType(fl.Field().String())
		return ok
	})
	mustRegister(v, "taxband", func(fl validator.FieldLevel) bool {
		_, ok := tco.ParseTaxBand(fl.Field().String())
		return ok
	})
	mustRegister(v, "ukpostcode", func(fl validator.FieldLevel) bool {
		return postcode.Valid(fl.Field().String())
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

// FieldError describes one rejected field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every field that failed validation.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return strings.Join(msgs, ", ")
}

// Validate checks the request against the ranges the calculator accepts.
// It returns a *ValidationError when any field is rejected.
func (r Request) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return fmt.Errorf("validate scenario: %w", err)
	}

	out := &ValidationError{Fields: make([]FieldError, 0, len(errs))}
	for _, fe := range errs {
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("field %s is a required field", field)
	case "min":
		return fmt.Sprintf("field %s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("field %s must be at most %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("field %s must be greater than %s", field, fe.Param())
	case "ltefield":
		return fmt.Sprintf("field %s must not exceed purchasePrice", field)
	case "condition":
		return fmt.Sprintf("field %s must be new or used", field)
	case "fueltype":
		return fmt.Sprintf("field %s must be one of petrol, diesel, electric, hybrid", field)
	case "financetype":
		return fmt.Sprintf("field %s must be one of cash, loan, pcp, hp, lease", field)
	case "taxband":
		return fmt.Sprintf("field %s must be a band from A to M", field)
	case "ukpostcode":
		return fmt.Sprintf("field %s is not a valid UK postcode", field)
	default:
		return fmt.Sprintf("field %s is not valid", field)
	}
}

// Warnings lists conditions the engine accepts but that probably do not mean
// what the user intended.
func (r Request) Warnings() []string {
	var warnings []string

	if r.ResaleValue > r.PurchasePrice {
		warnings = append(warnings, "resale value exceeds purchase price; depreciation will be negative")
	}

	ft := tco.FinanceType(r.FinanceType)
	if ft != tco.FinanceCash && r.Deposit >= r.PurchasePrice {
		warnings = append(warnings, "deposit covers the full purchase price; nothing is financed")
	}
	if ft != tco.FinancePCP && r.BalloonPayment > 0 {
		warnings = append(warnings, "balloon payment only applies to pcp finance and is ignored")
	}

	if tco.FuelType(r.FuelType) == tco.FuelElectric && !r.HomeCharging && r.PublicChargingFrequency < 100 {
		warnings = append(warnings, "home charging is off but public charging frequency is below 100%; the blend still uses home rates")
	}

	if r.AnnualParking > 0 || r.CongestionZone {
		warnings = append(warnings, "parking and congestion charges are not included in the total")
	}

	return warnings
}
