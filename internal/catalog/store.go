package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator"
	"github.com/google/uuid"

	"github.com/Simplici0/carcost/internal/tco"
)

var validate = validator.New()

// Validate checks a model before it is stored.
func (m CarModel) Validate() error {
	if err := validate.Struct(m); err != nil {
		return fmt.Errorf("%w: car model: %v", ErrInvalid, err)
	}
	if !m.FuelType.Valid() {
		return fmt.Errorf("%w: car model: unknown fuel type %q", ErrInvalid, m.FuelType)
	}
	if m.TaxBand != "" && !m.TaxBand.Valid() {
		return fmt.Errorf("%w: car model: unknown tax band %q", ErrInvalid, m.TaxBand)
	}
	return nil
}

// Validate checks a fuel-price sheet before it is stored.
func (p FuelPrices) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("%w: fuel prices: %v", ErrInvalid, err)
	}
	return nil
}

// Store reads and writes the catalog tables.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

const carModelColumns = `id, make, model, year, fuel_type, fuel_efficiency, insurance_group, tax_band, co2_emissions, average_price`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCarModel(row rowScanner) (CarModel, error) {
	var m CarModel
	var fuelType, band string
	if err := row.Scan(
		&m.ID,
		&m.Make,
		&m.Model,
		&m.Year,
		&fuelType,
		&m.FuelEfficiency,
		&m.InsuranceGroup,
		&band,
		&m.CO2Emissions,
		&m.AveragePrice,
	); err != nil {
		return CarModel{}, err
	}
	m.FuelType = tco.FuelType(fuelType)
	m.TaxBand = tco.TaxBand(band)
	return m, nil
}

// ListModels returns catalog models ordered by make, model and year. A
// non-empty make filters case-insensitively.
func (s *Store) ListModels(ctx context.Context, carMake string) ([]CarModel, error) {
	query := `SELECT ` + carModelColumns + ` FROM car_models`
	var args []any
	if carMake = strings.TrimSpace(carMake); carMake != "" {
		query += ` WHERE make = ? COLLATE NOCASE`
		args = append(args, carMake)
	}
	query += ` ORDER BY make, model, year`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query car models: %w", err)
	}
	defer rows.Close()

	models := []CarModel{}
	for rows.Next() {
		m, err := scanCarModel(rows)
		if err != nil {
			return nil, fmt.Errorf("scan car model: %w", err)
		}
		models = append(models, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate car models: %w", err)
	}
	return models, nil
}

// GetModel returns one model by id.
func (s *Store) GetModel(ctx context.Context, id string) (CarModel, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+carModelColumns+` FROM car_models WHERE id = ?`, id)
	m, err := scanCarModel(row)
	if errors.Is(err, sql.ErrNoRows) {
		return CarModel{}, ErrNotFound
	}
	if err != nil {
		return CarModel{}, fmt.Errorf("query car model %s: %w", id, err)
	}
	return m, nil
}

// CreateModel stores a new model. A missing id is generated and a missing tax
// band is derived from the CO2 figure.
func (s *Store) CreateModel(ctx context.Context, m CarModel) (CarModel, error) {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.TaxBand == "" {
		m.TaxBand = tco.BandForEmissions(m.CO2Emissions)
	}
	if err := m.Validate(); err != nil {
		return CarModel{}, err
	}

	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO car_models (`+carModelColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, m.ID, m.Make, m.Model, m.Year, string(m.FuelType), m.FuelEfficiency,
		m.InsuranceGroup, string(m.TaxBand), m.CO2Emissions, m.AveragePrice); err != nil {
		return CarModel{}, fmt.Errorf("insert car model: %w", err)
	}
	return m, nil
}

// LookupPostcode returns the area for an outward code such as "SW1A".
func (s *Store) LookupPostcode(ctx context.Context, outward string) (PostcodeArea, error) {
	var a PostcodeArea
	var risk, zones string
	err := s.db.QueryRowContext(ctx, `
		SELECT outward, region, insurance_risk, congestion_zones, average_insurance
		FROM postcode_areas
		WHERE outward = ?
	`, strings.ToUpper(strings.TrimSpace(outward))).Scan(&a.Outward, &a.Region, &risk, &zones, &a.AverageInsurance)
	if errors.Is(err, sql.ErrNoRows) {
		return PostcodeArea{}, ErrNotFound
	}
	if err != nil {
		return PostcodeArea{}, fmt.Errorf("query postcode area %s: %w", outward, err)
	}
	a.InsuranceRisk = InsuranceRisk(risk)
	a.CongestionZones = splitZones(zones)
	return a, nil
}

// FuelPrices returns the reference fuel-price sheet.
func (s *Store) FuelPrices(ctx context.Context) (FuelPrices, error) {
	var p FuelPrices
	var updated string
	err := s.db.QueryRowContext(ctx, `
		SELECT petrol, diesel, electricity_home, electricity_public, last_updated
		FROM fuel_prices
		WHERE id = 1
	`).Scan(&p.Petrol, &p.Diesel, &p.ElectricityHome, &p.ElectricityPublic, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return FuelPrices{}, ErrNotFound
	}
	if err != nil {
		return FuelPrices{}, fmt.Errorf("query fuel prices: %w", err)
	}

	p.LastUpdated, err = time.Parse(time.RFC3339, updated)
	if err != nil {
		return FuelPrices{}, fmt.Errorf("parse fuel prices timestamp: %w", err)
	}
	return p, nil
}

// UpdateFuelPrices replaces the reference sheet and stamps it with the
// current time.
func (s *Store) UpdateFuelPrices(ctx context.Context, p FuelPrices) (FuelPrices, error) {
	if err := p.Validate(); err != nil {
		return FuelPrices{}, err
	}
	p.LastUpdated = s.now().UTC().Truncate(time.Second)

	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO fuel_prices (id, petrol, diesel, electricity_home, electricity_public, last_updated)
		VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			petrol = excluded.petrol,
			diesel = excluded.diesel,
			electricity_home = excluded.electricity_home,
			electricity_public = excluded.electricity_public,
			last_updated = excluded.last_updated
	`, p.Petrol, p.Diesel, p.ElectricityHome, p.ElectricityPublic, p.LastUpdated.Format(time.RFC3339)); err != nil {
		return FuelPrices{}, fmt.Errorf("update fuel prices: %w", err)
	}
	return p, nil
}
