package seed

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Simplici0/carcost/internal/catalog"
	"github.com/Simplici0/carcost/internal/tco"
)

// modelNamespace keeps seeded model ids stable across databases.
var modelNamespace = uuid.MustParse("0f6a3c2e-57a1-4a39-9d0c-6f1d7c5e2b10")

// FuelSheetDate stamps the seeded fuel-price sheet.
var FuelSheetDate = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// Config contains the values required by startup seed.
type Config struct {
	AdminEmail    string
	AdminPassword string
}

// Stats contains seed operation counters.
type Stats struct {
	Inserts int
}

var models = []catalog.CarModel{
	{Make: "Ford", Model: "Focus", Year: 2022, FuelType: tco.FuelPetrol, FuelEfficiency: 50.4, InsuranceGroup: 15, CO2Emissions: 127, AveragePrice: 22500},
	{Make: "Vauxhall", Model: "Corsa", Year: 2023, FuelType: tco.FuelPetrol, FuelEfficiency: 52.3, InsuranceGroup: 10, CO2Emissions: 122, AveragePrice: 19000},
	{Make: "Volkswagen", Model: "Golf", Year: 2022, FuelType: tco.FuelDiesel, FuelEfficiency: 62.8, InsuranceGroup: 18, CO2Emissions: 118, AveragePrice: 27000},
	{Make: "BMW", Model: "3 Series", Year: 2022, FuelType: tco.FuelDiesel, FuelEfficiency: 55.4, InsuranceGroup: 30, CO2Emissions: 135, AveragePrice: 38000},
	{Make: "Toyota", Model: "Corolla", Year: 2023, FuelType: tco.FuelHybrid, FuelEfficiency: 60.1, InsuranceGroup: 16, CO2Emissions: 101, AveragePrice: 29000},
	{Make: "Kia", Model: "Niro EV", Year: 2023, FuelType: tco.FuelElectric, FuelEfficiency: 4.0, InsuranceGroup: 25, CO2Emissions: 0, AveragePrice: 35000},
	{Make: "Nissan", Model: "Leaf", Year: 2022, FuelType: tco.FuelElectric, FuelEfficiency: 3.9, InsuranceGroup: 21, CO2Emissions: 0, AveragePrice: 28000},
	{Make: "Tesla", Model: "Model 3", Year: 2023, FuelType: tco.FuelElectric, FuelEfficiency: 4.5, InsuranceGroup: 48, CO2Emissions: 0, AveragePrice: 40000},
}

var areas = []catalog.PostcodeArea{
	{Outward: "SW1A", Region: "London", InsuranceRisk: catalog.RiskHigh, CongestionZones: []string{"Congestion Charge", "ULEZ"}, AverageInsurance: 1100},
	{Outward: "B1", Region: "Birmingham", InsuranceRisk: catalog.RiskMedium, CongestionZones: []string{"Clean Air Zone"}, AverageInsurance: 800},
	{Outward: "M1", Region: "Manchester", InsuranceRisk: catalog.RiskMedium, AverageInsurance: 750},
	{Outward: "LS1", Region: "Leeds", InsuranceRisk: catalog.RiskMedium, AverageInsurance: 700},
	{Outward: "BS1", Region: "Bristol", InsuranceRisk: catalog.RiskMedium, CongestionZones: []string{"Clean Air Zone"}, AverageInsurance: 650},
	{Outward: "EH1", Region: "Edinburgh", InsuranceRisk: catalog.RiskLow, CongestionZones: []string{"Low Emission Zone"}, AverageInsurance: 550},
}

var fuelSheet = catalog.FuelPrices{
	Petrol:            1.45,
	Diesel:            1.52,
	ElectricityHome:   0.28,
	ElectricityPublic: 0.79,
}

// ModelID returns the id a seeded model is stored under.
func ModelID(carMake, model string, year int) string {
	return uuid.NewSHA1(modelNamespace, []byte(fmt.Sprintf("%s|%s|%d", carMake, model, year))).String()
}

// Run executes the startup seed in an idempotent way.
func Run(ctx context.Context, db *sql.DB, cfg Config) (Stats, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return Stats{}, fmt.Errorf("begin seed transaction: %w", err)
	}

	stats := Stats{}

	if err := seedAdmin(ctx, tx, cfg.AdminEmail, cfg.AdminPassword, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}
	if err := ensureModels(ctx, tx, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}
	if err := ensurePostcodeAreas(ctx, tx, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}
	if err := ensureFuelPrices(ctx, tx, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}

	if err := tx.Commit(); err != nil {
		return Stats{}, fmt.Errorf("commit seed transaction: %w", err)
	}

	return stats, nil
}

func seedAdmin(ctx context.Context, tx *sql.Tx, email, password string, stats *Stats) error {
	if email == "" || password == "" {
		return nil
	}

	var exists bool
	if err := tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = ? LIMIT 1)`, email).Scan(&exists); err != nil {
		return fmt.Errorf("check admin user existence: %w", err)
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `INSERT INTO users (email, password_hash) VALUES (?, ?)`, email, string(hash)); err != nil {
		return fmt.Errorf("insert admin user: %w", err)
	}
	stats.Inserts++
	return nil
}

func ensureModels(ctx context.Context, tx *sql.Tx, stats *Stats) error {
	for _, m := range models {
		id := ModelID(m.Make, m.Model, m.Year)

		var exists bool
		if err := tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM car_models WHERE id = ? LIMIT 1)`, id).Scan(&exists); err != nil {
			return fmt.Errorf("check car model %s %s existence: %w", m.Make, m.Model, err)
		}
		if exists {
			continue
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO car_models (id, make, model, year, fuel_type, fuel_efficiency, insurance_group, tax_band, co2_emissions, average_price)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, id, m.Make, m.Model, m.Year, string(m.FuelType), m.FuelEfficiency, m.InsuranceGroup,
			string(tco.BandForEmissions(m.CO2Emissions)), m.CO2Emissions, m.AveragePrice); err != nil {
			return fmt.Errorf("insert car model %s %s: %w", m.Make, m.Model, err)
		}
		stats.Inserts++
	}
	return nil
}

func ensurePostcodeAreas(ctx context.Context, tx *sql.Tx, stats *Stats) error {
	for _, a := range areas {
		var exists bool
		if err := tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM postcode_areas WHERE outward = ? LIMIT 1)`, a.Outward).Scan(&exists); err != nil {
			return fmt.Errorf("check postcode area %s existence: %w", a.Outward, err)
		}
		if exists {
			continue
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO postcode_areas (outward, region, insurance_risk, congestion_zones, average_insurance)
			VALUES (?, ?, ?, ?, ?)
		`, a.Outward, a.Region, string(a.InsuranceRisk), strings.Join(a.CongestionZones, ","), a.AverageInsurance); err != nil {
			return fmt.Errorf("insert postcode area %s: %w", a.Outward, err)
		}
		stats.Inserts++
	}
	return nil
}

func ensureFuelPrices(ctx context.Context, tx *sql.Tx, stats *Stats) error {
	var exists bool
	if err := tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM fuel_prices WHERE id = 1)`).Scan(&exists); err != nil {
		return fmt.Errorf("check fuel prices existence: %w", err)
	}
	if exists {
		return nil
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO fuel_prices (id, petrol, diesel, electricity_home, electricity_public, last_updated)
		VALUES (1, ?, ?, ?, ?, ?)
	`, fuelSheet.Petrol, fuelSheet.Diesel, fuelSheet.ElectricityHome, fuelSheet.ElectricityPublic,
		FuelSheetDate.Format(time.RFC3339)); err != nil {
		return fmt.Errorf("insert fuel prices singleton: %w", err)
	}
	stats.Inserts++
	return nil
}
