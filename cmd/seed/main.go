package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	_ "github.com/lib/pq"
	"gopkg.in/yaml.v3"

	"propertyhub-backend/internal/config"
	"propertyhub-backend/internal/domain"
	"propertyhub-backend/internal/logger"
	"propertyhub-backend/internal/repository/postgres"
	"propertyhub-backend/internal/security"
)

type seedLandlord struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

type seedTenant struct {
	Name            string `yaml:"name"`
	Email           string `yaml:"email"`
	Password        string `yaml:"password"`
	RoomType        string `yaml:"room_type"`
	HouseID         int32  `yaml:"house_id"`
	RentPaid        bool   `yaml:"rent_paid"`
	WaterPaid       bool   `yaml:"water_paid"`
	ElectricityPaid bool   `yaml:"electricity_paid"`
}

type seedData struct {
	Landlord seedLandlord `yaml:"landlord"`
	Tenants  []seedTenant `yaml:"tenants"`
}

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	seedPath := flag.String("seed", "config/seed.yaml", "Path to seed data file")
	reset := flag.Bool("reset", false, "Delete existing landlords, tenants and payments first")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)

	data, err := readSeedFile(*seedPath)
	if err != nil {
		log.Fatalf("Failed to read seed file: %v", err)
	}

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	if err := postgres.Migrate(ctx, db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if *reset {
		logger.Warn("Clearing existing data")
		if _, err := db.ExecContext(ctx, `TRUNCATE payments, tenants, landlords RESTART IDENTITY`); err != nil {
			log.Fatalf("Failed to clear data: %v", err)
		}
	}

	if err := populate(ctx, postgres.NewStore(db), cfg, data); err != nil {
		log.Fatalf("Failed to populate data: %v", err)
	}
	logger.Info("Seed data successfully populated", "tenants", len(data.Tenants))
}

func readSeedFile(filename string) (*seedData, error) {
	raw, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	var data seedData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	return &data, nil
}

func populate(ctx context.Context, store *postgres.Store, cfg *config.Config, data *seedData) error {
	pricing := cfg.PricingTable()

	if data.Landlord.Email != "" {
		hash, err := security.HashPassword(data.Landlord.Password)
		if err != nil {
			return fmt.Errorf("failed to hash password for %s: %w", data.Landlord.Email, err)
		}
		landlord := &domain.Landlord{Name: data.Landlord.Name, Email: data.Landlord.Email, PasswordHash: hash}
		if landlord.Name == "" {
			landlord.Name = cfg.Landlord.Name
		}
		if err := store.Landlords.Create(ctx, landlord); err != nil {
			return fmt.Errorf("failed to create landlord %s: %w", landlord.Email, err)
		}
		logger.Info("Landlord created", "id", landlord.ID, "email", landlord.Email)
	}

	for i, t := range data.Tenants {
		if t.RoomType != "" && !pricing.IsRoomType(t.RoomType) {
			return fmt.Errorf("tenant %s: unknown room type %q", t.Email, t.RoomType)
		}
		hash, err := security.HashPassword(t.Password)
		if err != nil {
			return fmt.Errorf("failed to hash password for %s: %w", t.Email, err)
		}

		tenant := &domain.Tenant{
			Name:            t.Name,
			Email:           t.Email,
			PasswordHash:    hash,
			RentPaid:        t.RentPaid,
			WaterPaid:       t.WaterPaid,
			ElectricityPaid: t.ElectricityPaid,
		}
		if t.RoomType != "" {
			roomType := t.RoomType
			tenant.RoomType = &roomType
		}
		if t.HouseID != 0 {
			houseID := t.HouseID
			tenant.HouseID = &houseID
		}
		if err := store.Tenants.Create(ctx, tenant); err != nil {
			return fmt.Errorf("failed to create tenant %s: %w", t.Email, err)
		}
		logger.Info("Tenant created", "n", i+1, "id", tenant.ID, "email", tenant.Email, "room_type", tenant.RoomTypeLabel())
	}
	return nil
}
