package db

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/zabeliqbal/langkawi-data-hub/config"
)

var DB *sql.DB

func InitDB(cfg config.DatabaseConfig) error {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.DBName,
		cfg.SSLMode,
	)

	var err error
	DB, err = sql.Open("postgres", connStr)
	if err != nil {
		return fmt.Errorf("error opening database: %w", err)
	}

	DB.SetMaxOpenConns(25)
	DB.SetMaxIdleConns(25)
	DB.SetConnMaxLifetime(5 * time.Minute)

	if err = DB.Ping(); err != nil {
		return fmt.Errorf("error connecting to the database: %w", err)
	}

	if err = createTables(); err != nil {
		return fmt.Errorf("error creating tables: %w", err)
	}

	return nil
}

func createTables() error {
	queries := []string{
		// Access control
		`CREATE TABLE IF NOT EXISTS profiles (
			id VARCHAR(64) PRIMARY KEY,
			email VARCHAR(255) NOT NULL,
			full_name VARCHAR(255) NOT NULL DEFAULT '',
			role VARCHAR(32) NOT NULL DEFAULT 'user',
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS api_keys (
			id SERIAL PRIMARY KEY,
			key VARCHAR(64) NOT NULL UNIQUE,
			description TEXT,
			profile_id VARCHAR(64) REFERENCES profiles(id),
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
			last_used_at TIMESTAMP WITH TIME ZONE,
			is_active BOOLEAN NOT NULL DEFAULT true
		)`,

		// Monthly time series behind the charts
		`CREATE TABLE IF NOT EXISTS visitor_stats (
			id VARCHAR(64) PRIMARY KEY,
			year INTEGER NOT NULL,
			month INTEGER NOT NULL,
			domestic_count INTEGER NOT NULL DEFAULT 0,
			international_count INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
			UNIQUE (year, month)
		)`,
		`CREATE TABLE IF NOT EXISTS occupancy_rates (
			id VARCHAR(64) PRIMARY KEY,
			year INTEGER NOT NULL,
			month INTEGER NOT NULL,
			rate DOUBLE PRECISION NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
			UNIQUE (year, month)
		)`,
		`CREATE TABLE IF NOT EXISTS tourist_spending (
			id VARCHAR(64) PRIMARY KEY,
			year INTEGER NOT NULL,
			month INTEGER NOT NULL,
			average_spending DOUBLE PRECISION NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
			UNIQUE (year, month)
		)`,

		// Rankings and reference data
		`CREATE TABLE IF NOT EXISTS origin_countries (
			id VARCHAR(64) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			year INTEGER NOT NULL,
			visitor_count INTEGER NOT NULL DEFAULT 0,
			percentage DOUBLE PRECISION NOT NULL DEFAULT 0,
			change VARCHAR(16) NOT NULL DEFAULT '',
			UNIQUE (name, year)
		)`,
		`CREATE TABLE IF NOT EXISTS attractions (
			id VARCHAR(64) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			location VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			image_url TEXT NOT NULL DEFAULT '',
			latitude DOUBLE PRECISION NOT NULL,
			longitude DOUBLE PRECISION NOT NULL,
			visitor_count INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS accommodation_areas (
			id VARCHAR(64) PRIMARY KEY,
			area VARCHAR(255) NOT NULL UNIQUE,
			hotels INTEGER NOT NULL DEFAULT 0,
			occupancy_rate DOUBLE PRECISION NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS age_demographics (
			id VARCHAR(64) PRIMARY KEY,
			age_group VARCHAR(64) NOT NULL UNIQUE,
			percentage DOUBLE PRECISION NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS entry_points (
			id VARCHAR(64) PRIMARY KEY,
			type VARCHAR(64) NOT NULL UNIQUE,
			count INTEGER NOT NULL DEFAULT 0,
			percentage DOUBLE PRECISION NOT NULL DEFAULT 0
		)`,

		// Live arrivals, replaced per day by the collector
		`CREATE TABLE IF NOT EXISTS flight_arrivals (
			id VARCHAR(128) PRIMARY KEY,
			flight_number VARCHAR(32) NOT NULL,
			airline_code VARCHAR(16) NOT NULL DEFAULT '',
			airline_name VARCHAR(255) NOT NULL DEFAULT '',
			origin VARCHAR(255) NOT NULL DEFAULT '',
			scheduled_time VARCHAR(32) NOT NULL DEFAULT '',
			estimated_time VARCHAR(32) NOT NULL DEFAULT '',
			status VARCHAR(32) NOT NULL DEFAULT 'Scheduled',
			terminal VARCHAR(16) NOT NULL DEFAULT '',
			date DATE NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
		)`,

		// Indexes
		`CREATE INDEX IF NOT EXISTS idx_visitor_stats_period ON visitor_stats (year, month)`,
		`CREATE INDEX IF NOT EXISTS idx_occupancy_rates_period ON occupancy_rates (year, month)`,
		`CREATE INDEX IF NOT EXISTS idx_tourist_spending_period ON tourist_spending (year, month)`,
		`CREATE INDEX IF NOT EXISTS idx_origin_countries_year ON origin_countries (year, visitor_count DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_flight_arrivals_date ON flight_arrivals (date)`,
	}

	for _, query := range queries {
		_, err := DB.Exec(query)
		if err != nil {
			return err
		}
	}

	return nil
}

func CloseDB() {
	if DB != nil {
		DB.Close()
	}
}
