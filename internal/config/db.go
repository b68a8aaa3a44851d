package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DBConfig holds database connection parameters
type DBConfig struct {
	DSN string
}

// LoadDBConfig loads database configuration from environment variables
func LoadDBConfig() (*DBConfig, error) {
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")

	if dbHost == "" || dbPort == "" || dbUser == "" || dbName == "" {
		return nil, fmt.Errorf("database environment variables not set (DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME)")
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPassword, dbName)

	return &DBConfig{DSN: dsn}, nil
}

// ConnectDB establishes a connection to the PostgreSQL database,
// retrying a few times so the service survives a slow database start.
func ConnectDB(ctx context.Context, cfg *DBConfig) (*pgxpool.Pool, error) {
	var pool *pgxpool.Pool
	var err error

	maxRetries := 5
	retryInterval := 5 * time.Second

	for i := 0; i < maxRetries; i++ {
		pool, err = pgxpool.New(ctx, cfg.DSN)
		if err == nil {
			err = pool.Ping(ctx)
			if err == nil {
				return pool, nil
			}
		}
		time.Sleep(retryInterval)
	}
	return nil, fmt.Errorf("unable to connect to database after %d attempts: %w", maxRetries, err)
}

// AutoMigrate creates tables if they don't exist
func AutoMigrate(ctx context.Context, db *pgxpool.Pool) error {
	sql := `
	CREATE TABLE IF NOT EXISTS patient (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		age INT NOT NULL,
		gender TEXT NOT NULL,
		insurance TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS doctor (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS user_account (
		id SERIAL PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL CHECK (role IN ('PATIENT', 'DOCTOR')),
		patient_id INT REFERENCES patient(id),
		doctor_id INT REFERENCES doctor(id),
		created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
		-- the role tag determines which link is populated
		CHECK (
			(role = 'PATIENT' AND patient_id IS NOT NULL AND doctor_id IS NULL) OR
			(role = 'DOCTOR' AND doctor_id IS NOT NULL AND patient_id IS NULL)
		)
	);

	CREATE TABLE IF NOT EXISTS appointment (
		id BIGSERIAL PRIMARY KEY,
		patient_id INT NOT NULL REFERENCES patient(id) ON DELETE CASCADE,
		doctor_id INT NOT NULL REFERENCES doctor(id) ON DELETE CASCADE,
		appointment_date DATE NOT NULL,
		start_time TIME NOT NULL,
		status VARCHAR(50) NOT NULL,
		reason_for_visit TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS allergy_warning_system (
		id SERIAL PRIMARY KEY,
		patient_id INT NOT NULL REFERENCES patient(id) ON DELETE CASCADE,
		allergy_name TEXT NOT NULL,
		reaction_type TEXT NOT NULL,
		severity TEXT NOT NULL,
		allergy_flag BOOLEAN NOT NULL DEFAULT FALSE,
		allergy_notes TEXT
	);

	-- Indexes for performance
	CREATE INDEX IF NOT EXISTS idx_appointment_patient_id ON appointment(patient_id);
	CREATE INDEX IF NOT EXISTS idx_appointment_doctor_id ON appointment(doctor_id);
	CREATE INDEX IF NOT EXISTS idx_appointment_date ON appointment(appointment_date);
	CREATE INDEX IF NOT EXISTS idx_allergy_patient_id ON allergy_warning_system(patient_id);
	`
	_, err := db.Exec(ctx, sql)
	if err != nil {
		return fmt.Errorf("unable to apply migrations: %w", err)
	}
	return nil
}
