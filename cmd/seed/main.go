// Package main seeds the database with the schema and demo data.
package main

import (
	"context"
	"fmt"
	"os"

	"tally/internal/infrastructure/storage/postgres"
	"tally/pkg/logger"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS companies (
		code text PRIMARY KEY,
		name text NOT NULL UNIQUE,
		description text
	)`,
	`CREATE TABLE IF NOT EXISTS invoices (
		id serial PRIMARY KEY,
		comp_code text NOT NULL REFERENCES companies ON DELETE RESTRICT,
		amt numeric NOT NULL CHECK (amt >= 0),
		paid boolean DEFAULT false NOT NULL,
		add_date date DEFAULT CURRENT_DATE NOT NULL,
		paid_date date
	)`,
	`CREATE TABLE IF NOT EXISTS industries (
		code text PRIMARY KEY,
		industry text NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS companies_industries (
		comp_code text NOT NULL REFERENCES companies ON DELETE RESTRICT,
		ind_code text NOT NULL REFERENCES industries ON DELETE RESTRICT,
		PRIMARY KEY (comp_code, ind_code)
	)`,
}

var demoData = []string{
	`INSERT INTO companies (code, name, description) VALUES
		('apple', 'Apple Computer', 'Maker of OSX.'),
		('ibm', 'IBM', 'Big blue.')
	ON CONFLICT (code) DO NOTHING`,
	`INSERT INTO invoices (comp_code, amt, paid, paid_date) VALUES
		('apple', 100, false, null),
		('apple', 200, false, null),
		('apple', 300, true, '2018-01-01'),
		('ibm', 400, false, null)
	ON CONFLICT DO NOTHING`,
	`INSERT INTO industries (code, industry) VALUES
		('acct', 'Accounting'),
		('tech', 'Technology')
	ON CONFLICT (code) DO NOTHING`,
	`INSERT INTO companies_industries (comp_code, ind_code) VALUES
		('apple', 'tech'),
		('ibm', 'tech'),
		('ibm', 'acct')
	ON CONFLICT DO NOTHING`,
}

func main() {
	log, err := logger.New(logger.Config{
		Level:       getEnv("LOG_LEVEL", "info"),
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("required environment variable DATABASE_URL not set")
	}

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(dsn))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("applying schema")
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			log.Fatalw("schema statement failed", "error", err)
		}
	}

	log.Info("inserting demo data")
	for _, stmt := range demoData {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			log.Fatalw("demo insert failed", "error", err)
		}
	}

	log.Info("seed complete")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
