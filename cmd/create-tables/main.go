package main

import (
	"fmt"
	"os"

	"theaterlist/internal/config"
	"theaterlist/internal/database"
)

const schema = `
CREATE TABLE IF NOT EXISTS theater_lists (
	list_id           UUID PRIMARY KEY,
	doctor_name       TEXT NOT NULL DEFAULT '',
	hospital_location TEXT NOT NULL DEFAULT '',
	list_date         TEXT NOT NULL DEFAULT '',
	patients          JSONB NOT NULL DEFAULT '[]'::jsonb,
	created_at        TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS doctors (
	doctor_id       UUID PRIMARY KEY,
	name            TEXT NOT NULL,
	practice_number TEXT NOT NULL DEFAULT '',
	created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS hospitals (
	hospital_id UUID PRIMARY KEY,
	name        TEXT NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

func main() {
	cfg := config.Load()

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to execute schema: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("theaterlist tables created")
}
