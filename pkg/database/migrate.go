package database

import (
	"database/sql"
	"fmt"
)

// The two DDL variants differ only in how the store spells an
// auto-assigned integer primary key.
var schemaStatements = map[string][]string{
	"postgres": {
		`CREATE TABLE IF NOT EXISTS cycles (
			id SERIAL PRIMARY KEY,
			cycle_number INTEGER NOT NULL,
			start_date TIMESTAMPTZ NOT NULL,
			end_date TIMESTAMPTZ NOT NULL,
			goal TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'upcoming'
		)`,
		`CREATE TABLE IF NOT EXISTS days (
			id SERIAL PRIMARY KEY,
			cycle_id INTEGER NOT NULL REFERENCES cycles(id) ON DELETE CASCADE,
			day_number INTEGER NOT NULL,
			date TIMESTAMPTZ NOT NULL,
			goal TEXT NOT NULL DEFAULT '',
			is_completed BOOLEAN NOT NULL DEFAULT FALSE,
			notes TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS tasks (
			id SERIAL PRIMARY KEY,
			day_id INTEGER NOT NULL REFERENCES days(id) ON DELETE CASCADE,
			content TEXT NOT NULL,
			is_completed BOOLEAN NOT NULL DEFAULT FALSE
		)`,
		`CREATE TABLE IF NOT EXISTS reminder_templates (
			id SERIAL PRIMARY KEY,
			day_number INTEGER NOT NULL,
			message TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS alarms (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			time TEXT NOT NULL,
			is_enabled BOOLEAN NOT NULL DEFAULT TRUE,
			repeat_days TEXT,
			message TEXT NOT NULL DEFAULT '',
			sound TEXT NOT NULL DEFAULT 'default'
		)`,
	},
	"sqlite": {
		`CREATE TABLE IF NOT EXISTS cycles (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			cycle_number INTEGER NOT NULL,
			start_date TIMESTAMP NOT NULL,
			end_date TIMESTAMP NOT NULL,
			goal TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'upcoming'
		)`,
		`CREATE TABLE IF NOT EXISTS days (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			cycle_id INTEGER NOT NULL REFERENCES cycles(id) ON DELETE CASCADE,
			day_number INTEGER NOT NULL,
			date TIMESTAMP NOT NULL,
			goal TEXT NOT NULL DEFAULT '',
			is_completed BOOLEAN NOT NULL DEFAULT FALSE,
			notes TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS tasks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			day_id INTEGER NOT NULL REFERENCES days(id) ON DELETE CASCADE,
			content TEXT NOT NULL,
			is_completed BOOLEAN NOT NULL DEFAULT FALSE
		)`,
		`CREATE TABLE IF NOT EXISTS reminder_templates (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			day_number INTEGER NOT NULL,
			message TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS alarms (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			time TEXT NOT NULL,
			is_enabled BOOLEAN NOT NULL DEFAULT TRUE,
			repeat_days TEXT,
			message TEXT NOT NULL DEFAULT '',
			sound TEXT NOT NULL DEFAULT 'default'
		)`,
	},
}

// Migrate creates the schema for the given driver if it is not there
// yet. Every statement is idempotent, so running it on an existing
// database is safe.
func Migrate(db *sql.DB, driver string) error {
	statements, ok := schemaStatements[driver]
	if !ok {
		return fmt.Errorf("no schema for driver %q", driver)
	}
	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
