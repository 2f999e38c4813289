package database

import (
	"fmt"
	"log"
)

// IsSupportedDriver reports whether NewDatabase recognizes a database
// type. Configuration validation uses it to reject unknown drivers
// before construction.
func IsSupportedDriver(databaseType string) bool {
	return databaseType == "sqlite"
}

func NewDatabase(databaseType, connectionString string) (database DatabaseService, err error) {
	switch databaseType {
	case "sqlite":
		database, err = NewSQLiteDatabase(connectionString)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", databaseType)
	}

	// Ensure database schema exists (idempotent), important for in-memory SQLite
	log.Print("initializing database schema (ensuring tables and seed users exist)")
	if _, err = database.CreateDatabase(); err != nil {
		return database, fmt.Errorf("failed to create database: %w", err)
	}

	return database, nil
}
