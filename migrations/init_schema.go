package migrations

import (
	"context"
	"database/sql"
	"fmt"
)

const sqliteCoursesTable = `
	CREATE TABLE IF NOT EXISTS courses (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		description TEXT,
		subject TEXT,
		level TEXT,
		table_of_contents TEXT,
		timestamp DATETIME
	)`

const postgresCoursesTable = `
	CREATE TABLE IF NOT EXISTS courses (
		id SERIAL PRIMARY KEY,
		description TEXT,
		subject TEXT,
		level TEXT,
		table_of_contents TEXT,
		timestamp TIMESTAMPTZ
	)`

// InitSchema creates the courses table if it does not exist yet.
// It is safe to call on every start.
func InitSchema(ctx context.Context, db *sql.DB, driver string) error {
	var ddl string
	switch driver {
	case "sqlite3":
		ddl = sqliteCoursesTable
	case "postgres":
		ddl = postgresCoursesTable
	default:
		return fmt.Errorf("no schema for database driver %s", driver)
	}

	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create courses table: %w", err)
	}
	return nil
}
