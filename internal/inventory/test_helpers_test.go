package inventory

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

// testDB creates an in-memory SQLite database with the dealers and cars
// schema applied and two dealers (1001, 1002) seeded.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:?_foreign_keys=on")
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	schema := `
		CREATE TABLE dealers (
			dealer_id INTEGER PRIMARY KEY CHECK (dealer_id BETWEEN 1000 AND 9999),
			password_hash TEXT NOT NULL,
			created_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ', 'now'))
		) STRICT;

		CREATE TABLE cars (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			make TEXT NOT NULL CHECK (length(make) > 0 AND length(make) <= 50),
			model TEXT NOT NULL CHECK (length(model) > 0 AND length(model) <= 50),
			year INTEGER NOT NULL CHECK (year BETWEEN 1900 AND 2024),
			stock_level INTEGER NOT NULL CHECK (stock_level >= 0),
			dealer_id INTEGER NOT NULL,
			FOREIGN KEY (dealer_id) REFERENCES dealers(dealer_id) ON DELETE CASCADE
		) STRICT;

		INSERT INTO dealers (dealer_id, password_hash) VALUES (1001, 'x'), (1002, 'x');
	`
	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("creating test schema: %v", err)
	}

	return db
}

// addCar inserts a car through the repository and fails the test on error.
func addCar(t *testing.T, repo *SQLiteRepository, car Car) Car {
	t.Helper()

	if err := repo.Add(context.Background(), &car); err != nil {
		t.Fatalf("Add(%+v) error = %v", car, err)
	}
	return car
}
