package auth

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/yuewang-420/oraclecms-car-stock-api-demo/internal/infrastructure/config"
)

// testDB creates an in-memory SQLite database with the dealers schema applied.
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
	`
	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("creating dealers table: %v", err)
	}

	return db
}

// testJWTConfig returns JWT settings for token tests.
func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:          "test-secret-key-0123456789abcdef",
		Issuer:          "carstock-api",
		Audience:        "carstock-clients",
		TokenTTLMinutes: 60,
	}
}
