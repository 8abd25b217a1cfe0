// Package migrations embeds SQL migration files into the binary.
//
// This allows the Car Stock API to run migrations without the SQL files
// being present on the filesystem - they're compiled into the executable.
package migrations

import (
	"embed"

	"github.com/yuewang-420/oraclecms-car-stock-api-demo/internal/infrastructure/database"
)

//go:embed *.sql
var migrationsFS embed.FS

func init() {
	// Register embedded migrations with the database package.
	database.MigrationsFS = migrationsFS
}
