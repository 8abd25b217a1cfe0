// Package database provides SQLite connectivity for the Car Stock API.
//
// This package manages:
//   - Database connection with WAL mode for concurrent readers
//   - Schema migrations applied from an embedded filesystem
//   - Health checks and lifecycle management
//
// The *sql.DB pool is the only long-lived shared object; it is treated as
// immutable after Open and each request acquires its own connection from it.
package database
