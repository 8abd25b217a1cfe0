package inventory

import (
	"context"
	"database/sql"
	"fmt"
)

// SearchFilter narrows a search to cars matching the given make and/or
// model by case-insensitive equality. Empty fields are ignored; a zero
// filter matches all of the dealer's cars.
type SearchFilter struct {
	Make  string
	Model string
}

// Repository defines the interface for car inventory persistence.
// Every method is scoped by the owning dealer id.
type Repository interface {
	// Add inserts a car owned by car.DealerID and sets car.ID.
	Add(ctx context.Context, car *Car) error

	// ListByDealer returns all cars owned by the dealer, oldest first.
	ListByDealer(ctx context.Context, dealerID int) ([]Car, error)

	// UpdateStock sets the stock level of the car matching both id and
	// dealerID. Returns ErrCarNotFound when no row matches.
	UpdateStock(ctx context.Context, id int64, dealerID, stockLevel int) error

	// Delete removes the car matching both id and dealerID.
	// Returns ErrCarNotFound when no row matches.
	Delete(ctx context.Context, id int64, dealerID int) error

	// Search returns the dealer's cars matching the filter, oldest first.
	Search(ctx context.Context, dealerID int, filter SearchFilter) ([]Car, error)
}

// SQLiteRepository implements Repository using SQLite.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a new SQLite-backed inventory repository.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Add inserts a new car row. The store assigns the identifier.
func (r *SQLiteRepository) Add(ctx context.Context, car *Car) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO cars (make, model, year, stock_level, dealer_id)
		 VALUES (?, ?, ?, ?, ?)`,
		car.Make, car.Model, car.Year, car.StockLevel, car.DealerID,
	)
	if err != nil {
		return fmt.Errorf("inserting car: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking inserted rows: %w", err)
	}
	if rows != 1 {
		return fmt.Errorf("inserting car: %d rows affected, want 1", rows)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading inserted car id: %w", err)
	}
	car.ID = id

	return nil
}

// ListByDealer returns all cars owned by the dealer.
func (r *SQLiteRepository) ListByDealer(ctx context.Context, dealerID int) ([]Car, error) {
	return r.queryCars(ctx,
		"SELECT id, make, model, year, stock_level, dealer_id FROM cars WHERE dealer_id = ? ORDER BY id ASC",
		dealerID,
	)
}

// UpdateStock sets the stock level of a car the dealer owns.
func (r *SQLiteRepository) UpdateStock(ctx context.Context, id int64, dealerID, stockLevel int) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE cars SET stock_level = ? WHERE id = ? AND dealer_id = ?",
		stockLevel, id, dealerID,
	)
	if err != nil {
		return fmt.Errorf("updating stock level: %w", err)
	}

	rows, _ := result.RowsAffected() //nolint:errcheck // always succeeds on SQLite
	if rows == 0 {
		return ErrCarNotFound
	}
	return nil
}

// Delete removes a car the dealer owns.
func (r *SQLiteRepository) Delete(ctx context.Context, id int64, dealerID int) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM cars WHERE id = ? AND dealer_id = ?",
		id, dealerID,
	)
	if err != nil {
		return fmt.Errorf("deleting car: %w", err)
	}

	rows, _ := result.RowsAffected() //nolint:errcheck // always succeeds on SQLite
	if rows == 0 {
		return ErrCarNotFound
	}
	return nil
}

// Search returns the dealer's cars matching the filter. The query is built
// progressively: each non-empty filter field adds one case-insensitive
// equality predicate.
func (r *SQLiteRepository) Search(ctx context.Context, dealerID int, filter SearchFilter) ([]Car, error) {
	query := "SELECT id, make, model, year, stock_level, dealer_id FROM cars WHERE dealer_id = ?"
	args := []any{dealerID}

	if filter.Make != "" {
		query += " AND make = ? COLLATE NOCASE"
		args = append(args, filter.Make)
	}
	if filter.Model != "" {
		query += " AND model = ? COLLATE NOCASE"
		args = append(args, filter.Model)
	}
	query += " ORDER BY id ASC"

	return r.queryCars(ctx, query, args...)
}

// queryCars executes a query returning car rows and scans them.
func (r *SQLiteRepository) queryCars(ctx context.Context, query string, args ...any) ([]Car, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying cars: %w", err)
	}
	defer rows.Close()

	cars := []Car{}
	for rows.Next() {
		var c Car
		if err := rows.Scan(&c.ID, &c.Make, &c.Model, &c.Year, &c.StockLevel, &c.DealerID); err != nil {
			return nil, fmt.Errorf("scanning car: %w", err)
		}
		cars = append(cars, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cars: %w", err)
	}

	return cars, nil
}
