package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// DealerRepository defines the interface for dealer credential persistence.
type DealerRepository interface {
	GetByDealerID(ctx context.Context, dealerID int) (*Dealer, error)
	Create(ctx context.Context, dealer *Dealer) error
	Count(ctx context.Context) (int, error)
}

// SQLiteDealerRepository implements DealerRepository using SQLite.
type SQLiteDealerRepository struct {
	db *sql.DB
}

// NewDealerRepository creates a new SQLite-backed dealer repository.
func NewDealerRepository(db *sql.DB) *SQLiteDealerRepository {
	return &SQLiteDealerRepository{db: db}
}

// GetByDealerID retrieves a dealer credential record by dealer id.
// Returns ErrDealerNotFound when no record exists.
func (r *SQLiteDealerRepository) GetByDealerID(ctx context.Context, dealerID int) (*Dealer, error) {
	var d Dealer
	var createdAt string

	err := r.db.QueryRowContext(ctx,
		"SELECT dealer_id, password_hash, created_at FROM dealers WHERE dealer_id = ?",
		dealerID,
	).Scan(&d.DealerID, &d.PasswordHash, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDealerNotFound
		}
		return nil, fmt.Errorf("querying dealer: %w", err)
	}

	d.CreatedAt, _ = time.Parse(time.RFC3339, createdAt) //nolint:errcheck // format is controlled
	return &d, nil
}

// Create inserts a new dealer credential record.
// Returns ErrDealerExists if the dealer id is already taken.
func (r *SQLiteDealerRepository) Create(ctx context.Context, dealer *Dealer) error {
	if !IsValidDealerID(dealer.DealerID) {
		return ErrInvalidDealerID
	}

	now := time.Now().UTC().Format(time.RFC3339)
	dealer.CreatedAt, _ = time.Parse(time.RFC3339, now) //nolint:errcheck // format is controlled

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO dealers (dealer_id, password_hash, created_at) VALUES (?, ?, ?)",
		dealer.DealerID, dealer.PasswordHash, now,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDealerExists
		}
		return fmt.Errorf("creating dealer: %w", err)
	}

	return nil
}

// Count returns the total number of dealer records.
func (r *SQLiteDealerRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM dealers").Scan(&count); err != nil {
		return 0, fmt.Errorf("counting dealers: %w", err)
	}
	return count, nil
}

// isUniqueViolation checks if a SQLite error is a UNIQUE or PRIMARY KEY
// constraint violation.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
