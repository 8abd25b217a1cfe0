package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// Dealer id bounds. Dealer identities are 4-digit numeric ids assigned
// out-of-band; nothing in this system creates or deletes them at runtime.
const (
	MinDealerID = 1000
	MaxDealerID = 9999
)

// Dealer represents a dealership credential record.
type Dealer struct {
	DealerID     int       `json:"dealer_id"`
	PasswordHash string    `json:"-"` // never serialised
	CreatedAt    time.Time `json:"created_at"`
}

// IsValidDealerID reports whether id is in the valid 4-digit range.
func IsValidDealerID(id int) bool {
	return id >= MinDealerID && id <= MaxDealerID
}

// ParseDealerID parses a dealer id submitted as a digit string and checks
// the 4-digit range. The error is the same for malformed and out-of-range
// input so callers can surface a single validation message.
func ParseDealerID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDealerID, s)
	}
	if !IsValidDealerID(id) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidDealerID, id)
	}
	return id, nil
}

// Sentinel errors for auth operations.
var (
	ErrInvalidDealerID    = errors.New("dealer id must be a 4-digit number between 1000 and 9999")
	ErrDealerNotFound     = errors.New("dealer not found")
	ErrDealerExists       = errors.New("dealer already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenInvalid       = errors.New("invalid token")
)
