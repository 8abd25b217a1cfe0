package inventory

import (
	"errors"
	"fmt"
)

// Car attribute bounds.
const (
	// MaxNameLength is the maximum length of make and model strings.
	MaxNameLength = 50

	// MinYear and MaxYear bound the accepted model year, inclusive.
	MinYear = 1900
	MaxYear = 2024
)

// Car represents a car inventory record.
//
// The JSON names follow the public API contract: clients send and receive
// PascalCase fields ({"Make": ..., "StockLevel": ...}).
type Car struct {
	ID         int64  `json:"Id"`
	Make       string `json:"Make"`
	Model      string `json:"Model"`
	Year       int    `json:"Year"`
	StockLevel int    `json:"StockLevel"`
	DealerID   int    `json:"DealerId"`
}

// Sentinel errors for inventory operations.
var (
	// ErrCarNotFound is returned when no row matches both the car id and the
	// dealer id. True absence and foreign ownership are deliberately
	// indistinguishable so existence never leaks across dealers.
	ErrCarNotFound = errors.New("car not found")
)

// FieldError describes a single invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateNewCar checks the shape and ranges of a car to be added.
// It returns one FieldError per invalid field, or nil if all fields are valid.
func ValidateNewCar(carMake, model string, year, stockLevel int) []FieldError {
	var errs []FieldError

	if carMake == "" {
		errs = append(errs, FieldError{Field: "Make", Message: "must not be empty"})
	} else if len(carMake) > MaxNameLength {
		errs = append(errs, FieldError{Field: "Make", Message: fmt.Sprintf("must be at most %d characters", MaxNameLength)})
	}

	if model == "" {
		errs = append(errs, FieldError{Field: "Model", Message: "must not be empty"})
	} else if len(model) > MaxNameLength {
		errs = append(errs, FieldError{Field: "Model", Message: fmt.Sprintf("must be at most %d characters", MaxNameLength)})
	}

	if year < MinYear || year > MaxYear {
		errs = append(errs, FieldError{Field: "Year", Message: fmt.Sprintf("must be between %d and %d", MinYear, MaxYear)})
	}

	errs = append(errs, ValidateStockLevel(stockLevel)...)

	return errs
}

// ValidateStockLevel checks that a stock level is non-negative.
func ValidateStockLevel(stockLevel int) []FieldError {
	if stockLevel < 0 {
		return []FieldError{{Field: "StockLevel", Message: "must not be negative"}}
	}
	return nil
}
