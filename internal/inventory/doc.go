// Package inventory provides the car inventory model and persistence for
// the Car Stock API.
//
// Every repository operation is scoped by the owning dealer id: a car row
// is never visible or mutable to a dealer that does not own it, and an
// ownership mismatch is indistinguishable from absence. Each operation is
// a single parameterized SQL statement; correctness for concurrent writers
// relies on the store's statement-level atomicity.
package inventory
