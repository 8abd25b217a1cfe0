// Package auth provides dealer authentication for the Car Stock API.
//
// It implements:
//   - bcrypt password hashing and verification
//   - Stateless HMAC-SHA256 JWT issuance and validation (issuer, audience
//     and expiry checked with zero clock-skew tolerance)
//   - SQLite persistence for dealer credential records
//   - First-boot seeding of an initial dealer account
//
// Tokens carry the dealer id as the subject claim and a fresh UUID as the
// token id. There is no revocation list and no refresh mechanism: a token
// is valid until its natural expiry, one hour after issuance by default.
package auth
