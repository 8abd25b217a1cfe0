// Package config handles loading and validating Car Stock API configuration.
//
// This package manages:
//   - Loading configuration from YAML files
//   - Overriding with environment variables (CARSTOCK_*)
//   - Validating required values before the application starts
//
// Secrets such as the JWT signing key have no default: a missing or weak
// key fails validation and aborts startup rather than degrading at runtime.
package config
