package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/yuewang-420/oraclecms-car-stock-api-demo/internal/infrastructure/config"
)

// IssueToken creates a signed JWT asserting a dealer identity.
//
// The token carries the dealer id as the subject, a fresh UUID as the token
// id, and the configured issuer and audience. It expires TokenTTL after
// issuance (one hour by default) and is signed with HMAC-SHA256.
func IssueToken(dealerID int, cfg config.JWTConfig) (string, error) {
	if !IsValidDealerID(dealerID) {
		return "", fmt.Errorf("issuing token: %w", ErrInvalidDealerID)
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.Itoa(dealerID),
		Issuer:    cfg.Issuer,
		Audience:  jwt.ClaimStrings{cfg.Audience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(cfg.TokenTTL())),
		ID:        uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// ParseToken validates a JWT and returns the embedded dealer id.
//
// It checks the HMAC-SHA256 signature, issuer, audience and expiry with
// zero clock-skew tolerance, then requires a subject claim holding a valid
// dealer id. Every failure mode wraps ErrTokenInvalid; validation never
// partially succeeds.
func ParseToken(tokenString string, cfg config.JWTConfig) (int, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return []byte(cfg.Secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(cfg.Issuer),
		jwt.WithAudience(cfg.Audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}
	if !token.Valid {
		return 0, ErrTokenInvalid
	}

	if claims.Subject == "" {
		return 0, fmt.Errorf("%w: missing subject", ErrTokenInvalid)
	}

	dealerID, err := strconv.Atoi(claims.Subject)
	if err != nil || !IsValidDealerID(dealerID) {
		return 0, fmt.Errorf("%w: malformed dealer id claim", ErrTokenInvalid)
	}

	return dealerID, nil
}
