package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParseToken(t *testing.T) {
	cfg := testJWTConfig()

	token, err := IssueToken(1001, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	dealerID, err := ParseToken(token, cfg)
	require.NoError(t, err)
	assert.Equal(t, 1001, dealerID)
}

func TestIssueToken_ExpiryIsOneHour(t *testing.T) {
	cfg := testJWTConfig()

	before := time.Now()
	token, err := IssueToken(1001, cfg)
	require.NoError(t, err)
	after := time.Now()

	claims := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(token, claims, func(_ *jwt.Token) (any, error) {
		return []byte(cfg.Secret), nil
	})
	require.NoError(t, err)

	require.NotNil(t, claims.ExpiresAt)
	exp := claims.ExpiresAt.Time
	assert.False(t, exp.Before(before.Add(time.Hour).Truncate(time.Second)), "expiry too early: %v", exp)
	assert.False(t, exp.After(after.Add(time.Hour).Add(time.Second)), "expiry too late: %v", exp)
}

func TestIssueToken_UniqueTokenID(t *testing.T) {
	cfg := testJWTConfig()

	ids := make(map[string]bool)
	for i := 0; i < 5; i++ {
		token, err := IssueToken(1001, cfg)
		require.NoError(t, err)

		claims := &jwt.RegisteredClaims{}
		_, err = jwt.ParseWithClaims(token, claims, func(_ *jwt.Token) (any, error) {
			return []byte(cfg.Secret), nil
		})
		require.NoError(t, err)
		require.NotEmpty(t, claims.ID)
		assert.False(t, ids[claims.ID], "token id %q reused", claims.ID)
		ids[claims.ID] = true
	}
}

func TestIssueToken_InvalidDealerID(t *testing.T) {
	cfg := testJWTConfig()

	for _, id := range []int{999, 10000, 0, -1} {
		_, err := IssueToken(id, cfg)
		assert.ErrorIs(t, err, ErrInvalidDealerID, "dealer id %d", id)
	}
}

func TestParseToken_Failures(t *testing.T) {
	cfg := testJWTConfig()

	valid, err := IssueToken(1001, cfg)
	require.NoError(t, err)

	t.Run("empty token", func(t *testing.T) {
		_, err := ParseToken("", cfg)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := ParseToken("not.a.jwt", cfg)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := cfg
		other.Secret = "another-secret-key-0123456789abcd"
		_, err := ParseToken(valid, other)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		other := cfg
		other.Issuer = "someone-else"
		_, err := ParseToken(valid, other)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("wrong audience", func(t *testing.T) {
		other := cfg
		other.Audience = "other-clients"
		_, err := ParseToken(valid, other)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("expired token", func(t *testing.T) {
		// Sign a token that expired a minute ago; zero leeway means it must fail.
		claims := jwt.RegisteredClaims{
			Subject:   "1001",
			Issuer:    cfg.Issuer,
			Audience:  jwt.ClaimStrings{cfg.Audience},
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		}
		expired, signErr := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Secret))
		require.NoError(t, signErr)

		_, err := ParseToken(expired, cfg)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("missing expiry", func(t *testing.T) {
		claims := jwt.RegisteredClaims{
			Subject:  "1001",
			Issuer:   cfg.Issuer,
			Audience: jwt.ClaimStrings{cfg.Audience},
		}
		token, signErr := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Secret))
		require.NoError(t, signErr)

		_, err := ParseToken(token, cfg)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("missing subject", func(t *testing.T) {
		claims := jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			Audience:  jwt.ClaimStrings{cfg.Audience},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		token, signErr := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Secret))
		require.NoError(t, signErr)

		_, err := ParseToken(token, cfg)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("non-numeric subject", func(t *testing.T) {
		claims := jwt.RegisteredClaims{
			Subject:   "not-a-number",
			Issuer:    cfg.Issuer,
			Audience:  jwt.ClaimStrings{cfg.Audience},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		token, signErr := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Secret))
		require.NoError(t, signErr)

		_, err := ParseToken(token, cfg)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("unsigned algorithm rejected", func(t *testing.T) {
		claims := jwt.RegisteredClaims{
			Subject:   "1001",
			Issuer:    cfg.Issuer,
			Audience:  jwt.ClaimStrings{cfg.Audience},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		token, signErr := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, signErr)

		_, err := ParseToken(token, cfg)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})
}

func TestParseDealerID(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"1000", 1000, false},
		{"9999", 9999, false},
		{"1001", 1001, false},
		{"999", 0, true},
		{"10000", 0, true},
		{"", 0, true},
		{"abcd", 0, true},
		{"12.5", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDealerID(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDealerID) {
					t.Errorf("ParseDealerID(%q) error = %v, want ErrInvalidDealerID", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDealerID(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseDealerID(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}
