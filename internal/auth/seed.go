package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/yuewang-420/oraclecms-car-stock-api-demo/internal/infrastructure/logging"
)

// SeedDealerID is the dealer id created on first boot.
const SeedDealerID = 1001

// seedPasswordBytes is the number of random bytes for the seed dealer password.
const seedPasswordBytes = 16

// SeedDealer creates the initial dealer account on first boot if no dealers
// exist. The generated password is logged once and must be changed
// out-of-band. Returns the generated password (empty if seeding was skipped).
func SeedDealer(ctx context.Context, dealers DealerRepository, logger *logging.Logger) (string, error) {
	count, err := dealers.Count(ctx)
	if err != nil {
		return "", fmt.Errorf("checking dealer count: %w", err)
	}

	if count > 0 {
		logger.Info("dealers exist, skipping seed")
		return "", nil
	}

	passwordBytes := make([]byte, seedPasswordBytes)
	if _, err := rand.Read(passwordBytes); err != nil {
		return "", fmt.Errorf("generating seed password: %w", err)
	}
	password := hex.EncodeToString(passwordBytes)

	hash, err := HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("hashing seed password: %w", err)
	}

	dealer := &Dealer{
		DealerID:     SeedDealerID,
		PasswordHash: hash,
	}

	if err := dealers.Create(ctx, dealer); err != nil {
		return "", fmt.Errorf("creating seed dealer: %w", err)
	}

	logger.Warn("seed dealer account created",
		"dealer_id", SeedDealerID,
		"password", password,
		"action_required", "change this password immediately",
	)

	return password, nil
}
