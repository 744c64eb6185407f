package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
)

// GenerateOrderNumber builds a human-readable order number of the form
// WR-YYMMDD-NNNN. The four-digit suffix is random, so callers must be
// prepared for a same-day collision and retry with a fresh number.
func GenerateOrderNumber(now time.Time) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return "", fmt.Errorf("failed to generate order number suffix: %w", err)
	}
	return fmt.Sprintf("WR-%s-%04d", now.Format("060102"), n.Int64()), nil
}

// GenerateReceipt returns a per-attempt receipt reference for the payment
// gateway. Advisory metadata only; collisions are harmless.
func GenerateReceipt() string {
	return "receipt_" + uuid.NewString()[:8]
}
