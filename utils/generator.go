package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/rand"
	"time"

	"github.com/arjunkoirala/trekmandu/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const referenceSuffixLength = 6
const letterBytes = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// GenerateBookingReference returns a short human-readable booking code,
// e.g. TRK-8A2C9F, unique across the bookings table.
func GenerateBookingReference(tx *gorm.DB) (string, error) {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))

	for {
		b := make([]byte, referenceSuffixLength)
		for i := range b {
			b[i] = letterBytes[seededRand.Intn(len(letterBytes))]
		}
		code := "TRK-" + string(b)

		var booking models.Booking
		err := tx.Where("reference = ?", code).First(&booking).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return code, nil
			}
			return "", err
		}
	}
}

const idempotencyWindow = 15 * time.Minute

// CheckoutIdempotencyKey derives a deterministic key from the user, the
// destination and the current quantized time window, so a double-submitted
// checkout within the window maps to the same provider request.
func CheckoutIdempotencyKey(userID, destinationID uuid.UUID, now time.Time) string {
	window := now.Unix() / int64(idempotencyWindow.Seconds())
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s:%s:%d", userID, destinationID, window)))
	return hex.EncodeToString(sum[:16])
}

// IdempotencyWindow is the reuse horizon for pending checkouts.
func IdempotencyWindow() time.Duration {
	return idempotencyWindow
}
