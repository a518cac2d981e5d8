package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestCheckoutIdempotencyKey(t *testing.T) {
	userID := uuid.New()
	destinationID := uuid.New()
	now := time.Date(2026, 3, 10, 14, 2, 0, 0, time.UTC)

	key := CheckoutIdempotencyKey(userID, destinationID, now)
	if len(key) != 32 {
		t.Fatalf("expected 32-char key, got %d chars", len(key))
	}

	// Same window, same inputs: identical key.
	if again := CheckoutIdempotencyKey(userID, destinationID, now.Add(1*time.Minute)); again != key {
		t.Error("key changed within the same quantized window")
	}

	// A different window, user or destination must change the key.
	if other := CheckoutIdempotencyKey(userID, destinationID, now.Add(IdempotencyWindow()+time.Minute)); other == key {
		t.Error("key identical across windows")
	}
	if other := CheckoutIdempotencyKey(uuid.New(), destinationID, now); other == key {
		t.Error("key identical for different users")
	}
	if other := CheckoutIdempotencyKey(userID, uuid.New(), now); other == key {
		t.Error("key identical for different destinations")
	}
}
