package services

import (
	"testing"
	"time"
)

func TestNextBackoff(t *testing.T) {
	cases := []struct {
		attempts int
		want     time.Duration
	}{
		{1, 2 * time.Minute},
		{2, 4 * time.Minute},
		{3, 8 * time.Minute},
		{4, 16 * time.Minute},
	}

	for _, tc := range cases {
		if got := NextBackoff(tc.attempts); got != tc.want {
			t.Errorf("NextBackoff(%d) = %v, want %v", tc.attempts, got, tc.want)
		}
	}
}

// Rows whose first delivery runs inline must stay invisible to the cron
// dispatcher until well after the mail client's 10s timeout, otherwise
// both senders can deliver the same email.
func TestFirstRetryAtOutlastsInlineAttempt(t *testing.T) {
	now := time.Now()

	got := firstRetryAt(now)
	if want := now.Add(NextBackoff(0)); !got.Equal(want) {
		t.Errorf("firstRetryAt = %v, want %v", got, want)
	}
	if got.Sub(now) <= 10*time.Second {
		t.Errorf("first retry %v after enqueue does not outlast an inline send", got.Sub(now))
	}
}
