package payments

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	config "github.com/arjunkoirala/trekmandu/configs"
)

var (
	httpClient     *http.Client
	httpClientOnce sync.Once

	credMutex           sync.RWMutex
	stripeSecret        string
	stripePublishable   string
	stripeWebhookSecret string
	razorpayKeyID       string
	razorpayKeySecret   string
	credsLoaded         bool
)

// Client returns the process-wide HTTP client shared by all payment
// provider calls.
func Client() *http.Client {
	httpClientOnce.Do(func() {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	})
	return httpClient
}

func loadCredentials() {
	credMutex.Lock()
	defer credMutex.Unlock()
	if credsLoaded {
		return
	}
	stripeSecret = config.Config("STRIPE_SECRET_KEY")
	stripePublishable = config.Config("STRIPE_PUBLISHABLE_KEY")
	stripeWebhookSecret = config.Config("STRIPE_WEBHOOK_SECRET")
	razorpayKeyID = config.Config("RAZORPAY_KEY_ID")
	razorpayKeySecret = config.Config("RAZORPAY_KEY_SECRET")
	credsLoaded = true
}

// StripeCredentials returns the secret and publishable keys, failing with a
// configuration error rather than issuing unsigned provider requests.
func StripeCredentials() (secretKey string, publishableKey string, err error) {
	loadCredentials()
	credMutex.RLock()
	defer credMutex.RUnlock()
	if stripeSecret == "" || stripePublishable == "" {
		return "", "", fmt.Errorf("stripe is not configured: STRIPE_SECRET_KEY and STRIPE_PUBLISHABLE_KEY must be set")
	}
	return stripeSecret, stripePublishable, nil
}

// StripeWebhookSecret returns the endpoint signing secret used to check
// the Stripe-Signature header on webhook deliveries.
func StripeWebhookSecret() (string, error) {
	loadCredentials()
	credMutex.RLock()
	defer credMutex.RUnlock()
	if stripeWebhookSecret == "" {
		return "", fmt.Errorf("stripe webhook is not configured: STRIPE_WEBHOOK_SECRET must be set")
	}
	return stripeWebhookSecret, nil
}

func RazorpayCredentials() (keyID string, keySecret string, err error) {
	loadCredentials()
	credMutex.RLock()
	defer credMutex.RUnlock()
	if razorpayKeyID == "" || razorpayKeySecret == "" {
		return "", "", fmt.Errorf("razorpay is not configured: RAZORPAY_KEY_ID and RAZORPAY_KEY_SECRET must be set")
	}
	return razorpayKeyID, razorpayKeySecret, nil
}
