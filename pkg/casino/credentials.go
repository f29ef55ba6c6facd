package casino

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// MerchantCredentials identify the merchant the SDK authenticates as.
// They are immutable once built and safe to share between goroutines.
type MerchantCredentials struct {
	baseURL    string
	merchantID int64
	privateKey string
}

// NewMerchantCredentials validates and builds merchant credentials.
func NewMerchantCredentials(baseURL string, merchantID int64, privateKey string) (MerchantCredentials, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	u, err := url.Parse(baseURL)
	if err != nil {
		return MerchantCredentials{}, fmt.Errorf("invalid base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return MerchantCredentials{}, fmt.Errorf("invalid base url %q: absolute http(s) url required", baseURL)
	}
	if merchantID <= 0 {
		return MerchantCredentials{}, fmt.Errorf("invalid merchant id: %d", merchantID)
	}
	if strings.TrimSpace(privateKey) == "" {
		return MerchantCredentials{}, fmt.Errorf("private key is required")
	}

	return MerchantCredentials{
		baseURL:    baseURL,
		merchantID: merchantID,
		privateKey: privateKey,
	}, nil
}

// BaseURL returns the backend root, without a trailing slash.
func (c MerchantCredentials) BaseURL() string {
	return c.baseURL
}

// MerchantID returns the merchant identifier sent with every request.
func (c MerchantCredentials) MerchantID() int64 {
	return c.merchantID
}

func (c MerchantCredentials) String() string {
	return "merchant " + strconv.FormatInt(c.merchantID, 10) + " @ " + c.baseURL
}

// MarshalZerologObject keeps the private key out of log lines.
func (c MerchantCredentials) MarshalZerologObject(e *zerolog.Event) {
	e.Int64("merchant_id", c.merchantID).Str("base_url", c.baseURL)
}
