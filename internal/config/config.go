package config

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/betsolutions/casino-sdk-go/pkg/casino"
)

type AppCfg struct{ Env, Port string }
type DBCfg struct{ DSN string }
type RedisCfg struct{ Addr string }

// MerchantCfg holds what an SDK client needs to talk to the backend.
type MerchantCfg struct {
	BaseURL       string
	ID            int64
	PrivateKey    string
	Timeout       time.Duration
	RetryMax      uint64
	RetryInterval time.Duration
}

type SecurityCfg struct {
	AESKey []byte
}

type LifecycleCfg struct {
	PollEvery time.Duration
}

type Cfg struct {
	App       AppCfg
	Merchant  MerchantCfg
	DB        DBCfg
	Redis     RedisCfg
	Sec       SecurityCfg
	Lifecycle LifecycleCfg
}

// Load reads .env (if present) and the process environment.
func Load() (Cfg, error) {
	return LoadFile(".env")
}

// LoadFile is Load with an explicit dotenv path. A missing file is ignored and
// variables already set in the environment win.
func LoadFile(path string) (Cfg, error) {
	if path != "" {
		_ = godotenv.Load(path)
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("APP_ENV", "sandbox")
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("SDK_TIMEOUT_SEC", 0)
	v.SetDefault("SDK_RETRY_MAX", 0)
	v.SetDefault("SDK_RETRY_INTERVAL_MS", 200)
	v.SetDefault("LIFECYCLE_POLL_SEC", 30)

	cfg := Cfg{
		App: AppCfg{
			Env:  v.GetString("APP_ENV"),
			Port: v.GetString("APP_PORT"),
		},
		Merchant: MerchantCfg{
			BaseURL:       strings.TrimSpace(v.GetString("MERCHANT_BASE_URL")),
			ID:            v.GetInt64("MERCHANT_ID"),
			PrivateKey:    v.GetString("MERCHANT_PRIVATE_KEY"),
			Timeout:       time.Duration(v.GetInt("SDK_TIMEOUT_SEC")) * time.Second,
			RetryMax:      v.GetUint64("SDK_RETRY_MAX"),
			RetryInterval: time.Duration(v.GetInt("SDK_RETRY_INTERVAL_MS")) * time.Millisecond,
		},
		DB:    DBCfg{DSN: v.GetString("DB_DSN")},
		Redis: RedisCfg{Addr: v.GetString("REDIS_ADDR")},
		Lifecycle: LifecycleCfg{
			PollEvery: time.Duration(v.GetInt("LIFECYCLE_POLL_SEC")) * time.Second,
		},
	}

	if cfg.Merchant.Timeout < 0 {
		return Cfg{}, errors.New("SDK_TIMEOUT_SEC must not be negative")
	}
	if cfg.Lifecycle.PollEvery <= 0 {
		return Cfg{}, errors.New("LIFECYCLE_POLL_SEC must be positive")
	}

	if keyB64 := v.GetString("AES_256_KEY_BASE64"); keyB64 != "" {
		key, err := base64.StdEncoding.DecodeString(keyB64)
		if err != nil || len(key) != 32 {
			return Cfg{}, errors.New("AES_256_KEY_BASE64 must be a valid 32-byte base64 key")
		}
		cfg.Sec.AESKey = key
	}
	if cfg.DB.DSN != "" && cfg.Sec.AESKey == nil {
		return Cfg{}, errors.New("AES_256_KEY_BASE64 is required when DB_DSN is set")
	}

	return cfg, nil
}

// Credentials builds validated merchant credentials.
func (m MerchantCfg) Credentials() (casino.MerchantCredentials, error) {
	creds, err := casino.NewMerchantCredentials(m.BaseURL, m.ID, m.PrivateKey)
	if err != nil {
		return casino.MerchantCredentials{}, fmt.Errorf("merchant config: %w", err)
	}
	return creds, nil
}

// ClientOptions translates the SDK settings into client options.
func (m MerchantCfg) ClientOptions() []casino.Option {
	opts := []casino.Option{casino.WithTimeout(m.Timeout)}
	if m.RetryMax > 0 {
		opts = append(opts, casino.WithRetry(m.RetryMax, m.RetryInterval))
	}
	return opts
}
