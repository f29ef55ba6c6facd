package merchant

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

var ErrKeyLength = errors.New("encryption key must be 32 bytes")

// Merchant is a casino operator allowed to call the backend. The private key
// used for request signing is stored sealed.
type Merchant struct {
	ID            int64
	Name          string
	SealedKey     string
	IsActive      bool
	CreatedAt     time.Time
	DeactivatedAt *time.Time
}

// New builds an active merchant and seals its private key.
func New(id int64, name, privateKey string, aesKey []byte) (*Merchant, error) {
	if id <= 0 {
		return nil, fmt.Errorf("invalid merchant ID: %d", id)
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("merchant name is required")
	}
	if strings.TrimSpace(privateKey) == "" {
		return nil, fmt.Errorf("private key is required")
	}

	sealed, err := Seal(privateKey, aesKey)
	if err != nil {
		return nil, fmt.Errorf("failed to seal private key: %w", err)
	}

	return &Merchant{
		ID:        id,
		Name:      name,
		SealedKey: sealed,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// PrivateKey opens the sealed signing key.
func (m *Merchant) PrivateKey(aesKey []byte) (string, error) {
	if !m.IsActive {
		return "", fmt.Errorf("merchant %d is inactive", m.ID)
	}
	return Open(m.SealedKey, aesKey)
}

// Deactivate revokes the merchant. Its key can no longer be opened.
func (m *Merchant) Deactivate(at time.Time) {
	m.IsActive = false
	at = at.UTC()
	m.DeactivatedAt = &at
}

// Seal encrypts plaintext with AES-256-GCM and returns base64(nonce|ciphertext).
func Seal(plaintext string, key []byte) (string, error) {
	aesGCM, err := gcm(key)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, aesGCM.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	ciphertext := aesGCM.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// Open reverses Seal.
func Open(sealed string, key []byte) (string, error) {
	aesGCM, err := gcm(key)
	if err != nil {
		return "", err
	}

	data, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", err
	}

	nonceSize := aesGCM.NonceSize()
	if len(data) < nonceSize {
		return "", fmt.Errorf("ciphertext too short")
	}

	nonce, ciphertext := data[:nonceSize], data[nonceSize:]
	plaintext, err := aesGCM.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

func gcm(key []byte) (cipher.AEAD, error) {
	if len(key) != 32 {
		return nil, ErrKeyLength
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
