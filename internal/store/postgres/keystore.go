package postgres

import (
	"context"
	"fmt"

	"github.com/betsolutions/casino-sdk-go/internal/core"
	"github.com/betsolutions/casino-sdk-go/internal/store/repositories"
)

// KeyStore opens merchant signing keys read through a MerchantRepository.
type KeyStore struct {
	merchants repositories.MerchantRepository
	aesKey    []byte
}

func NewKeyStore(merchants repositories.MerchantRepository, aesKey []byte) *KeyStore {
	return &KeyStore{merchants: merchants, aesKey: aesKey}
}

func (k *KeyStore) PrivateKey(ctx context.Context, merchantID int64) (string, error) {
	m, err := k.merchants.FindByID(ctx, merchantID)
	if err != nil {
		return "", err
	}
	if !m.IsActive {
		return "", core.ErrNotFound
	}
	key, err := m.PrivateKey(k.aesKey)
	if err != nil {
		return "", fmt.Errorf("open key of merchant %d: %w", merchantID, err)
	}
	return key, nil
}
