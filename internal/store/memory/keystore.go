package memory

import (
	"context"

	"github.com/betsolutions/casino-sdk-go/internal/core"
)

// KeyStore serves signing keys from a fixed map. The sandbox uses it when no
// database is configured.
type KeyStore struct {
	keys map[int64]string
}

func NewKeyStore(keys map[int64]string) *KeyStore {
	cp := make(map[int64]string, len(keys))
	for id, k := range keys {
		cp[id] = k
	}
	return &KeyStore{keys: cp}
}

func (k *KeyStore) PrivateKey(_ context.Context, merchantID int64) (string, error) {
	key, ok := k.keys[merchantID]
	if !ok || key == "" {
		return "", core.ErrNotFound
	}
	return key, nil
}
