package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/betsolutions/casino-sdk-go/internal/core"
	"github.com/betsolutions/casino-sdk-go/internal/domain/merchant"
)

type merchants struct {
	byID  map[int64]merchant.Merchant
	saves int
}

func (r *merchants) Save(_ context.Context, m *merchant.Merchant) error {
	r.saves++
	r.byID[m.ID] = *m
	return nil
}

func (r *merchants) FindByID(_ context.Context, id int64) (*merchant.Merchant, error) {
	m, ok := r.byID[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	return &m, nil
}

func TestDeactivate_StoresRevokedMerchant(t *testing.T) {
	key := bytes.Repeat([]byte{7}, 32)
	m, err := merchant.New(42, "Demo casino", "private-key", key)
	require.NoError(t, err)
	repo := &merchants{byID: map[int64]merchant.Merchant{42: *m}}

	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, deactivate(context.Background(), repo, 42, at))

	stored := repo.byID[42]
	assert.False(t, stored.IsActive)
	require.NotNil(t, stored.DeactivatedAt)
	assert.Equal(t, at, *stored.DeactivatedAt)

	_, err = stored.PrivateKey(key)
	assert.Error(t, err)
}

func TestDeactivate_AlreadyInactiveIsNoop(t *testing.T) {
	m, err := merchant.New(42, "Demo casino", "private-key", bytes.Repeat([]byte{7}, 32))
	require.NoError(t, err)
	m.Deactivate(time.Now())
	repo := &merchants{byID: map[int64]merchant.Merchant{42: *m}}

	require.NoError(t, deactivate(context.Background(), repo, 42, time.Now()))
	assert.Equal(t, 0, repo.saves)
}

func TestDeactivate_UnknownMerchant(t *testing.T) {
	repo := &merchants{byID: map[int64]merchant.Merchant{}}
	err := deactivate(context.Background(), repo, 9, time.Now())
	assert.ErrorIs(t, err, core.ErrNotFound)
}
