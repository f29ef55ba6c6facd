package redisstore

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/betsolutions/casino-sdk-go/internal/core"
	"github.com/betsolutions/casino-sdk-go/internal/store/repositories"
	"github.com/betsolutions/casino-sdk-go/pkg/casino/slots"
	"github.com/betsolutions/casino-sdk-go/pkg/casino/tablegames"
)

var _ repositories.GameStore = (*Store)(nil)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	ctx := context.Background()
	client, err := Connect(ctx, addr)
	require.NoError(t, err)

	prefix := "casino:test:" + uuid.NewString() + ":"
	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, prefix+"*").Result()
		if len(keys) > 0 {
			_ = client.Del(ctx, keys...).Err()
		}
		_ = client.Close()
	})
	return NewWithPrefix(client, prefix)
}

func TestRedisStore_Campaigns(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	c := &core.Campaign{MerchantID: 42, Name: "redis campaign", Status: slots.CampaignActive}
	require.NoError(t, s.CreateCampaign(ctx, c))
	require.NotZero(t, c.ID)

	assert.ErrorIs(t, s.DeactivateCampaign(ctx, 7, c.ID), core.ErrNotFound)
	require.NoError(t, s.DeactivateCampaign(ctx, 42, c.ID))

	items, total, err := s.ListCampaigns(ctx, 42, core.Page{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, slots.CampaignInactive, items[0].Status)
}

func TestRedisStore_SeedAndAdvance(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := newTestStore(t)
	require.NoError(t, core.Seed(ctx, s, now))

	items, total, err := s.ListTournaments(ctx, core.TournamentQuery{Game: tablegames.Backgammon, Page: core.Page{Limit: 10}})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, items, 3)
	assert.Len(t, items[1].Prizes, 2)

	changed, err := s.AdvanceTournaments(ctx, now.Add(9*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 4, changed)

	achievements, total, err := s.ListAchievements(ctx, core.AchievementQuery{Game: tablegames.Okey, Page: core.Page{Limit: 10}})
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	assert.Len(t, achievements, 4)
}
