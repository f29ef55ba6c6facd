// Package redisstore keeps the sandbox catalogue in Redis hashes of JSON
// documents so several sandbox processes can share it.
package redisstore

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/betsolutions/casino-sdk-go/internal/core"
	"github.com/betsolutions/casino-sdk-go/pkg/casino/slots"
	"github.com/betsolutions/casino-sdk-go/pkg/casino/tablegames"
)

const defaultPrefix = "casino:sandbox:"

// Connect accepts either a redis:// URL or host:port.
func Connect(ctx context.Context, addr string) (*redis.Client, error) {
	var client *redis.Client
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		opt, err := redis.ParseURL(addr)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{Addr: addr})
	}
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

type Store struct {
	client *redis.Client
	prefix string
}

func New(client *redis.Client) *Store {
	return NewWithPrefix(client, defaultPrefix)
}

// NewWithPrefix namespaces every key under prefix.
func NewWithPrefix(client *redis.Client, prefix string) *Store {
	return &Store{client: client, prefix: prefix}
}

func (s *Store) seqKey() string { return s.prefix + "seq" }

func (s *Store) campaignsKey(merchantID int64) string {
	return s.prefix + "campaigns:" + strconv.FormatInt(merchantID, 10)
}

func (s *Store) tournamentsKey(game tablegames.Game) string {
	return s.prefix + "tournaments:" + string(game)
}

func (s *Store) achievementsKey(game tablegames.Game) string {
	return s.prefix + "achievements:" + string(game)
}

func (s *Store) put(ctx context.Context, key string, id int64, v any) error {
	doc, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.client.HSet(ctx, key, strconv.FormatInt(id, 10), doc).Err()
}

func (s *Store) assignID(ctx context.Context, id *int64) error {
	if *id != 0 {
		return nil
	}
	next, err := s.client.Incr(ctx, s.seqKey()).Result()
	if err != nil {
		return err
	}
	*id = next
	return nil
}

func load[T any](ctx context.Context, client *redis.Client, key string) ([]T, error) {
	docs, err := client.HVals(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(docs))
	for _, doc := range docs {
		var v T
		if err := json.Unmarshal([]byte(doc), &v); err != nil {
			return nil, fmt.Errorf("decode %s: %w", key, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func (s *Store) CreateCampaign(ctx context.Context, c *core.Campaign) error {
	c.ID = 0
	if err := s.assignID(ctx, &c.ID); err != nil {
		return err
	}
	return s.put(ctx, s.campaignsKey(c.MerchantID), c.ID, c)
}

func (s *Store) DeactivateCampaign(ctx context.Context, merchantID, campaignID int64) error {
	key := s.campaignsKey(merchantID)
	doc, err := s.client.HGet(ctx, key, strconv.FormatInt(campaignID, 10)).Result()
	if err == redis.Nil {
		return core.ErrNotFound
	}
	if err != nil {
		return err
	}

	var c core.Campaign
	if err := json.Unmarshal([]byte(doc), &c); err != nil {
		return fmt.Errorf("decode campaign %d: %w", campaignID, err)
	}
	c.Status = slots.CampaignInactive
	return s.put(ctx, key, c.ID, c)
}

func (s *Store) ListCampaigns(ctx context.Context, merchantID int64, page core.Page) ([]core.Campaign, int, error) {
	all, err := load[core.Campaign](ctx, s.client, s.campaignsKey(merchantID))
	if err != nil {
		return nil, 0, err
	}
	items, total := core.SelectCampaigns(all, page)
	return items, total, nil
}

func (s *Store) SaveTournament(ctx context.Context, t *core.Tournament) error {
	if err := s.assignID(ctx, &t.ID); err != nil {
		return err
	}
	return s.put(ctx, s.tournamentsKey(t.Game), t.ID, t)
}

func (s *Store) ListTournaments(ctx context.Context, q core.TournamentQuery) ([]core.Tournament, int, error) {
	all, err := load[core.Tournament](ctx, s.client, s.tournamentsKey(q.Game))
	if err != nil {
		return nil, 0, err
	}
	items, total := core.SelectTournaments(all, q)
	return items, total, nil
}

func (s *Store) SaveAchievement(ctx context.Context, a *core.Achievement) error {
	if err := s.assignID(ctx, &a.ID); err != nil {
		return err
	}
	return s.put(ctx, s.achievementsKey(a.Game), a.ID, a)
}

func (s *Store) ListAchievements(ctx context.Context, q core.AchievementQuery) ([]core.Achievement, int, error) {
	all, err := load[core.Achievement](ctx, s.client, s.achievementsKey(q.Game))
	if err != nil {
		return nil, 0, err
	}
	items, total := core.SelectAchievements(all, q)
	return items, total, nil
}

// AdvanceTournaments rewrites the tournaments whose status moved. Writes of
// one game go out in a single pipeline.
func (s *Store) AdvanceTournaments(ctx context.Context, now time.Time) (int, error) {
	changed := 0
	for _, game := range tablegames.Games() {
		key := s.tournamentsKey(game)
		all, err := load[core.Tournament](ctx, s.client, key)
		if err != nil {
			return changed, err
		}

		fields := make([]any, 0)
		for i := range all {
			if !all[i].Advance(now) {
				continue
			}
			doc, err := json.Marshal(all[i])
			if err != nil {
				return changed, err
			}
			fields = append(fields, strconv.FormatInt(all[i].ID, 10), doc)
		}
		if len(fields) == 0 {
			continue
		}

		_, err = s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.HSet(ctx, key, fields...)
			return nil
		})
		if err != nil {
			return changed, err
		}
		changed += len(fields) / 2
	}
	return changed, nil
}
