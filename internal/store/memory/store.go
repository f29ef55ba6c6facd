// Package memory is the default GameStore of the sandbox backend.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/betsolutions/casino-sdk-go/internal/core"
	"github.com/betsolutions/casino-sdk-go/pkg/casino/slots"
)

type Store struct {
	mu           sync.RWMutex
	seq          int64
	campaigns    map[int64]core.Campaign
	tournaments  map[int64]core.Tournament
	achievements map[int64]core.Achievement
}

func New() *Store {
	return &Store{
		campaigns:    make(map[int64]core.Campaign),
		tournaments:  make(map[int64]core.Tournament),
		achievements: make(map[int64]core.Achievement),
	}
}

func (s *Store) nextID() int64 {
	s.seq++
	return s.seq
}

func (s *Store) CreateCampaign(_ context.Context, c *core.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.nextID()
	s.campaigns[c.ID] = *c
	return nil
}

func (s *Store) DeactivateCampaign(_ context.Context, merchantID, campaignID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.campaigns[campaignID]
	if !ok || c.MerchantID != merchantID {
		return core.ErrNotFound
	}
	c.Status = slots.CampaignInactive
	s.campaigns[campaignID] = c
	return nil
}

func (s *Store) ListCampaigns(_ context.Context, merchantID int64, page core.Page) ([]core.Campaign, int, error) {
	s.mu.RLock()
	all := make([]core.Campaign, 0, len(s.campaigns))
	for _, c := range s.campaigns {
		if c.MerchantID == merchantID {
			all = append(all, c)
		}
	}
	s.mu.RUnlock()

	items, total := core.SelectCampaigns(all, page)
	return items, total, nil
}

func (s *Store) SaveTournament(_ context.Context, t *core.Tournament) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t.ID == 0 {
		t.ID = s.nextID()
	}
	s.tournaments[t.ID] = *t
	return nil
}

func (s *Store) ListTournaments(_ context.Context, q core.TournamentQuery) ([]core.Tournament, int, error) {
	s.mu.RLock()
	all := make([]core.Tournament, 0, len(s.tournaments))
	for _, t := range s.tournaments {
		all = append(all, t)
	}
	s.mu.RUnlock()

	items, total := core.SelectTournaments(all, q)
	return items, total, nil
}

func (s *Store) SaveAchievement(_ context.Context, a *core.Achievement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a.ID == 0 {
		a.ID = s.nextID()
	}
	s.achievements[a.ID] = *a
	return nil
}

func (s *Store) ListAchievements(_ context.Context, q core.AchievementQuery) ([]core.Achievement, int, error) {
	s.mu.RLock()
	all := make([]core.Achievement, 0, len(s.achievements))
	for _, a := range s.achievements {
		all = append(all, a)
	}
	s.mu.RUnlock()

	items, total := core.SelectAchievements(all, q)
	return items, total, nil
}

func (s *Store) AdvanceTournaments(_ context.Context, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	changed := 0
	for id, t := range s.tournaments {
		if t.Advance(now) {
			s.tournaments[id] = t
			changed++
		}
	}
	return changed, nil
}
