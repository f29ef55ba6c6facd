package repositories

import (
	"context"
	"time"

	"github.com/betsolutions/casino-sdk-go/internal/core"
	"github.com/betsolutions/casino-sdk-go/internal/domain/merchant"
)

// GameStore persists the sandbox catalogue: merchant campaigns plus the table
// game tournaments and achievements.
type GameStore interface {
	CreateCampaign(ctx context.Context, c *core.Campaign) error
	// DeactivateCampaign returns core.ErrNotFound for unknown ids or ids
	// owned by another merchant.
	DeactivateCampaign(ctx context.Context, merchantID, campaignID int64) error
	ListCampaigns(ctx context.Context, merchantID int64, page core.Page) ([]core.Campaign, int, error)

	SaveTournament(ctx context.Context, t *core.Tournament) error
	ListTournaments(ctx context.Context, q core.TournamentQuery) ([]core.Tournament, int, error)

	SaveAchievement(ctx context.Context, a *core.Achievement) error
	ListAchievements(ctx context.Context, q core.AchievementQuery) ([]core.Achievement, int, error)

	// AdvanceTournaments applies Tournament.Advance to every stored
	// tournament and returns how many changed.
	AdvanceTournaments(ctx context.Context, now time.Time) (int, error)
}

// MerchantRepository stores merchants with sealed signing keys.
type MerchantRepository interface {
	Save(ctx context.Context, m *merchant.Merchant) error
	FindByID(ctx context.Context, id int64) (*merchant.Merchant, error)
}

// KeyStore resolves the plaintext signing key of an active merchant.
// Unknown or inactive merchants yield core.ErrNotFound.
type KeyStore interface {
	PrivateKey(ctx context.Context, merchantID int64) (string, error)
}
